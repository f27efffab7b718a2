package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ecoscan/internal/app"
	"github.com/Veraticus/ecoscan/internal/cli"
	"github.com/Veraticus/ecoscan/internal/model"
)

func chatCmd() *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the recycling coach",
		Long: `Chat with the recycling coach. With --image the item is classified first
and the coach greets you with the result and its quick actions (/1 to /4).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interrupts.HandleInterrupts(cmd.Context(), "Chat")

			client, err := newClient(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scanView := cli.NewScanPrinter(out, terminalWidth, false)
			coachView := cli.NewCoachPrinter(out, isTerminal(out))
			a := app.New(client, scanView, coachView, appConfig(client))

			if image != "" {
				handoff := make(chan model.ClassificationResult, 1)
				a.Scan.SetHandoff(func(r model.ClassificationResult) { handoff <- r })

				if err := a.Scan.SelectPath(image); err != nil {
					return err
				}
				if err := a.Scan.Classify(ctx); err != nil {
					return err
				}

				select {
				case r := <-handoff:
					a.Coach.TriggerAfterScan(r)
				case <-ctx.Done():
					return nil
				}
			}

			if err := cli.RunChat(ctx, a.Coach, cmd.InOrStdin(), out); err != nil {
				return fmt.Errorf("chat ended: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "classify this image before chatting")
	return cmd
}
