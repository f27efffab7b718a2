package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/ecoscan/internal/cli"
	"github.com/Veraticus/ecoscan/internal/scan"
)

// terminalWidth is the panel width used by the one-shot commands.
const terminalWidth = 72

func classifyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "classify <image>",
		Short: "Classify one image and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interrupts.HandleInterrupts(cmd.Context(), "Upload")

			file, err := scan.OpenImage(args[0])
			if err != nil {
				return err
			}

			progress := cmd.ErrOrStderr()
			if !isTerminal(progress) {
				progress = nil
			}
			client, err := newClient(progress)
			if err != nil {
				return err
			}

			if output == outputJSON {
				result, err := client.Predict(ctx, file)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result)
			}

			printer := cli.NewScanPrinter(cmd.OutOrStdout(), terminalWidth, false)
			cfg := appConfig(client)
			ctrl := scan.NewController(client, printer, scan.Config{
				ResolveImage:   cfg.ResolveImage,
				NoticeDuration: cfg.NoticeDuration,
				HistoryLimit:   cfg.HistoryLimit,
			})
			if err := ctrl.SelectFile(file); err != nil {
				return err
			}
			return ctrl.Classify(ctx)
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
