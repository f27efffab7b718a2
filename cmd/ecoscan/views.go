package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/ecoscan/internal/backend"
	"github.com/Veraticus/ecoscan/internal/cli"
	"github.com/Veraticus/ecoscan/internal/scan"
)

// viewCommand builds a read-only command that either renders one dashboard
// tab as text or dumps the raw endpoint payload as JSON.
func viewCommand(use, short string, load func(*scan.Controller, context.Context) error, raw func(*backend.Client, context.Context) (any, error)) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			client, err := newClient(nil)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if output == outputJSON {
				v, err := raw(client, ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), v)
			}

			printer := cli.NewScanPrinter(cmd.OutOrStdout(), terminalWidth, false)
			cfg := appConfig(client)
			ctrl := scan.NewController(client, printer, scan.Config{
				ResolveImage: cfg.ResolveImage,
				HistoryLimit: cfg.HistoryLimit,
			})
			return load(ctrl, ctx)
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func statsCmd() *cobra.Command {
	return viewCommand("stats", "Show classification statistics",
		(*scan.Controller).LoadDetailedStats,
		func(c *backend.Client, ctx context.Context) (any, error) { return c.Stats(ctx) },
	)
}

func historyCmd() *cobra.Command {
	cmd := viewCommand("history", "Show recent classifications",
		(*scan.Controller).LoadHistory,
		func(c *backend.Client, ctx context.Context) (any, error) {
			return c.History(ctx, viper.GetInt("history.limit"))
		},
	)
	cmd.Flags().Int("limit", 20, "number of entries to show")
	_ = viper.BindPFlag("history.limit", cmd.Flags().Lookup("limit"))
	return cmd
}

func achievementsCmd() *cobra.Command {
	return viewCommand("achievements", "Show the achievement board",
		(*scan.Controller).LoadAchievements,
		func(c *backend.Client, ctx context.Context) (any, error) { return c.Achievements(ctx) },
	)
}
