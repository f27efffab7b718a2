package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/config"
	"github.com/Veraticus/ecoscan/internal/tui"
	"github.com/Veraticus/ecoscan/internal/tui/themes"
)

func uiCmd() *cobra.Command {
	var (
		record    bool
		recordDir string
		noAlt     bool
	)

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Long: `Open the dashboard: scan images, browse stats, history and achievements,
and chat with the recycling coach. Drop an image file onto the terminal to
select it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Log to a file so output does not tear the alternate screen.
			logPath := config.ExpandPath(viper.GetString("logging.file"))
			logFile, err := common.OpenLogFile(logPath)
			if err != nil {
				return err
			}
			defer func() { _ = logFile.Close() }()
			if err := setupLogging(logFile); err != nil {
				return fmt.Errorf("failed to setup logging: %w", err)
			}

			client, err := newClient(nil)
			if err != nil {
				return err
			}

			opts := []tui.Option{
				tui.WithTheme(themes.GetTheme(viper.GetString("ui.theme"))),
				tui.WithAltScreen(!noAlt),
				tui.WithRequestTimeout(viper.GetDuration("backend.timeout")),
			}
			if record {
				recorder := tui.NewRecorder(true, config.ExpandPath(recordDir))
				opts = append(opts, tui.WithRecorder(recorder))
				slog.Info("Recording TUI frames", "dir", recorder.Dir())
			}

			slog.Info("Starting dashboard", "backend", viper.GetString("backend.url"))
			return tui.Run(ctx, client, appConfig(client), opts...)
		},
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().BoolVar(&record, "record", false, "record every frame for debugging")
	cmd.Flags().StringVar(&recordDir, "record-dir", "", "directory for recorded frames (default: a temp dir)")
	cmd.Flags().BoolVar(&noAlt, "no-alt-screen", false, "render inline instead of in the alternate screen")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}
