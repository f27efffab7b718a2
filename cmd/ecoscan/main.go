package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/config"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "ecoscan",
		Short: "♻️  Waste classification and recycling coach",
		Long: `ecoscan: photograph an item, learn which bin it belongs in, and chat with
a recycling coach about what to do with it.

Run "ecoscan ui" for the dashboard, or use the one-shot commands for scripting.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/ecoscan/config.yaml)")
	rootCmd.PersistentFlags().String("backend", "http://localhost:5000", "classification backend base URL")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-request timeout (0 waits for the backend)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("backend.url", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("backend.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	setDefaults(viper.GetViper())

	rootCmd.AddCommand(uiCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(achievementsCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setDefaults registers the defaults for every key the commands read.
func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.url", "http://localhost:5000")
	v.SetDefault("backend.timeout", 0)
	v.SetDefault("history.limit", 20)
	v.SetDefault("coach.latency", "1s")
	v.SetDefault("scan.handoff_delay", "1s")
	v.SetDefault("scan.notice_duration", "5s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", config.DefaultLogFile())
	v.SetDefault("ui.theme", "default")
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.ConfigDir()
		if err != nil {
			return fmt.Errorf("failed to locate config directory: %w", err)
		}

		viper.AddConfigPath(dir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ECOSCAN")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(os.Stderr); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging(w io.Writer) error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	return common.SetupLogger(w, level, viper.GetString("logging.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ecoscan %s\n", version)
		},
	}
}
