package main

import (
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/ecoscan/internal/app"
	"github.com/Veraticus/ecoscan/internal/backend"
	"github.com/Veraticus/ecoscan/internal/cli"
)

// envKeyReplacer maps nested keys to env names, e.g. backend.url to
// ECOSCAN_BACKEND_URL.
var envKeyReplacer = strings.NewReplacer(".", "_")

// newClient builds the backend client from configuration. A non-nil
// progress writer draws an upload bar there during classification.
func newClient(progress io.Writer) (*backend.Client, error) {
	opts := []backend.Option{
		backend.WithTimeout(viper.GetDuration("backend.timeout")),
	}
	if progress != nil {
		opts = append(opts, backend.WithUploadWrapper(cli.UploadProgress(progress)))
	}
	return backend.New(viper.GetString("backend.url"), opts...)
}

// appConfig reads the timing and limit settings shared by every surface.
func appConfig(client *backend.Client) app.Config {
	return app.Config{
		ResolveImage:   client.ResolveURL,
		HandoffDelay:   viper.GetDuration("scan.handoff_delay"),
		NoticeDuration: viper.GetDuration("scan.notice_duration"),
		CoachLatency:   viper.GetDuration("coach.latency"),
		HistoryLimit:   viper.GetInt("history.limit"),
	}
}
