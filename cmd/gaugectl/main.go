// Command gaugectl renders, animates and previews gauges described in YAML.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/gogpu/gg"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/internal/config"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "gaugectl",
		Short:   "Render vertical radial gauges",
		Version: version,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "gauge description (YAML); defaults to a 0..100 gauge")

	rootCmd.AddCommand(renderCmd(), animateCmd(), previewCmd(), watchCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

// setup reads the environment, installs the logger and loads the gauge
// named by --config.
func setup(cmd *cobra.Command) (config.Config, *gauge.Model, error) {
	cfg, err := config.Read()
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to read config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	gauge.SetLogger(logger)
	gg.SetLogger(logger)

	m := gauge.NewModel()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if m, err = config.Load(path); err != nil {
			return cfg, nil, err
		}
	}
	if cfg.Width > 0 {
		m.Width = cfg.Width
	}
	if cfg.Height > 0 {
		m.Height = cfg.Height
	}
	return cfg, m, nil
}

// sizeFlags registers --width and --height and applies them to m when set.
func sizeFlags(cmd *cobra.Command) func(m *gauge.Model) {
	w := cmd.Flags().Float64("width", 0, "available width in pixels")
	h := cmd.Flags().Float64("height", 0, "available height in pixels")
	return func(m *gauge.Model) {
		if *w > 0 {
			m.Width = *w
		}
		if *h > 0 {
			m.Height = *h
		}
	}
}

// logNotifications returns a listener that logs engine notifications.
func logNotifications() gauge.Option {
	return gauge.WithListener(func(n gauge.Notification) {
		attrs := []any{"kind", n.Kind}
		switch n.Kind {
		case gauge.SectionEntered, gauge.SectionLeft:
			attrs = append(attrs, "index", n.Index, "area", n.Area, "text", n.Section.Text)
		case gauge.MarkerPressed, gauge.MarkerReleased:
			attrs = append(attrs, "marker", n.Marker)
		}
		gauge.Logger().Info("gaugectl: notification", attrs...)
	})
}
