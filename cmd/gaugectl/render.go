package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
)

func renderCmd() *cobra.Command {
	var (
		output string
		value  float64
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a gauge to a PNG file",
	}
	applySize := sizeFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "gauge.png", "output file, relative to GAUGE_OUTPUT_DIR")
	cmd.Flags().Float64Var(&value, "value", 0, "value to display instead of the configured one")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, m, err := setup(cmd)
		if err != nil {
			return err
		}
		applySize(m)
		if cmd.Flags().Changed("value") {
			m.Value, m.CurrentValue = value, value
		}

		e := gauge.New(m, logNotifications())
		e.Apply(gauge.EventValueFinished)

		path := output
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.OutputDir, path)
		}
		if err := e.SavePNG(path); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
		fmt.Printf("%s: %s %s\n", path, e.ValueText(), m.Unit)
		return nil
	}
	return cmd
}
