package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		cols int
		mono bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw a gauge in the terminal",
	}
	cmd.Flags().IntVar(&cols, "cols", 32, "width in terminal cells")
	cmd.Flags().BoolVar(&mono, "mono", false, "disable colours")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		_, m, err := setup(cmd)
		if err != nil {
			return err
		}
		e := gauge.New(m, logNotifications())
		e.Apply(gauge.EventValueFinished)

		img := e.Image()
		if img == nil {
			return gauge.ErrEmptyViewport
		}
		var opts []preview.Option
		if mono {
			opts = append(opts, preview.WithMono())
		}
		// a braille cell is 2x4 dots, so a 1:2 face needs as many rows as columns
		art := preview.New(cols, cols, opts...).Render(img)
		fmt.Println(lipgloss.JoinVertical(lipgloss.Center, art, caption(e, cols)))
		return nil
	}
	return cmd
}

// caption renders the title, value and unit under a preview.
func caption(e *gauge.Engine, width int) string {
	m := e.Model()
	style := lipgloss.NewStyle().
		Foreground(m.ValueColor.Color()).
		Bold(true).
		Width(width).
		Align(lipgloss.Center)
	s := e.ValueText()
	if m.Unit != "" {
		s += " " + m.Unit
	}
	if m.Title != "" {
		s = m.Title + ": " + s
	}
	return style.Render(s)
}
