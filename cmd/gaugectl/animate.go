package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gauge"
)

func animateCmd() *cobra.Command {
	var (
		to     float64
		frames int
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Ease the needle to a target value and write one PNG per frame",
	}
	applySize := sizeFlags(cmd)
	cmd.Flags().Float64Var(&to, "to", 0, "target value")
	cmd.Flags().IntVar(&frames, "frames", 0, "number of frames (default GAUGE_FRAMES)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default GAUGE_OUTPUT_DIR)")
	_ = cmd.MarkFlagRequired("to")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, m, err := setup(cmd)
		if err != nil {
			return err
		}
		applySize(m)
		if frames <= 0 {
			frames = cfg.Frames
		}
		if outDir == "" {
			outDir = cfg.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", outDir, err)
		}

		e := gauge.New(m, logNotifications())
		n, err := animate(cmd.Context(), e, to, frames, outDir)
		if err != nil {
			return err
		}
		fmt.Printf("%d frames written to %s, final value %s %s\n", n, outDir, e.ValueText(), m.Unit)
		return nil
	}
	return cmd
}

// animate drives e from its current value to target. The engine is used on
// this goroutine only; finished snapshots are encoded concurrently.
func animate(ctx context.Context, e *gauge.Engine, target float64, frames int, dir string) (int, error) {
	e.SetValue(e.Calibration().Clamp(target))
	a := newAnimator(e.Model().CurrentValue, e.Model().Value, frames)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	written := 0
	for i := 0; !a.done(); i++ {
		if gctx.Err() != nil {
			break
		}
		repainted := e.SetCurrentValue(a.next())
		if a.done() {
			repainted |= e.Apply(gauge.EventValueFinished)
		}
		gauge.Logger().Debug("gaugectl: frame", "frame", i, "value", e.Model().CurrentValue, "layers", repainted)

		img := e.Image()
		if img == nil {
			return written, errors.Join(gauge.ErrEmptyViewport, g.Wait())
		}
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		g.Go(func() error {
			return writePNG(path, img)
		})
		written++
	}
	if err := g.Wait(); err != nil {
		return written, err
	}
	return written, ctx.Err()
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
