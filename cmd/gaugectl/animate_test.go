package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gogpu/gauge"
)

func TestAnimateWritesFrames(t *testing.T) {
	dir := t.TempDir()
	m := gauge.NewModel()

	e := gauge.New(m)
	n, err := animate(context.Background(), e, 150, 5, dir)
	if err != nil {
		t.Fatalf("animate() = %v", err)
	}
	if n != 5 {
		t.Errorf("animate() wrote %d frames, want 5", n)
	}
	if m.Value != 100 || m.CurrentValue != 100 {
		t.Errorf("value = %v/%v, want clamped target 100", m.Value, m.CurrentValue)
	}

	for i := range 5 {
		f, err := os.Open(filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i)))
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		cfg, err := png.DecodeConfig(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if cfg.Width != 125 || cfg.Height != 250 {
			t.Errorf("frame %d is %dx%d, want 125x250", i, cfg.Width, cfg.Height)
		}
	}
}

func TestAnimateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := gauge.New(gauge.NewModel())
	n, err := animate(ctx, e, 50, 10, t.TempDir())
	if err == nil || n != 0 {
		t.Errorf("animate() = %d, %v; want 0 frames and an error", n, err)
	}
}

func TestAnimateEmptyViewport(t *testing.T) {
	dir := t.TempDir()
	m := gauge.NewModel()
	m.Width = 0
	e := gauge.New(m)

	n, err := animate(context.Background(), e, 50, 10, dir)
	if !errors.Is(err, gauge.ErrEmptyViewport) {
		t.Errorf("animate() error = %v, want %v", err, gauge.ErrEmptyViewport)
	}
	if n != 0 {
		t.Errorf("animate() wrote %d frames, want 0", n)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output dir has %d files, want none", len(entries))
	}
}

func TestWatchModel(t *testing.T) {
	m := gauge.NewModel()
	w := newWatchModel(m)
	if !m.Interactive {
		t.Fatal("watch did not make the gauge interactive")
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if cmd == nil {
		t.Fatal("up did not schedule a frame")
	}
	if m.Value != 5 {
		t.Errorf("target = %v, want 5", m.Value)
	}
	for i := 0; i < animFrames; i++ {
		w.Update(frameMsg{})
	}
	if m.CurrentValue != 5 {
		t.Errorf("current value = %v, want 5", m.CurrentValue)
	}

	w.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if !m.LedVisible || !m.LedOn {
		t.Errorf("led visible=%v on=%v, want both", m.LedVisible, m.LedOn)
	}

	w.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	w.Update(releaseMsg{})
	if len(w.log) != 2 || w.log[0] != "BUTTON_PRESSED" || w.log[1] != "BUTTON_RELEASED" {
		t.Errorf("notifications = %v, want press and release", w.log)
	}

	w.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	if !w.ready || !w.View().AltScreen {
		t.Error("View() is not on the alternate screen after a window size")
	}
}
