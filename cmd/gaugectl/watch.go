package main

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/internal/preview"
)

const (
	frameInterval = 33 * time.Millisecond
	pressDuration = 150 * time.Millisecond
	// steps from min to max per key press
	keySteps   = 20
	animFrames = 15
	logLines   = 3
	// rows below the gauge: caption, status, log and help
	chromeRows = 3 + logLines
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Drive a gauge interactively in the terminal",
		Long:  "Up/down move the target value, l toggles the LED, space presses the knob, q quits.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, m, err := setup(cmd)
			if err != nil {
				return err
			}
			// keep engine logs off the alternate screen
			gauge.SetLogger(nil)
			gg.SetLogger(nil)

			model := newWatchModel(m)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}
			return nil
		},
	}
}

type (
	frameMsg   struct{}
	releaseMsg struct{}
)

var _ tea.Model = (*watchModel)(nil)

type watchModel struct {
	engine *gauge.Engine
	anim   *animator

	ready         bool
	width, height int
	log           []string
}

func newWatchModel(m *gauge.Model) *watchModel {
	w := &watchModel{}
	m.Interactive = true
	w.engine = gauge.New(m, gauge.WithListener(w.record))
	w.anim = newAnimator(m.CurrentValue, m.CurrentValue, animFrames)
	w.anim.frame = w.anim.frames
	return w
}

// record keeps the last few notifications for display.
func (w *watchModel) record(n gauge.Notification) {
	s := n.Kind.String()
	if n.Kind == gauge.SectionEntered || n.Kind == gauge.SectionLeft {
		s = fmt.Sprintf("%s %d %s", s, n.Index, n.Section.Text)
	}
	w.log = append(w.log, s)
	if len(w.log) > logLines {
		w.log = w.log[len(w.log)-logLines:]
	}
}

func (w *watchModel) Init() tea.Cmd {
	return nil
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m := w.engine.Model()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		w.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return w, tea.Quit
		case "up", "k":
			return w, w.moveTarget(1)
		case "down", "j":
			return w, w.moveTarget(-1)
		case "l":
			if !m.LedVisible {
				m.LedVisible = true
				w.engine.Apply(gauge.EventVisibility)
			}
			m.LedOn = !m.LedOn
			w.engine.Apply(gauge.EventLed)
		case "space", " ":
			c := w.engine.Viewport().Center
			w.engine.Press(c.X, c.Y)
			return w, tea.Tick(pressDuration, func(time.Time) tea.Msg { return releaseMsg{} })
		}

	case releaseMsg:
		c := w.engine.Viewport().Center
		w.engine.Release(c.X, c.Y)

	case frameMsg:
		if w.anim.done() {
			return w, nil
		}
		w.engine.SetCurrentValue(w.anim.next())
		if w.anim.done() {
			w.engine.Apply(gauge.EventValueFinished)
			return w, nil
		}
		return w, frame()
	}
	return w, nil
}

// moveTarget changes the target value by one key step and starts easing
// towards it. A frame tick is only scheduled when none is pending.
func (w *watchModel) moveTarget(dir float64) tea.Cmd {
	m := w.engine.Model()
	cal := w.engine.Calibration()
	target := cal.Clamp(m.Value + dir*cal.Range()/keySteps)
	w.engine.SetValue(target)

	idle := w.anim.done()
	w.anim.retarget(m.CurrentValue, target)
	if idle {
		return frame()
	}
	return nil
}

func (w *watchModel) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	if !w.ready {
		return view
	}

	cols := min(w.width, w.height-chromeRows)
	if cols < 4 {
		view.SetContent("terminal too small")
		return view
	}

	m := w.engine.Model()
	var art string
	if img := w.engine.Image(); img != nil {
		art = preview.New(cols, cols).Render(img)
	}

	dim := lipgloss.NewStyle().Faint(true)
	status := fmt.Sprintf("target %.*f  led %s", max(m.Decimals, 0), m.Value, onOff(m.LedOn))
	help := "↑/↓ target · l led · space knob · q quit"

	lines := []string{art, caption(w.engine, w.width), dim.Render(status)}
	for i := range logLines {
		s := ""
		if i < len(w.log) {
			s = w.log[i]
		}
		lines = append(lines, dim.Render(s))
	}
	lines = append(lines, dim.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	view.SetContent(lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, content))
	return view
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
