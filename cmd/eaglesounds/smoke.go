package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"eaglesounds.in/internal/effects"
	"eaglesounds.in/internal/models"
)

// Terminal cells are roughly twice as tall as they are wide
const (
	cellWidth  = 8
	cellHeight = 16
)

var (
	smokeSeed uint64
	smokeFPS  int
)

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Preview the smoke effect in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := smokeSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		p := tea.NewProgram(newSmokeModel(seed, smokeFPS), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	smokeCmd.Flags().Uint64Var(&smokeSeed, "seed", 0, "simulator seed (0 picks one from the clock)")
	smokeCmd.Flags().IntVar(&smokeFPS, "fps", effects.DefaultFrameRate, "frames per second")
	rootCmd.AddCommand(smokeCmd)
}

type smokeTickMsg time.Time

// smokeModel drives a simulator from bubbletea ticks, sized to the terminal
type smokeModel struct {
	sim      *effects.SmokeSimulator
	interval time.Duration
	cols     int
	rows     int
	frame    effects.Frame
	seeded   bool
	style    lipgloss.Style
	status   lipgloss.Style
}

func newSmokeModel(seed uint64, fps int) *smokeModel {
	if fps <= 0 {
		fps = effects.DefaultFrameRate
	}

	tint := effects.SmokeTints[0]

	return &smokeModel{
		sim:      effects.NewSmokeSimulator(effects.DefaultSmokeConfig(), models.DefaultViewport, effects.NewRNG(seed)),
		interval: time.Second / time.Duration(fps),
		style:    lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", tint.R, tint.G, tint.B))),
		status:   lipgloss.NewStyle().Faint(true),
	}
}

func (m *smokeModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return smokeTickMsg(t)
	})
}

func (m *smokeModel) Init() tea.Cmd {
	return m.tick()
}

func (m *smokeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(1, msg.Height-1)
		m.sim.Resize(models.Viewport{Width: m.cols * cellWidth, Height: m.rows * cellHeight})
		if !m.seeded {
			m.sim.Seed()
			m.seeded = true
		}

	case smokeTickMsg:
		if m.seeded {
			stats := m.sim.Step()
			m.frame = m.sim.Frame()
			m.frame.Stats = stats
		}
		return m, m.tick()
	}

	return m, nil
}

// ramp maps density to glyphs, faintest first
const ramp = " .:-=+*#%@"

func (m *smokeModel) View() string {
	if m.cols == 0 {
		return "sizing..."
	}

	var field strings.Builder
	for r, row := range m.frame.Density(m.cols, m.rows) {
		if r > 0 {
			field.WriteByte('\n')
		}
		for _, v := range row {
			field.WriteByte(ramp[int(v*float64(len(ramp)-1)+0.5)])
		}
	}

	var b strings.Builder
	b.WriteString(m.style.Render(field.String()))
	b.WriteByte('\n')
	b.WriteString(m.status.Render(fmt.Sprintf(
		"frame %d  particles %d  spawned %d  removed %d  (q to quit)",
		m.frame.Seq, m.frame.Stats.Alive, m.frame.Stats.Spawned, m.frame.Stats.Removed,
	)))
	return b.String()
}
