// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Sébastien Leblanc

package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sebleblanc/go-protea/pkg/protea"
)

var watchInterval time.Duration

var (
	watchTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	watchPresetStyle = lipgloss.NewStyle().Bold(true)
	watchErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	watchHelpStyle   = lipgloss.NewStyle().Faint(true)
)

// pollResultMsg carries one data-request round trip
type pollResultMsg struct {
	resp *protea.DataResponse
	err  error
}

type pollTickMsg time.Time

type watchModel struct {
	dev      *protea.Ne2424M
	interval time.Duration
	spin     spinner.Model
	last     *protea.DataResponse
	lastErr  error
	polls    int
	quitting bool
}

func newWatchModel(dev *protea.Ne2424M, interval time.Duration) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return watchModel{dev: dev, interval: interval, spin: s}
}

// pollCmd issues one config data request. The next poll is only
// scheduled once this one has completed, so the half-duplex line never
// sees overlapping exchanges.
func (m watchModel) pollCmd() tea.Cmd {
	dev := m.dev
	return func() tea.Msg {
		resp, err := dev.GetDataRequest(0, 0)
		return pollResultMsg{resp: resp, err: err}
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.pollCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case pollResultMsg:
		m.polls++
		m.lastErr = msg.err
		if msg.err == nil {
			m.last = msg.resp
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg {
			return pollTickMsg(t)
		})

	case pollTickMsg:
		return m, m.pollCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	view := watchTitleStyle.Render("Protea ne24.24M") + "\n\n"

	switch {
	case m.last != nil:
		view += fmt.Sprintf("Active preset: %s\n",
			watchPresetStyle.Render(fmt.Sprintf("%d: %s", m.last.PresetNumber, m.last.PresetName)))
	default:
		view += m.spin.View() + " waiting for the device...\n"
	}

	if m.lastErr != nil {
		view += watchErrStyle.Render(fmt.Sprintf("last poll failed: %v", m.lastErr)) + "\n"
	}

	view += "\n" + watchHelpStyle.Render(fmt.Sprintf("polling every %s • %d polls • q to quit", m.interval, m.polls))
	return view
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the active preset (ne24.24M)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, conn, err := openNe2424M()
		if err != nil {
			return err
		}
		defer conn.Close()

		p := tea.NewProgram(newWatchModel(dev, watchInterval))
		_, err = p.Run()
		return err
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "Delay between polls")
	rootCmd.AddCommand(watchCmd)
}
