// Package tui is the interactive watch mode: it keeps re-running the
// resolution pipeline and redraws the chart whenever a cycle finishes.
// Cycle supersession lives here too; a refresh while a cycle is in
// flight simply abandons the older cycle's result.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go.xrstf.de/taiga_gantt/pkg/pipeline"
	"go.xrstf.de/taiga_gantt/pkg/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FAFAF")).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AF5F5F"))
)

// Options configures a watch session.
type Options struct {
	Coordinator *pipeline.Coordinator
	ProjectID   string
	MilestoneID string

	// Refresh is the automatic refresh interval; zero disables the
	// timer and leaves only manual refreshes.
	Refresh time.Duration
}

type cycleMsg struct {
	generation uint64
	result     *pipeline.Result
	err        error
}

type refreshTickMsg time.Time

type model struct {
	opts    Options
	spinner spinner.Model
	width   int
	loading bool
	err     error
	result  *pipeline.Result
}

func newModel(opts Options) model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFAF"))),
	)

	return model{
		opts:    opts,
		spinner: s,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.beginCycle()}

	if m.opts.Refresh > 0 {
		cmds = append(cmds, m.scheduleRefresh())
	}

	return tea.Batch(cmds...)
}

// beginCycle supersedes any in-flight cycle immediately; the returned
// command then runs the new one to completion.
func (m model) beginCycle() tea.Cmd {
	cycle := m.opts.Coordinator.Begin(context.Background(), m.opts.ProjectID, m.opts.MilestoneID)

	return func() tea.Msg {
		result, err := cycle.Run()

		return cycleMsg{
			generation: cycle.Generation,
			result:     result,
			err:        err,
		}
	}
}

func (m model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.opts.Refresh, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.beginCycle())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshTickMsg:
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.beginCycle(), m.scheduleRefresh())

	case cycleMsg:
		// Run checks currency once, on completion; a newer cycle can
		// begin between that check and this message's delivery, so
		// stale results are checked for again on arrival
		if errors.Is(msg.err, pipeline.ErrSuperseded) || msg.generation < m.opts.Coordinator.Generation() {
			return m, nil
		}

		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.result = msg.result
		}

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	view := titleStyle.Render(m.title()) + "\n"

	switch {
	case m.loading && m.result == nil:
		view += m.spinner.View() + " Loading timeline…\n"

	case m.err != nil:
		view += errorStyle.Render("Error: "+m.err.Error()) + "\n"

	case m.result == nil || len(m.result.Tasks) == 0:
		view += subtleStyle.Render("No user stories to display.") + "\n"

	default:
		chart, err := render.ChartString(m.result.Tasks, render.Options{Width: m.width})
		if err != nil {
			view += errorStyle.Render("Error: "+err.Error()) + "\n"
		} else {
			view += chart
		}

		if m.loading {
			view += m.spinner.View() + " Refreshing…\n"
		}
	}

	view += "\n" + subtleStyle.Render("r refresh · q quit")

	return view
}

func (m model) title() string {
	if m.result != nil {
		return fmt.Sprintf("%s / %s", m.result.Project.Name, m.result.Milestone.Name)
	}

	return fmt.Sprintf("project %s / milestone %s", m.opts.ProjectID, m.opts.MilestoneID)
}

// Run blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(newModel(opts)).Run()

	return err
}
