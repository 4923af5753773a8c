// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"go.xrstf.de/taiga_gantt/pkg/timeline"
)

const (
	defaultWidth  = 100
	maxLabelWidth = 24
)

var (
	closedColor  = lipgloss.Color("#87AF87")
	blockedColor = lipgloss.Color("#AF5F5F")
	openColor    = lipgloss.Color("#5FAFAF")
	subtleColor  = lipgloss.Color("#666666")

	labelStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(subtleColor)
)

// Options configures chart geometry.
type Options struct {
	// Width is the total number of columns available, 0 means a
	// sensible default.
	Width int
}

// Gantt is one constructed chart instance bound to an anchor. Drawing
// happens at construction time; the instance itself only exists so the
// lifecycle manager has something to hold and discard.
type Gantt struct {
	anchor Anchor
	tasks  []timeline.Task
}

// NewGantt lays out the tasks as a day-scaled bar chart and writes it
// to the anchor. Construction fails on an empty task list or when a
// task's dates do not parse; a start after its end is not an error
// here, the bar is just collapsed to a single day.
func NewGantt(anchor Anchor, tasks []timeline.Task, opts Options) (*Gantt, error) {
	rendered, err := ChartString(tasks, opts)
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(anchor, rendered); err != nil {
		return nil, fmt.Errorf("failed to write chart: %w", err)
	}

	return &Gantt{
		anchor: anchor,
		tasks:  tasks,
	}, nil
}

type bar struct {
	task  timeline.Task
	start time.Time
	end   time.Time
}

// ChartString renders the chart without binding it to an anchor; the
// watch mode TUI composes it into its own view.
func ChartString(tasks []timeline.Task, opts Options) (string, error) {
	if len(tasks) == 0 {
		return "", errors.New("no tasks to render")
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	bars := make([]bar, 0, len(tasks))

	var chartStart, chartEnd time.Time

	for _, task := range tasks {
		start, err := time.Parse(timeline.DateFormat, task.Start)
		if err != nil {
			return "", fmt.Errorf("task %s has unusable start date %q", task.ID, task.Start)
		}

		end, err := time.Parse(timeline.DateFormat, task.End)
		if err != nil {
			return "", fmt.Errorf("task %s has unusable end date %q", task.ID, task.End)
		}

		bars = append(bars, bar{task: task, start: start, end: end})

		if chartStart.IsZero() || start.Before(chartStart) {
			chartStart = start
		}

		for _, day := range []time.Time{start, end} {
			if day.After(chartEnd) {
				chartEnd = day
			}
		}
	}

	labelWidth := labelColumnWidth(bars)

	// columns available for the day grid
	columns := width - labelWidth - 1
	if columns < 10 {
		columns = 10
	}

	totalDays := daysBetween(chartStart, chartEnd) + 1

	// squash multiple days into one column on long timelines
	step := 1
	for totalDays/step > columns {
		step++
	}

	var out strings.Builder

	out.WriteString(subtleStyle.Render(fmt.Sprintf("%s → %s (%d days)", chartStart.Format(timeline.DateFormat), chartEnd.Format(timeline.DateFormat), totalDays)))
	out.WriteString("\n")
	out.WriteString(ruler(labelWidth, totalDays, step))
	out.WriteString("\n")

	for _, b := range bars {
		out.WriteString(barRow(b, chartStart, labelWidth, step))
		out.WriteString("\n")
	}

	return out.String(), nil
}

func barRow(b bar, chartStart time.Time, labelWidth int, step int) string {
	offset := daysBetween(chartStart, b.start) / step

	length := (daysBetween(b.start, b.end) + 1) / step
	if length < 1 {
		// also covers malformed start-after-end ranges
		length = 1
	}

	done := length * b.task.Progress / 100

	style := lipgloss.NewStyle().Foreground(barColor(b.task.Progress))

	row := labelStyle.Render(padLabel(b.task.Name, labelWidth))
	row += " "
	row += strings.Repeat(" ", offset)
	row += style.Render(strings.Repeat("█", done) + strings.Repeat("░", length-done))
	row += " "
	row += subtleStyle.Render(fmt.Sprintf("%d%%", b.task.Progress))

	return row
}

func barColor(progress int) lipgloss.Color {
	switch progress {
	case 100:
		return closedColor
	case 0:
		return blockedColor
	default:
		return openColor
	}
}

func ruler(labelWidth int, totalDays int, step int) string {
	columns := totalDays / step
	if totalDays%step > 0 {
		columns++
	}

	var line strings.Builder
	line.WriteString(strings.Repeat(" ", labelWidth+1))

	for col := 0; col < columns; col++ {
		if col%7 == 0 {
			line.WriteString("┆")
		} else {
			line.WriteString("┄")
		}
	}

	return subtleStyle.Render(line.String())
}

func labelColumnWidth(bars []bar) int {
	width := 0

	for _, b := range bars {
		if l := len([]rune(b.task.Name)); l > width {
			width = l
		}
	}

	if width > maxLabelWidth {
		width = maxLabelWidth
	}

	return width
}

func padLabel(name string, width int) string {
	runes := []rune(name)

	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}

	return name + strings.Repeat(" ", width-len(runes))
}

func daysBetween(a time.Time, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
