// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package timeline

import (
	"strconv"
	"strings"
	"time"

	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

// DateFormat is the fixed-width calendar date format handed to the
// renderer.
const DateFormat = "2006-01-02"

// StartAttributeName is the magic custom attribute that overrides a
// story's start date when present and parseable.
const StartAttributeName = "Start Date"

// the API mixes full timestamps (created_date) and plain dates
// (due_date, attribute values typed "date")
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateFormat,
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// ganttDate turns a raw API date into the renderer's format, advanced
// by one calendar day. The shift compensates for the renderer treating
// end dates as exclusive; it is applied to start dates too, so
// durations stay intact. Unparseable input is unresolvable, never
// substituted with "today".
func ganttDate(raw string) (string, bool) {
	parsed, ok := parseDate(raw)
	if !ok {
		return "", false
	}

	return parsed.AddDate(0, 0, 1).Format(DateFormat), true
}

// ResolveStart computes a story's effective start date: a valid
// "Start Date" custom attribute value wins, otherwise the story's
// creation timestamp, otherwise the story has no resolvable start.
func ResolveStart(story taiga.UserStory, values map[int]taiga.AttributeValues, schema []taiga.UserStoryAttribute) (string, bool) {
	if storyValues, ok := values[story.ID]; ok {
		if attribute, ok := findAttribute(schema, StartAttributeName); ok {
			raw := storyValues.Values[strconv.Itoa(attribute.ID)]
			if formatted, ok := ganttDate(raw); ok {
				return formatted, true
			}
		}
	}

	return ganttDate(story.CreatedDate)
}

// ResolveEnd computes a story's effective end date from its due date
// alone. No due date means the story cannot be placed on a timeline.
func ResolveEnd(story taiga.UserStory) (string, bool) {
	if story.DueDate == nil {
		return "", false
	}

	return ganttDate(*story.DueDate)
}

// Progress buckets a story into 100 (closed), 0 (blocked) or a flat 50
// for everything in between. This is deliberately not a completion
// ratio computed from points.
func Progress(story taiga.UserStory) int {
	if story.IsClosed {
		return 100
	}

	if story.IsBlocked {
		return 0
	}

	return 50
}

func findAttribute(schema []taiga.UserStoryAttribute, name string) (taiga.UserStoryAttribute, bool) {
	for _, attribute := range schema {
		if attribute.Name == name {
			return attribute, true
		}
	}

	return taiga.UserStoryAttribute{}, false
}
