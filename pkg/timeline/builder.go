package timeline

import (
	"fmt"
	"strings"

	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

// Build maps user stories onto renderer tasks. Stories whose ID,
// subject, start or end cannot be resolved are excluded without
// fanfare; the output just gets shorter. Input order is preserved and
// identical inputs always produce value-identical output.
func Build(stories []taiga.UserStory, values map[int]taiga.AttributeValues, schema []taiga.UserStoryAttribute) []Task {
	tasks := []Task{}

	for _, story := range stories {
		task, ok := buildTask(story, values, schema)
		if !ok {
			continue
		}

		tasks = append(tasks, task)
	}

	return tasks
}

func buildTask(story taiga.UserStory, values map[int]taiga.AttributeValues, schema []taiga.UserStoryAttribute) (Task, bool) {
	if story.ID == 0 || story.Subject == "" {
		return Task{}, false
	}

	start, ok := ResolveStart(story, values, schema)
	if !ok {
		return Task{}, false
	}

	end, ok := ResolveEnd(story)
	if !ok {
		return Task{}, false
	}

	name := strings.TrimSpace(story.Subject)
	if name == "" {
		name = fmt.Sprintf("Story %d", story.ID)
	}

	return Task{
		ID:       story.Identifier(),
		Name:     name,
		Start:    start,
		End:      end,
		Progress: Progress(story),
	}, true
}
