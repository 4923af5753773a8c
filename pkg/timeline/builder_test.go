package timeline

import (
	"reflect"
	"testing"

	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

func TestBuildConcreteScenario(t *testing.T) {
	stories := []taiga.UserStory{
		{
			ID:          7,
			Subject:     "Fix bug",
			CreatedDate: "2024-01-01",
			DueDate:     strPtr("2024-01-10"),
			IsClosed:    true,
		},
	}

	tasks := Build(stories, nil, nil)

	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	expected := Task{
		ID:       "7",
		Name:     "Fix bug",
		Start:    "2024-01-02",
		End:      "2024-01-11",
		Progress: 100,
	}

	if tasks[0] != expected {
		t.Fatalf("expected %+v, got %+v", expected, tasks[0])
	}
}

func TestBuildExclusions(t *testing.T) {
	cases := []struct {
		name  string
		story taiga.UserStory
	}{
		{
			name:  "no due date",
			story: taiga.UserStory{ID: 1, Subject: "x", CreatedDate: "2024-01-01"},
		},
		{
			name:  "unparseable dates",
			story: taiga.UserStory{ID: 1, Subject: "x", CreatedDate: "nope", DueDate: strPtr("also nope")},
		},
		{
			name:  "empty subject",
			story: taiga.UserStory{ID: 1, CreatedDate: "2024-01-01", DueDate: strPtr("2024-01-10")},
		},
		{
			name:  "zero id",
			story: taiga.UserStory{Subject: "x", CreatedDate: "2024-01-01", DueDate: strPtr("2024-01-10")},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			tasks := Build([]taiga.UserStory{testcase.story}, nil, nil)
			if len(tasks) != 0 {
				t.Fatalf("expected story to be excluded, got %+v", tasks)
			}
		})
	}
}

func TestBuildWhitespaceSubjectFallsBack(t *testing.T) {
	stories := []taiga.UserStory{
		{ID: 9, Subject: "   ", CreatedDate: "2024-01-01", DueDate: strPtr("2024-01-10")},
	}

	tasks := Build(stories, nil, nil)

	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	if tasks[0].Name != "Story 9" {
		t.Fatalf("expected fallback name 'Story 9', got %q", tasks[0].Name)
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	stories := []taiga.UserStory{
		{ID: 3, Subject: "third", CreatedDate: "2024-01-03", DueDate: strPtr("2024-01-10")},
		{ID: 1, Subject: "first", CreatedDate: "2024-01-01", DueDate: strPtr("2024-01-10")},
		{ID: 2, Subject: "second", CreatedDate: "2024-01-02"}, // excluded, no due date
		{ID: 4, Subject: "fourth", CreatedDate: "2024-01-04", DueDate: strPtr("2024-01-10")},
	}

	tasks := Build(stories, nil, nil)

	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}

	if !reflect.DeepEqual(ids, []string{"3", "1", "4"}) {
		t.Fatalf("expected input order to be preserved, got %v", ids)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	schema := []taiga.UserStoryAttribute{{ID: 5, Name: StartAttributeName}}
	values := map[int]taiga.AttributeValues{
		1: {UserStory: 1, Values: map[string]string{"5": "2024-02-01"}},
	}
	stories := []taiga.UserStory{
		{ID: 1, Subject: "one", CreatedDate: "2024-01-01", DueDate: strPtr("2024-03-01")},
		{ID: 2, Subject: "two", CreatedDate: "2024-01-02", DueDate: strPtr("2024-03-02"), IsBlocked: true},
	}

	first := Build(stories, values, schema)
	second := Build(stories, values, schema)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestBuildTaskCountNeverExceedsStoryCount(t *testing.T) {
	stories := []taiga.UserStory{
		{ID: 1, Subject: "a", CreatedDate: "2024-01-01", DueDate: strPtr("2024-01-05")},
		{ID: 2, Subject: "b", CreatedDate: "2024-01-01"},
		{ID: 3, Subject: "c", CreatedDate: "2024-01-01", DueDate: strPtr("2024-01-07")},
	}

	tasks := Build(stories, nil, nil)

	if len(tasks) > len(stories) {
		t.Fatalf("output (%d) must never exceed input (%d)", len(tasks), len(stories))
	}

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
}
