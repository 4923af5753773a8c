package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	taskStartTimestamp = prometheus.NewDesc(
		"taiga_gantt_task_start_timestamp",
		"UNIX timestamp of a task's effective (shifted) start date",
		[]string{"project", "milestone", "task"},
		nil,
	)

	taskEndTimestamp = prometheus.NewDesc(
		"taiga_gantt_task_end_timestamp",
		"UNIX timestamp of a task's effective (shifted) end date",
		[]string{"project", "milestone", "task"},
		nil,
	)

	taskProgress = prometheus.NewDesc(
		"taiga_gantt_task_progress",
		"Progress bucket of a task (0, 50 or 100)",
		[]string{"project", "milestone", "task"},
		nil,
	)

	taskCount = prometheus.NewDesc(
		"taiga_gantt_tasks",
		"Number of render-ready tasks produced by the last completed cycle",
		[]string{"project", "milestone"},
		nil,
	)

	storyCount = prometheus.NewDesc(
		"taiga_gantt_stories",
		"Number of user stories in the resolved milestone",
		[]string{"project", "milestone"},
		nil,
	)

	cycleDurationSeconds = prometheus.NewDesc(
		"taiga_gantt_cycle_duration_seconds",
		"Duration of the most recent resolution cycle",
		nil,
		nil,
	)

	cyclesTotal = prometheus.NewDesc(
		"taiga_gantt_cycles_total",
		"Total number of completed resolution cycles",
		nil,
		nil,
	)

	cycleFailuresTotal = prometheus.NewDesc(
		"taiga_gantt_cycle_failures_total",
		"Total number of failed resolution cycles",
		nil,
		nil,
	)

	apiRequestsTotal = prometheus.NewDesc(
		"taiga_gantt_api_requests_total",
		"Total number of requests against the Taiga API",
		[]string{"endpoint"},
		nil,
	)
)
