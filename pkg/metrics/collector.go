package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"go.xrstf.de/taiga_gantt/pkg/pipeline"
	"go.xrstf.de/taiga_gantt/pkg/timeline"
)

// State is the shared snapshot the refresh loop writes and the
// collector reads.
type State struct {
	lock         sync.RWMutex
	result       *pipeline.Result
	lastDuration time.Duration
	cycles       uint64
	failures     uint64
}

func NewState() *State {
	return &State{}
}

// RecordSuccess replaces the snapshot with a freshly completed cycle.
func (s *State) RecordSuccess(result *pipeline.Result, duration time.Duration) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.result = result
	s.lastDuration = duration
	s.cycles++
}

// RecordFailure keeps the previous snapshot but counts the failure.
func (s *State) RecordFailure(duration time.Duration) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastDuration = duration
	s.cycles++
	s.failures++
}

// RequestCounter is implemented by the API client.
type RequestCounter interface {
	GetRequestCounts() map[string]int
}

type Collector struct {
	state  *State
	client RequestCounter
}

func NewCollector(state *State, client RequestCounter) *Collector {
	return &Collector{
		state:  state,
		client: client,
	}
}

func (mc *Collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(mc, ch)
}

func (mc *Collector) Collect(ch chan<- prometheus.Metric) {
	mc.state.lock.RLock()
	result := mc.state.result
	duration := mc.state.lastDuration
	cycles := mc.state.cycles
	failures := mc.state.failures
	mc.state.lock.RUnlock()

	ch <- prometheus.MustNewConstMetric(cycleDurationSeconds, prometheus.GaugeValue, duration.Seconds())
	ch <- prometheus.MustNewConstMetric(cyclesTotal, prometheus.CounterValue, float64(cycles))
	ch <- prometheus.MustNewConstMetric(cycleFailuresTotal, prometheus.CounterValue, float64(failures))

	for endpoint, count := range mc.client.GetRequestCounts() {
		ch <- prometheus.MustNewConstMetric(apiRequestsTotal, prometheus.CounterValue, float64(count), endpoint)
	}

	if result == nil {
		return
	}

	project := result.Project.Identifier()
	milestone := result.Milestone.Identifier()

	ch <- prometheus.MustNewConstMetric(taskCount, prometheus.GaugeValue, float64(len(result.Tasks)), project, milestone)
	ch <- prometheus.MustNewConstMetric(storyCount, prometheus.GaugeValue, float64(len(result.Milestone.UserStories)), project, milestone)

	for _, task := range result.Tasks {
		mc.collectTask(ch, project, milestone, task)
	}
}

func (mc *Collector) collectTask(ch chan<- prometheus.Metric, project string, milestone string, task timeline.Task) {
	labels := []string{project, milestone, task.ID}

	if start, err := time.Parse(timeline.DateFormat, task.Start); err == nil {
		ch <- prometheus.MustNewConstMetric(taskStartTimestamp, prometheus.GaugeValue, float64(start.Unix()), labels...)
	}

	if end, err := time.Parse(timeline.DateFormat, task.End); err == nil {
		ch <- prometheus.MustNewConstMetric(taskEndTimestamp, prometheus.GaugeValue, float64(end.Unix()), labels...)
	}

	ch <- prometheus.MustNewConstMetric(taskProgress, prometheus.GaugeValue, float64(task.Progress), labels...)
}
