package render

import (
	"sync"

	"github.com/sirupsen/logrus"

	"go.xrstf.de/taiga_gantt/pkg/timeline"
)

// Manager owns at most one live chart instance bound to one anchor.
// Every update discards the previous instance and clears the anchor
// before constructing a new chart, so a stale or duplicate chart can
// never be on screen. Updates are serialized; the manager is the only
// writer to the anchor.
type Manager struct {
	log    logrus.FieldLogger
	anchor Anchor
	opts   Options

	lock    sync.Mutex
	current *Gantt
}

func NewManager(log logrus.FieldLogger, anchor Anchor, opts Options) *Manager {
	return &Manager{
		log:    log,
		anchor: anchor,
		opts:   opts,
	}
}

// Update reacts to a change in the task collection or its loading
// state. A chart is only constructed once loading has finished and the
// collection is non-empty; anything else tears down to the empty state.
// A failing chart construction is logged together with the attempted
// task data and likewise leaves the manager empty.
func (m *Manager) Update(tasks []timeline.Task, loading bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	// discard first, whatever happens next
	m.current = nil

	if loading || len(tasks) == 0 {
		return
	}

	if err := m.anchor.Clear(); err != nil {
		m.log.Warnf("Failed to clear anchor: %v", err)
	}

	chart, err := NewGantt(m.anchor, tasks, m.opts)
	if err != nil {
		m.log.WithField("tasks", tasks).Errorf("Failed to create Gantt chart: %v", err)
		return
	}

	m.current = chart
}

// Teardown releases the chart instance, e.g. when the view goes away.
func (m *Manager) Teardown() {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.current = nil
}

// Rendering reports whether a chart instance is currently live.
func (m *Manager) Rendering() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.current != nil
}
