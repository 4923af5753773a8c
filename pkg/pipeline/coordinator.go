package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrSuperseded means a cycle finished after a newer one had already
// begun; its result was discarded instead of being applied.
var ErrSuperseded = errors.New("cycle superseded by newer parameters")

// Coordinator serializes resolution cycles. Beginning a new cycle
// cancels the previous one's context, and a cycle whose generation is
// no longer current delivers ErrSuperseded rather than stale data, so
// out-of-order completion can never overwrite newer input's results.
type Coordinator struct {
	pipeline *Pipeline
	log      logrus.FieldLogger

	lock       sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewCoordinator(pipeline *Pipeline, log logrus.FieldLogger) *Coordinator {
	return &Coordinator{
		pipeline: pipeline,
		log:      log,
	}
}

// Cycle is one scheduled resolution run.
type Cycle struct {
	Generation  uint64
	ProjectID   string
	MilestoneID string

	ctx         context.Context
	coordinator *Coordinator
}

// Begin supersedes any in-flight cycle and returns a handle for the new
// one. The superseded cycle's context is cancelled; if it completes
// regardless, its result is discarded on arrival.
func (c *Coordinator) Begin(parent context.Context, projectID string, milestoneID string) *Cycle {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.cancel != nil {
		c.cancel()
	}

	ctx, cancel := context.WithCancel(parent)

	c.generation++
	c.cancel = cancel

	return &Cycle{
		Generation:  c.generation,
		ProjectID:   projectID,
		MilestoneID: milestoneID,
		ctx:         ctx,
		coordinator: c,
	}
}

// Generation returns the generation of the most recently begun cycle.
// Consumers that receive results asynchronously compare against it to
// discard stale deliveries.
func (c *Coordinator) Generation() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.generation
}

// Run executes the cycle and returns its result, or ErrSuperseded if a
// newer cycle began while this one was in flight.
func (cy *Cycle) Run() (*Result, error) {
	result, err := cy.coordinator.pipeline.Run(cy.ctx, cy.ProjectID, cy.MilestoneID)

	if !cy.current() {
		cy.coordinator.log.WithField("generation", cy.Generation).Debug("Discarding result of superseded cycle.")
		return nil, ErrSuperseded
	}

	return result, err
}

func (cy *Cycle) current() bool {
	cy.coordinator.lock.Lock()
	defer cy.coordinator.lock.Unlock()

	return cy.Generation == cy.coordinator.generation
}
