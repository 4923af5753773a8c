// Package pipeline runs one full resolution cycle: resolve the project
// from the member-scoped project list, resolve the milestone within it,
// aggregate custom attributes over the milestone's stories and build
// the render-ready task list.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"go.xrstf.de/taiga_gantt/pkg/aggregator"
	"go.xrstf.de/taiga_gantt/pkg/client"
	"go.xrstf.de/taiga_gantt/pkg/taiga"
	"go.xrstf.de/taiga_gantt/pkg/timeline"
)

var (
	// ErrProjectNotFound means the requested project is not in the
	// user's project list. Recoverable, user-visible.
	ErrProjectNotFound = errors.New("project not found")

	// ErrMilestoneNotFound is the same condition one level down.
	ErrMilestoneNotFound = errors.New("milestone not found")
)

// API is the slice of the client the pipeline needs for resolution.
type API interface {
	ListProjects(ctx context.Context, opt client.ProjectListOptions) ([]taiga.Project, error)
	ListMilestones(ctx context.Context, projectID int, closed bool) ([]taiga.Milestone, error)
}

// Aggregator settles the custom attribute schema and values for a
// milestone's stories.
type Aggregator interface {
	Aggregate(ctx context.Context, projectID int, stories []taiga.UserStory) aggregator.Result
}

type Pipeline struct {
	api    API
	agg    Aggregator
	log    logrus.FieldLogger
	userID int
}

func New(api API, agg Aggregator, log logrus.FieldLogger, userID int) *Pipeline {
	return &Pipeline{
		api:    api,
		agg:    agg,
		log:    log,
		userID: userID,
	}
}

// Result is everything one cycle produced. Tasks is derived data and
// recomputed from scratch every cycle.
type Result struct {
	Project   taiga.Project
	Milestone taiga.Milestone
	Schema    []taiga.UserStoryAttribute
	Values    map[int]taiga.AttributeValues
	Tasks     []timeline.Task
}

// Run executes one cycle for a (projectID, milestoneID) pair as they
// arrive from the outside, i.e. as strings. Project resolution strictly
// precedes milestone resolution, which strictly precedes aggregation;
// aggregation itself fans out internally.
func (p *Pipeline) Run(ctx context.Context, projectID string, milestoneID string) (*Result, error) {
	projects, err := p.api.ListProjects(ctx, client.ProjectListOptions{
		MemberID: p.userID,
		OrderBy:  "user_order",
		Slight:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	project, ok := taiga.FindByID(projects, projectID)
	if !ok {
		return nil, ErrProjectNotFound
	}

	milestones, err := p.api.ListMilestones(ctx, project.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	milestone, ok := taiga.FindByID(milestones, milestoneID)
	if !ok {
		return nil, ErrMilestoneNotFound
	}

	result := &Result{
		Project:   project,
		Milestone: milestone,
	}

	// a milestone without stories has nothing to aggregate or render
	if len(milestone.UserStories) > 0 {
		aggregated := p.agg.Aggregate(ctx, project.ID, milestone.UserStories)

		result.Schema = aggregated.Schema
		result.Values = aggregated.Values
		result.Tasks = timeline.Build(milestone.UserStories, aggregated.Values, aggregated.Schema)
	}

	p.log.WithFields(logrus.Fields{
		"project":   project.Identifier(),
		"milestone": milestone.Identifier(),
	}).Debugf("Cycle produced %d tasks from %d stories.", len(result.Tasks), len(milestone.UserStories))

	return result, nil
}
