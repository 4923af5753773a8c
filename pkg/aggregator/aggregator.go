// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

// Package aggregator collects the custom attribute schema of a project
// and the attribute values of every user story in a milestone. Value
// fetches fan out concurrently and fail independently: a story whose
// values cannot be loaded is simply absent from the result, it never
// takes the batch down with it.
package aggregator

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

// AttributeClient is the slice of the API client the aggregator needs.
type AttributeClient interface {
	ListUserStoryAttributes(ctx context.Context, projectID int) ([]taiga.UserStoryAttribute, error)
	GetAttributeValues(ctx context.Context, storyID int) (*taiga.AttributeValues, error)
}

type Aggregator struct {
	client AttributeClient
	log    logrus.FieldLogger
}

func New(client AttributeClient, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{
		client: client,
		log:    log,
	}
}

// Result is everything the date resolution needs. A nil Schema means
// the schema fetch failed and only creation-date fallbacks are
// possible this cycle.
type Result struct {
	Schema []taiga.UserStoryAttribute
	Values map[int]taiga.AttributeValues
}

// FetchSchema loads the project's attribute definitions. Unlike the
// per-story value fetches, a failure here is worth propagating: without
// the schema there is no way to interpret any attribute value.
func (a *Aggregator) FetchSchema(ctx context.Context, projectID int) ([]taiga.UserStoryAttribute, error) {
	return a.client.ListUserStoryAttributes(ctx, projectID)
}

// FetchAllValues loads the attribute values of all given stories
// concurrently. Individual failures (stories without an attribute
// record legitimately 404) are logged and dropped; the returned map's
// key set is always a subset of storyIDs and the call itself never
// fails.
func (a *Aggregator) FetchAllValues(ctx context.Context, storyIDs []int) map[int]taiga.AttributeValues {
	values := make(map[int]taiga.AttributeValues, len(storyIDs))

	var (
		lock sync.Mutex
		wg   sync.WaitGroup
	)

	for _, storyID := range storyIDs {
		wg.Add(1)

		go func(storyID int) {
			defer wg.Done()

			result, err := a.client.GetAttributeValues(ctx, storyID)
			if err != nil {
				a.log.WithField("story", storyID).Warnf("Failed to load custom attribute values: %v", err)
				return
			}

			lock.Lock()
			values[storyID] = *result
			lock.Unlock()
		}(storyID)
	}

	wg.Wait()

	return values
}

// Aggregate runs the schema fetch and the per-story value fetches
// concurrently and waits for both to settle. A failed schema fetch
// degrades the cycle (dates fall back to creation timestamps) instead
// of aborting it.
func (a *Aggregator) Aggregate(ctx context.Context, projectID int, stories []taiga.UserStory) Result {
	storyIDs := make([]int, 0, len(stories))
	for _, story := range stories {
		storyIDs = append(storyIDs, story.ID)
	}

	var (
		wg        sync.WaitGroup
		schema    []taiga.UserStoryAttribute
		schemaErr error
		values    map[int]taiga.AttributeValues
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		schema, schemaErr = a.FetchSchema(ctx, projectID)
	}()

	go func() {
		defer wg.Done()
		values = a.FetchAllValues(ctx, storyIDs)
	}()

	wg.Wait()

	if schemaErr != nil {
		a.log.WithField("project", projectID).Errorf("Failed to load custom attribute schema: %v", schemaErr)
		schema = nil
	}

	return Result{
		Schema: schema,
		Values: values,
	}
}
