package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

// ListMilestones fetches all milestones of a project, each with its
// user stories embedded. The closed flag filters server-side.
func (c *Client) ListMilestones(ctx context.Context, projectID int, closed bool) ([]taiga.Milestone, error) {
	query := url.Values{}
	query.Set("project", strconv.Itoa(projectID))
	query.Set("closed", strconv.FormatBool(closed))

	milestones := []taiga.Milestone{}
	if err := c.do(ctx, http.MethodGet, "/milestones", query, nil, &milestones); err != nil {
		return nil, err
	}

	return milestones, nil
}
