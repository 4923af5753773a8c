package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

// ProjectListOptions scopes the project list. MemberID is effectively
// required for regular accounts, as the API only lists projects in the
// requesting member's scope anyway.
type ProjectListOptions struct {
	MemberID int
	OrderBy  string
	Slight   bool
}

// ListProjects fetches the projects visible to the given member. With
// Slight set, the API omits the heavyweight parts of each project,
// which is plenty for resolving one of them by ID.
func (c *Client) ListProjects(ctx context.Context, opt ProjectListOptions) ([]taiga.Project, error) {
	query := url.Values{}

	if opt.MemberID != 0 {
		query.Set("member", strconv.Itoa(opt.MemberID))
	}

	if opt.OrderBy != "" {
		query.Set("order_by", opt.OrderBy)
	}

	if opt.Slight {
		query.Set("slight", "true")
	}

	projects := []taiga.Project{}
	if err := c.do(ctx, http.MethodGet, "/projects", query, nil, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}
