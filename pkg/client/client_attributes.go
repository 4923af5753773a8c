package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

// ListUserStoryAttributes fetches the custom attribute definitions of a
// project, i.e. the schema that per-story attribute values refer to.
func (c *Client) ListUserStoryAttributes(ctx context.Context, projectID int) ([]taiga.UserStoryAttribute, error) {
	query := url.Values{}
	query.Set("project", strconv.Itoa(projectID))

	attributes := []taiga.UserStoryAttribute{}
	if err := c.do(ctx, http.MethodGet, "/userstory-custom-attributes", query, nil, &attributes); err != nil {
		return nil, err
	}

	return attributes, nil
}

// GetAttributeValues fetches the custom attribute values of a single
// user story. Stories without an initialized attribute record 404 here,
// which callers are expected to tolerate.
func (c *Client) GetAttributeValues(ctx context.Context, storyID int) (*taiga.AttributeValues, error) {
	values := &taiga.AttributeValues{}

	path := fmt.Sprintf("/userstories/custom-attributes-values/%d", storyID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, values); err != nil {
		return nil, err
	}

	return values, nil
}
