// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package taiga

// Milestone is a sprint. The list endpoint embeds the full set of user
// stories, which is what the whole timeline is built from; a milestone
// is always replaced wholesale on refresh, never merged.
type Milestone struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	Slug            string      `json:"slug"`
	Project         int         `json:"project"`
	Closed          bool        `json:"closed"`
	EstimatedStart  *string     `json:"estimated_start"`
	EstimatedFinish *string     `json:"estimated_finish"`
	ClosedPoints    *float64    `json:"closed_points"`
	TotalPoints     *float64    `json:"total_points"`
	CreatedDate     string      `json:"created_date"`
	Order           int         `json:"order"`
	UserStories     []UserStory `json:"user_stories"`
}
