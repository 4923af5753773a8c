// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package taiga

type AttributeType string

const (
	AttributeTypeText     AttributeType = "text"
	AttributeTypeMultline AttributeType = "multiline"
	AttributeTypeRichText AttributeType = "richtext"
	AttributeTypeDate     AttributeType = "date"
	AttributeTypeURL      AttributeType = "url"
	AttributeTypeDropdown AttributeType = "dropdown"
	AttributeTypeNumber   AttributeType = "number"
	AttributeTypeCheckbox AttributeType = "checkbox"
)

// UserStoryAttribute is a project-scoped custom attribute definition.
type UserStoryAttribute struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        AttributeType `json:"type"`
	Order       int           `json:"order"`
	Project     int           `json:"project"`
}

// AttributeValues holds one user story's custom attribute values, keyed
// by the stringified attribute ID. The version field exists for
// optimistic concurrency on writes; this tool only ever reads.
type AttributeValues struct {
	UserStory int               `json:"user_story"`
	Version   int               `json:"version"`
	Values    map[string]string `json:"attributes_values"`
}
