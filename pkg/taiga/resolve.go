package taiga

import (
	"strconv"
	"strings"
)

// Identifiable is implemented by every resource that can be picked out
// of a fetched list by its ID.
type Identifiable interface {
	Identifier() string
}

func (p Project) Identifier() string {
	return strconv.Itoa(p.ID)
}

func (m Milestone) Identifier() string {
	return strconv.Itoa(m.ID)
}

func (s UserStory) Identifier() string {
	return strconv.Itoa(s.ID)
}

// FindByID scans a fetched collection for an exact identifier match.
// Taiga offers no get-by-id endpoint for the collections a regular
// member can see, so single entities are resolved by listing the scope
// the caller is authorized for and scanning linearly. IDs arrive as
// route-style strings while the models carry numbers; both sides are
// normalized before comparison. A miss is ok=false, never an error;
// whether that is fatal is the caller's decision.
func FindByID[T Identifiable](items []T, id string) (T, bool) {
	id = strings.TrimSpace(id)

	for _, item := range items {
		if item.Identifier() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}
