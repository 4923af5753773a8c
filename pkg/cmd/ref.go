package cmd

import (
	"errors"
	"fmt"
	"strings"
)

// milestoneRef is one (project, milestone) pair the way it arrives from
// the outside: as text. Resolution to actual resources happens inside
// the pipeline.
type milestoneRef struct {
	project   string
	milestone string
}

func (r *milestoneRef) String() string {
	return fmt.Sprintf("%s/%s", r.project, r.milestone)
}

func parseMilestoneRef(value string) (milestoneRef, error) {
	parts := strings.Split(value, "/")

	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return milestoneRef{}, errors.New(`not a valid milestone reference, must be "projectID/milestoneID"`)
	}

	return milestoneRef{
		project:   parts[0],
		milestone: parts[1],
	}, nil
}
