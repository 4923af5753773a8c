package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.xrstf.de/taiga_gantt/pkg/client"
	"go.xrstf.de/taiga_gantt/pkg/pipeline"
	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

var milestonesIncludeClosed bool

var milestonesCmd = &cobra.Command{
	Use:   "milestones <projectID>",
	Short: "List a project's milestones",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := requireSession()
		if err != nil {
			return err
		}

		c, err := newAPIClient(ctx, s.Token)
		if err != nil {
			return err
		}

		// same resolution path as the pipeline: there is no get-by-id,
		// the project comes out of the member-scoped list
		projects, err := c.ListProjects(ctx, client.ProjectListOptions{
			MemberID: s.UserID,
			OrderBy:  "user_order",
			Slight:   true,
		})
		if err != nil {
			return err
		}

		project, ok := taiga.FindByID(projects, args[0])
		if !ok {
			return pipeline.ErrProjectNotFound
		}

		milestones, err := c.ListMilestones(ctx, project.ID, milestonesIncludeClosed)
		if err != nil {
			return err
		}

		for _, milestone := range milestones {
			fmt.Printf("%s  %s\n", nameStyle.Render(milestone.Name), metaStyle.Render(milestoneMeta(milestone)))
		}

		return nil
	},
}

func milestoneMeta(milestone taiga.Milestone) string {
	meta := []string{fmt.Sprintf("#%d", milestone.ID)}

	if milestone.EstimatedStart != nil && milestone.EstimatedFinish != nil {
		meta = append(meta, fmt.Sprintf("%s – %s", *milestone.EstimatedStart, *milestone.EstimatedFinish))
	}

	meta = append(meta, fmt.Sprintf("%d stories", len(milestone.UserStories)))

	if milestone.ClosedPoints != nil && milestone.TotalPoints != nil {
		meta = append(meta, fmt.Sprintf("%.0f/%.0f points", *milestone.ClosedPoints, *milestone.TotalPoints))
	}

	if milestone.Closed {
		meta = append(meta, "closed")
	}

	return strings.Join(meta, ", ")
}

func init() {
	milestonesCmd.Flags().BoolVar(&milestonesIncludeClosed, "closed", false, "include closed milestones")
}
