package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"go.xrstf.de/taiga_gantt/pkg/pipeline"
	"go.xrstf.de/taiga_gantt/pkg/tui"
)

var watchRefreshInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <projectID/milestoneID>",
	Short: "Render a milestone's timeline interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseMilestoneRef(args[0])
		if err != nil {
			return err
		}

		p, _, err := newPipeline(cmd.Context())
		if err != nil {
			return err
		}

		coordinator := pipeline.NewCoordinator(p, log.WithField("component", "coordinator"))

		return tui.Run(tui.Options{
			Coordinator: coordinator,
			ProjectID:   ref.project,
			MilestoneID: ref.milestone,
			Refresh:     watchRefreshInterval,
		})
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchRefreshInterval, "refresh", 0, "automatic refresh interval (0 = manual refresh only)")
}
