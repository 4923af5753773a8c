package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.xrstf.de/taiga_gantt/pkg/render"
)

var showWidth int

var showCmd = &cobra.Command{
	Use:   "show <projectID/milestoneID>",
	Short: "Render a milestone's timeline once",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ref, err := parseMilestoneRef(args[0])
		if err != nil {
			return err
		}

		p, _, err := newPipeline(ctx)
		if err != nil {
			return err
		}

		result, err := p.Run(ctx, ref.project, ref.milestone)
		if err != nil {
			return err
		}

		fmt.Printf("%s / %s\n\n", result.Project.Name, result.Milestone.Name)

		anchor := render.NewTerminalAnchor(os.Stdout)
		manager := render.NewManager(log.WithField("component", "render"), anchor, render.Options{Width: showWidth})
		defer manager.Teardown()

		manager.Update(result.Tasks, false)

		if !manager.Rendering() {
			fmt.Println("No user stories to display.")
		}

		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 0, "chart width in columns (0 = default)")
}
