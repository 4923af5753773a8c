package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go.xrstf.de/taiga_gantt/pkg/client"
	"go.xrstf.de/taiga_gantt/pkg/taiga"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	metaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List your projects",
	Args:  cobra.NoArgs,
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

		projects, err := c.ListProjects(ctx, client.ProjectListOptions{
			MemberID: s.UserID,
			OrderBy:  "user_order",
			Slight:   true,
		})
		if err != nil {
			return err
		}

		for _, project := range projects {
			fmt.Printf("%s  %s\n", nameStyle.Render(project.Name), metaStyle.Render(projectMeta(project)))
		}

		return nil
	},
}

func projectMeta(project taiga.Project) string {
	meta := []string{fmt.Sprintf("#%d", project.ID)}

	switch {
	case project.IAmOwner:
		meta = append(meta, "owner")
	case project.IAmAdmin:
		meta = append(meta, "admin")
	case project.IAmMember:
		meta = append(meta, "member")
	}

	if project.IsPrivate {
		meta = append(meta, "private")
	}

	return strings.Join(meta, ", ")
}
