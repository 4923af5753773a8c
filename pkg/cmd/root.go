// Package cmd wires the CLI together: configuration, logging, session
// handling and one subcommand per mode.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.xrstf.de/taiga_gantt/pkg/aggregator"
	"go.xrstf.de/taiga_gantt/pkg/client"
	"go.xrstf.de/taiga_gantt/pkg/config"
	"go.xrstf.de/taiga_gantt/pkg/pipeline"
	"go.xrstf.de/taiga_gantt/pkg/session"
)

var (
	log = logrus.New()
	cfg config.Config

	debugLog    bool
	apiURLFlag  string
	sessionFlag string
)

var rootCmd = &cobra.Command{
	Use:           "taiga_gantt",
	Short:         "Renders Taiga milestones as Gantt timelines",
	Long:          "taiga_gantt resolves a Taiga project and milestone, aggregates the milestone's user stories with their custom attribute values and renders the result as a Gantt timeline: on the terminal, interactively, or as Prometheus metrics.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC1123,
		})

		if debugLog {
			log.SetLevel(logrus.DebugLevel)
		}

		var err error

		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if apiURLFlag != "" {
			cfg.APIURL = apiURLFlag
		}

		if sessionFlag != "" {
			cfg.SessionPath = sessionFlag
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable more verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Taiga API base URL (default "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session-file", "", "path to the session file")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error(guidance(err))
	}

	return err
}

// guidance turns known error conditions into actionable messages.
func guidance(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthenticated):
		return `Not authenticated or session expired, please run "taiga_gantt login".`
	case errors.Is(err, pipeline.ErrProjectNotFound):
		return "Project not found (it must be one of your member projects)."
	case errors.Is(err, pipeline.ErrMilestoneNotFound):
		return "Milestone not found in the given project."
	default:
		return err.Error()
	}
}

func sessionPath() (string, error) {
	if cfg.SessionPath != "" {
		return cfg.SessionPath, nil
	}

	return session.DefaultPath()
}

// requireSession loads the stored session and fails with guidance when
// nobody is logged in.
func requireSession() (*session.Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	s, err := session.Load(path)
	if err != nil {
		return nil, err
	}

	if s == nil {
		return nil, client.ErrUnauthenticated
	}

	return s, nil
}

func newAPIClient(ctx context.Context, token string) (*client.Client, error) {
	c, err := client.NewClient(ctx, log.WithField("component", "client"), cfg.APIURL, token, cfg.HTTPTimeout.Duration)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return c, nil
}

// newPipeline assembles the full authenticated pipeline stack.
func newPipeline(ctx context.Context) (*pipeline.Pipeline, *client.Client, error) {
	s, err := requireSession()
	if err != nil {
		return nil, nil, err
	}

	c, err := newAPIClient(ctx, s.Token)
	if err != nil {
		return nil, nil, err
	}

	agg := aggregator.New(c, log.WithField("component", "aggregator"))
	p := pipeline.New(c, agg, log.WithField("component", "pipeline"), s.UserID)

	return p, c, nil
}
