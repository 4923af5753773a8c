package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.xrstf.de/taiga_gantt/pkg/metrics"
	"go.xrstf.de/taiga_gantt/pkg/pipeline"
)

var (
	serveListenAddr      string
	serveRefreshInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve <projectID/milestoneID>",
	Short: "Expose a milestone's timeline as Prometheus metrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// a zero interval would panic the refresh ticker later on
		if serveRefreshInterval <= 0 {
			return errors.New("--refresh-interval must be greater than zero")
		}

		ctx := cmd.Context()

		ref, err := parseMilestoneRef(args[0])
		if err != nil {
			return err
		}

		p, c, err := newPipeline(ctx)
		if err != nil {
			return err
		}

		coordinator := pipeline.NewCoordinator(p, log.WithField("component", "coordinator"))
		state := metrics.NewState()

		prometheus.MustRegister(metrics.NewCollector(state, c))

		// start fetching data in the background, but start the metrics
		// server as soon as possible
		go refreshWorker(ctx, log.WithField("component", "refresh"), coordinator, state, ref)

		log.Printf("Starting server on %s…", serveListenAddr)

		http.Handle("/metrics", promhttp.Handler())

		return http.ListenAndServe(serveListenAddr, nil)
	},
}

// refreshWorker runs one resolution cycle immediately and then keeps
// refreshing in the configured interval. Individual cycle failures are
// logged and counted, the worker keeps going.
func refreshWorker(ctx context.Context, log logrus.FieldLogger, coordinator *pipeline.Coordinator, state *metrics.State, ref milestoneRef) {
	runCycle(ctx, log, coordinator, state, ref)

	for range time.NewTicker(serveRefreshInterval).C {
		log.Debug("Refreshing timeline…")
		runCycle(ctx, log, coordinator, state, ref)
	}
}

func runCycle(ctx context.Context, log logrus.FieldLogger, coordinator *pipeline.Coordinator, state *metrics.State, ref milestoneRef) {
	start := time.Now()

	result, err := coordinator.Begin(ctx, ref.project, ref.milestone).Run()
	if err != nil {
		log.Errorf("Cycle failed: %v", err)
		state.RecordFailure(time.Since(start))
		return
	}

	state.RecordSuccess(result, time.Since(start))
}

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", ":9611", "address and port to listen on")
	serveCmd.Flags().DurationVar(&serveRefreshInterval, "refresh-interval", 5*time.Minute, "time in between timeline refreshes")
}
