package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lotto-kmc/lotto/examples"
	"github.com/lotto-kmc/lotto/selector"
	"github.com/lotto-kmc/lotto/selector/rejection"
	"github.com/lotto-kmc/lotto/selector/rejectionfree"
)

var (
	scenarioPath   string  // Path to the scenario YAML file
	mode           string  // "rejection" or "rejectionfree"
	seed           int64   // RNG seed
	steps          int64   // Number of SelectEvent calls to run
	rateUpperBound float64 // Rejection mode's envelope rate; ignored in rejectionfree mode
	metricsAddr    string  // If set, serve /metrics on this address (selector metrics are registered in rejection mode only)
)

// eventSelector is the common surface both selector.* packages expose,
// enough for the run loop below to drive either without knowing which
// one it has.
type eventSelector interface {
	SelectEvent() (string, float64, error)
	Reseed(seed int64)
}

// runCmd drives a selector over a scenario file for a fixed number of
// steps, logging each selection.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run event selection over a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := loadScenario(scenarioPath)
		if err != nil {
			return err
		}

		sel, err := buildSelector(scenario)
		if err != nil {
			return err
		}
		sel.Reseed(seed)

		if metricsAddr != "" {
			serveMetrics(metricsAddr)
		}

		logrus.Infof("starting run: mode=%s seed=%d steps=%d events=%d", mode, seed, steps, len(scenario.IDs))

		startTime := time.Now()
		var elapsed float64
		for i := int64(0); i < steps; i++ {
			id, dt, err := sel.SelectEvent()
			if err != nil {
				return fmt.Errorf("cmd: step %d: %w", i, err)
			}
			elapsed += dt
			logrus.Debugf("step %d: selected %s, dt=%v, elapsed=%v", i, id, dt, elapsed)
		}

		logrus.Infof("run complete: %d steps, elapsed simulated time=%v, wall clock=%v", steps, elapsed, time.Since(startTime))
		return nil
	},
}

// buildSelector constructs a rate calculator from scenario and wraps it
// in the selector named by mode.
func buildSelector(scenario *Scenario) (eventSelector, error) {
	calc, err := buildRateCalculator(scenario)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "rejection":
		sel, err := rejection.New[string](calc, rateUpperBound, scenario.IDs)
		if err != nil {
			return nil, err
		}
		if metricsAddr != "" {
			if err := sel.Instrument(prometheus.DefaultRegisterer); err != nil {
				return nil, fmt.Errorf("cmd: instrumenting rejection selector: %w", err)
			}
		}
		return sel, nil
	case "rejectionfree":
		impactTable := make(map[string][]string, len(scenario.ImpactTable))
		for k, v := range scenario.ImpactTable {
			impactTable[k] = v
		}
		return rejectionfree.New[string](calc, scenario.IDs, impactTable)
	default:
		return nil, fmt.Errorf("cmd: unknown mode %q, want \"rejection\" or \"rejectionfree\"", mode)
	}
}

// serveMetrics starts a /metrics endpoint on addr in the background. It
// does not block run's event loop, and it is never stopped: the process
// is expected to run for the duration of the run, same as the neofs
// gateway's prometheus service.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logrus.Errorf("metrics server on %s stopped: %v", addr, err)
		}
	}()
	logrus.Infof("serving metrics on %s/metrics", addr)
}

func buildRateCalculator(scenario *Scenario) (selector.RateCalculator[string], error) {
	switch {
	case scenario.UniformRate != nil:
		return examples.NewUniformRateCalculator[string](*scenario.UniformRate), nil
	case scenario.HotID != nil:
		return examples.NewOneHotRateCalculator[string](*scenario.HotID), nil
	default:
		return newMapRateCalculator(scenario.Rates), nil
	}
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file (required)")
	runCmd.Flags().StringVar(&mode, "mode", "rejectionfree", `Selection algorithm: "rejection" or "rejectionfree"`)
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic replay")
	runCmd.Flags().Int64Var(&steps, "steps", 100, "Number of SelectEvent calls to run")
	runCmd.Flags().Float64Var(&rateUpperBound, "rate-upper-bound", 1.0, "Rejection mode's envelope rate (ignored in rejectionfree mode)")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "If set, serve /metrics on this address (selector metrics are registered in rejection mode only)")
	if err := runCmd.MarkFlagRequired("scenario"); err != nil {
		logrus.Fatalf("marking scenario flag required: %v", err)
	}
}
