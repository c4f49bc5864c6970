package monitor

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
	uuid "github.com/satori/go.uuid"
)

const (
	ProbeHistogramWindow      = 5 // Minutes
	ProbeHistogramRefreshTime = 1 * time.Minute
)

// RunProbeWithFrequency drives a probe against the store on a fixed
// cadence, emitting results through the statter, until the context is
// canceled. The statter's histogram window is rotated on its own
// ticker so latency quantiles reflect recent runs only.
func RunProbeWithFrequency(
	ctx context.Context,
	logger lager.Logger,
	probe *Probe,
	statter StoreStatter,
	frequency time.Duration,
) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(ProbeHistogramRefreshTime)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				statter.Rotate()
			}
		}
	}()

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(frequency)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RecordProbeResults(ctx, logger, probe, statter)
			}
		}
	}()

	wg.Wait()
}

// RecordProbeResults runs one probe cycle and reports it: failed runs
// send a failed-probe gauge, incorrect answers an incorrect-probe
// gauge, and correct runs record every round-trip duration before
// sending the correctness and latency stats. The probe's records are
// cleaned up whatever the outcome.
func RecordProbeResults(
	ctx context.Context,
	logger lager.Logger,
	probe *Probe,
	statter StoreStatter,
) {
	suffix := uuid.NewV4().String()

	defer func() {
		// Cleanup runs on its own timeout and logs its own failures.
		_ = probe.Cleanup(ctx, logger, suffix)
	}()

	correct, durations, err := probe.Run(ctx, logger, suffix)

	switch {
	case err != nil:
		statter.SendFailedProbe(logger)
	case !correct:
		statter.SendIncorrectProbe(logger)
	default:
		for _, d := range durations {
			statter.RecordProbeDuration(logger, d)
		}
		statter.SendCorrectProbe(logger)
		statter.SendStats(logger)
	}
}
