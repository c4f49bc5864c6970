package monitor

import (
	"context"
	"time"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

const (
	ProbeBucket  = "system.probe"
	ProbeSubject = "probe"

	ProbeAssignedKey   = "system.probe.assigned-key"
	ProbeUnassignedKey = "system.probe.unassigned-key"
)

// Probe exercises the full store contract against a live backend:
// grant a key, read it back, union it, then delete the record. It
// reports whether the answers were correct and how long each round
// trip took.
type Probe struct {
	store aclstore.Store

	timeout        time.Duration
	cleanupTimeout time.Duration
	maxLatency     time.Duration
	clock          clock.Clock
}

func NewProbe(store aclstore.Store, opts ...Option) *Probe {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Probe{
		store:          store,
		timeout:        o.timeout,
		cleanupTimeout: o.cleanupTimeout,
		maxLatency:     o.maxLatency,
		clock:          o.clock,
	}
}

// Run performs one probe cycle. The unique suffix keeps concurrent
// probes out of each other's bucket.
func (p *Probe) Run(ctx context.Context, logger lager.Logger, uniqueSuffix string) (bool, []time.Duration, error) {
	logger.Debug(starting)
	defer logger.Debug(finished)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	bucket := ProbeBucket + "." + uniqueSuffix

	var durations []time.Duration

	duration, err := p.grant(ctx, logger, bucket)
	durations = append(durations, duration)
	if err != nil {
		return false, durations, err
	}

	correct := true

	duration, ok, err := p.fetch(ctx, logger, bucket)
	durations = append(durations, duration)
	if err != nil {
		return false, durations, err
	}
	correct = correct && ok

	duration, ok, err = p.union(ctx, logger, bucket)
	durations = append(durations, duration)
	if err != nil {
		return false, durations, err
	}
	correct = correct && ok

	for _, d := range durations {
		if d > p.maxLatency {
			return correct, durations, errExceededMaxLatency{}
		}
	}

	return correct, durations, nil
}

// Cleanup removes the probe's records. It runs on its own timeout so a
// failed run can still be cleaned up.
func (p *Probe) Cleanup(ctx context.Context, logger lager.Logger, uniqueSuffix string) error {
	logger = logger.Session("cleanup")
	logger.Debug(starting)
	defer logger.Debug(finished)

	ctx, cancel := context.WithTimeout(ctx, p.cleanupTimeout)
	defer cancel()

	bucket := ProbeBucket + "." + uniqueSuffix

	unit := p.store.Begin()
	p.store.Del(unit, bucket, ProbeSubject)

	err := p.store.End(ctx, logger, unit)
	if err != nil {
		logger.Error(failedToDeleteKeys, err)
		return err
	}
	return nil
}

func (p *Probe) grant(ctx context.Context, logger lager.Logger, bucket string) (time.Duration, error) {
	start := p.clock.Now()

	unit := p.store.Begin()
	err := p.store.Add(unit, bucket, ProbeSubject, ProbeAssignedKey)
	if err == nil {
		err = p.store.End(ctx, logger, unit)
	}

	duration := p.clock.Since(start)

	if err != nil {
		logger.Error(failedToGrantKey, err, lager.Data{
			"bucket": bucket,
		})
		return duration, err
	}
	return duration, nil
}

func (p *Probe) fetch(ctx context.Context, logger lager.Logger, bucket string) (time.Duration, bool, error) {
	start := p.clock.Now()

	keys, err := p.store.Get(ctx, logger, bucket, ProbeSubject)

	duration := p.clock.Since(start)

	if err != nil {
		logger.Error(failedToFetchKeys, err, lager.Data{
			"bucket": bucket,
		})
		return duration, false, err
	}

	return duration, hasExactly(keys, ProbeAssignedKey), nil
}

func (p *Probe) union(ctx context.Context, logger lager.Logger, bucket string) (time.Duration, bool, error) {
	start := p.clock.Now()

	keys, err := p.store.Union(ctx, logger, bucket, []string{ProbeSubject, "no-such-subject"})

	duration := p.clock.Since(start)

	if err != nil {
		logger.Error(failedToFetchKeys, err, lager.Data{
			"bucket": bucket,
		})
		return duration, false, err
	}

	return duration, hasExactly(keys, ProbeAssignedKey), nil
}

func hasExactly(keys []string, want string) bool {
	found := false
	for _, key := range keys {
		if key == ProbeUnassignedKey {
			return false
		}
		if key == want {
			found = true
		}
	}
	return found
}
