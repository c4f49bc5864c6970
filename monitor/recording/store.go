// Package recording decorates a store so that the duration of every
// storage round trip is observed by a Recorder, typically a windowed
// histogram feeding latency gauges.
package recording

import (
	"context"
	"time"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

//go:generate counterfeiter . Recorder

type Recorder interface {
	Observe(duration time.Duration) error
}

// RecordingStore wraps a store and times its I/O operations. The
// enqueue half of the contract (Begin, Add, Del, Remove) performs no
// I/O and passes through untimed. Timed operations return the measured
// duration alongside the underlying result; a failed operation is not
// observed.
type RecordingStore struct {
	store    aclstore.Store
	recorder Recorder
	clock    clock.Clock
}

func NewStore(store aclstore.Store, recorder Recorder, opts ...Option) *RecordingStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &RecordingStore{
		store:    store,
		recorder: recorder,
		clock:    o.clock,
	}
}

func (s *RecordingStore) Begin() *aclstore.Unit {
	return s.store.Begin()
}

func (s *RecordingStore) Add(unit *aclstore.Unit, bucket, subject string, keys ...string) error {
	return s.store.Add(unit, bucket, subject, keys...)
}

func (s *RecordingStore) Del(unit *aclstore.Unit, bucket string, subjects ...string) {
	s.store.Del(unit, bucket, subjects...)
}

func (s *RecordingStore) Remove(unit *aclstore.Unit, bucket, subject string, keys ...string) {
	s.store.Remove(unit, bucket, subject, keys...)
}

func (s *RecordingStore) End(ctx context.Context, logger lager.Logger, unit *aclstore.Unit) (time.Duration, error) {
	start := s.clock.Now()

	if err := s.store.End(ctx, logger, unit); err != nil {
		return 0, err
	}

	duration := s.clock.Since(start)

	if err := s.recorder.Observe(duration); err != nil {
		return duration, FailedToObserveDurationError{Err: err}
	}

	return duration, nil
}

func (s *RecordingStore) Get(ctx context.Context, logger lager.Logger, bucket, subject string) ([]string, time.Duration, error) {
	start := s.clock.Now()

	keys, err := s.store.Get(ctx, logger, bucket, subject)
	if err != nil {
		return nil, 0, err
	}

	duration := s.clock.Since(start)

	if err := s.recorder.Observe(duration); err != nil {
		return keys, duration, FailedToObserveDurationError{Err: err}
	}

	return keys, duration, nil
}

func (s *RecordingStore) Union(ctx context.Context, logger lager.Logger, bucket string, subjects []string) ([]string, time.Duration, error) {
	start := s.clock.Now()

	keys, err := s.store.Union(ctx, logger, bucket, subjects)
	if err != nil {
		return nil, 0, err
	}

	duration := s.clock.Since(start)

	if err := s.recorder.Observe(duration); err != nil {
		return keys, duration, FailedToObserveDurationError{Err: err}
	}

	return keys, duration, nil
}

func (s *RecordingStore) Clean(ctx context.Context, logger lager.Logger) (time.Duration, error) {
	start := s.clock.Now()

	if err := s.store.Clean(ctx, logger); err != nil {
		return 0, err
	}

	duration := s.clock.Since(start)

	if err := s.recorder.Observe(duration); err != nil {
		return duration, FailedToObserveDurationError{Err: err}
	}

	return duration, nil
}
