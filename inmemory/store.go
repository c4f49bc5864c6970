// Package inmemory is a map-backed implementation of the store
// contract. It honors the same ordering and addressing semantics as
// the database-backed stores and is the implementation the shared
// behavior suite runs against.
package inmemory

import (
	"context"
	"strings"
	"sync"

	"code.cloudfoundry.org/aclstore"
	"code.cloudfoundry.org/lager"
)

type recordKey struct {
	Discriminator string
	Subject       string
}

type record map[string]bool

type Store struct {
	aclstore.Recorder

	mu         sync.RWMutex
	containers map[string]map[recordKey]record
}

func NewStore(naming aclstore.Naming) *Store {
	return &Store{
		Recorder:   aclstore.NewRecorder(naming),
		containers: make(map[string]map[recordKey]record),
	}
}

func (s *Store) End(ctx context.Context, logger lager.Logger, unit *aclstore.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, action := range unit.Actions() {
		s.apply(action)
	}

	return nil
}

func (s *Store) apply(action aclstore.PendingAction) {
	switch action.Op {
	case aclstore.OpUpsertSet:
		rec := s.upsert(action)
		for _, key := range action.Keys {
			rec[key] = true
		}
	case aclstore.OpUpsertUnset:
		rec := s.upsert(action)
		for _, key := range action.Keys {
			delete(rec, key)
		}
	case aclstore.OpRemoveRecords:
		container, ok := s.containers[action.Container]
		if !ok {
			return
		}
		for _, subject := range action.Subjects {
			delete(container, recordKey{
				Discriminator: action.Discriminator,
				Subject:       subject,
			})
		}
	case aclstore.OpEnsureIndex:
		// Map lookups need no index.
	}
}

func (s *Store) upsert(action aclstore.PendingAction) record {
	container, ok := s.containers[action.Container]
	if !ok {
		container = make(map[recordKey]record)
		s.containers[action.Container] = container
	}

	key := recordKey{
		Discriminator: action.Discriminator,
		Subject:       action.Subjects[0],
	}
	rec, ok := container[key]
	if !ok {
		rec = make(record)
		container[key] = rec
	}
	return rec
}

func (s *Store) Get(ctx context.Context, logger lager.Logger, bucket, subject string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := []string{}
	rec, ok := s.find(bucket, aclstore.Encode(subject))
	if !ok {
		return keys, nil
	}

	for key := range rec {
		keys = append(keys, aclstore.Decode(key))
	}
	return keys, nil
}

func (s *Store) Union(ctx context.Context, logger lager.Logger, bucket string, subjects []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	keys := []string{}
	for _, subject := range subjects {
		rec, ok := s.find(bucket, aclstore.Encode(subject))
		if !ok {
			continue
		}
		for key := range rec {
			decoded := aclstore.Decode(key)
			if _, dup := seen[decoded]; dup {
				continue
			}
			seen[decoded] = struct{}{}
			keys = append(keys, decoded)
		}
	}
	return keys, nil
}

func (s *Store) Clean(ctx context.Context, logger lager.Logger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name := range s.containers {
		if strings.HasPrefix(name, s.Naming().Prefix) {
			delete(s.containers, name)
		}
	}
	return nil
}

func (s *Store) find(bucket, encodedSubject string) (record, bool) {
	container, ok := s.containers[s.Naming().Container(bucket)]
	if !ok {
		return nil, false
	}
	rec, ok := container[recordKey{
		Discriminator: s.Naming().Discriminator(bucket),
		Subject:       encodedSubject,
	}]
	return rec, ok
}
