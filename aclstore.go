// Package aclstore defines the storage contract for bucketed ACL key
// sets: for each logical bucket, a subject (user, role, or group name)
// maps to the set of keys it has been granted. Mutations are batched
// into an explicit unit of work and executed in order by the backend;
// reads go straight to storage.
package aclstore

import (
	"context"

	"code.cloudfoundry.org/lager"
)

// Store is implemented by every storage backend. Begin, Add, Del, and
// Remove are synchronous and perform no I/O; they only record pending
// actions on the unit. End executes the recorded actions strictly in
// append order and stops at the first failure. Actions applied before
// the failure are not rolled back.
type Store interface {
	Begin() *Unit

	End(ctx context.Context, logger lager.Logger, unit *Unit) error

	Clean(ctx context.Context, logger lager.Logger) error

	Get(
		ctx context.Context,
		logger lager.Logger,
		bucket string,
		subject string,
	) ([]string, error)

	Union(
		ctx context.Context,
		logger lager.Logger,
		bucket string,
		subjects []string,
	) ([]string, error)

	Add(unit *Unit, bucket, subject string, keys ...string) error

	Del(unit *Unit, bucket string, subjects ...string)

	Remove(unit *Unit, bucket, subject string, keys ...string)
}
