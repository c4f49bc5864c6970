package aclstore

import (
	uuid "github.com/satori/go.uuid"
)

type Op int

const (
	// OpUpsertSet sets each Keys field to true on the subject's
	// record, creating the record if it does not exist.
	OpUpsertSet Op = iota

	// OpUpsertUnset clears each Keys field on the subject's record,
	// creating an empty record if it does not exist.
	OpUpsertUnset

	// OpRemoveRecords deletes the records of every subject in
	// Subjects.
	OpRemoveRecords

	// OpEnsureIndex idempotently ensures an index over Keys exists on
	// the container.
	OpEnsureIndex
)

func (op Op) String() string {
	switch op {
	case OpUpsertSet:
		return "upsert-set"
	case OpUpsertUnset:
		return "upsert-unset"
	case OpRemoveRecords:
		return "remove-records"
	case OpEnsureIndex:
		return "ensure-index"
	default:
		return "unknown"
	}
}

// PendingAction is one deferred storage operation, fully resolved at
// the time it is appended: the physical container, the discriminator
// (empty outside single-container addressing), the encoded subjects it
// targets, and the encoded key fields it touches. Backends interpret
// the same action list with their own executor.
type PendingAction struct {
	Op            Op
	Container     string
	Discriminator string
	Subjects      []string
	Keys          []string
}

// Unit is an ordered batch of pending actions. It provides ordering
// and fail-fast execution, not atomicity: End applies actions one at a
// time and a failure leaves earlier actions committed.
type Unit struct {
	ID      string
	actions []PendingAction
}

func NewUnit() *Unit {
	return &Unit{
		ID: uuid.NewV4().String(),
	}
}

func (u *Unit) Append(action PendingAction) {
	u.actions = append(u.actions, action)
}

// Actions returns the pending actions in append order.
func (u *Unit) Actions() []PendingAction {
	return u.actions
}

func (u *Unit) Len() int {
	return len(u.actions)
}

// Recorder implements the enqueue half of the Store contract. Every
// backend embeds it; only execution differs per storage engine.
type Recorder struct {
	naming Naming
}

func NewRecorder(naming Naming) Recorder {
	return Recorder{
		naming: naming,
	}
}

func (r Recorder) Naming() Naming {
	return r.naming
}

func (r Recorder) Begin() *Unit {
	return NewUnit()
}

// Add records granting keys to a subject within a bucket: one
// upsert-set action followed by an idempotent index-ensure action.
// Validation runs first; nothing is enqueued on failure.
func (r Recorder) Add(unit *Unit, bucket, subject string, keys ...string) error {
	if bucket == "" {
		return ErrBucketEmpty
	}
	if subject == "" {
		return ErrSubjectEmpty
	}
	if len(keys) == 0 {
		return ErrKeySetEmpty
	}
	for _, key := range keys {
		switch key {
		case SubjectField:
			return ErrReservedKey
		case BucketField:
			return ErrReservedBucketKey
		}
	}

	unit.Append(PendingAction{
		Op:            OpUpsertSet,
		Container:     r.naming.Container(bucket),
		Discriminator: r.naming.Discriminator(bucket),
		Subjects:      []string{Encode(subject)},
		Keys:          EncodeAll(keys),
	})
	unit.Append(PendingAction{
		Op:        OpEnsureIndex,
		Container: r.naming.Container(bucket),
		Keys:      r.naming.IndexFields(),
	})

	return nil
}

// Del records deletion of every given subject's record. The filter
// carries a discriminator only under single-container addressing; in
// per-bucket addressing the container alone scopes the bucket.
func (r Recorder) Del(unit *Unit, bucket string, subjects ...string) {
	if len(subjects) == 0 {
		return
	}

	unit.Append(PendingAction{
		Op:            OpRemoveRecords,
		Container:     r.naming.Container(bucket),
		Discriminator: r.naming.Discriminator(bucket),
		Subjects:      EncodeAll(subjects),
	})
}

// Remove records clearing keys from a subject's record.
func (r Recorder) Remove(unit *Unit, bucket, subject string, keys ...string) {
	if len(keys) == 0 {
		return
	}

	unit.Append(PendingAction{
		Op:            OpUpsertUnset,
		Container:     r.naming.Container(bucket),
		Discriminator: r.naming.Discriminator(bucket),
		Subjects:      []string{Encode(subject)},
		Keys:          EncodeAll(keys),
	})
}
