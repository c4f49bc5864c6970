package aclstore

import (
	"fmt"
)

// ErrReserved is the validation error for caller-supplied names that
// collide with a field the adapter owns. It is returned synchronously,
// before anything is enqueued or any I/O is attempted, and is distinct
// from storage errors.
type ErrReserved struct {
	name string
}

func NewErrReserved(name string) ErrReserved {
	return ErrReserved{
		name: name,
	}
}

func (err ErrReserved) Error() string {
	return fmt.Sprintf("%q is a reserved name", err.name)
}

type ErrCannotBeEmpty struct {
	model string
}

func NewErrCannotBeEmpty(model string) ErrCannotBeEmpty {
	return ErrCannotBeEmpty{
		model: model,
	}
}

func (err ErrCannotBeEmpty) Error() string {
	return fmt.Sprintf("%s cannot be empty", err.model)
}
