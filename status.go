// SPDX-License-Identifier: MIT
package calculator

import (
	"errors"
)

type (
	// Status is the outcome of an evaluation.
	Status int
)

// Exactly one Status is produced per evaluation.
const (
	ProperInput Status = iota
	IllegalInput
	IllegalAlgebraicAction
	MemoryError
)

// Evaluation errors, one per failing Status.
var (
	ErrIllegalInput           = errors.New("illegal input")
	ErrIllegalAlgebraicAction = errors.New("illegal algebraic action")
	ErrMemory                 = errors.New("memory error")
)

// String is the `fmt.Stringer` interface implementation for Status.
func (s Status) String() string {
	switch s {
	case ProperInput:
		return "proper input"
	case IllegalInput:
		return ErrIllegalInput.Error()
	case IllegalAlgebraicAction:
		return ErrIllegalAlgebraicAction.Error()
	case MemoryError:
		return ErrMemory.Error()
	default:
		return "unknown status"
	}
}

// Err obtains the sentinel error for a failing Status, nil for ProperInput.
func (s Status) Err() error {
	switch s {
	case ProperInput:
		return nil
	case IllegalAlgebraicAction:
		return ErrIllegalAlgebraicAction
	case MemoryError:
		return ErrMemory
	default:
		return ErrIllegalInput
	}
}

// StatusOf maps an error returned by Calculate back to its Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return ProperInput
	case errors.Is(err, ErrIllegalAlgebraicAction):
		return IllegalAlgebraicAction
	case errors.Is(err, ErrMemory):
		return MemoryError
	default:
		return IllegalInput
	}
}
