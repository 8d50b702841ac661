package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidArgument = "invalid argument"

	// Argument names reported by InvalidArgumentError
	ArgRarity     = "rarity"
	ArgDurability = "durability"

	// Detail fragments
	ErrMsgDurabilityRange = "Durability must be in range (0 - 100)"
)

// ErrInvalidArgument is returned (wrapped) whenever a constructor rejects one of its inputs.
// Match it with errors.Is; use errors.As with *InvalidArgumentError to learn which argument.
var ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

// InvalidArgumentError describes a rejected constructor argument.
type InvalidArgumentError struct {
	Argument string
	Value    any
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	msg := fmt.Sprintf("invalid %s value: %v", e.Argument, e.Value)
	if e.Reason != "" {
		msg += ". " + e.Reason
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) succeed.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func newInvalidRarity(r Rarity) error {
	return &InvalidArgumentError{Argument: ArgRarity, Value: string(r)}
}

func newInvalidDurability(d int) error {
	return &InvalidArgumentError{Argument: ArgDurability, Value: d, Reason: ErrMsgDurabilityRange}
}
