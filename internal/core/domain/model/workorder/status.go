package workorder

import (
	"errors"
	"fmt"

	"hangar/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
//
// State transitions:
//
//	draft ──> open ──> in_progress ──┬──> pending_parts ──> (back to in_progress)
//	            │          │         └──> completed ──> invoiced (terminal)
//	            │          │                   │
//	            │          └──> cancelled      └──> (back to in_progress)
//	            └──> cancelled ──> open (reopen)
//
// The full set of legal transitions lives in the statusTransitions table below;
// the table is the single source of truth and is enumerated exhaustively by tests.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status assigned at creation, before the work
	// order is released to the floor.
	Draft

	// Open means the work order is released and waiting to be started.
	Open

	// InProgress means a mechanic is actively working the order.
	InProgress

	// PendingParts means work is paused waiting on parts.
	PendingParts

	// Completed means the work is done and the order can be invoiced.
	Completed

	// Invoiced is the terminal state; no further transitions are allowed.
	Invoiced

	// Cancelled is terminal but reopenable; a cancellation may have been
	// administrative rather than final.
	Cancelled
)

// ErrInvalidStatusTransition is the unwrap target for InvalidTransitionError.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a transition not present in the table.
// Its message names both statuses so dispatchers can correct workflow mistakes.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Cannot change status from '%s' to '%s'", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// statusTransitions maps each status to the set of statuses reachable from it.
// Kept as data rather than branching code so the whole workflow is auditable
// in one place and adding a status is a single table edit.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:        {Open},
		Open:         {InProgress, Cancelled},
		InProgress:   {PendingParts, Completed, Cancelled},
		PendingParts: {InProgress, Cancelled},
		Completed:    {Invoiced, InProgress},
		Invoiced:     {},
		Cancelled:    {Open},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Draft:        "draft",
		Open:         "open",
		InProgress:   "in_progress",
		PendingParts: "pending_parts",
		Completed:    "completed",
		Invoiced:     "invoiced",
		Cancelled:    "cancelled",
	}
}

// AllStatuses returns every valid status, in lifecycle order.
// Useful for exhaustive enumeration of the transition table.
func AllStatuses() []Status {
	return []Status{Draft, Open, InProgress, PendingParts, Completed, Invoiced, Cancelled}
}

// StatusFromString parses the wire representation of a status ("in_progress",
// "pending_parts", ...). Returns a ValueIsInvalidError for anything outside
// the closed set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire name of the status ("draft", "open", ...).
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the status is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// AllowedTransitions returns the statuses reachable from s per the table.
func (s Status) AllowedTransitions() []Status {
	return statusTransitions()[s]
}

// CanTransitionTo reports whether the table permits moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to target against the table.
//
// Returns:
//   - (target, nil) when the transition is listed
//   - (Unknown, *InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// IsTerminal reports whether no transitions leave s.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0
}
