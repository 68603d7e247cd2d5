package models

import "errors"

// EventStatus is the lifecycle state of an Event.
type EventStatus string

const (
	// StatusPlanning is the initial state: guests are invited, games voted on.
	StatusPlanning EventStatus = "PLANNING"

	// StatusLockedIn means the plan is final; the roster and lineup are settled.
	StatusLockedIn EventStatus = "LOCKED_IN"

	// StatusInProgress means the night is underway. Unlocks the chaos session
	// and the moments feed.
	StatusInProgress EventStatus = "IN_PROGRESS"

	// StatusCompleted is terminal.
	StatusCompleted EventStatus = "COMPLETED"

	// StatusCancelled is reachable from PLANNING or LOCKED_IN and can only be
	// left by re-entering PLANNING (un-cancel).
	StatusCancelled EventStatus = "CANCELLED"
)

// ErrInvalidTransition is returned when a status change is not permitted by
// the transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

// statusTransitions is the full transition table. A status missing from a
// row's set is an illegal next state; COMPLETED has no legal next states.
var statusTransitions = map[EventStatus][]EventStatus{
	StatusPlanning:   {StatusLockedIn, StatusCancelled},
	StatusLockedIn:   {StatusInProgress, StatusPlanning, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {StatusPlanning},
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s EventStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next if the move from s is legal, or ErrInvalidTransition.
func (s EventStatus) Transition(next EventStatus) (EventStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, ErrInvalidTransition
	}
	return next, nil
}
