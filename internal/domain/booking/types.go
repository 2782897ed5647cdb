package booking

import "fmt"

// Status is the booking lifecycle state. Completed and cancelled are
// terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Blocks reports whether a booking in this status occupies calendar dates
// against conflicting requests.
func (s Status) Blocks() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive:
		return true
	default:
		return false
	}
}

// BlockingStatuses are the statuses that participate in conflict checks,
// in the order used by queries.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusActive}
}

// ActorRole is the caller's relationship to a booking. It is derived per
// booking, not a stored user attribute: the renter is the booking's renter,
// the owner is the booked gear's owner.
type ActorRole string

const (
	RoleRenter ActorRole = "renter"
	RoleOwner  ActorRole = "owner"
)

func (r ActorRole) String() string {
	return string(r)
}

// InvalidTransitionError names the current state, the requested state and
// the caller's role, per the transition protocol.
type InvalidTransitionError struct {
	From Status
	To   Status
	Role ActorRole
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s for %s", e.From, e.To, e.Role)
}

// CanTransition is the single source of truth for the lifecycle protocol:
//
//	pending   -> confirmed  (owner)
//	pending   -> cancelled  (renter)
//	confirmed -> cancelled  (renter)
//	confirmed -> active     (owner)
//	active    -> completed  (owner)
//
// Everything else, including re-entering the current state, is invalid.
func CanTransition(from, to Status, role ActorRole) bool {
	switch {
	case from == StatusPending && to == StatusConfirmed:
		return role == RoleOwner
	case from == StatusPending && to == StatusCancelled:
		return role == RoleRenter
	case from == StatusConfirmed && to == StatusCancelled:
		return role == RoleRenter
	case from == StatusConfirmed && to == StatusActive:
		return role == RoleOwner
	case from == StatusActive && to == StatusCompleted:
		return role == RoleOwner
	default:
		return false
	}
}
