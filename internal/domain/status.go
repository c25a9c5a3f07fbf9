package domain

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusOccupied  Status = "occupied"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// LiveStatuses are the statuses that count toward availability conflicts.
var LiveStatuses = []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusOccupied}

// advance is the linear operational chain; cancellation is handled
// separately because it is only reachable from pending.
var advance = map[Status]Status{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusOccupied,
	StatusOccupied:  StatusCompleted,
}

// Next returns the status one step along the operational chain.
func (s Status) Next() (Status, error) {
	next, ok := advance[s]
	if !ok {
		return "", fmt.Errorf("%w: reservation is %s", ErrInvalidTransition, s)
	}
	return next, nil
}

// CanTransition reports whether moving to the given status is legal.
func (s Status) CanTransition(to Status) bool {
	if to == StatusCancelled {
		return s == StatusPending
	}
	return advance[s] == to
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) IsLive() bool {
	for _, live := range LiveStatuses {
		if s == live {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOccupied, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
