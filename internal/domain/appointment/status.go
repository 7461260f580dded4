package appointment

import "github.com/BruksfildServices01/pos-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusPaid       Status = "paid"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

var transitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusPaid, StatusCancelled},
	StatusPaid:       {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// AllStatuses in lifecycle order.
var AllStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusPaid,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// Active statuses occupy their interval on the staff calendar.
func (s Status) Active() bool {
	return s != StatusCancelled
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.ErrBusinessf(httperr.CodeInvalidInput, "unknown status %q", raw)
	}
	return s, nil
}

// CanTransition rejects every edge outside the lifecycle table, including
// re-requesting the current status.
func CanTransition(from, to Status) error {
	if !from.CanTransitionTo(to) {
		return httperr.ErrBusinessf(httperr.CodeInvalidTransition, "%s -> %s", from, to)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
