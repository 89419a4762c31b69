package model

// EventStatus is the lifecycle state of a booking.
type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusApproved  EventStatus = "approved"
	StatusRejected  EventStatus = "rejected"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

func AllStatuses() []EventStatus {
	return []EventStatus{
		StatusPending,
		StatusApproved,
		StatusRejected,
		StatusCancelled,
		StatusCompleted,
	}
}

func (s EventStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ActiveForConflict reports whether an event in this state still occupies
// its claimed resources. Completed events stay claimed permanently so the
// booking history remains an audit trail of resource usage; only cancelled
// and rejected events release their resources.
func (s EventStatus) ActiveForConflict() bool {
	return s != StatusCancelled && s != StatusRejected
}

// CanTransitionTo is the transition-policy hook. The current policy allows
// any valid status to move to any other valid status, including paths such
// as pending to completed; tightening the policy only requires changing
// this method.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	return next.Valid()
}
