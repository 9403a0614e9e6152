package alarm

import "errors"

// MaxMessageBytes is the upper bound for an alarm message payload.
const MaxMessageBytes = 127

var (
	// ErrInvalidID is returned when the alarm identifier is not a positive integer.
	ErrInvalidID = errors.New("alarm id must be a positive integer")
	// ErrInvalidGroupID is returned when the group identifier is not a positive integer.
	ErrInvalidGroupID = errors.New("group id must be a positive integer")
	// ErrNegativeSeconds is returned when a negative duration is requested.
	ErrNegativeSeconds = errors.New("requested seconds must not be negative")
	// ErrMessageTooLong is returned when the message payload exceeds MaxMessageBytes.
	ErrMessageTooLong = errors.New("message exceeds maximum length")
)

// Submission is a request to schedule a new alarm as it arrives at the
// submitter boundary, before a deadline has been assigned.
type Submission struct {
	// ID identifies the alarm. Uniqueness is not enforced by the scheduler.
	ID int64
	// GroupID identifies the display group the alarm belongs to.
	GroupID int64
	// RequestedSeconds is how long after submission the alarm should fire.
	RequestedSeconds int64
	// Message is an opaque payload carried into the expiry notification.
	Message string
}

// Validate checks the submission against the input contract.
// Rejected submissions never reach the scheduler store.
func (s *Submission) Validate() error {
	if s.ID <= 0 {
		return ErrInvalidID
	}

	if s.GroupID <= 0 {
		return ErrInvalidGroupID
	}

	if s.RequestedSeconds < 0 {
		return ErrNegativeSeconds
	}

	if len(s.Message) > MaxMessageBytes {
		return ErrMessageTooLong
	}

	return nil
}

// Alarm is one pending alarm record.
//
// Deadline is absolute time in whole seconds since the Unix epoch, computed
// once when the submission is accepted. Storing the requested duration alone
// would not be enough: the worker cannot tell how long an entry has already
// been queued.
type Alarm struct {
	// ID identifies the alarm.
	ID int64
	// GroupID identifies the display group the alarm belongs to.
	GroupID int64
	// RequestedSeconds is the originally requested duration, kept for display.
	RequestedSeconds int64
	// Message is the opaque payload delivered with the expiry.
	Message string
	// Deadline is the absolute fire time in seconds since the Unix epoch.
	Deadline int64
}

// Clone returns a copy of the alarm to avoid leaking internal references.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// Expiry is the notification emitted exactly once when an alarm fires.
type Expiry struct {
	// ID is the identifier of the fired alarm.
	ID int64
	// GroupID is the display group of the fired alarm.
	GroupID int64
	// RequestedSeconds is the duration that was originally requested.
	RequestedSeconds int64
	// Message is the payload supplied at submission.
	Message string
	// Deadline is the absolute time the alarm was due to fire.
	Deadline int64
	// FiredAt is the absolute time the scheduler delivered the expiry.
	FiredAt int64
}

// Snapshot is a point-in-time view of one alarm held by the scheduler,
// produced by the view operation.
type Snapshot struct {
	// Alarm is a copy of the underlying record.
	Alarm Alarm
	// Suspended reports whether the alarm is parked outside the pending queue.
	Suspended bool
	// RemainingSeconds is the time left until the deadline for pending
	// alarms, or the parked remainder for suspended ones.
	RemainingSeconds int64
}

// Actor identifies who issued a scheduling request, for audit logging.
type Actor struct {
	// Hostname is the machine name the request originated from.
	Hostname string
	// Username is the system user who issued the request.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}
