package order

import (
	"fmt"
	"slices"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Its String form is the wire and storage value.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	New
	Accepted
	Preparing
	Ready
	PickedUp
	Released
	Delivered
	Rejected
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Accepted:  "accepted",
		Preparing: "preparing",
		Ready:     "ready",
		PickedUp:  "picked_up",
		Released:  "released",
		Delivered: "delivered",
		Rejected:  "rejected",
		Cancelled: "cancelled",
	}
}

// getAllowedTransitions lists every forward edge of the lifecycle.
// Statuses without an entry are terminal.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		New:       {Accepted, Rejected, Cancelled},
		Accepted:  {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Released, PickedUp, Cancelled},
		Released:  {PickedUp, Cancelled},
		PickedUp:  {Delivered, Cancelled},
	}
}

// ParseStatus maps a wire value such as "picked_up" to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects Unknown and out-of-range values read from storage or requests.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// CanTransitionTo checks the edge s -> target without performing it.
// The error names the current status so callers can show it as is.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !slices.Contains(getAllowedTransitions()[s], target) {
		return errs.NewInvalidTransitionError(target.String(), s.String())
	}
	return nil
}

// TransitionTo returns target if the edge exists.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}
	return target, nil
}

// MarshalText makes Status render as its wire value in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TimestampField names the timeline column stamped when an order reaches s,
// or "" when s has none.
func (s Status) TimestampField() string {
	//nolint:exhaustive // New and Unknown have no stamp
	switch s {
	case Accepted:
		return "accepted_at"
	case Preparing:
		return "preparing_at"
	case Ready:
		return "ready_at"
	case PickedUp:
		return "picked_up_at"
	case Released:
		return "released_at"
	case Delivered:
		return "delivered_at"
	case Rejected:
		return "rejected_at"
	case Cancelled:
		return "completed_at"
	default:
		return ""
	}
}
