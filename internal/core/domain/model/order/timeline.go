package order

import (
	"fmt"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// Timeline holds one timestamp per transition. A field is non-nil exactly when
// the order went through the matching transition, and non-nil fields are
// strictly increasing along the path the order took. CompletedAt is set for
// delivered (equal to DeliveredAt) and cancelled orders.
type Timeline struct {
	AcceptedAt  *time.Time
	PreparingAt *time.Time
	ReadyAt     *time.Time
	PickedUpAt  *time.Time
	ReleasedAt  *time.Time
	DeliveredAt *time.Time
	RejectedAt  *time.Time
	CompletedAt *time.Time
}

// forwardSteps is the canonical order in which forward stamps can appear.
var forwardSteps = []Status{Accepted, Preparing, Ready, Released, PickedUp, Delivered}

// At returns the timestamp recorded for reaching s, or nil.
func (t Timeline) At(s Status) *time.Time {
	//nolint:exhaustive // New and Unknown have no stamp
	switch s {
	case Accepted:
		return t.AcceptedAt
	case Preparing:
		return t.PreparingAt
	case Ready:
		return t.ReadyAt
	case PickedUp:
		return t.PickedUpAt
	case Released:
		return t.ReleasedAt
	case Delivered:
		return t.DeliveredAt
	case Rejected:
		return t.RejectedAt
	case Cancelled:
		return t.CompletedAt
	default:
		return nil
	}
}

// Latest returns the most recent non-nil timestamp.
func (t Timeline) Latest() (time.Time, bool) {
	var latest time.Time
	found := false
	for _, ts := range []*time.Time{
		t.AcceptedAt, t.PreparingAt, t.ReadyAt, t.PickedUpAt,
		t.ReleasedAt, t.DeliveredAt, t.RejectedAt, t.CompletedAt,
	} {
		if ts != nil && (!found || ts.After(latest)) {
			latest = *ts
			found = true
		}
	}
	return latest, found
}

// stamp records reaching s and returns the stored instant. The instant is
// normalized to UTC microseconds (the storage precision), never earlier than
// floor, and strictly after every earlier stamp.
func (t *Timeline) stamp(s Status, at, floor time.Time) time.Time {
	at = normalizeTime(at)
	if at.Before(floor) {
		at = floor
	}
	if latest, ok := t.Latest(); ok && !at.After(latest) {
		at = latest.Add(time.Microsecond)
	}

	//nolint:exhaustive // callers only stamp reachable statuses
	switch s {
	case Accepted:
		t.AcceptedAt = timePtr(at)
	case Preparing:
		t.PreparingAt = timePtr(at)
	case Ready:
		t.ReadyAt = timePtr(at)
	case PickedUp:
		t.PickedUpAt = timePtr(at)
	case Released:
		t.ReleasedAt = timePtr(at)
	case Delivered:
		t.DeliveredAt = timePtr(at)
		t.CompletedAt = timePtr(at)
	case Rejected:
		t.RejectedAt = timePtr(at)
	case Cancelled:
		t.CompletedAt = timePtr(at)
	}
	return at
}

// Validate replays the stamps from New and checks that they describe a legal
// path ending in status, in strictly increasing time, none before createdAt.
func (t Timeline) Validate(status Status, createdAt time.Time) error {
	current := New
	var previous *time.Time

	step := func(next Status, at time.Time) error {
		if err := current.CanTransitionTo(next); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("timeline", err)
		}
		if at.Before(createdAt) {
			return errs.NewValueIsInvalidErrorWithCause("timeline",
				fmt.Errorf("%s stamp %s precedes creation", next, at.Format(time.RFC3339Nano)))
		}
		if previous != nil && !at.After(*previous) {
			return errs.NewValueIsInvalidErrorWithCause("timeline",
				fmt.Errorf("%s stamp %s is not after the previous stamp", next, at.Format(time.RFC3339Nano)))
		}
		current = next
		previous = &at
		return nil
	}

	for _, s := range forwardSteps {
		if at := t.At(s); at != nil {
			if err := step(s, *at); err != nil {
				return err
			}
		}
	}
	if t.RejectedAt != nil {
		if err := step(Rejected, *t.RejectedAt); err != nil {
			return err
		}
	}

	//nolint:exhaustive // only terminal statuses constrain CompletedAt
	switch status {
	case Delivered:
		if t.CompletedAt == nil || t.DeliveredAt == nil || !t.CompletedAt.Equal(*t.DeliveredAt) {
			return errs.NewValueIsInvalidErrorWithCause("timeline",
				fmt.Errorf("completed_at must equal delivered_at"))
		}
	case Cancelled:
		if t.CompletedAt == nil {
			return errs.NewValueIsRequiredError("completed_at")
		}
		if err := step(Cancelled, *t.CompletedAt); err != nil {
			return err
		}
	default:
		if t.CompletedAt != nil {
			return errs.NewValueIsInvalidErrorWithCause("timeline",
				fmt.Errorf("completed_at is set for a %s order", status))
		}
	}

	if current != status {
		return errs.NewValueIsInvalidErrorWithCause("timeline",
			fmt.Errorf("stamps lead to %s but status is %s", current, status))
	}
	return nil
}

func (t Timeline) clone() Timeline {
	return Timeline{
		AcceptedAt:  copyTime(t.AcceptedAt),
		PreparingAt: copyTime(t.PreparingAt),
		ReadyAt:     copyTime(t.ReadyAt),
		PickedUpAt:  copyTime(t.PickedUpAt),
		ReleasedAt:  copyTime(t.ReleasedAt),
		DeliveredAt: copyTime(t.DeliveredAt),
		RejectedAt:  copyTime(t.RejectedAt),
		CompletedAt: copyTime(t.CompletedAt),
	}
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return timePtr(*t)
}
