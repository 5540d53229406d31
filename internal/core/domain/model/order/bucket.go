package order

import (
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// Bucket groups statuses for the restaurant dashboard lists.
type Bucket string

const (
	BucketNew       Bucket = "new"
	BucketOngoing   Bucket = "ongoing"
	BucketCompleted Bucket = "completed"
)

// CompletedBucketLimit caps the completed list, which grows without bound.
const CompletedBucketLimit = 50

func ParseBucket(s string) (Bucket, error) {
	b := Bucket(s)
	if len(b.Statuses()) == 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("bucket", fmt.Errorf("%q is not a valid bucket", s))
	}
	return b, nil
}

// Statuses lists the members of the bucket. Released orders have left the
// kitchen but are not delivered yet, so they count as ongoing.
func (b Bucket) Statuses() []Status {
	switch b {
	case BucketNew:
		return []Status{New}
	case BucketOngoing:
		return []Status{Accepted, Preparing, Ready, PickedUp, Released}
	case BucketCompleted:
		return []Status{Delivered, Rejected, Cancelled}
	default:
		return nil
	}
}

// Limit returns 0 when the bucket is unbounded.
func (b Bucket) Limit() int {
	if b == BucketCompleted {
		return CompletedBucketLimit
	}
	return 0
}
