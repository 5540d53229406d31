package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// Kind tags what a notification is about.
type Kind string

const (
	KindOrderUpdate Kind = "order_update"
	KindNewOrder    Kind = "new_order"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is one entry of a recipient's in-app feed. Only the read flag
// changes after creation.
type Notification struct {
	id        int64
	recipient Recipient
	title     string
	message   string
	kind      Kind
	// orderID is nil for notifications unrelated to an order.
	orderID       *int64
	isRead        bool
	createdAt     time.Time
	isConstructed bool
}

func NewNotification(recipient Recipient, title, message string, kind Kind, orderID *int64, now time.Time) (*Notification, error) {
	n := &Notification{
		recipient:     recipient,
		title:         strings.TrimSpace(title),
		message:       strings.TrimSpace(message),
		kind:          kind,
		orderID:       copyID(orderID),
		createdAt:     now.UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}
	if err := n.validateContent(); err != nil {
		return nil, err
	}
	return n, nil
}

// RestoreNotification rebuilds a stored notification.
func RestoreNotification(id int64, recipient Recipient, title, message string, kind Kind,
	orderID *int64, isRead bool, createdAt time.Time,
) (*Notification, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("notification id", fmt.Errorf("%d is not greater than 0", id))
	}
	n := &Notification{
		id:            id,
		recipient:     recipient,
		title:         title,
		message:       message,
		kind:          kind,
		orderID:       copyID(orderID),
		isRead:        isRead,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := n.validateContent(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// AssignID records the id storage generated.
func (n *Notification) AssignID(id int64) error {
	if n.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("notification id", errors.New("already assigned"))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("notification id", fmt.Errorf("%d is not greater than 0", id))
	}
	n.id = id
	return nil
}

func (n *Notification) ID() int64 {
	return n.id
}

func (n *Notification) Recipient() Recipient {
	return n.recipient
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Kind() Kind {
	return n.kind
}

func (n *Notification) OrderID() *int64 {
	return copyID(n.orderID)
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// BelongsTo reports whether r is the addressee.
func (n *Notification) BelongsTo(r Recipient) bool {
	return n.recipient == r
}

// MarkRead is idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) validateContent() error {
	var problems []error
	if n.recipient.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("recipient"))
	}
	if n.title == "" {
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	}
	if n.message == "" {
		problems = append(problems, errs.NewValueIsRequiredError("message"))
	}
	if n.kind != KindOrderUpdate && n.kind != KindNewOrder {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("notification type",
			fmt.Errorf("%q is not a known type", n.kind)))
	}
	return errors.Join(problems...)
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
