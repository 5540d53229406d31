package kernel

import (
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// Role is the kind of party acting on, or being notified about, an order.
type Role int

const (
	UnknownRole Role = iota
	Owner
	Customer
	DeliveryPartner
	// System covers internal callers such as scheduled jobs. It carries no id.
	System
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:     "unknown",
		Owner:           "owner",
		Customer:        "customer",
		DeliveryPartner: "delivery_partner",
		System:          "system",
	}
}

// ParseRole maps the wire name back to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

func (r Role) Validate() error {
	if r <= UnknownRole || r > System {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is an authenticated caller: a role plus the caller's id within that role.
type Actor struct {
	role Role
	id   int64
}

// NewActor requires a positive id for every role except System.
func NewActor(role Role, id int64) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if role == System {
		return SystemActor(), nil
	}
	if id <= 0 {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("actor id", fmt.Errorf("%d is not greater than 0", id))
	}
	return Actor{role: role, id: id}, nil
}

func SystemActor() Actor {
	return Actor{role: System}
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) ID() int64 {
	return a.id
}

func (a Actor) Is(role Role) bool {
	return a.role == role
}

func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	if a.role != System && a.id <= 0 {
		return errs.NewValueIsRequiredError("actor id")
	}
	return nil
}

func (a Actor) String() string {
	if a.role == System {
		return a.role.String()
	}
	return fmt.Sprintf("%s:%d", a.role, a.id)
}
