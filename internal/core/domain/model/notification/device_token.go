package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// DeviceType is the platform a push token was issued for.
type DeviceType string

const (
	DeviceIOS     DeviceType = "ios"
	DeviceAndroid DeviceType = "android"
	DeviceWeb     DeviceType = "web"
)

func ParseDeviceType(s string) (DeviceType, error) {
	switch t := DeviceType(strings.ToLower(strings.TrimSpace(s))); t {
	case DeviceIOS, DeviceAndroid, DeviceWeb:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("device_type", fmt.Errorf("%q is not ios, android or web", s))
	}
}

var ErrDeviceTokenIsNotConstructed = errors.New("DeviceToken must be created via NewDeviceToken constructor")

// DeviceToken is a push registration. A token string is unique across recipients;
// registering it again moves it to the new recipient.
type DeviceToken struct {
	id            int64
	recipient     Recipient
	token         string
	deviceType    DeviceType
	isActive      bool
	updatedAt     time.Time
	isConstructed bool
}

func NewDeviceToken(recipient Recipient, token string, deviceType DeviceType, now time.Time) (*DeviceToken, error) {
	token = strings.TrimSpace(token)
	var problems []error
	if recipient.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("recipient"))
	}
	if token == "" {
		problems = append(problems, errs.NewValueIsRequiredError("token"))
	}
	if _, err := ParseDeviceType(string(deviceType)); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return &DeviceToken{
		recipient:     recipient,
		token:         token,
		deviceType:    deviceType,
		isActive:      true,
		updatedAt:     now.UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}, nil
}

func RestoreDeviceToken(id int64, recipient Recipient, token string, deviceType DeviceType,
	isActive bool, updatedAt time.Time,
) (*DeviceToken, error) {
	t, err := NewDeviceToken(recipient, token, deviceType, updatedAt)
	if err != nil {
		return nil, err
	}
	t.id = id
	t.isActive = isActive
	return t, nil
}

func (t *DeviceToken) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrDeviceTokenIsNotConstructed
	}
	return nil
}

func (t *DeviceToken) ID() int64 {
	return t.id
}

func (t *DeviceToken) Recipient() Recipient {
	return t.recipient
}

func (t *DeviceToken) Token() string {
	return t.token
}

func (t *DeviceToken) DeviceType() DeviceType {
	return t.deviceType
}

func (t *DeviceToken) IsActive() bool {
	return t.isActive
}

func (t *DeviceToken) UpdatedAt() time.Time {
	return t.updatedAt
}

// Deactivate stops pushes to the token without forgetting it.
func (t *DeviceToken) Deactivate(now time.Time) {
	t.isActive = false
	t.updatedAt = now.UTC().Truncate(time.Microsecond)
}
