package commands

import (
	"errors"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var ErrRegisterDeviceTokenCommandIsNotConstructed = errors.New(
	"RegisterDeviceTokenCommand must be created via NewRegisterDeviceTokenCommand constructor",
)

type RegisterDeviceTokenCommand struct {
	recipient  notification.Recipient
	token      string
	deviceType notification.DeviceType

	guard guard.ConstructorGuard
}

// NewRegisterDeviceTokenCommand parses the device type ("ios", "android", "web").
func NewRegisterDeviceTokenCommand(recipient notification.Recipient, token, deviceType string) (RegisterDeviceTokenCommand, error) {
	var problems []error
	if recipient.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("recipient"))
	}
	token = strings.TrimSpace(token)
	if token == "" {
		problems = append(problems, errs.NewValueIsRequiredError("token"))
	}
	dt, err := notification.ParseDeviceType(deviceType)
	if err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return RegisterDeviceTokenCommand{}, err
	}
	return RegisterDeviceTokenCommand{
		recipient:  recipient,
		token:      token,
		deviceType: dt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDeviceTokenCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDeviceTokenCommandIsNotConstructed)
}

func (c RegisterDeviceTokenCommand) Recipient() notification.Recipient {
	return c.recipient
}

func (c RegisterDeviceTokenCommand) Token() string {
	return c.token
}

func (c RegisterDeviceTokenCommand) DeviceType() notification.DeviceType {
	return c.deviceType
}
