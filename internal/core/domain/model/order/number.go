package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

const (
	orderNumberLength   = 10
	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewOrderNumber returns a random customer-facing order number such as "7GQ2K0ZP1X".
// Uniqueness is enforced by storage; callers retry on collision.
func NewOrderNumber() (string, error) {
	var b strings.Builder
	b.Grow(orderNumberLength)
	limit := big.NewInt(int64(len(orderNumberAlphabet)))
	for range orderNumberLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate order number: %w", err)
		}
		b.WriteByte(orderNumberAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func ValidateOrderNumber(s string) error {
	if s == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	if len(s) != orderNumberLength {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q must be %d characters long", s, orderNumberLength))
	}
	for _, r := range s {
		if !strings.ContainsRune(orderNumberAlphabet, r) {
			return errs.NewValueIsInvalidErrorWithCause("order number",
				fmt.Errorf("%q contains %q", s, r))
		}
	}
	return nil
}
