package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentYape  PaymentMethod = "yape"
	PaymentPlin  PaymentMethod = "plin"
	PaymentOther PaymentMethod = "other"
)

// ParsePaymentMethod defaults to cash on empty input.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return PaymentCash, nil
	}
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCash, PaymentCard, PaymentYape, PaymentPlin, PaymentOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
