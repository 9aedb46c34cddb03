package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/pgerr"
	"fooddelivery/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("unique_violation_becomes_invalid_value", func(t *testing.T) {
		driverErr := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "customers_email_key"})

		err := pgerr.Translate(driverErr, "customer")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "customers_email_key")
		assert.True(t, pgerr.IsUniqueViolation(driverErr))
	})

	t.Run("other_driver_errors_pass_through", func(t *testing.T) {
		driverErr := &pq.Error{Code: "23503"}

		err := pgerr.Translate(driverErr, "order")

		assert.Same(t, driverErr, err)
		assert.False(t, pgerr.IsUniqueViolation(driverErr))
	})

	t.Run("nil_stays_nil", func(t *testing.T) {
		assert.NoError(t, pgerr.Translate(nil, "product"))
	})

	t.Run("plain_errors_pass_through", func(t *testing.T) {
		plain := errors.New("connection reset")
		assert.Equal(t, plain, pgerr.Translate(plain, "product"))
	})
}
