// Package pgerr turns driver errors into the domain error kinds.
package pgerr

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/lib/pq"
)

const uniqueViolation pq.ErrorCode = "23505"

// Translate maps unique violations to a ValueIsInvalidError naming the
// entity. Other errors are returned unchanged.
func Translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewValueIsInvalidErrorWithCause(entity, fmt.Errorf("duplicate value violates %s", pqErr.Constraint))
	}
	return err
}

// IsUniqueViolation reports whether err is a Postgres unique violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
