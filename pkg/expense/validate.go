package expense

import (
	"errors"
	"fmt"
	"time"
)

// ErrNonPositiveTotal rejects submissions whose computed total is not
// strictly positive, usually because an amount field was left unfilled.
var ErrNonPositiveTotal = errors.New("total amount must be greater than 0")

// MissingRequiredFieldError rejects submissions with an unset common field
// (site, date, or expense type). User-correctable; never reaches the store.
type MissingRequiredFieldError struct {
	Field string
}

func (e MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q is not set", e.Field)
}

// ValidateForSubmission runs the full pre-persistence check: common fields
// present, category known, computed total positive. It is pure and must be
// called before any write; validation failures never reach the persistence
// layer.
func ValidateForSubmission(category ExpenseCategory, siteID string, date time.Time, values Values) error {
	if siteID == "" {
		return MissingRequiredFieldError{Field: "siteId"}
	}
	if category == "" {
		return MissingRequiredFieldError{Field: "expenseType"}
	}
	if date.IsZero() {
		return MissingRequiredFieldError{Field: "date"}
	}

	total, err := ComputeTotal(category, values)
	if err != nil {
		return err
	}
	if !total.IsPositive() {
		return ErrNonPositiveTotal
	}
	return nil
}
