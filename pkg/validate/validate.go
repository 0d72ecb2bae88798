// Package validate holds the pure predicates used to vet form input before
// any invoice is assembled. Nothing here touches storage or rendering.
package validate

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only date format accepted on invoices (dd-mm-yyyy).
const DateLayout = "02-01-2006"

// IsDecimal reports whether s parses as a decimal number.
func IsDecimal(s string) bool {
	_, err := decimal.NewFromString(s)
	return err == nil
}

// IsDate reports whether s is a calendar date in dd-mm-yyyy form.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Amount parses a decimal amount string.
func Amount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
