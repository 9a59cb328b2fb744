package workorder

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"hangar/internal/pkg/errs"
)

// numberPattern matches the human-facing work order number format:
// "WO" + two-digit year + two-digit month + "-" + zero-padded sequence.
var numberPattern = regexp.MustCompile(`^WO\d{4}-\d{3,}$`)

// Number is the human-facing work order number, of the form WO<YY><MM>-<seq>
// (e.g. "WO2608-014"). It is unique per shop, assigned once at creation, and
// never reassigned. The zero value is invalid.
type Number struct {
	value string
}

// NewNumber builds a Number for the month of t with the given sequence value.
// The sequence starts at 1 each month and is zero-padded to three digits.
func NewNumber(t time.Time, seq int) (Number, error) {
	if seq < 1 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not a positive sequence number", seq))
	}
	return Number{
		value: fmt.Sprintf("WO%02d%02d-%03d", t.Year()%100, int(t.Month()), seq),
	}, nil
}

// NumberFromString restores a Number from its persisted string form.
func NumberFromString(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("workOrderNumber",
			fmt.Errorf("%q does not match WO<YY><MM>-<seq>", s))
	}
	return Number{value: s}, nil
}

// String returns the work order number, e.g. "WO2608-014".
func (n Number) String() string {
	return n.value
}

// InvoiceNumber derives the invoice number shown on the rendered invoice
// by swapping the WO prefix for INV.
func (n Number) InvoiceNumber() string {
	return "INV" + strings.TrimPrefix(n.value, "WO")
}

// Validate returns an error for the zero value.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("workOrderNumber")
	}
	return nil
}
