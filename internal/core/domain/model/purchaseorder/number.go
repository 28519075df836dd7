package purchaseorder

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"purchasing/internal/pkg/errs"
)

const (
	numberMarker = "-P"

	// buddhistEraOffset converts a Gregorian year to the Thai Buddhist Era.
	buddhistEraOffset = 543

	sequenceWidth = 3
	maxSequence   = 999
)

var (
	// ErrDailySequenceExhausted is wrapped when a day already has maxSequence orders.
	ErrDailySequenceExhausted = errors.New("daily purchase order sequence exhausted")

	// ErrTransitionNotAllowed is wrapped by status changes outside the transition table.
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	numberPattern = regexp.MustCompile(`^PO\d{8}-P\d{3}$`)
)

// Number is a purchase order number such as PO25690219-P006.
type Number string

// PrefixFor returns the daily prefix for day, e.g. PO25690219-P for
// 19 February 2026. day should already be in the business time zone.
func PrefixFor(day time.Time) string {
	return fmt.Sprintf("PO%04d%02d%02d%s", day.Year()+buddhistEraOffset, int(day.Month()), day.Day(), numberMarker)
}

// NextNumber derives the number following last for today. last is the
// highest existing number carrying today's prefix, or "" when there is none.
func NextNumber(today time.Time, last string) (Number, error) {
	prefix := PrefixFor(today)
	if last == "" {
		return formatNumber(prefix, 1), nil
	}

	lastNumber := Number(last)
	if lastNumber.Prefix() != prefix {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"poNumber", fmt.Errorf("%q does not carry prefix %q", last, prefix),
		)
	}

	seq := lastNumber.Sequence()
	if seq < 1 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"poNumber", fmt.Errorf("%q has no numeric sequence", last),
		)
	}

	if seq >= maxSequence {
		return "", errs.NewConflictErrorWithCause(
			fmt.Sprintf("no purchase order numbers left for prefix %s", prefix),
			ErrDailySequenceExhausted,
		)
	}

	return formatNumber(prefix, seq+1), nil
}

// ParseNumber validates a stored number.
func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("poNumber", fmt.Errorf("%q is not a valid purchase order number", s))
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}

// Prefix returns the daily part including the -P marker.
func (n Number) Prefix() string {
	i := strings.LastIndex(string(n), numberMarker)
	if i < 0 {
		return ""
	}
	return string(n)[:i+len(numberMarker)]
}

// Sequence returns the numeric suffix, or 0 for a malformed number.
func (n Number) Sequence() int {
	i := strings.LastIndex(string(n), numberMarker)
	if i < 0 {
		return 0
	}
	seq, err := strconv.Atoi(string(n)[i+len(numberMarker):])
	if err != nil {
		return 0
	}
	return seq
}

func (n Number) Validate() error {
	_, err := ParseNumber(string(n))
	return err
}

func formatNumber(prefix string, seq int) Number {
	return Number(fmt.Sprintf("%s%0*d", prefix, sequenceWidth, seq))
}
