package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"flowerdelivery/internal/pkg/errs"
)

// DatePrefixLayout is the time layout of the order number date prefix (YYMMDD).
const DatePrefixLayout = "060102"

// minSequenceDigits is the zero-padding width of the order number sequence.
const minSequenceDigits = 3

// ErrOrderNumberIsNotConstructed indicates a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errors.New("OrderNumber must be created via NewOrderNumber or ParseOrderNumber")

// OrderNumber is the delivery identifier "YYMMDD-NNN": the creation date
// followed by a per-day sequence starting at 1. Sequences above 999 keep
// growing in width ("240101-1000").
type OrderNumber struct {
	prefix   string
	sequence int
}

// DatePrefix formats t as an order number prefix in t's own location.
func DatePrefix(t time.Time) string {
	return t.Format(DatePrefixLayout)
}

// NewOrderNumber builds an order number from a YYMMDD prefix and a positive sequence.
func NewOrderNumber(prefix string, sequence int) (OrderNumber, error) {
	if err := validatePrefix(prefix); err != nil {
		return OrderNumber{}, err
	}
	if sequence < 1 {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("order number sequence", sequence, 1, "unbounded")
	}
	return OrderNumber{prefix: prefix, sequence: sequence}, nil
}

// ParseOrderNumber parses "YYMMDD-NNN". The suffix must be all digits and at least three wide.
func ParseOrderNumber(s string) (OrderNumber, error) {
	prefix, suffix, ok := strings.Cut(s, "-")
	if !ok {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q has no sequence suffix", s))
	}
	if len(suffix) < minSequenceDigits || strings.TrimLeft(suffix, "0123456789") != "" {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q has a malformed sequence", s))
	}
	sequence, err := strconv.Atoi(suffix)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return NewOrderNumber(prefix, sequence)
}

// ValidateDatePrefix checks that prefix is a YYMMDD calendar date.
func ValidateDatePrefix(prefix string) error {
	return validatePrefix(prefix)
}

func validatePrefix(prefix string) error {
	if len(prefix) != len(DatePrefixLayout) {
		return errs.NewValueIsInvalidErrorWithCause("order number prefix",
			fmt.Errorf("%q is not YYMMDD", prefix))
	}
	if _, err := time.Parse(DatePrefixLayout, prefix); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order number prefix", err)
	}
	return nil
}

func (n OrderNumber) String() string {
	return fmt.Sprintf("%s-%0*d", n.prefix, minSequenceDigits, n.sequence)
}

// Prefix returns the YYMMDD part.
func (n OrderNumber) Prefix() string {
	return n.prefix
}

// Sequence returns the numeric suffix.
func (n OrderNumber) Sequence() int {
	return n.sequence
}

func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.prefix == other.prefix && n.sequence == other.sequence
}

func (n OrderNumber) Validate() error {
	if n.prefix == "" || n.sequence < 1 {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
