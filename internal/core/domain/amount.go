package domain

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	msgAmountNotPositive = "amount must be a positive number"
	msgAmountTooLarge    = "amount must not exceed 1000000000000000"
	msgAmountTooSmall    = "amount is too small"
)

// maxAmount keeps every amount, and any sum of them a store can hold,
// finite when rendered as a JSON number.
var maxAmount = decimal.New(1, 15)

// ParseAmount converts a decoded JSON value into a decimal. Absent values,
// empty strings and numeric zero come back as zero with no error so the
// caller can report them as missing. Non-numeric input and non-positive
// numeric strings fail with a validation error, as do amounts that cannot
// be rendered as a non-zero JSON number.
func ParseAmount(v any) (decimal.Decimal, error) {
	d, err := parseAmountValue(v)
	if err != nil {
		return decimal.Zero, err
	}
	return checkAmountRange(d)
}

func parseAmountValue(v any) (decimal.Decimal, error) {
	switch a := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return a, nil
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return decimal.Zero, apperrors.NewValidationError(msgAmountNotPositive)
		}
		return decimal.NewFromFloat(a), nil
	case float32:
		return decimal.NewFromFloat32(a), nil
	case int:
		return decimal.NewFromInt(int64(a)), nil
	case int64:
		return decimal.NewFromInt(a), nil
	case json.Number:
		return parseAmountString(a.String())
	case string:
		return parseAmountString(a)
	default:
		return decimal.Zero, apperrors.NewValidationError(msgAmountNotPositive)
	}
}

func parseAmountString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError(msgAmountNotPositive)
	}
	return d, nil
}

func checkAmountRange(d decimal.Decimal) (decimal.Decimal, error) {
	if d.GreaterThan(maxAmount) {
		return decimal.Zero, apperrors.NewValidationError(msgAmountTooLarge)
	}
	// positive but below the smallest normal float64
	if d.IsPositive() && d.InexactFloat64() < 0x1p-1022 {
		return decimal.Zero, apperrors.NewValidationError(msgAmountTooSmall)
	}
	return d, nil
}

// ParsePatchAmount is ParseAmount for updates, where a supplied amount must
// be positive even if it is zero or blank.
func ParsePatchAmount(v any) (decimal.Decimal, error) {
	d, err := ParseAmount(v)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError(msgAmountNotPositive)
	}
	return d, nil
}
