// Package form turns raw submitted strings into typed values once, at the workflow boundary.
package form

import (
	"strings"
	"time"

	"github.com/muhammadheryan/drims/utils/clock"
	"github.com/shopspring/decimal"
)

// Decimal parses a quantity or amount. Blank input yields zero and present=false.
func Decimal(raw string) (value decimal.Decimal, present bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, true, err
	}
	return d, true, nil
}

// Date parses a YYYY-MM-DD date. Blank input yields nil.
func Date(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := clock.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Text trims and upper-cases free text. Blank input yields nil.
func Text(raw string) *string {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return nil
	}
	return &raw
}
