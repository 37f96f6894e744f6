package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidMoneyString = errors.New("invalid money string")
)

// Money is an amount in integer minor currency units (cents). All arithmetic
// stays in integers; the fractional notation exists only at the parse and
// format boundaries.
type Money int64

// ParseMoney converts a decimal string like "12.5" or "12.50" to Money.
// The fractional part is padded to two digits and anything beyond two digits
// is truncated, so "12.5" -> 1250 and "12.509" -> 1250.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidMoneyString
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	major := s
	minor := ""
	if idx := strings.Index(s, "."); idx >= 0 {
		major = s[:idx]
		minor = s[idx+1:]
	}

	// The sign was consumed above, so both parts must be pure digits.
	// A stray sign inside either part would otherwise survive ParseInt.
	if !isDigits(major) || !isDigits(minor) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoneyString, s)
	}

	if major == "" {
		major = "0"
	}

	for len(minor) < 2 {
		minor += "0"
	}
	minor = minor[:2]

	majorPart, err := strconv.ParseInt(major, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoneyString, s)
	}

	minorPart, err := strconv.ParseInt(minor, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoneyString, s)
	}

	cents := majorPart*100 + minorPart
	if negative {
		cents = -cents
	}

	return Money(cents), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MoneyFromCents wraps a raw cent count.
func MoneyFromCents(cents int64) Money {
	return Money(cents)
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m > other
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m < other
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// IsNegative reports whether m is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// String formats the amount as major.minor, e.g. 1250 -> "12.50".
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Display formats the amount with a currency symbol, e.g. "$12.50".
func (m Money) Display() string {
	if m < 0 {
		return "-$" + (-m).String()
	}
	return "$" + m.String()
}

// Value implements driver.Valuer so gorm stores Money as an integer column.
func (m Money) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value interface{}) error {
	if value == nil {
		*m = 0
		return nil
	}

	switch v := value.(type) {
	case int64:
		*m = Money(v)
	case int:
		*m = Money(v)
	case float64:
		*m = Money(int64(v))
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
	return nil
}
