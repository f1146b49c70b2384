// Package types implements special types for the Bucketly backend.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Currency is the currency all amounts are denominated in.
//
// Bucketly is single-currency, so this is a package level setting
// instead of a per-resource field.
var Currency = currency.USD

// scale is the number of minor unit digits for Currency, e.g. 2 for USD.
var scale, _ = currency.Standard.Rounding(Currency)

// Money is an exact amount of money, stored as an integer count of the
// currency's minor unit. All arithmetic is integer arithmetic, there is
// no floating point involved at any point.
type Money int64

var (
	ErrMoneyInvalid   = errors.New("the amount is not a valid decimal number")
	ErrMoneyPrecision = fmt.Errorf("the amount has more decimal places than the %s minor unit allows", Currency)
)

// NewMoney returns the Money value for a count of minor units.
func NewMoney(minorUnits int64) Money {
	return Money(minorUnits)
}

// NewMoneyFromUnits returns the Money value for an amount of major and
// minor units, e.g. NewMoneyFromUnits(120, 50) for 120.50.
func NewMoneyFromUnits(major, minor int64) Money {
	f := int64(1)
	for i := 0; i < scale; i++ {
		f *= 10
	}

	if major < 0 {
		return Money(major*f - minor)
	}
	return Money(major*f + minor)
}

// ParseMoney parses external decimal text into Money.
//
// Text with more decimal places than the currency's minor unit is
// rejected, it cannot be represented without rounding.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrMoneyInvalid
	}

	if !d.Equal(d.Truncate(int32(scale))) {
		return 0, ErrMoneyPrecision
	}

	// IntPart is undefined outside the int64 range, so amounts too large
	// to count in minor units are rejected here.
	minorUnits := d.Shift(int32(scale))
	if !minorUnits.BigInt().IsInt64() {
		return 0, ErrMoneyInvalid
	}

	return Money(minorUnits.IntPart()), nil
}

// Cents returns the amount as a count of the currency's minor unit.
func (m Money) Cents() int64 {
	return int64(m)
}

// Decimal returns the amount as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -int32(scale))
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

func (m Money) Neg() Money {
	return -m
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) GreaterThan(other Money) bool {
	return m > other
}

func (m Money) LessThan(other Money) bool {
	return m < other
}

// String returns the amount with its currency tag, e.g. "USD 120.00".
func (m Money) String() string {
	return fmt.Sprintf("%v %s", Currency, m.Decimal().StringFixed(int32(scale)))
}

// MarshalJSON implements the json.Marshaler interface.
// Amounts are rendered as decimal strings with the full minor unit
// precision, e.g. "120.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Decimal().StringFixed(int32(scale)) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both decimal strings and bare JSON numbers are accepted.
func (m *Money) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*m = 0
		return nil
	}

	parsed, err := ParseMoney(value)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Value implements the driver.Valuer interface.
func (m Money) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan implements the sql.Scanner interface.
func (m *Money) Scan(value any) error {
	if value == nil {
		*m = 0
		return nil
	}

	v, ok := value.(int64)
	if !ok {
		return fmt.Errorf("cannot scan %T into Money", value)
	}

	*m = Money(v)
	return nil
}
