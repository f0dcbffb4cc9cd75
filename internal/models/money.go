package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is the shared amount type, fixed to 2 decimal places. It marshals as
// a string ("49.99") and accepts either a string or a number on input, so
// client payloads that send prices as numbers still validate.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates an amount from a decimal.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// NewMoneyFromString parses an amount string such as "49.99".
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d.Round(2)}, nil
}

// MustMoney parses an amount string, panicking on malformed input. Intended
// for seed data and tests.
func MustMoney(value string) Money {
	m, err := NewMoneyFromString(value)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalJSON renders a fixed 2-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON parses an amount from a string or a number.
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// Value implements database writing.
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan implements database reading.
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String returns the fixed 2-decimal form.
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}

// Rating is the derived score column on products and vendors. It shares the
// amount representation so it serializes as "4.80" rather than a float.
type Rating struct {
	Money
}

// NewRatingFromString parses a rating string such as "4.8".
func NewRatingFromString(value string) (Rating, error) {
	m, err := NewMoneyFromString(value)
	if err != nil {
		return Rating{}, err
	}
	return Rating{Money: m}, nil
}

// MustRating parses a rating string, panicking on malformed input.
func MustRating(value string) Rating {
	return Rating{Money: MustMoney(value)}
}
