// Package jsonx holds JSON value types for documents written by the browser
// client, which stores ids and timestamps as numbers and decimals as strings.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var null = []byte("null")

// ID decodes from a JSON string or number. Numeric ids keep their digits.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Time decodes from an RFC 3339 string or from epoch milliseconds, given
// either as a number or as a string of digits.
type Time time.Time

func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		return nil
	}

	raw := b
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
			*t = Time(parsed)
			return nil
		}
		raw = []byte(s)
	}

	ms, err := parseMillis(string(raw))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", b, err)
	}
	*t = Time(time.UnixMilli(ms))
	return nil
}

// Std returns the value as a time.Time.
func (t Time) Std() time.Time {
	return time.Time(t)
}

// Ptr returns nil for a nil or zero t.
func (t *Time) Ptr() *time.Time {
	if t == nil || time.Time(*t).IsZero() {
		return nil
	}
	v := time.Time(*t)
	return &v
}

func parseMillis(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// Int decodes from a JSON number or a numeric string. An empty string is zero.
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*i = 0
			return nil
		}
		b = []byte(s)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", b, err)
	}
	*i = Int(f)
	return nil
}

// OptionalDecimal decodes a decimal that may be stored as "" or null, both of
// which leave Value nil.
type OptionalDecimal struct {
	Value *decimal.Decimal
}

func (o *OptionalDecimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) || bytes.Equal(b, []byte(`""`)) {
		o.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

// Fixed2 is a decimal that always encodes with two decimal places.
type Fixed2 struct {
	decimal.Decimal
}

func NewFixed2(d decimal.Decimal) Fixed2 {
	return Fixed2{Decimal: d}
}

func (f Fixed2) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.StringFixed(2))), nil
}

// Fixed1 is a decimal that always encodes with one decimal place.
type Fixed1 struct {
	decimal.Decimal
}

func NewFixed1(d decimal.Decimal) Fixed1 {
	return Fixed1{Decimal: d}
}

func (f Fixed1) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.StringFixed(1))), nil
}
