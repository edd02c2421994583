package tinyhttp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Params carries captured path values into a handler. Keys are
// case-sensitive but hyphen-insensitive: "my-key" and "mykey" name
// the same entry. A bag lives for one handler invocation.
type Params struct {
	values map[string]string
}

func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

func paramKey(key string) string {
	return strings.ReplaceAll(key, "-", "")
}

func (p *Params) Set(key, value string) {
	p.values[paramKey(key)] = value
}

// Get returns the value stored under key. Absent keys yield a
// valueless placeholder: its String is "" and its Bool is false.
func (p *Params) Get(key string) Value {
	raw, ok := p.values[paramKey(key)]
	return Value{key: key, raw: raw, present: ok}
}

func (p *Params) Len() int {
	return len(p.values)
}

// Value is one captured path value with on-demand conversion.
// Conversions other than String and Bool return a format error when
// the raw text does not parse as the requested type; that error is
// the caller's to handle, since asking for the wrong type is a
// programming mistake, not bad input.
type Value struct {
	key     string
	raw     string
	present bool
}

func (v Value) Present() bool {
	return v.present
}

// String returns the raw captured text, or "" for an absent value.
func (v Value) String() string {
	return v.raw
}

// Bool never fails: absent or empty is false, and anything non-empty
// that does not parse as a boolean counts as true.
func (v Value) Bool() bool {
	if !v.present || v.raw == "" {
		return false
	}
	b, err := strconv.ParseBool(v.raw)
	if err != nil {
		return true
	}
	return b
}

func (v Value) Int() (int, error) {
	n, err := strconv.Atoi(v.raw)
	if err != nil {
		return 0, v.convertErr("int", err)
	}
	return n, nil
}

func (v Value) Int64() (int64, error) {
	n, err := strconv.ParseInt(v.raw, 10, 64)
	if err != nil {
		return 0, v.convertErr("int64", err)
	}
	return n, nil
}

func (v Value) Float32() (float32, error) {
	f, err := strconv.ParseFloat(v.raw, 32)
	if err != nil {
		return 0, v.convertErr("float32", err)
	}
	return float32(f), nil
}

func (v Value) Float64() (float64, error) {
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, v.convertErr("float64", err)
	}
	return f, nil
}

func (v Value) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.raw)
	if err != nil {
		return decimal.Decimal{}, v.convertErr("decimal", err)
	}
	return d, nil
}

func (v Value) UUID() (uuid.UUID, error) {
	u, err := uuid.Parse(v.raw)
	if err != nil {
		return uuid.Nil, v.convertErr("uuid", err)
	}
	return u, nil
}

// timeLayouts are tried in order by Time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (v Value) Time() (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v.raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, v.convertErr("time", lastErr)
}

func (v Value) Duration() (time.Duration, error) {
	d, err := time.ParseDuration(v.raw)
	if err != nil {
		return 0, v.convertErr("duration", err)
	}
	return d, nil
}

func (v Value) convertErr(target string, err error) error {
	if !v.present {
		return fmt.Errorf("No value for parameter %q", v.key)
	}
	return fmt.Errorf("Cannot convert parameter %q=%q to %s: %v", v.key, v.raw, target, err)
}
