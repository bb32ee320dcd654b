package matapan

import (
	"encoding/json"
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// MonthFormat is the format used to represent months as strings, "YYYY-MM".
const MonthFormat = "2006-01"

// Month represents a calendar month, the identity key of a monthly document.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// time returns a time.Time that is a canonical representation of that month.
func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// Year returns the calendar year, the key used by the yearly rollup.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// Before reports whether the month m is strictly before x.
func (m Month) Before(x Month) bool { return m.time().Before(x.time()) }

// After reports whether the month m is strictly after x.
func (m Month) After(x Month) bool { return m.time().After(x.time()) }

// Add returns a new Month with the given number of months added.
func (m Month) Add(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String formats the month in its standard "YYYY-MM" form.
func (m Month) String() string { return m.time().Format(MonthFormat) }

// ThisMonth returns the current calendar month.
func ThisMonth() Month { return NewMonth(time.Now().Year(), time.Now().Month()) }

// ParseMonth parses a Month from a string. It is lenient and accepts
// formats like "2025-7" in addition to the canonical "2025-07".
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
