// Package types implements special types for the ledger.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The zero month is marshalled as null, all others as "YYYY-MM".
func (m Month) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a string in a format accepted by parse.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	month, err := parse(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler so that months
// can be used in query parameters.
func (m *Month) UnmarshalParam(param string) error {
	if param == "" {
		*m = Month{}
		return nil
	}

	month, err := parse(param)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

var (
	monthPattern = regexp.MustCompile("^[0-9]{4}-[0-9]{2}$")
	datePattern  = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")
)

// parse accepts "YYYY-MM", "YYYY-MM-DD" and RFC3339 timestamps. Everything
// except the year and month is ignored.
func parse(value string) (Month, error) {
	// This is the default pattern
	layout := time.RFC3339
	switch {
	case monthPattern.MatchString(value):
		layout = "2006-01"
	case datePattern.MatchString(value):
		layout = "2006-01-02"
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return Month{}, err
	}

	return NewMonth(t.Year(), t.Month()), nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Start returns the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End returns the first instant of the following month.
func (m Month) End() time.Time {
	return time.Time(m.AddDate(0, 1))
}
