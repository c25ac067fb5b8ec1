package types

import (
	"strings"
	"time"
)

// Date is the date of a transaction.
//
// It is read from "YYYY-MM-DD" as well as RFC3339 timestamps. Dates without
// a time are midnight UTC.
type Date time.Time

// Time returns the date as time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// An empty string and null keep the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	layout := time.RFC3339
	if datePattern.MatchString(value) {
		layout = time.DateOnly
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return err
	}

	*d = Date(t)
	return nil
}
