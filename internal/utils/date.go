package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateOnly is a calendar date without a time component, stored as a DATE
// column and rendered as "2006-01-02" on the wire.
type DateOnly struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{Time: t}, nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Time.Equal(other.Time)
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	case string:
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into DateOnly", value)
	}
}
