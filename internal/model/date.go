// internal/model/date.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date carried as a YYYY-MM-DD string. It scans from
// both DATE columns (time.Time) and text storage, so the same models work
// against postgres and the sqlite test store.
type Date string

// Scan implements the sql.Scanner interface
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(time.DateOnly))
	case string:
		d.truncate(v)
	case []byte:
		d.truncate(string(v))
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, d)
	}
	return nil
}

// truncate keeps the date part of a stored datetime string.
func (d *Date) truncate(s string) {
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}
	*d = Date(s)
}

// Value implements the driver.Valuer interface
func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d Date) String() string {
	return string(d)
}

// DateOf formats a point in time as a Date.
func DateOf(t time.Time) Date {
	return Date(t.Format(time.DateOnly))
}

// ParseDate validates s against the YYYY-MM-DD layout.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}
