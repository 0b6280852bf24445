package dates

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for date-only fields (yyyy-MM-dd).
	DateLayout = "2006-01-02"
	// LocalDateTimeLayout is the wire format for timestamps, local time without zone.
	LocalDateTimeLayout = "2006-01-02T15:04:05"
)

// ParseError reports a value that does not match a wire layout. Callers can
// detect it to attach the failure to the offending field.
type ParseError struct {
	Value  string
	Layout string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Value, e.Layout)
}

// Date is a date-only value. The zero value marshals to JSON null.
type Date struct {
	time.Time
}

// NewDate truncates t to date-only granularity.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date at date-only granularity.
func Today() Date {
	return NewDate(time.Now())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(`"`+DateLayout+`"`, s)
	if err != nil {
		return &ParseError{Value: strings.Trim(s, `"`), Layout: DateLayout}
	}
	*d = Date{Time: t}
	return nil
}

// Before reports strict ordering at date granularity.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// Value implements driver.Valuer so pgx can bind Date parameters.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements sql.Scanner for nullable date columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// LocalDateTime is a timestamp serialized without a zone offset,
// e.g. 2025-03-14T09:26:53.
type LocalDateTime struct {
	time.Time
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(LocalDateTimeLayout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*t = LocalDateTime{}
		return nil
	}
	parsed, err := time.Parse(`"`+LocalDateTimeLayout+`"`, s)
	if err != nil {
		return &ParseError{Value: strings.Trim(s, `"`), Layout: LocalDateTimeLayout}
	}
	*t = LocalDateTime{Time: parsed}
	return nil
}

func (t *LocalDateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = LocalDateTime{}
		return nil
	case time.Time:
		*t = LocalDateTime{Time: v}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LocalDateTime", src)
	}
}
