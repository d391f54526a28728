package dateutil

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar day without a time zone. The zero value is not a valid
// date. Date is comparable and can be used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	// Normalize through time.Date so e.g. February 30 wraps the same way
	// the standard library does.
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func Today() Date {
	return FromTime(time.Now())
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return FromTime(t), nil
}

// Time returns the start of day in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.Time(time.UTC).Format(layout)
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) Next() Date {
	return d.AddDays(1)
}

func (d Date) Prev() Date {
	return d.AddDays(-1)
}

// Weekday returns 0 for Sunday through 6 for Saturday.
func (d Date) Weekday() int {
	return int(d.Time(time.UTC).Weekday())
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// LastSundayOnOrBefore returns d itself when d falls on a Sunday.
func LastSundayOnOrBefore(d Date) Date {
	return d.AddDays(-d.Weekday())
}

// Scan implements sql.Scanner, accepting the YYYY-MM-DD string form and
// driver time values.
func (d *Date) Scan(value any) error {
	switch t := value.(type) {
	case string:
		parsed, err := Parse(t)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(t))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case time.Time:
		*d = FromTime(t)
		return nil
	}

	return fmt.Errorf("cannot scan invalid data type %T into Date", value)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
