// Package localtime handles the backend's naive local date-times
// ("2006-01-02T15:04:05", no offset).
//
// A DateTime decoded from the backend carries wall-clock fields only. They are
// held in UTC so that nothing ever shifts them. Code that needs an instant binds
// them to a location explicitly.
package localtime

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"venue-booking-web/internal/pkg/errs"
)

// Layout is the only shape the backend accepts for outgoing date-times.
const Layout = "2006-01-02T15:04:05"

// formInputLayout is what an <input type="datetime-local"> submits.
const formInputLayout = "2006-01-02T15:04"

// wall carries offset-less values without converting them.
var wall = time.UTC

// Format renders t's wall-clock fields in Layout. The location of t is not converted.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse interprets an offset-less string as wall-clock time in loc.
// Strings that carry an offset (RFC3339) keep their instant.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(Layout, s, loc); err == nil {
		return t, nil
	}
	// fractional seconds from LocalDateTime serialization
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, errs.Mark(errs.Newf("cannot parse %q as local date-time", s), errs.ErrInvalidDateTime)
}

// ParseFormInput reads a datetime-local form value as wall-clock fields,
// padding missing seconds.
func ParseFormInput(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	if len(s) == len(formInputLayout) {
		s += ":00"
	}
	t, err := Parse(s, wall)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Time: t}, nil
}

// DateTime is a wall-clock time exchanged with the backend without an offset.
type DateTime struct {
	time.Time
}

func New(t time.Time) DateTime {
	return DateTime{Time: t}
}

// Now is the current wall-clock time in loc.
func Now(now time.Time, loc *time.Location) DateTime {
	if loc == nil {
		loc = time.Local
	}
	return DateTime{Time: now.In(loc)}
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return Format(d.Time)
}

// Display is the human format used in views.
func (d DateTime) Display() string {
	if d.IsZero() {
		return "–"
	}
	return d.Time.Format("Jan 2, 2006, 3:04 PM")
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(Format(d.Time))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = DateTime{}
		return nil
	}
	// Spring may serialize LocalDateTime as [y,m,d,h,mi,s]
	if len(b) > 0 && b[0] == '[' {
		var parts []int
		if err := json.Unmarshal(b, &parts); err != nil {
			return errs.Mark(err, errs.ErrInvalidDateTime)
		}
		for len(parts) < 6 {
			parts = append(parts, 0)
		}
		d.Time = time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], 0, wall)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errs.Mark(err, errs.ErrInvalidDateTime)
	}
	if s == "" {
		*d = DateTime{}
		return nil
	}
	t, err := Parse(s, wall)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
