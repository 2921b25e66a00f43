package dto

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// createdAt values arrive either ISO-formatted or space separated.
var dateTimeInputLayouts = []string{DateTimeLayout, "2006-01-02 15:04:05"}

// LocalDate is a calendar date without zone, encoded as 2006-01-02.
type LocalDate time.Time

func NewLocalDate(t time.Time) LocalDate {
	return LocalDate(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

func (d LocalDate) Time() time.Time {
	return time.Time(d)
}

func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.Time().Format(DateLayout)), nil
}

func (d *LocalDate) UnmarshalText(text []byte) error {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid date %q, expected yyyy-MM-dd", string(text))
	}
	*d = LocalDate(parsed)
	return nil
}

// LocalDateTime is a timestamp without zone.
type LocalDateTime time.Time

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime(t)
}

func (d LocalDateTime) Time() time.Time {
	return time.Time(d)
}

func (d LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(d.Time().Format(DateTimeLayout)), nil
}

func (d *LocalDateTime) UnmarshalText(text []byte) error {
	value := strings.TrimSpace(string(text))
	for _, layout := range dateTimeInputLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			*d = LocalDateTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("invalid date-time %q, expected yyyy-MM-dd HH:mm:ss", value)
}

func localDatePtr(t *time.Time) *LocalDate {
	if t == nil {
		return nil
	}
	d := NewLocalDate(*t)
	return &d
}

func localDateTimePtr(t *time.Time) *LocalDateTime {
	if t == nil {
		return nil
	}
	d := NewLocalDateTime(*t)
	return &d
}

func timePtr(d *LocalDate) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}
