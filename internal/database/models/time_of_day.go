package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	apperrors "caregiver-shifts-backend/internal/errors"
)

// MinutesPerDay is the length of the day axis used for shift geometry.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time without a date, stored as minutes since midnight.
// It is persisted and serialized as "HH:MM".
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from hour and minute
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "H:MM" or "HH:MM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[1]) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 ||
		!allDigits(parts[0]) || !allDigits(parts[1]) {
		return 0, apperrors.NewValidationError("time", fmt.Sprintf("%q is not a valid HH:MM time", s))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, apperrors.NewValidationError("time", fmt.Sprintf("%q has an invalid hour", s))
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, apperrors.NewValidationError("time", fmt.Sprintf("%q has an invalid minute", s))
	}
	return NewTimeOfDay(h, m), nil
}

// allDigits rejects signs and spaces that strconv.Atoi would accept
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Minutes returns minutes since midnight
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Hour returns the hour component
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// IsValid reports whether t lies within a single day
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && int(t) < MinutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Value implements driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner
func (t *TimeOfDay) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes as "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DurationMinutes returns the length of the window from start to end.
// An end at or before start wraps past midnight, so equal values span a full day.
func DurationMinutes(start, end TimeOfDay) int {
	if end > start {
		return int(end - start)
	}
	return MinutesPerDay - int(start) + int(end)
}

// CrossesMidnight reports whether a window ending at end belongs partly to the next day.
func CrossesMidnight(start, end TimeOfDay) bool {
	return end <= start
}
