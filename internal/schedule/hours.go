package schedule

import (
	"sort"
	"time"

	"caregiver-shifts-backend/internal/database/models"

	"github.com/shopspring/decimal"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	secondsPerHour = decimal.NewFromInt(3600)
)

// CaregiverHours is one row of the weekly hours report
type CaregiverHours struct {
	CaregiverID    string  `json:"caregiver_id"`
	CaregiverName  string  `json:"caregiver_name"`
	ShiftCount     int     `json:"shift_count"`
	ScheduledHours float64 `json:"scheduled_hours"`
	ActualHours    float64 `json:"actual_hours"`
}

// Variance returns actual minus scheduled hours, rounded to one decimal
func (h CaregiverHours) Variance() float64 {
	v := decimal.NewFromFloat(h.ActualHours).Sub(decimal.NewFromFloat(h.ScheduledHours))
	return roundTenth(v)
}

// roundTenth rounds half away from zero, which is round-half-up for the
// non-negative durations handled here. Working on decimals keeps exact
// midpoints such as 7.75 from being misrounded by binary floating point.
func roundTenth(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}

// RoundHours rounds h to one decimal, half away from zero
func RoundHours(h float64) float64 {
	return roundTenth(decimal.NewFromFloat(h))
}

// HoursBetween returns the elapsed hours from start to end rounded to one decimal.
// A negative interval counts as zero.
func HoursBetween(start, end time.Time) float64 {
	secs := int64(end.Sub(start) / time.Second)
	if secs <= 0 {
		return 0
	}
	return roundTenth(decimal.NewFromInt(secs).Div(secondsPerHour))
}

// ScheduledHours returns the length of a scheduled window in hours rounded to one decimal
func ScheduledHours(start, end models.TimeOfDay) float64 {
	mins := decimal.NewFromInt(int64(models.DurationMinutes(start, end)))
	return roundTenth(mins.Div(minutesPerHour))
}

// WeekBounds returns the Monday..Sunday week containing day
func WeekBounds(day time.Time) (time.Time, time.Time) {
	d := models.DateOf(day)
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// Aggregate sums scheduled and actual hours per caregiver for shifts dated
// within [weekStart, weekEnd]. Cancelled shifts are skipped and only completed
// shifts contribute actual hours.
func Aggregate(shifts []models.Shift, weekStart, weekEnd time.Time) []CaregiverHours {
	from := models.DateOf(weekStart)
	to := models.DateOf(weekEnd)

	type acc struct {
		row       CaregiverHours
		scheduled decimal.Decimal
		actual    decimal.Decimal
	}
	groups := make(map[string]*acc)

	for i := range shifts {
		s := &shifts[i]
		day := models.DateOf(s.Date)
		if day.Before(from) || day.After(to) || s.State == models.ShiftStateCancelled {
			continue
		}

		g, ok := groups[s.CaregiverID]
		if !ok {
			g = &acc{
				row:       CaregiverHours{CaregiverID: s.CaregiverID, CaregiverName: s.CaregiverName},
				scheduled: decimal.Zero,
				actual:    decimal.Zero,
			}
			groups[s.CaregiverID] = g
		}
		if g.row.CaregiverName == "" {
			g.row.CaregiverName = s.CaregiverName
		}

		g.row.ShiftCount++
		g.scheduled = g.scheduled.Add(decimal.NewFromFloat(s.ScheduledHours))
		if s.State == models.ShiftStateCompleted {
			g.actual = g.actual.Add(decimal.NewFromFloat(s.ActualHours))
		}
	}

	rows := make([]CaregiverHours, 0, len(groups))
	for _, g := range groups {
		g.row.ScheduledHours = roundTenth(g.scheduled)
		g.row.ActualHours = roundTenth(g.actual)
		rows = append(rows, g.row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CaregiverName != rows[j].CaregiverName {
			return rows[i].CaregiverName < rows[j].CaregiverName
		}
		return rows[i].CaregiverID < rows[j].CaregiverID
	})
	return rows
}
