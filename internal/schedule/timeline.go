package schedule

import (
	"sort"
	"time"

	"caregiver-shifts-backend/internal/database/models"

	"github.com/google/uuid"
)

// Segment is a vertical slice of a day grid. Top and Height are fractions of
// the 1440-minute axis; DayOffset is 0 for the shift's own date and 1 for the
// continuation rendered on the following date.
type Segment struct {
	Top             float64 `json:"top"`
	Height          float64 `json:"height"`
	CrossesMidnight bool    `json:"crosses_midnight"`
	DayOffset       int     `json:"day_offset"`
}

// Layout maps a time-of-day window onto the day grid. A window whose end is at
// or before its start spills into the next day and yields a continuation segment.
func Layout(start, end models.TimeOfDay) []Segment {
	return layoutMinutes(start.Minutes(), models.DurationMinutes(start, end))
}

func layoutMinutes(start, duration int) []Segment {
	const day = float64(models.MinutesPerDay)

	stop := start + duration
	if stop < models.MinutesPerDay {
		return []Segment{{
			Top:    float64(start) / day,
			Height: float64(duration) / day,
		}}
	}

	segments := []Segment{{
		Top:             float64(start) / day,
		Height:          float64(models.MinutesPerDay-start) / day,
		CrossesMidnight: true,
	}}
	if rest := stop - models.MinutesPerDay; rest > 0 {
		segments = append(segments, Segment{
			Top:             0,
			Height:          float64(rest) / day,
			CrossesMidnight: true,
			DayOffset:       1,
		})
	}
	return segments
}

// LayoutShift lays out a shift using its actual times when they are recorded
// and start on the anchoring date; otherwise the scheduled window is used.
// An active shift is drawn from its actual start to the scheduled end.
func LayoutShift(s *models.Shift, loc *time.Location) []Segment {
	if loc == nil {
		loc = time.UTC
	}
	if s.ActualStart == nil {
		return Layout(s.ScheduledStart, s.ScheduledEnd)
	}

	y, m, d := s.Date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)
	startMin := int(s.ActualStart.In(loc).Sub(midnight) / time.Minute)
	if startMin < 0 || startMin >= models.MinutesPerDay {
		return Layout(s.ScheduledStart, s.ScheduledEnd)
	}

	if s.ActualEnd == nil {
		start := models.TimeOfDay(startMin)
		if !s.CrossesMidnight() && start >= s.ScheduledEnd {
			return layoutMinutes(startMin, 0)
		}
		return Layout(start, s.ScheduledEnd)
	}

	duration := int(s.ActualEnd.Sub(*s.ActualStart) / time.Minute)
	if duration < 0 {
		duration = 0
	}
	// one wrap at most; longer stays are clipped to the next day's grid
	if limit := 2*models.MinutesPerDay - startMin; duration > limit {
		duration = limit
	}
	return layoutMinutes(startMin, duration)
}

// PlacedSegment is a segment positioned on a specific calendar day
type PlacedSegment struct {
	Segment
	ShiftID       uuid.UUID         `json:"shift_id"`
	CaregiverID   string            `json:"caregiver_id"`
	CaregiverName string            `json:"caregiver_name"`
	ShiftType     models.ShiftType  `json:"shift_type"`
	State         models.ShiftState `json:"state"`
	Start         string            `json:"start"`
	End           string            `json:"end"`
	Continuation  bool              `json:"continuation"`
}

// DayView holds all segments visible on one calendar day
type DayView struct {
	Date     string          `json:"date"`
	Segments []PlacedSegment `json:"segments"`
}

// BuildDayViews renders every day in [from, to]. A day shows segments of the
// shifts anchored on it plus the continuations of shifts anchored the day before.
func BuildDayViews(shifts []models.Shift, from, to time.Time, loc *time.Location) []DayView {
	first := models.DateOf(from)
	last := models.DateOf(to)
	if last.Before(first) {
		return []DayView{}
	}

	byDay := make(map[string][]PlacedSegment)
	for i := range shifts {
		s := &shifts[i]
		for _, seg := range LayoutShift(s, loc) {
			day := models.DateOf(s.Date).AddDate(0, 0, seg.DayOffset)
			if day.Before(first) || day.After(last) {
				continue
			}
			key := day.Format("2006-01-02")
			byDay[key] = append(byDay[key], PlacedSegment{
				Segment:       seg,
				ShiftID:       s.ID,
				CaregiverID:   s.CaregiverID,
				CaregiverName: s.CaregiverName,
				ShiftType:     s.ShiftType,
				State:         s.State,
				Start:         s.ScheduledStart.String(),
				End:           s.ScheduledEnd.String(),
				Continuation:  seg.DayOffset > 0,
			})
		}
	}

	views := make([]DayView, 0)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		segs := byDay[key]
		if segs == nil {
			segs = []PlacedSegment{}
		}
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].Top < segs[j].Top })
		views = append(views, DayView{Date: key, Segments: segs})
	}
	return views
}
