// Package seed loads caregivers and shifts from YAML files. Shifts go through
// the shift service so the occupancy guard and the caregiver directory apply.
package seed

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/logger"
	"caregiver-shifts-backend/internal/repository"
	"caregiver-shifts-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// CaregiverData is one caregiver in a caregivers YAML file
type CaregiverData struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email,omitempty"`
	Phone       string `yaml:"phone,omitempty"`
	Active      *bool  `yaml:"active,omitempty"`
}

// ShiftData is one shift in a shifts YAML file. Start and end may be omitted for preset types.
type ShiftData struct {
	PatientID   string `yaml:"patient_id"`
	CaregiverID string `yaml:"caregiver_id"`
	Date        string `yaml:"date"`
	ShiftType   string `yaml:"shift_type"`
	Start       string `yaml:"start,omitempty"`
	End         string `yaml:"end,omitempty"`
	Confirmed   bool   `yaml:"confirmed,omitempty"`
}

// CaregiversFile represents the structure of caregivers YAML files
type CaregiversFile struct {
	Caregivers []CaregiverData `yaml:"caregivers"`
}

// ShiftsFile represents the structure of shifts YAML files
type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

// Data is everything read from a data directory
type Data struct {
	Caregivers []CaregiverData
	Shifts     []ShiftData
}

// Result counts what Apply did
type Result struct {
	CaregiversUpserted int
	ShiftsCreated      int
	ShiftsSkipped      int
}

// Load walks dataDir and reads every *.yaml file whose path mentions
// "caregivers" or "shifts".
func Load(dataDir string) (*Data, error) {
	data := &Data{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name := filepath.Base(path)
		switch {
		case strings.Contains(name, "caregivers"):
			var file CaregiversFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Caregivers = append(data.Caregivers, file.Caregivers...)
		case strings.Contains(name, "shifts"):
			var file ShiftsFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Shifts = append(data.Shifts, file.Shifts...)
		}
		return nil
	})
	return data, err
}

// Loader writes seed data through the caregiver store and the shift service
type Loader struct {
	caregivers repository.CaregiverRepositoryInterface
	shifts     repository.ShiftRepositoryInterface
	service    service.ShiftServiceInterface
	actor      *auth.Principal
}

// NewLoader creates a loader acting as a supervisor named actorID
func NewLoader(caregivers repository.CaregiverRepositoryInterface, shifts repository.ShiftRepositoryInterface, svc service.ShiftServiceInterface, actorID string) *Loader {
	return &Loader{
		caregivers: caregivers,
		shifts:     shifts,
		service:    svc,
		actor:      &auth.Principal{Subject: actorID, Name: "seed", Role: auth.RoleSupervisor},
	}
}

// Apply upserts caregivers, then schedules shifts. Shifts identical to an
// existing live shift and shifts refused by the occupancy guard are skipped,
// so Apply can be rerun on the same data.
func (l *Loader) Apply(ctx context.Context, data *Data) (*Result, error) {
	res := &Result{}
	log := logger.WithContext(ctx)

	for _, c := range data.Caregivers {
		active := true
		if c.Active != nil {
			active = *c.Active
		}
		err := l.caregivers.Upsert(ctx, &models.Caregiver{
			ID:          c.ID,
			DisplayName: c.DisplayName,
			Email:       c.Email,
			Phone:       c.Phone,
			Active:      active,
		})
		if err != nil {
			return res, fmt.Errorf("upsert caregiver %s: %w", c.ID, err)
		}
		res.CaregiversUpserted++
	}

	for _, sd := range data.Shifts {
		req, err := toRequest(sd)
		if err != nil {
			return res, err
		}

		exists, err := l.exists(ctx, req)
		if err != nil {
			return res, err
		}
		if exists {
			res.ShiftsSkipped++
			continue
		}

		shift, err := l.service.Schedule(ctx, l.actor, req)
		if apperrors.IsOccupancyConflict(err) {
			log.WithField("patient_id", sd.PatientID).WithField("date", sd.Date).Warn("Seed shift skipped: " + err.Error())
			res.ShiftsSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("schedule %s %s for %s: %w", sd.ShiftType, sd.Date, sd.PatientID, err)
		}
		if sd.Confirmed {
			if _, err := l.service.Confirm(ctx, l.actor, shift.ID); err != nil {
				return res, fmt.Errorf("confirm shift %s: %w", shift.ID, err)
			}
		}
		res.ShiftsCreated++
	}

	log.WithFields(map[string]interface{}{
		"caregivers": res.CaregiversUpserted,
		"created":    res.ShiftsCreated,
		"skipped":    res.ShiftsSkipped,
	}).Info("Seed data applied")
	return res, nil
}

func toRequest(sd ShiftData) (*service.ScheduleShiftRequest, error) {
	req := &service.ScheduleShiftRequest{
		PatientID:   sd.PatientID,
		CaregiverID: sd.CaregiverID,
		Date:        sd.Date,
		ShiftType:   models.ShiftType(sd.ShiftType),
	}
	if sd.Start != "" {
		t, err := models.ParseTimeOfDay(sd.Start)
		if err != nil {
			return nil, err
		}
		req.ScheduledStart = &t
	}
	if sd.End != "" {
		t, err := models.ParseTimeOfDay(sd.End)
		if err != nil {
			return nil, err
		}
		req.ScheduledEnd = &t
	}
	return req, nil
}

// exists reports whether a live shift with the same patient, caregiver, date,
// type and start is already stored.
func (l *Loader) exists(ctx context.Context, req *service.ScheduleShiftRequest) (bool, error) {
	date, err := service.ParseDate("date", req.Date)
	if err != nil {
		return false, err
	}
	stored, err := l.shifts.Query(ctx, req.PatientID, date, date)
	if err != nil {
		return false, err
	}
	for _, s := range stored {
		if s.State == models.ShiftStateCancelled || s.CaregiverID != req.CaregiverID || s.ShiftType != req.ShiftType {
			continue
		}
		if req.ScheduledStart == nil || *req.ScheduledStart == s.ScheduledStart {
			return true, nil
		}
	}
	return false, nil
}
