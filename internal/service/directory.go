package service

import (
	"context"

	"caregiver-shifts-backend/internal/config"
	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/repository"
)

// DatabaseDirectory resolves caregivers from the caregivers table
type DatabaseDirectory struct {
	repo repository.CaregiverRepositoryInterface
}

// NewDatabaseDirectory creates a directory backed by the caregiver repository
func NewDatabaseDirectory(repo repository.CaregiverRepositoryInterface) *DatabaseDirectory {
	return &DatabaseDirectory{repo: repo}
}

// Resolve looks a caregiver up by id
func (d *DatabaseDirectory) Resolve(ctx context.Context, caregiverID string) (*models.Caregiver, error) {
	return d.repo.GetByID(ctx, caregiverID)
}

// NewCaregiverDirectory picks the directory named by CAREGIVER_DIRECTORY
func NewCaregiverDirectory(cfg *config.Config, repo repository.CaregiverRepositoryInterface) (CaregiverDirectory, error) {
	switch cfg.CaregiverDirectory {
	case "", "database":
		return NewDatabaseDirectory(repo), nil
	case "ldap":
		if cfg.LDAPHost == "" {
			return nil, apperrors.ErrLDAPNotConfigured
		}
		return NewLDAPDirectory(cfg), nil
	default:
		return nil, apperrors.NewConfigurationError("unknown caregiver directory " + cfg.CaregiverDirectory)
	}
}
