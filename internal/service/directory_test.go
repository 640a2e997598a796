package service_test

import (
	"context"
	"testing"

	"caregiver-shifts-backend/internal/config"
	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/mocks"
	"caregiver-shifts-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewCaregiverDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCaregiverRepositoryInterface(ctrl)

	dir, err := service.NewCaregiverDirectory(&config.Config{CaregiverDirectory: "database"}, repo)
	require.NoError(t, err)
	assert.IsType(t, &service.DatabaseDirectory{}, dir)

	dir, err = service.NewCaregiverDirectory(&config.Config{CaregiverDirectory: "ldap", LDAPHost: "ldap.example.com"}, repo)
	require.NoError(t, err)
	assert.IsType(t, &service.LDAPDirectory{}, dir)

	_, err = service.NewCaregiverDirectory(&config.Config{CaregiverDirectory: "ldap"}, repo)
	assert.ErrorIs(t, err, apperrors.ErrLDAPNotConfigured)

	_, err = service.NewCaregiverDirectory(&config.Config{CaregiverDirectory: "csv"}, repo)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestDatabaseDirectoryResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCaregiverRepositoryInterface(ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "cg-1").Return(&models.Caregiver{ID: "cg-1", DisplayName: "Ana", Active: true}, nil)
	repo.EXPECT().GetByID(ctx, "ghost").Return(nil, apperrors.NewNotFoundError("caregiver", "ghost"))

	dir := service.NewDatabaseDirectory(repo)

	c, err := dir.Resolve(ctx, "cg-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.DisplayName)

	_, err = dir.Resolve(ctx, "ghost")
	assert.True(t, apperrors.IsNotFound(err))
}
