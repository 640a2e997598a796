package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContextCarriesPrincipal(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalKey, "caregiver-7")
	ctx = context.WithValue(ctx, RoleKey, "caregiver")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")

	l := WithContext(ctx)
	assert.Equal(t, "caregiver-7", l.Data["principal"])
	assert.Equal(t, "caregiver", l.Data["role"])
	assert.Equal(t, "req-1", l.Data["request_id"])
}

func TestWithContextUnknownPrincipal(t *testing.T) {
	l := WithContext(context.Background())
	assert.Equal(t, "unknown", l.Data["principal"])
	_, hasRole := l.Data["role"]
	assert.False(t, hasRole)
}

func TestWithFieldsDoNotLeak(t *testing.T) {
	base := New()
	child := base.WithFields(map[string]interface{}{"shift_id": "s1"}).WithError(errors.New("boom"))

	assert.Equal(t, "s1", child.Data["shift_id"])
	assert.NotNil(t, child.Data[logrus.ErrorKey])
	assert.Empty(t, base.Data)
}

func TestSetupLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("nonsense")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
