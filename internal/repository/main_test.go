//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"caregiver-shifts-backend/internal/testutils"

	"github.com/sirupsen/logrus"
)

// TestMain purges the shared Postgres container after the store tests,
// including when the run is interrupted.
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		logrus.Warn("Store tests interrupted, purging test container")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
