package services

import (
	"testing"
	"time"

	"bookwise-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTickUsesInjectedClock(t *testing.T) {
	reminders, notifier, fx := newReminderFixture(t)

	seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "10:00", "10:30", models.StatusPending)

	clock := fixedClock{now: time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)}
	scheduler := NewScheduler(reminders, clock, time.Minute)

	scheduler.RunTick()

	require.Len(t, notifier.sent, 1)

	// A second tick at the same instant sends nothing more.
	scheduler.RunTick()
	assert.Len(t, notifier.sent, 1)
}

func TestRunTickRecoversFromPanic(t *testing.T) {
	scheduler := NewScheduler(nil, fixedClock{now: time.Now()}, time.Minute)

	// A nil reminder service makes the tick panic; RunTick must swallow it.
	assert.NotPanics(t, scheduler.RunTick)
}
