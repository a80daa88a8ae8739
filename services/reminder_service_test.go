package services

import (
	"testing"
	"time"

	"bookwise-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReminderFixture(t *testing.T) (*ReminderService, *fakeNotifier, *testFixture) {
	t.Helper()

	db := openTestDB(t)
	businessID := seedBusiness(t, db)
	service := seedService(t, db, businessID, 30, 40.0)

	notifier := &fakeNotifier{failFor: map[string]bool{}}
	appointments := NewAppointmentService(db)
	reminders := NewReminderService(db, appointments, notifier)

	return reminders, notifier, &testFixture{db: db, businessID: businessID, service: service}
}

func reminderLogs(t *testing.T, db *gorm.DB, appointmentID uuid.UUID) []models.ReminderLog {
	t.Helper()

	var logs []models.ReminderLog
	require.NoError(t, db.Where("appointment_id = ?", appointmentID).Order("sent_at").Find(&logs).Error)
	return logs
}

func TestFirstReminderForTomorrow(t *testing.T) {
	reminders, notifier, fx := newReminderFixture(t)

	appointment := seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "10:00", "10:30", models.StatusPending)
	// Not tomorrow, not in the follow-up window, not expired: untouched.
	seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-09", "10:00", "10:30", models.StatusPending)
	// Tomorrow but already confirmed: no reminder.
	seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "11:00", "11:30", models.StatusConfirmed)

	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	first, followUp, expired := reminders.ProcessReminders(now)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, followUp)
	assert.Equal(t, 0, expired)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, appointment.CustomerPhone, notifier.sent[0].Phone)
	assert.Contains(t, notifier.sent[0].Message, "Dana")
	assert.Contains(t, notifier.sent[0].Message, "Haircut")
	assert.Contains(t, notifier.sent[0].Message, "10:00")

	logs := reminderLogs(t, fx.db, appointment.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ReminderFirst, logs[0].Type)
	assert.Equal(t, models.ReminderSent, logs[0].Status)
	assert.True(t, logs[0].SentAt.Equal(now))
}

func TestReminderTickIsIdempotent(t *testing.T) {
	reminders, notifier, fx := newReminderFixture(t)

	appointment := seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "10:00", "10:30", models.StatusPending)

	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

	first, _, _ := reminders.ProcessReminders(now)
	assert.Equal(t, 1, first)

	first, _, _ = reminders.ProcessReminders(now)
	assert.Equal(t, 0, first)

	assert.Len(t, notifier.sent, 1)
	assert.Len(t, reminderLogs(t, fx.db, appointment.ID), 1)
}

func TestFollowUpWindowCrossesMidnight(t *testing.T) {
	reminders, _, fx := newReminderFixture(t)

	earlyTomorrow := seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "04:00", "04:30", models.StatusPending)
	// Past the 05:00 end of the window: first reminder only.
	beyondWindow := seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "06:00", "06:30", models.StatusPending)
	// Earlier today: already in the past, expires on this tick.
	pastToday := seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-07", "22:00", "22:30", models.StatusPending)

	now := time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC)
	first, followUp, expired := reminders.ProcessReminders(now)

	// Both tomorrow appointments get a first reminder; only the 04:00 one is
	// inside the 6-hour follow-up window.
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, followUp)
	assert.Equal(t, 1, expired)

	logs := reminderLogs(t, fx.db, earlyTomorrow.ID)
	require.Len(t, logs, 2)

	types := []models.ReminderType{logs[0].Type, logs[1].Type}
	assert.Contains(t, types, models.ReminderFirst)
	assert.Contains(t, types, models.ReminderFollowUp)

	logs = reminderLogs(t, fx.db, beyondWindow.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ReminderFirst, logs[0].Type)

	assert.Empty(t, reminderLogs(t, fx.db, pastToday.ID))
	assertStatus(t, NewAppointmentService(fx.db), pastToday.ID, fx.businessID, models.StatusNoShow)
}

func TestFollowUpMessageMentionsServiceAndTime(t *testing.T) {
	reminders, notifier, fx := newReminderFixture(t)

	seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-07", "14:00", "14:30", models.StatusPending)

	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	_, followUp, _ := reminders.ProcessReminders(now)
	require.Equal(t, 1, followUp)

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Message, "Haircut")
	assert.Contains(t, notifier.sent[0].Message, "14:00")
}

func TestFailedDispatchIsLoggedAndRetried(t *testing.T) {
	reminders, notifier, fx := newReminderFixture(t)

	appointment := seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "10:00", "10:30", models.StatusPending)
	notifier.failFor[appointment.CustomerPhone] = true

	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	first, _, _ := reminders.ProcessReminders(now)
	assert.Equal(t, 0, first)

	logs := reminderLogs(t, fx.db, appointment.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ReminderFailed, logs[0].Status)
	assert.Equal(t, "gateway unavailable", logs[0].ErrorMessage)

	// A FAILED row does not suppress the retry on the next tick.
	notifier.failFor[appointment.CustomerPhone] = false
	first, _, _ = reminders.ProcessReminders(now)
	assert.Equal(t, 1, first)

	logs = reminderLogs(t, fx.db, appointment.ID)
	require.Len(t, logs, 2)
	assert.Equal(t, models.ReminderSent, logs[1].Status)
}

func TestFailureIsolationAcrossAppointments(t *testing.T) {
	reminders, notifier, fx := newReminderFixture(t)

	failing := models.Appointment{
		BusinessID:      fx.businessID,
		ServiceID:       fx.service.ID,
		CustomerName:    "Alex",
		CustomerPhone:   "+15550009999",
		AppointmentDate: "2026-09-08",
		StartTime:       "09:00",
		EndTime:         "09:30",
		Status:          models.StatusPending,
	}
	require.NoError(t, fx.db.Create(&failing).Error)
	notifier.failFor[failing.CustomerPhone] = true

	healthy := seedAppointment(t, fx.db, fx.businessID, fx.service.ID, "2026-09-08", "10:00", "10:30", models.StatusPending)

	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	first, _, _ := reminders.ProcessReminders(now)

	assert.Equal(t, 1, first)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, healthy.CustomerPhone, notifier.sent[0].Phone)
}

func TestReminderForMissingServiceFailsWithoutSend(t *testing.T) {
	reminders, notifier, fx := newReminderFixture(t)

	appointment := seedAppointment(t, fx.db, fx.businessID, uuid.New(), "2026-09-08", "10:00", "10:30", models.StatusPending)

	now := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	first, _, _ := reminders.ProcessReminders(now)

	assert.Equal(t, 0, first)
	assert.Empty(t, notifier.sent)

	logs := reminderLogs(t, fx.db, appointment.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ReminderFailed, logs[0].Status)
	assert.Contains(t, logs[0].ErrorMessage, "not found")
}
