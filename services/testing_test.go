package services

import (
	"errors"
	"testing"
	"time"

	"bookwise-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Availability{},
		&models.Appointment{},
		&models.ReminderLog{},
	))

	return db
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeNotifier records sends and can be told to fail for specific numbers.
type fakeNotifier struct {
	sent     []fakeMessage
	failFor  map[string]bool
	failNext bool
}

type fakeMessage struct {
	Phone   string
	Message string
}

func (n *fakeNotifier) Send(phoneNumber, message string) error {
	if n.failNext || n.failFor[phoneNumber] {
		n.failNext = false
		return errors.New("gateway unavailable")
	}
	n.sent = append(n.sent, fakeMessage{Phone: phoneNumber, Message: message})
	return nil
}

func seedBusiness(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	business := models.User{
		BusinessName: "Glow Studio",
		Email:        uuid.NewString() + "@example.com",
		Phone:        "+15550001111",
		Password:     "secret-pass",
	}
	require.NoError(t, db.Create(&business).Error)
	return business.ID
}

func seedService(t *testing.T, db *gorm.DB, businessID uuid.UUID, durationMinutes int, price float64) models.Service {
	t.Helper()

	service := models.Service{
		BusinessID:      businessID,
		Name:            "Haircut",
		DurationMinutes: durationMinutes,
		Price:           price,
	}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func seedWindow(t *testing.T, db *gorm.DB, businessID uuid.UUID, dayOfWeek int, startTime, endTime string) models.Availability {
	t.Helper()

	window := models.Availability{
		BusinessID: businessID,
		DayOfWeek:  dayOfWeek,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	require.NoError(t, db.Create(&window).Error)
	return window
}

func seedAppointment(t *testing.T, db *gorm.DB, businessID, serviceID uuid.UUID, date, startTime, endTime string, status models.AppointmentStatus) models.Appointment {
	t.Helper()

	appointment := models.Appointment{
		BusinessID:      businessID,
		ServiceID:       serviceID,
		CustomerName:    "Dana",
		CustomerPhone:   "+15552223333",
		AppointmentDate: date,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          status,
	}
	require.NoError(t, db.Create(&appointment).Error)
	return appointment
}
