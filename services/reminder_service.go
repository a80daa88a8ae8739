// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"bookwise-backend/models"
	"bookwise-backend/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// followUpWindow is how far ahead the follow-up pass looks.
const followUpWindow = 6 * time.Hour

// ReminderService drives reminder dispatch and no-show expiry. One tick runs
// three independent passes; a failure on one appointment never aborts the
// remaining appointments in the same pass.
type ReminderService struct {
	db           *gorm.DB
	appointments *AppointmentService
	notifier     Notifier
}

func NewReminderService(db *gorm.DB, appointments *AppointmentService, notifier Notifier) *ReminderService {
	return &ReminderService{
		db:           db,
		appointments: appointments,
		notifier:     notifier,
	}
}

// ProcessReminders runs one tick against the given instant and returns how
// many first reminders and follow-ups were sent and how many appointments
// expired. All three passes share the same now snapshot.
func (s *ReminderService) ProcessReminders(now time.Time) (firstCount, followUpCount, expiredCount int) {
	tomorrow := utils.FormatDate(now.AddDate(0, 0, 1))

	appointments, err := s.appointments.PendingForDate(tomorrow)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch appointments for tomorrow")
	} else {
		for _, appointment := range appointments {
			if s.sendReminder(appointment, models.ReminderFirst, now) {
				firstCount++
			}
		}
	}

	within, err := s.appointments.PendingWithinWindow(now, followUpWindow)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch appointments within follow-up window")
	} else {
		for _, appointment := range within {
			if s.sendReminder(appointment, models.ReminderFollowUp, now) {
				followUpCount++
			}
		}
	}

	expired, err := s.appointments.ExpirePending(now)
	if err != nil {
		log.Error().Err(err).Msg("Failed to expire pending appointments")
	}
	expiredCount = int(expired)

	return firstCount, followUpCount, expiredCount
}

// sendReminder dispatches one reminder and appends a ReminderLog row with the
// outcome. Appointments that already have a SENT log row of the same type are
// skipped, so a reminder is not re-sent when the appointment still matches
// the window on a later tick. Returns true only when a message was sent.
func (s *ReminderService) sendReminder(appointment models.Appointment, reminderType models.ReminderType, now time.Time) bool {
	sent, err := s.alreadySent(appointment, reminderType)
	if err != nil {
		log.Error().Err(err).Str("appointment", appointment.ID.String()).Msg("Failed to check reminder log")
		return false
	}
	if sent {
		log.Debug().
			Str("appointment", appointment.ID.String()).
			Str("type", string(reminderType)).
			Msg("Reminder already sent, skipping")
		return false
	}

	message, err := s.buildMessage(appointment, reminderType)
	if err != nil {
		log.Error().Err(err).Str("appointment", appointment.ID.String()).Msg("Failed to build reminder message")
		s.appendLog(appointment, reminderType, models.ReminderFailed, message, err.Error(), now)
		return false
	}

	if err := s.notifier.Send(appointment.CustomerPhone, message); err != nil {
		log.Error().Err(err).
			Str("appointment", appointment.ID.String()).
			Str("to", appointment.CustomerPhone).
			Msg("Failed to send reminder")
		s.appendLog(appointment, reminderType, models.ReminderFailed, message, err.Error(), now)
		return false
	}

	s.appendLog(appointment, reminderType, models.ReminderSent, message, "", now)
	log.Info().
		Str("appointment", appointment.ID.String()).
		Str("type", string(reminderType)).
		Msg("Reminder sent")
	return true
}

// alreadySent checks for an existing SENT log row of the same type. FAILED
// rows do not count, so a failed dispatch is retried on the next tick.
func (s *ReminderService) alreadySent(appointment models.Appointment, reminderType models.ReminderType) (bool, error) {
	var count int64
	err := s.db.Model(&models.ReminderLog{}).
		Where("appointment_id = ? AND type = ? AND status = ?",
			appointment.ID, reminderType, models.ReminderSent).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// buildMessage composes the SMS text from the appointment and its service.
func (s *ReminderService) buildMessage(appointment models.Appointment, reminderType models.ReminderType) (string, error) {
	var service models.Service
	if err := s.db.First(&service, "id = ?", appointment.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("service %s not found", appointment.ServiceID)
		}
		return "", err
	}

	switch reminderType {
	case models.ReminderFollowUp:
		return fmt.Sprintf(
			"Reminder: your appointment for %s is coming up at %s. Please confirm.",
			service.Name, appointment.StartTime,
		), nil
	default:
		return fmt.Sprintf(
			"Hi %s, your appointment for %s is scheduled at %s on %s. Reply YES to confirm or NO to cancel.",
			appointment.CustomerName, service.Name, appointment.StartTime, appointment.AppointmentDate,
		), nil
	}
}

func (s *ReminderService) appendLog(appointment models.Appointment, reminderType models.ReminderType, status models.ReminderStatus, message, errorMessage string, now time.Time) {
	reminderLog := models.ReminderLog{
		AppointmentID: appointment.ID,
		Type:          reminderType,
		Status:        status,
		Message:       message,
		ErrorMessage:  errorMessage,
		SentAt:        now,
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Error().Err(err).Str("appointment", appointment.ID.String()).Msg("Failed to log reminder")
	}
}
