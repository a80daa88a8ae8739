// services/appointment_service.go
package services

import (
	"errors"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"bookwise-backend/apperrors"
	"bookwise-backend/models"
	"bookwise-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slotLockStripes bounds the keyed-mutex pool for booking serialization.
const slotLockStripes = 64

// AppointmentService owns the appointment lifecycle: slot validation, booking,
// status transitions and the time-window queries the reminder engine runs on.
type AppointmentService struct {
	db        *gorm.DB
	slotLocks [slotLockStripes]sync.Mutex
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

// CreateAppointmentInput is the booking request shape shared by the owner and
// public paths. EndTime is optional; when empty it defaults to StartTime plus
// the service duration.
type CreateAppointmentInput struct {
	ServiceID       uuid.UUID
	CustomerName    string
	CustomerPhone   string
	AppointmentDate string
	StartTime       string
	EndTime         string
}

// Create books an appointment for the business owner. Internal bookings are
// trusted: no availability or overlap validation runs.
func (s *AppointmentService) Create(businessID uuid.UUID, in CreateAppointmentInput) (*models.Appointment, error) {
	appointment, err := s.buildAppointment(businessID, in)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(appointment).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return appointment, nil
}

// CreatePublic books an appointment on behalf of an unauthenticated customer.
// Slot validation and the insert run under a per-(business, date) lock and a
// transaction so two concurrent requests cannot both claim the same slot.
func (s *AppointmentService) CreatePublic(businessID uuid.UUID, in CreateAppointmentInput) (*models.Appointment, error) {
	appointment, err := s.buildAppointment(businessID, in)
	if err != nil {
		return nil, err
	}

	mu := s.slotLock(businessID, appointment.AppointmentDate)
	mu.Lock()
	defer mu.Unlock()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := validateSlot(tx, businessID, appointment.AppointmentDate, appointment.StartTime, appointment.EndTime); err != nil {
			return err
		}
		if err := tx.Create(appointment).Error; err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

// buildAppointment validates the request and resolves the end time from the
// service duration when the caller omitted it.
func (s *AppointmentService) buildAppointment(businessID uuid.UUID, in CreateAppointmentInput) (*models.Appointment, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, apperrors.Validation("customer name is required")
	}
	if !utils.ValidatePhone(in.CustomerPhone) {
		return nil, apperrors.Validation("customer phone must be a valid phone number")
	}
	if _, err := utils.ParseDate(in.AppointmentDate); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := utils.ParseTimeOfDay(in.StartTime); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if in.EndTime != "" {
		if _, err := utils.ParseTimeOfDay(in.EndTime); err != nil {
			return nil, apperrors.Validation(err.Error())
		}
	}

	var service models.Service
	err := s.db.Where("id = ? AND business_id = ?", in.ServiceID, businessID).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("service")
		}
		return nil, apperrors.Internal(err)
	}

	endTime := in.EndTime
	if endTime == "" {
		endTime, err = utils.AddMinutesToTime(in.StartTime, service.DurationMinutes)
		if err != nil {
			return nil, apperrors.Validation(err.Error())
		}
	}

	if endTime <= in.StartTime {
		return nil, apperrors.Validation("end time must be after start time")
	}

	return &models.Appointment{
		BusinessID:      businessID,
		ServiceID:       in.ServiceID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		AppointmentDate: in.AppointmentDate,
		StartTime:       in.StartTime,
		EndTime:         endTime,
		Status:          models.StatusPending,
	}, nil
}

// validateSlot checks that the candidate slot lies fully inside at least one
// availability window for the weekday and does not overlap any non-cancelled
// appointment on that date. It runs inside the booking transaction.
func validateSlot(tx *gorm.DB, businessID uuid.UUID, date, startTime, endTime string) error {
	dayOfWeek, err := utils.DayOfWeek(date)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	var windows []models.Availability
	if err := tx.Where("business_id = ? AND day_of_week = ?", businessID, dayOfWeek).Find(&windows).Error; err != nil {
		return apperrors.Internal(err)
	}

	insideWindow := false
	for _, w := range windows {
		if w.Contains(startTime, endTime) {
			insideWindow = true
			break
		}
	}
	if !insideWindow {
		return apperrors.Conflict("requested slot is outside business availability")
	}

	var existing []models.Appointment
	err = tx.Where("business_id = ? AND appointment_date = ? AND status <> ?",
		businessID, date, models.StatusCancelled).Find(&existing).Error
	if err != nil {
		return apperrors.Internal(err)
	}

	for _, a := range existing {
		if a.Overlaps(startTime, endTime) {
			return apperrors.Conflict("requested slot is already booked")
		}
	}

	return nil
}

// slotLock returns the stripe mutex for a (business, date) pair.
func (s *AppointmentService) slotLock(businessID uuid.UUID, date string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(businessID.String()))
	h.Write([]byte("|"))
	h.Write([]byte(date))
	return &s.slotLocks[h.Sum32()%slotLockStripes]
}

// GetByID fetches one appointment owned by the business.
func (s *AppointmentService) GetByID(appointmentID, businessID uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("appointment")
		}
		return nil, apperrors.Internal(err)
	}
	if appointment.BusinessID != businessID {
		return nil, apperrors.Forbidden("appointment belongs to another business")
	}
	return &appointment, nil
}

// ListByBusiness returns all appointments for a business.
func (s *AppointmentService) ListByBusiness(businessID uuid.UUID) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("business_id = ?", businessID).
		Order("appointment_date, start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}

// ListByDateRange returns a business's appointments with dates in [start, end].
func (s *AppointmentService) ListByDateRange(businessID uuid.UUID, startDate, endDate string) ([]models.Appointment, error) {
	if _, err := utils.ParseDate(startDate); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := utils.ParseDate(endDate); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var appointments []models.Appointment
	err := s.db.Where("business_id = ? AND appointment_date >= ? AND appointment_date <= ?",
		businessID, startDate, endDate).
		Order("appointment_date, start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}

// UpdateStatus applies an owner-initiated status change, enforcing the
// transition table. Setting the current status again is a no-op.
func (s *AppointmentService) UpdateStatus(appointmentID, businessID uuid.UUID, status string) (*models.Appointment, error) {
	next, err := models.ParseAppointmentStatus(status)
	if err != nil {
		return nil, err
	}

	appointment, err := s.GetByID(appointmentID, businessID)
	if err != nil {
		return nil, err
	}

	if appointment.Status == next {
		return appointment, nil
	}
	if !appointment.Status.CanTransitionTo(next) {
		return nil, apperrors.Conflict("cannot transition from " + string(appointment.Status) + " to " + string(next))
	}

	return s.transition(appointment, next)
}

// ConfirmByToken confirms a PENDING appointment via its confirmation token.
func (s *AppointmentService) ConfirmByToken(token string) (*models.Appointment, error) {
	return s.transitionByToken(token, models.StatusConfirmed)
}

// CancelByToken cancels a PENDING appointment via its confirmation token.
func (s *AppointmentService) CancelByToken(token string) (*models.Appointment, error) {
	return s.transitionByToken(token, models.StatusCancelled)
}

func (s *AppointmentService) transitionByToken(token string, next models.AppointmentStatus) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "confirmation_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("appointment")
		}
		return nil, apperrors.Internal(err)
	}

	if appointment.Status == next {
		return &appointment, nil
	}
	if !appointment.Status.CanTransitionTo(next) {
		return nil, apperrors.Conflict("cannot transition from " + string(appointment.Status) + " to " + string(next))
	}

	return s.transition(&appointment, next)
}

// transition writes the new status with a precondition on the status read
// above, so a concurrent transition (for example the expiry sweep) cannot be
// silently overwritten.
func (s *AppointmentService) transition(appointment *models.Appointment, next models.AppointmentStatus) (*models.Appointment, error) {
	result := s.db.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointment.ID, appointment.Status).
		Update("status", next)
	if result.Error != nil {
		return nil, apperrors.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.Conflict("appointment status changed concurrently")
	}

	appointment.Status = next
	return appointment, nil
}

// Delete hard-deletes an appointment, bypassing the state machine. Owner only.
func (s *AppointmentService) Delete(appointmentID, businessID uuid.UUID) error {
	appointment, err := s.GetByID(appointmentID, businessID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(appointment).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// PendingForDate returns all PENDING appointments on one date, across
// businesses. Used for the first-reminder pass.
func (s *AppointmentService) PendingForDate(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("status = ? AND appointment_date = ?", models.StatusPending, date).
		Find(&appointments).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}

// PendingWithinWindow returns PENDING appointments whose (date, startTime)
// falls in [from, from+window). When the window crosses midnight it splits
// into two same-day range queries and unions the results.
func (s *AppointmentService) PendingWithinWindow(from time.Time, window time.Duration) ([]models.Appointment, error) {
	to := from.Add(window)

	fromDate := utils.FormatDate(from)
	toDate := utils.FormatDate(to)
	fromTime := utils.FormatTimeOfDay(from)
	toTime := utils.FormatTimeOfDay(to)

	var appointments []models.Appointment

	if fromDate == toDate {
		err := s.db.Where("status = ? AND appointment_date = ? AND start_time >= ? AND start_time < ?",
			models.StatusPending, fromDate, fromTime, toTime).
			Find(&appointments).Error
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		return appointments, nil
	}

	var sameDay []models.Appointment
	err := s.db.Where("status = ? AND appointment_date = ? AND start_time >= ?",
		models.StatusPending, fromDate, fromTime).
		Find(&sameDay).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	var nextDay []models.Appointment
	err = s.db.Where("status = ? AND appointment_date = ? AND start_time < ?",
		models.StatusPending, toDate, toTime).
		Find(&nextDay).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	appointments = append(sameDay, nextDay...)
	return appointments, nil
}

// ExpirePending marks every PENDING appointment whose scheduled instant is
// strictly in the past as NO_SHOW. The status precondition in the WHERE
// clause makes repeated sweeps idempotent.
func (s *AppointmentService) ExpirePending(now time.Time) (int64, error) {
	today := utils.FormatDate(now)
	nowTime := utils.FormatTimeOfDay(now)

	result := s.db.Model(&models.Appointment{}).
		Where("status = ? AND (appointment_date < ? OR (appointment_date = ? AND start_time < ?))",
			models.StatusPending, today, today, nowTime).
		Update("status", models.StatusNoShow)
	if result.Error != nil {
		return 0, apperrors.Internal(result.Error)
	}
	return result.RowsAffected, nil
}
