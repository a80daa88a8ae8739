// services/analytics_service.go
package services

import (
	"bookwise-backend/apperrors"
	"bookwise-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// noShowReductionEstimate is the assumed industry-standard cut in no-shows
// from sending reminders, used for the revenue-saved estimate.
const noShowReductionEstimate = 0.20

// AnalyticsService aggregates appointment outcomes for a business. Pure
// reporting, no invariants beyond arithmetic.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// AnalyticsSummary is the per-business report payload.
type AnalyticsSummary struct {
	TotalAppointments     int64 `json:"totalAppointments"`
	PendingAppointments   int64 `json:"pendingAppointments"`
	ConfirmedAppointments int64 `json:"confirmedAppointments"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
	NoShowAppointments    int64 `json:"noShowAppointments"`

	NoShowRate       float64 `json:"noShowRate"`
	ConfirmationRate float64 `json:"confirmationRate"`
	CancellationRate float64 `json:"cancellationRate"`

	TotalRevenue float64 `json:"totalRevenue"`
	RevenueLost  float64 `json:"revenueLost"`
	RevenueSaved float64 `json:"revenueSaved"`
}

// Summary computes status counts, rates and revenue figures for one business.
func (s *AnalyticsService) Summary(businessID uuid.UUID) (*AnalyticsSummary, error) {
	var appointments []models.Appointment
	if err := s.db.Where("business_id = ?", businessID).Find(&appointments).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	var services []models.Service
	if err := s.db.Where("business_id = ?", businessID).Find(&services).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	prices := make(map[uuid.UUID]float64, len(services))
	for _, service := range services {
		prices[service.ID] = service.Price
	}

	summary := &AnalyticsSummary{}
	var allBookedValue float64

	for _, appointment := range appointments {
		summary.TotalAppointments++
		price := prices[appointment.ServiceID]
		allBookedValue += price

		switch appointment.Status {
		case models.StatusPending:
			summary.PendingAppointments++
		case models.StatusConfirmed:
			summary.ConfirmedAppointments++
			summary.TotalRevenue += price
		case models.StatusCancelled:
			summary.CancelledAppointments++
		case models.StatusNoShow:
			summary.NoShowAppointments++
			summary.RevenueLost += price
		}
	}

	if summary.TotalAppointments > 0 {
		total := float64(summary.TotalAppointments)
		summary.NoShowRate = float64(summary.NoShowAppointments) / total * 100
		summary.ConfirmationRate = float64(summary.ConfirmedAppointments) / total * 100
		summary.CancellationRate = float64(summary.CancelledAppointments) / total * 100
	}

	summary.RevenueSaved = allBookedValue * noShowReductionEstimate * (summary.NoShowRate / 100)

	return summary, nil
}
