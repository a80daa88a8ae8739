// services/availability_service.go
package services

import (
	"errors"

	"bookwise-backend/apperrors"
	"bookwise-backend/models"
	"bookwise-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService manages a business's recurring weekly windows.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// AvailabilityInput is the create/update request shape.
type AvailabilityInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

func validateAvailabilityInput(in AvailabilityInput) error {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return apperrors.Validation("day of week must be between 0 and 6")
	}
	if _, err := utils.ParseTimeOfDay(in.StartTime); err != nil {
		return apperrors.Validation(err.Error())
	}
	if _, err := utils.ParseTimeOfDay(in.EndTime); err != nil {
		return apperrors.Validation(err.Error())
	}
	if in.StartTime >= in.EndTime {
		return apperrors.Validation("start time must be before end time")
	}
	return nil
}

// Create adds a new window. Multiple windows per day are allowed and are not
// checked against each other.
func (s *AvailabilityService) Create(businessID uuid.UUID, in AvailabilityInput) (*models.Availability, error) {
	if err := validateAvailabilityInput(in); err != nil {
		return nil, err
	}

	availability := &models.Availability{
		BusinessID: businessID,
		DayOfWeek:  in.DayOfWeek,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
	}

	if err := s.db.Create(availability).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return availability, nil
}

// ListByBusiness returns all windows for a business ordered by day and start.
func (s *AvailabilityService) ListByBusiness(businessID uuid.UUID) ([]models.Availability, error) {
	var windows []models.Availability
	err := s.db.Where("business_id = ?", businessID).
		Order("day_of_week, start_time").
		Find(&windows).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return windows, nil
}

// Update replaces a window's day and times after an ownership check.
func (s *AvailabilityService) Update(availabilityID, businessID uuid.UUID, in AvailabilityInput) (*models.Availability, error) {
	if err := validateAvailabilityInput(in); err != nil {
		return nil, err
	}

	availability, err := s.getOwned(availabilityID, businessID)
	if err != nil {
		return nil, err
	}

	availability.DayOfWeek = in.DayOfWeek
	availability.StartTime = in.StartTime
	availability.EndTime = in.EndTime

	if err := s.db.Save(availability).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return availability, nil
}

// Delete removes a window after an ownership check.
func (s *AvailabilityService) Delete(availabilityID, businessID uuid.UUID) error {
	availability, err := s.getOwned(availabilityID, businessID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(availability).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *AvailabilityService) getOwned(availabilityID, businessID uuid.UUID) (*models.Availability, error) {
	var availability models.Availability
	if err := s.db.First(&availability, "id = ?", availabilityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("availability")
		}
		return nil, apperrors.Internal(err)
	}
	if availability.BusinessID != businessID {
		return nil, apperrors.Forbidden("availability belongs to another business")
	}
	return &availability, nil
}
