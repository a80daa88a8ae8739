// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"bookwise-backend/models"
	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"required,gt=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name            *string  `json:"name"`
	DurationMinutes *int     `json:"durationMinutes" binding:"omitempty,gt=0"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
}

// ServiceController handles the bookable service catalog.
type ServiceController struct {
	db *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{db: db}
}

// CreateService creates a new service for the business
func (sc *ServiceController) CreateService(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		BusinessID:      businessID,
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
	}

	if err := sc.db.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services for the business
func (sc *ServiceController) GetServices(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := sc.db.Where("business_id = ?", businessID).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := sc.db.Where("business_id = ? AND id = ?", businessID, serviceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func (sc *ServiceController) UpdateService(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := sc.db.Where("business_id = ? AND id = ?", businessID, serviceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		service.Price = *input.Price
	}

	if err := sc.db.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService deletes a service
func (sc *ServiceController) DeleteService(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result := sc.db.Where("business_id = ? AND id = ?", businessID, serviceID).
		Delete(&models.Service{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
