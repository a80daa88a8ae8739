package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"bookwise-backend/config"
	"bookwise-backend/models"
	"bookwise-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	BusinessName string `json:"businessName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	BusinessName string `json:"businessName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
}

// AuthController handles registration, login and the owner profile.
type AuthController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{db: db, cfg: cfg}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	// Check if email or phone already exists
	var existingUser models.User
	result := ac.db.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		BusinessName: input.BusinessName,
		Email:        input.Email,
		Phone:        input.Phone,
		Password:     input.Password, // Hashed in BeforeCreate hook
	}

	if err := ac.db.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), ac.cfg.JWTSecret, ac.cfg.JWTExpiryHours)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":           newUser.ID,
			"email":        newUser.Email,
			"phone":        newUser.Phone,
			"businessName": newUser.BusinessName,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(input.Email)

	var user models.User
	if err := ac.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), ac.cfg.JWTSecret, ac.cfg.JWTExpiryHours)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	ac.db.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"phone":        user.Phone,
			"businessName": user.BusinessName,
		},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", businessID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", businessID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	user.BusinessName = input.BusinessName
	user.Phone = input.Phone

	if err := ac.db.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
