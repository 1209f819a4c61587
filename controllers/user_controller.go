package controllers

import (
	"errors"
	"net/http"

	"stock_insights_backend/middleware"
	"stock_insights_backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController handles registration, login and account info requests
type UserController struct {
	db        *gorm.DB
	jwtSecret string
	limiter   *middleware.RateLimiter
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB, jwtSecret string, limiter *middleware.RateLimiter) *UserController {
	return &UserController{db: db, jwtSecret: jwtSecret, limiter: limiter}
}

// Register creates a new user account
// POST /api/v1/user/register
func (uc *UserController) Register(c *gin.Context) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	if err := c.ShouldBindJSON(&request); err != nil || request.Email == "" || request.Password == "" {
		respond(c, http.StatusBadRequest, false, "Email and password are required", nil)
		return
	}

	var existing models.User
	err := uc.db.Where("email = ?", request.Email).First(&existing).Error
	if err == nil {
		respond(c, http.StatusBadRequest, false, "User already exists", nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}

	user := models.User{Email: request.Email, Name: request.Name}
	if err := user.SetPassword(request.Password); err != nil {
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}

	if err := uc.db.Create(&user).Error; err != nil {
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}

	respond(c, http.StatusCreated, true, "User registered successfully", nil)
}

// Login verifies credentials and issues an access token
// POST /api/v1/user/login
func (uc *UserController) Login(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		respond(c, http.StatusUnauthorized, false, "Login required", nil)
		return
	}

	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&request); err != nil || request.Email == "" || request.Password == "" {
		respond(c, http.StatusBadRequest, false, "Email and password are required", nil)
		return
	}

	var user models.User
	err := uc.db.Where("email = ?", request.Email).First(&user).Error
	if err != nil || !user.CheckPassword(request.Password) {
		if uc.limiter != nil {
			uc.limiter.RecordAttempt(c.ClientIP(), false)
		}
		respond(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	if uc.limiter != nil {
		uc.limiter.RecordAttempt(c.ClientIP(), true)
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, uc.jwtSecret)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}

	respond(c, http.StatusOK, true, "Login successful", gin.H{"token": token})
}

// Logout acknowledges a logout. Tokens are stateless; clients discard them.
// POST /api/v1/user/logout
func (uc *UserController) Logout(c *gin.Context) {
	respond(c, http.StatusOK, true, "Logout successful", nil)
}

// Info returns the authenticated user's profile
// GET /api/v1/user/info
func (uc *UserController) Info(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, false, "User not authenticated", nil)
		return
	}

	var user models.User
	if err := uc.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, http.StatusNotFound, false, "User not found", nil)
			return
		}
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}

	respond(c, http.StatusOK, true, "Details Fetched Successfully", gin.H{
		"email": user.Email,
		"name":  user.Name,
	})
}
