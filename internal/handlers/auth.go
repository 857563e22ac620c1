package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/config"
	"github.com/KevinThakor17/EMS/internal/middleware"
	"github.com/KevinThakor17/EMS/internal/models"
	"github.com/KevinThakor17/EMS/internal/utils"
)

type AuthHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type registerRequest struct {
	Email      string     `json:"email" binding:"required,email"`
	Password   string     `json:"password" binding:"required,min=6"`
	FullName   string     `json:"full_name" binding:"required"`
	Title      string     `json:"title"`
	Department string     `json:"department"`
	Role       string     `json:"role"`
	ManagerID  *uuid.UUID `json:"manager_id"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(db *gorm.DB, cfg config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	role, validRole := models.ParseRole(req.Role)
	if !validRole {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))
	var existing models.Employee
	if err := h.DB.Where("email = ?", normalizedEmail).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "employee email already exists"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password error"})
		return
	}

	employee := models.Employee{
		Email:        normalizedEmail,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Title:        defaultString(req.Title, "Employee"),
		Department:   defaultString(req.Department, "General"),
		Role:         role,
		ManagerID:    req.ManagerID,
		JoinedOn:     today(),
		IsActive:     true,
	}

	if err := h.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var employee models.Employee
	if err := h.DB.Where("email = ?", strings.ToLower(req.Email)).First(&employee).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if !utils.CheckPassword(employee.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAccessToken(employee.Email, string(employee.Role), employee.ID.String(), h.Cfg.JwtSecret, h.Cfg.JwtHours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"role":         employee.Role,
		"employee":     employee,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, actor)
}

func defaultString(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
