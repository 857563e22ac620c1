package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/models"
)

type HolidayHandler struct {
	DB *gorm.DB
}

type createHolidayRequest struct {
	Name        string `json:"name" binding:"required"`
	HolidayDate string `json:"holiday_date" binding:"required"`
	Description string `json:"description"`
}

func NewHolidayHandler(db *gorm.DB) *HolidayHandler {
	return &HolidayHandler{DB: db}
}

// Create adds a company holiday. The unique index on holiday_date is the
// enforcement point; the lookup here is advisory.
func (h *HolidayHandler) Create(c *gin.Context) {
	var req createHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	holidayDate, err := parseDate(req.HolidayDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday_date"})
		return
	}

	var existing models.CompanyHoliday
	if err := h.DB.Where("holiday_date = ?", holidayDate).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "holiday already exists for this date"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create holiday"})
		return
	}

	holiday := models.CompanyHoliday{
		Name:        req.Name,
		HolidayDate: holidayDate,
		Description: req.Description,
	}
	if err := h.DB.Create(&holiday).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "could not create holiday"})
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

func (h *HolidayHandler) List(c *gin.Context) {
	var holidays []models.CompanyHoliday
	if err := h.DB.Order("holiday_date asc").Find(&holidays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load holidays"})
		return
	}
	c.JSON(http.StatusOK, holidays)
}
