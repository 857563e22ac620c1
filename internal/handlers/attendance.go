package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/middleware"
	"github.com/KevinThakor17/EMS/internal/models"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

type checkInRequest struct {
	Status string `json:"status"`
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{DB: db}
}

// CheckIn is day-keyed and idempotent: the first call of the day records
// the check-in time, later calls only refresh the status.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// The body is optional; an empty request checks in as present.
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	status := defaultString(req.Status, "present")

	workDate := today()
	now := time.Now().UTC()

	var record models.Attendance
	err := h.DB.Where("employee_id = ? AND work_date = ?", actor.ID, workDate).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = models.Attendance{
			EmployeeID: actor.ID,
			WorkDate:   workDate,
			Status:     status,
			CheckIn:    &now,
		}
		if err := h.DB.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "checkin failed"})
			return
		}
		c.JSON(http.StatusCreated, record)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkin failed"})
		return
	}

	if record.CheckIn == nil {
		record.CheckIn = &now
	}
	record.Status = status
	if err := h.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkin failed"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// CheckOut requires a same-day attendance row and overwrites the checkout
// time on repeat calls.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var record models.Attendance
	if err := h.DB.Where("employee_id = ? AND work_date = ?", actor.ID, today()).First(&record).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check-in missing for today"})
		return
	}

	now := time.Now().UTC()
	record.CheckOut = &now
	if err := h.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) History(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var records []models.Attendance
	if err := h.DB.Where("employee_id = ?", actor.ID).
		Order("work_date desc").Limit(30).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load attendance"})
		return
	}

	c.JSON(http.StatusOK, records)
}
