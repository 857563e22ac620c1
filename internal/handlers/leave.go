package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/middleware"
	"github.com/KevinThakor17/EMS/internal/models"
)

type LeaveHandler struct {
	DB *gorm.DB
}

type applyLeaveRequest struct {
	Reason    string `json:"reason" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type adminCreateLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
	Status     string    `json:"status"`
}

type updateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type leaveRow struct {
	models.LeaveRequest
	FullName string `json:"-"`
}

func NewLeaveHandler(db *gorm.DB) *LeaveHandler {
	return &LeaveHandler{DB: db}
}

// Apply files a leave for the actor; the stored status is always pending
// no matter what the payload carries.
func (h *LeaveHandler) Apply(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req applyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	startDate, endDate, err := parseLeaveDates(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leave := models.LeaveRequest{
		EmployeeID: actor.ID,
		Reason:     req.Reason,
		Status:     models.LeavePending,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if err := h.DB.Create(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create leave"})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

func (h *LeaveHandler) ListOwn(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var leaves []models.LeaveRequest
	if err := h.DB.Where("employee_id = ?", actor.ID).
		Order("created_at desc").Find(&leaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leaves"})
		return
	}

	c.JSON(http.StatusOK, leaves)
}

func (h *LeaveHandler) ListAll(c *gin.Context) {
	var rows []leaveRow
	if err := h.DB.Model(&models.LeaveRequest{}).
		Select("leave_requests.*, employees.full_name").
		Joins("JOIN employees ON employees.id = leave_requests.employee_id").
		Order("leave_requests.start_date desc").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load leaves"})
		return
	}

	result := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		result = append(result, gin.H{
			"leave_id":    row.ID,
			"employee":    row.FullName,
			"employee_id": row.EmployeeID,
			"reason":      row.Reason,
			"status":      row.Status,
			"start_date":  row.StartDate,
			"end_date":    row.EndDate,
		})
	}

	c.JSON(http.StatusOK, result)
}

// UpdateStatus overwrites the leave status unconditionally; there is no
// transition order between pending, approved and rejected.
func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	leaveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var leave models.LeaveRequest
	if err := h.DB.First(&leave, "id = ?", leaveID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "leave request not found"})
		return
	}

	status, validStatus := models.ParseLeaveStatus(req.Status)
	if !validStatus {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	leave.Status = status
	if err := h.DB.Save(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, leave)
}

// AdminCreate assigns a leave directly; unlike self-service the status
// comes from the payload.
func (h *LeaveHandler) AdminCreate(c *gin.Context) {
	var req adminCreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", req.EmployeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	startDate, endDate, err := parseLeaveDates(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, validStatus := models.ParseLeaveStatus(defaultString(req.Status, string(models.LeaveApproved)))
	if !validStatus {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	leave := models.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Reason:     req.Reason,
		Status:     status,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if err := h.DB.Create(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create leave"})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

func parseLeaveDates(start string, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidStartDate
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidEndDate
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, errEndBeforeStart
	}
	return startDate, endDate, nil
}
