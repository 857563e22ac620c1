package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/middleware"
	"github.com/KevinThakor17/EMS/internal/models"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// Get aggregates the actor's view: colleagues on approved leave today,
// approved leaves starting in the next 14 days, the next holidays and the
// actor's project memberships. Read-only.
func (h *DashboardHandler) Get(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := today()
	horizon := now.AddDate(0, 0, 14)

	var todayLeaves []leaveRow
	if err := h.DB.Model(&models.LeaveRequest{}).
		Select("leave_requests.*, employees.full_name").
		Joins("JOIN employees ON employees.id = leave_requests.employee_id").
		Where("leave_requests.status = ?", models.LeaveApproved).
		Where("leave_requests.start_date <= ? AND leave_requests.end_date >= ?", now, now).
		Where("leave_requests.employee_id != ?", actor.ID).
		Find(&todayLeaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}

	var upcomingLeaves []leaveRow
	if err := h.DB.Model(&models.LeaveRequest{}).
		Select("leave_requests.*, employees.full_name").
		Joins("JOIN employees ON employees.id = leave_requests.employee_id").
		Where("leave_requests.status = ?", models.LeaveApproved).
		Where("leave_requests.start_date > ? AND leave_requests.start_date <= ?", now, horizon).
		Where("leave_requests.employee_id != ?", actor.ID).
		Order("leave_requests.start_date asc").
		Find(&upcomingLeaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}

	var holidays []models.CompanyHoliday
	if err := h.DB.Where("holiday_date >= ?", now).
		Order("holiday_date asc").Limit(5).Find(&holidays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}

	var myProjects []models.Project
	if err := h.DB.Model(&models.Project{}).
		Select("projects.*").
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.employee_id = ?", actor.ID).
		Order("projects.name asc").
		Find(&myProjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee": gin.H{
			"id":         actor.ID,
			"name":       actor.FullName,
			"title":      actor.Title,
			"department": actor.Department,
			"role":       actor.Role,
		},
		"today_leaves":      leaveSummaries(todayLeaves),
		"upcoming_leaves":   leaveSummaries(upcomingLeaves),
		"upcoming_holidays": holidays,
		"my_projects":       myProjects,
	})
}

func leaveSummaries(rows []leaveRow) []gin.H {
	result := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		result = append(result, gin.H{
			"leave_id":   row.ID,
			"employee":   row.FullName,
			"reason":     row.Reason,
			"start_date": row.StartDate,
			"end_date":   row.EndDate,
		})
	}
	return result
}
