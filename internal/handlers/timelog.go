package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/middleware"
	"github.com/KevinThakor17/EMS/internal/models"
)

type TimeLogHandler struct {
	DB *gorm.DB
}

type createTimeLogRequest struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required"`
	WorkDate    string    `json:"work_date" binding:"required"`
	Hours       float64   `json:"hours" binding:"required,gt=0,lte=24"`
	Description string    `json:"description" binding:"required"`
}

type timeLogRow struct {
	models.TimeLog
	ProjectName string `json:"-"`
	ProjectCode string `json:"-"`
}

func NewTimeLogHandler(db *gorm.DB) *TimeLogHandler {
	return &TimeLogHandler{DB: db}
}

// Create records hours against a project; only current members may log.
func (h *TimeLogHandler) Create(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	workDate, err := parseDate(req.WorkDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work_date"})
		return
	}

	var membership models.ProjectMember
	if err := h.DB.Where("project_id = ? AND employee_id = ?", req.ProjectID, actor.ID).
		First(&membership).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not a member of this project"})
		return
	}

	timeLog := models.TimeLog{
		EmployeeID:  actor.ID,
		ProjectID:   req.ProjectID,
		WorkDate:    workDate,
		Hours:       req.Hours,
		Description: req.Description,
	}
	if err := h.DB.Create(&timeLog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create time log"})
		return
	}

	c.JSON(http.StatusCreated, timeLog)
}

func (h *TimeLogHandler) ListOwn(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var rows []timeLogRow
	if err := h.DB.Model(&models.TimeLog{}).
		Select("time_logs.*, projects.name AS project_name, projects.code AS project_code").
		Joins("JOIN projects ON projects.id = time_logs.project_id").
		Where("time_logs.employee_id = ?", actor.ID).
		Order("time_logs.work_date desc, time_logs.created_at desc").
		Limit(50).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load time logs"})
		return
	}

	result := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		result = append(result, gin.H{
			"id":           row.ID,
			"project":      row.ProjectName,
			"project_code": row.ProjectCode,
			"work_date":    row.WorkDate,
			"hours":        row.Hours,
			"description":  row.Description,
			"created_at":   row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, result)
}
