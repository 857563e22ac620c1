package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/models"
)

type ProjectHandler struct {
	DB *gorm.DB
}

type createProjectRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
}

type addMemberRequest struct {
	EmployeeID        uuid.UUID `json:"employee_id" binding:"required"`
	AllocationPercent *int      `json:"allocation_percent" binding:"omitempty,gte=1,lte=100"`
}

type memberRow struct {
	models.ProjectMember
	FullName string `json:"-"`
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: db}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		endDate = &parsed
	}

	var existing models.Project
	if err := h.DB.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "project code already exists"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create project"})
		return
	}

	project := models.Project{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Status:      "active",
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := h.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "could not create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// List returns every project with its member roster eagerly joined.
func (h *ProjectHandler) List(c *gin.Context) {
	var projects []models.Project
	if err := h.DB.Order("name asc").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load projects"})
		return
	}

	result := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		var members []memberRow
		if err := h.DB.Model(&models.ProjectMember{}).
			Select("project_members.*, employees.full_name").
			Joins("JOIN employees ON employees.id = project_members.employee_id").
			Where("project_members.project_id = ?", project.ID).
			Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load projects"})
			return
		}

		roster := make([]gin.H, 0, len(members))
		for _, member := range members {
			roster = append(roster, gin.H{
				"employee_id":        member.EmployeeID,
				"employee_name":      member.FullName,
				"allocation_percent": member.AllocationPercent,
			})
		}

		result = append(result, gin.H{
			"id":          project.ID,
			"code":        project.Code,
			"name":        project.Name,
			"description": project.Description,
			"status":      project.Status,
			"start_date":  project.StartDate,
			"end_date":    project.EndDate,
			"members":     roster,
		})
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var project models.Project
	if err := h.DB.First(&project, "id = ?", projectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", req.EmployeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	var existing models.ProjectMember
	if err := h.DB.Where("project_id = ? AND employee_id = ?", projectID, req.EmployeeID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "employee already assigned"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add member"})
		return
	}

	allocation := 100
	if req.AllocationPercent != nil {
		allocation = *req.AllocationPercent
	}

	member := models.ProjectMember{
		ProjectID:         projectID,
		EmployeeID:        req.EmployeeID,
		AllocationPercent: allocation,
	}
	if err := h.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "could not add member"})
		return
	}

	c.JSON(http.StatusCreated, member)
}
