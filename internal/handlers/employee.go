package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/middleware"
	"github.com/KevinThakor17/EMS/internal/models"
	"github.com/KevinThakor17/EMS/internal/utils"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

type adminCreateEmployeeRequest struct {
	Email      string     `json:"email" binding:"required,email"`
	Password   string     `json:"password" binding:"required,min=6"`
	FullName   string     `json:"full_name" binding:"required"`
	Title      string     `json:"title"`
	Department string     `json:"department"`
	Role       string     `json:"role"`
	ManagerID  *uuid.UUID `json:"manager_id"`
	IsActive   *bool      `json:"is_active"`
}

type adminUpdateEmployeeRequest struct {
	FullName   *string            `json:"full_name"`
	Title      *string            `json:"title"`
	Department *string            `json:"department"`
	Role       *string            `json:"role"`
	ManagerID  utils.OptionalUUID `json:"manager_id"`
	IsActive   *bool              `json:"is_active"`
	Password   *string            `json:"password" binding:"omitempty,min=6"`
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{DB: db}
}

func employeeLabel(employee models.Employee) gin.H {
	return gin.H{
		"id":         employee.ID,
		"name":       employee.FullName,
		"title":      employee.Title,
		"department": employee.Department,
	}
}

// List is the public directory available to every authenticated employee.
func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.DB.Order("full_name asc").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load employees"})
		return
	}

	labels := make([]gin.H, 0, len(employees))
	for _, employee := range employees {
		labels = append(labels, employeeLabel(employee))
	}
	c.JSON(http.StatusOK, labels)
}

func (h *EmployeeHandler) AdminList(c *gin.Context) {
	var employees []models.Employee
	if err := h.DB.Order("full_name asc").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) AdminCreate(c *gin.Context) {
	var req adminCreateEmployeeRequest
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	if req.ManagerID != nil {
		var manager models.Employee
		if err := h.DB.First(&manager, "id = ?", req.ManagerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "manager not found"})
			return
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password error"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
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
		IsActive:     isActive,
	}

	if err := h.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// AdminUpdate applies a partial patch: absent fields stay untouched and an
// explicit null manager_id clears the manager link.
func (h *EmployeeHandler) AdminUpdate(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req adminUpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	if req.ManagerID.Present && req.ManagerID.Value != nil {
		if *req.ManagerID.Value == employeeID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "employee cannot be their own manager"})
			return
		}
		var manager models.Employee
		if err := h.DB.First(&manager, "id = ?", req.ManagerID.Value).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "manager not found"})
			return
		}
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Title != nil {
		employee.Title = *req.Title
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Role != nil {
		role, validRole := models.ParseRole(*req.Role)
		if !validRole {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}
		employee.Role = role
	}
	if req.ManagerID.Present {
		employee.ManagerID = req.ManagerID.Value
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "password error"})
			return
		}
		employee.PasswordHash = passwordHash
	}

	if err := h.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Profile(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var managerName *string
	if actor.ManagerID != nil {
		var manager models.Employee
		if err := h.DB.First(&manager, "id = ?", actor.ManagerID).Error; err == nil {
			managerName = &manager.FullName
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         actor.ID,
		"email":      actor.Email,
		"full_name":  actor.FullName,
		"title":      actor.Title,
		"department": actor.Department,
		"role":       actor.Role,
		"joined_on":  actor.JoinedOn,
		"manager":    managerName,
	})
}

// Team lists active employees visible to the actor: admins see everyone,
// managers see their direct reports, plain employees see nothing.
func (h *EmployeeHandler) Team(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if actor.Role != models.RoleAdmin && actor.Role != models.RoleManager {
		c.JSON(http.StatusOK, []gin.H{})
		return
	}

	query := h.DB.Where("is_active = ?", true)
	if actor.Role == models.RoleManager {
		query = query.Where("manager_id = ?", actor.ID)
	}

	var team []models.Employee
	if err := query.Order("full_name asc").Find(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load team"})
		return
	}

	var everyone []models.Employee
	if err := h.DB.Find(&everyone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load team"})
		return
	}
	names := make(map[uuid.UUID]string, len(everyone))
	for _, employee := range everyone {
		names[employee.ID] = employee.FullName
	}

	result := make([]gin.H, 0, len(team))
	for _, member := range team {
		entry := employeeLabel(member)
		entry["manager"] = nil
		if member.ManagerID != nil {
			if name, found := names[*member.ManagerID]; found {
				entry["manager"] = name
			}
		}
		result = append(result, entry)
	}

	c.JSON(http.StatusOK, result)
}
