package db

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/models"
	"github.com/KevinThakor17/EMS/internal/utils"
)

// SeedDemoData populates an empty store with a small demo organisation.
// A non-empty employee table means the store is live; nothing is touched.
func SeedDemoData(database *gorm.DB) {
	var count int64
	if err := database.Model(&models.Employee{}).Count(&count).Error; err != nil {
		log.Printf("seed skipped, count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	today := dateOnly(time.Now())

	admin := demoEmployee("admin@company.com", "admin123", "Admin User", "HR Manager", "HR", models.RoleAdmin, today.AddDate(0, 0, -730))
	lead := demoEmployee("lead@company.com", "lead123", "Team Lead", "Engineering Manager", "Engineering", models.RoleManager, today.AddDate(0, 0, -900))
	engineer := demoEmployee("employee@company.com", "employee123", "Demo Employee", "Software Engineer", "Engineering", models.RoleEmployee, today.AddDate(0, 0, -400))
	analyst := demoEmployee("analyst@company.com", "analyst123", "Business Analyst", "Analyst", "Operations", models.RoleEmployee, today.AddDate(0, 0, -500))

	for _, employee := range []*models.Employee{admin, lead, engineer, analyst} {
		if err := database.Create(employee).Error; err != nil {
			log.Printf("seed employee failed: %v", err)
			return
		}
	}

	engineer.ManagerID = &lead.ID
	analyst.ManagerID = &lead.ID
	_ = database.Save(engineer).Error
	_ = database.Save(analyst).Error

	platform := &models.Project{
		Code:        "EMS-PLATFORM",
		Name:        "Employee Management Platform",
		Description: "Core platform modernization and automations",
		Status:      "active",
		StartDate:   today.AddDate(0, 0, -120),
	}
	mobile := &models.Project{
		Code:        "MOB-APP",
		Name:        "Mobile Self Service",
		Description: "Self-service app for attendance and leave",
		Status:      "active",
		StartDate:   today.AddDate(0, 0, -60),
	}
	for _, project := range []*models.Project{platform, mobile} {
		if err := database.Create(project).Error; err != nil {
			log.Printf("seed project failed: %v", err)
			return
		}
	}

	members := []models.ProjectMember{
		{ProjectID: platform.ID, EmployeeID: lead.ID, AllocationPercent: 40},
		{ProjectID: platform.ID, EmployeeID: engineer.ID, AllocationPercent: 80},
		{ProjectID: mobile.ID, EmployeeID: analyst.ID, AllocationPercent: 70},
	}
	for index := range members {
		_ = database.Create(&members[index]).Error
	}

	holidays := []models.CompanyHoliday{
		{Name: "Spring Festival", HolidayDate: today.AddDate(0, 0, 10), Description: "Company-wide holiday"},
		{Name: "Founders Day", HolidayDate: today.AddDate(0, 0, 35), Description: "Annual celebration"},
	}
	for index := range holidays {
		_ = database.Create(&holidays[index]).Error
	}

	leaves := []models.LeaveRequest{
		{EmployeeID: analyst.ID, Reason: "Family function", Status: models.LeavePending, StartDate: today, EndDate: today.AddDate(0, 0, 1)},
		{EmployeeID: lead.ID, Reason: "Medical appointment", Status: models.LeavePending, StartDate: today.AddDate(0, 0, 4), EndDate: today.AddDate(0, 0, 4)},
	}
	for index := range leaves {
		_ = database.Create(&leaves[index]).Error
	}

	attendance := []models.Attendance{
		{EmployeeID: engineer.ID, WorkDate: today, Status: "present"},
		{EmployeeID: analyst.ID, WorkDate: today, Status: "present"},
	}
	for index := range attendance {
		_ = database.Create(&attendance[index]).Error
	}

	timeLogs := []models.TimeLog{
		{
			EmployeeID:  engineer.ID,
			ProjectID:   platform.ID,
			WorkDate:    today.AddDate(0, 0, -1),
			Hours:       7.5,
			Description: "Implemented attendance API validations and unit tests",
		},
		{
			EmployeeID:  analyst.ID,
			ProjectID:   mobile.ID,
			WorkDate:    today.AddDate(0, 0, -1),
			Hours:       6,
			Description: "Prepared requirement checklist and sprint stories",
		},
	}
	for index := range timeLogs {
		_ = database.Create(&timeLogs[index]).Error
	}

	log.Println("demo data seeded")
}

func demoEmployee(email, password, name, title, department string, role models.Role, joined time.Time) *models.Employee {
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("seed hash failed: %v", err)
	}
	return &models.Employee{
		Email:        email,
		PasswordHash: hash,
		FullName:     name,
		Title:        title,
		Department:   department,
		Role:         role,
		JoinedOn:     joined,
		IsActive:     true,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
