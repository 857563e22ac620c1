package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/config"
	"github.com/KevinThakor17/EMS/internal/handlers"
	"github.com/KevinThakor17/EMS/internal/middleware"
	"github.com/KevinThakor17/EMS/internal/models"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Employee Management System API is running"})
	})

	authHandler := handlers.NewAuthHandler(db, cfg)
	employeeHandler := handlers.NewEmployeeHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	leaveHandler := handlers.NewLeaveHandler(db)
	holidayHandler := handlers.NewHolidayHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	timeLogHandler := handlers.NewTimeLogHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	authRequired := middleware.AuthRequired(db, cfg.JwtSecret)
	api.GET("/auth/me", authRequired, authHandler.Me)

	adminOrManager := middleware.RequireAnyRole(models.RoleAdmin, models.RoleManager)
	adminOnly := middleware.RequireAnyRole(models.RoleAdmin)

	ems := api.Group("/ems")
	ems.Use(authRequired)
	{
		ems.GET("/dashboard", dashboardHandler.Get)
		ems.GET("/profile", employeeHandler.Profile)
		ems.GET("/employees", employeeHandler.List)
		ems.GET("/team", employeeHandler.Team)

		ems.GET("/admin/employees", adminOnly, employeeHandler.AdminList)
		ems.POST("/admin/employees", adminOnly, employeeHandler.AdminCreate)
		ems.PUT("/admin/employees/:id", adminOnly, employeeHandler.AdminUpdate)
		ems.POST("/admin/leaves", adminOnly, leaveHandler.AdminCreate)

		ems.POST("/attendance/check-in", attendanceHandler.CheckIn)
		ems.POST("/attendance/check-out", attendanceHandler.CheckOut)
		ems.GET("/attendance", attendanceHandler.History)

		ems.POST("/leaves", leaveHandler.Apply)
		ems.GET("/leaves", leaveHandler.ListOwn)
		ems.GET("/leaves/all", adminOrManager, leaveHandler.ListAll)
		ems.PUT("/leaves/:id", adminOrManager, leaveHandler.UpdateStatus)

		ems.GET("/holidays", holidayHandler.List)
		ems.POST("/holidays", adminOrManager, holidayHandler.Create)

		ems.GET("/projects", projectHandler.List)
		ems.POST("/projects", adminOrManager, projectHandler.Create)
		ems.POST("/projects/:id/members", adminOrManager, projectHandler.AddMember)

		ems.POST("/time-logs", timeLogHandler.Create)
		ems.GET("/time-logs", timeLogHandler.ListOwn)
	}
}
