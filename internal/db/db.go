package db

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/models"
)

// Open connects to MySQL when a DSN is configured and falls back to a
// local sqlite file otherwise, mirroring the deployment story where a
// managed database may be absent in development.
func Open(dsn string, sqlitePath string) (*gorm.DB, error) {
	var database *gorm.DB
	var err error

	if dsn != "" {
		database, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("mysql unavailable, falling back to sqlite: %v", err)
			database = nil
		}
	}

	if database == nil {
		database, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
		if err != nil {
			return nil, err
		}
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Employee{},
		&models.Attendance{},
		&models.LeaveRequest{},
		&models.CompanyHoliday{},
		&models.Project{},
		&models.ProjectMember{},
		&models.TimeLog{},
	)
}
