package repositories

import (
	"log"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database and runs migrations. An empty DSN means local
// development: a sqlite file next to the binary, same default as the
// original deployment.
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn == "" {
		dialector = sqlite.Open("portfolio.db")
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Skill{},
		&models.Experience{},
		&models.Reference{},
		&models.Education{},
		&models.Certification{},
		&models.Contact{},
	)
	if err != nil {
		return nil, err
	}
	log.Println("Successfully connected to database")
	return db, nil
}
