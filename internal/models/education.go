package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Education struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Degree      string     `json:"degree" gorm:"not null"`
	Institution string     `json:"institution" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate     *time.Time `json:"end_date" gorm:"type:date"`
	Current     bool       `json:"current" gorm:"default:false"`
	GPA         *float64   `json:"gpa"`
	Order       int        `json:"order" gorm:"default:0"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
