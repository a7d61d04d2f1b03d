package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Experience struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string      `json:"title" gorm:"not null"`
	Company     string      `json:"company" gorm:"not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	StartDate   time.Time   `json:"start_date" gorm:"type:date;not null"`
	EndDate     *time.Time  `json:"end_date" gorm:"type:date"`
	Current     bool        `json:"current" gorm:"default:false"`
	Location    string      `json:"location"`
	Order       int         `json:"order" gorm:"default:0"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
	References  []Reference `json:"references" gorm:"foreignKey:ExperienceID;constraint:OnDelete:CASCADE"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Reference is a person who can vouch for one Experience entry.
type Reference struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ExperienceID uuid.UUID `json:"experience_id" gorm:"type:uuid;index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Note         string    `json:"note" gorm:"type:text"`
}

func (r *Reference) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
