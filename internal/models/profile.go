package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is a singleton by application discipline: handlers always operate
// on the first row and never create a second one.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Bio       string    `json:"bio" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Github    string    `json:"github"`
	Linkedin  string    `json:"linkedin"`
	Twitter   string    `json:"twitter"`
	Website   string    `json:"website"`
	Avatar    string    `json:"avatar"`
	CVURL     string    `json:"cv_url" gorm:"column:cv_url"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
