package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certification struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string     `json:"title" gorm:"not null"`
	Institution    string     `json:"institution" gorm:"not null"`
	Description    string     `json:"description" gorm:"type:text"`
	DateAwarded    *time.Time `json:"date_awarded" gorm:"type:date"`
	Order          int        `json:"order" gorm:"default:0"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	CertificateURL string     `json:"certificate_url"`
}

func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
