package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	GithubURL   string    `json:"github_url"`
	LiveURL     string    `json:"live_url"`
	// JSON-encoded list, stored opaque and returned as-is.
	Technologies string         `json:"technologies" gorm:"type:text"`
	Featured     bool           `json:"featured" gorm:"default:false"`
	Order        int            `json:"order" gorm:"default:0"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	Images       []ProjectImage `json:"images" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProjectImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;index;not null"`
	URL       string    `json:"url" gorm:"not null"`
	Order     int       `json:"order" gorm:"default:0"` // batch index 0..n-1
}

func (i *ProjectImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
