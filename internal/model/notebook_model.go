package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notebook is stored document-style: scalar columns carry the fields we
// filter on in SQL, the JSONB columns carry the embedded collections. A
// mutation always rewrites a single row, so a notebook update is atomic.
type Notebook struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"type:varchar(255);not null"`
	OwnerEmail string         `gorm:"type:varchar(255);not null;index"`
	IsPublic   bool           `gorm:"not null;default:false;index"`
	Notes      datatypes.JSON `gorm:"type:jsonb"`
	AccessList datatypes.JSON `gorm:"type:jsonb"`
	Tags       datatypes.JSON `gorm:"type:jsonb"`
	Likes      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
