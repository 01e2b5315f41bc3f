package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm kalıcı modellerin ortak alanlarını içerir.
// Kartlar bu sistemde oluşturulduktan sonra değiştirilmez;
// UpdatedAt ve DeletedAt yalnızca altyapı standardı olarak durur.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
