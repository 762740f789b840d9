package model

import (
	"time"

	"gorm.io/gorm"
)

// ID 由 snowflake 在应用侧生成，事务里 close+open 连写不用回读自增键。
type BaseModel struct {
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	ID        int64          `gorm:"primaryKey" json:"id"`
}
