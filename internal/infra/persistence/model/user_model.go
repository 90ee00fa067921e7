package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. SQLite stores UUIDs as text; the
// application generates them before insert.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey"`
	Username     string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
