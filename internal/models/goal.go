package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a deadline-bound objective. CompletedAt is set exactly when
// IsCompleted flips to true and cleared when it flips back.
type Goal struct {
	ID          string     `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Deadline    time.Time  `gorm:"not null" json:"deadline"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	Remark      *string    `gorm:"type:text" json:"remark"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
