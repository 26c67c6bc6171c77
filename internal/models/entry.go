package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is one journal record, semantically one per calendar date. Content
// "" means "no content yet" and is distinct from a locked entry whose
// content is withheld at read time.
type Entry struct {
	ID         string     `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Date       time.Time  `gorm:"not null;index" json:"date"`
	WakeTime   *time.Time `json:"wake_time"`
	SleepTime  *time.Time `json:"sleep_time"`
	DidSport   bool       `gorm:"not null;default:false" json:"did_sport"`
	Asmr       bool       `gorm:"not null;default:false" json:"asmr"`
	ScreenTime *int       `json:"screen_time"`
	IsLocked   bool       `gorm:"not null;default:false" json:"is_locked"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	Tags   []Tag   `gorm:"many2many:entry_tags" json:"tags,omitempty"`
	Images []Image `gorm:"foreignKey:EntryID" json:"images,omitempty"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
