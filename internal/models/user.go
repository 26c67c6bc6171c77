package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the single implicit owner of every other record. Email and
// password hash are placeholders; the app has no login flow.
type User struct {
	ID           string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	PinHash      string    `gorm:"type:varchar(255)" json:"-"`
	BlurLevel    int       `gorm:"not null;default:10" json:"blur_level"`
	ItemsPerPage int       `gorm:"not null;default:20" json:"items_per_page"`
	Counter      int       `gorm:"not null;default:0" json:"counter"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Tags     []Tag     `gorm:"foreignKey:UserID" json:"-"`
	Entries  []Entry   `gorm:"foreignKey:UserID" json:"-"`
	Goals    []Goal    `gorm:"foreignKey:UserID" json:"-"`
	Writings []Writing `gorm:"foreignKey:UserID" json:"-"`
	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HasPin reports whether a PIN has been configured.
func (u *User) HasPin() bool {
	return u.PinHash != ""
}
