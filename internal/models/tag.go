package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID     string `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_tags_user_name" json:"user_id"`
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_user_name" json:"name"`
	Color  string `gorm:"type:varchar(20);not null" json:"color"`

	// Relations
	Entries []Entry `gorm:"many2many:entry_tags" json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
