package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is an attachment reference on an entry. Upload itself is out of
// scope; rows exist so locked entries can withhold them.
type Image struct {
	ID      string `gorm:"type:varchar(36);primarykey" json:"id"`
	EntryID string `gorm:"type:varchar(36);not null;index" json:"entry_id"`
	URL     string `gorm:"type:varchar(2048);not null" json:"url"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
