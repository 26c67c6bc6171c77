package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusIdea      ProjectStatus = "IDEA"
	ProjectStatusResearch  ProjectStatus = "RESEARCH"
	ProjectStatusStarted   ProjectStatus = "STARTED"
	ProjectStatusActiveDev ProjectStatus = "ACTIVE_DEV"
	ProjectStatusDone      ProjectStatus = "DONE"
)

// ProjectStatusRank is the fixed display order: active work first,
// finished projects last.
var ProjectStatusRank = map[ProjectStatus]int{
	ProjectStatusActiveDev: 0,
	ProjectStatusStarted:   1,
	ProjectStatusResearch:  2,
	ProjectStatusIdea:      3,
	ProjectStatusDone:      4,
}

// IsValid reports whether s is one of the known statuses.
func (s ProjectStatus) IsValid() bool {
	_, ok := ProjectStatusRank[s]
	return ok
}

type Project struct {
	ID          string        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      string        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'IDEA'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Links []ProjectLink `gorm:"foreignKey:ProjectID" json:"links,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProjectLink struct {
	ID        string `gorm:"type:varchar(36);primarykey" json:"id"`
	ProjectID string `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	URL       string `gorm:"type:varchar(2048);not null" json:"url"`
}

func (l *ProjectLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
