package dto

import (
	"time"

	"github.com/monjournal/journal-api/internal/models"
)

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ImageDTO represents an entry attachment in API responses
type ImageDTO struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// EntryDTO represents a journal entry in API responses. Content is null
// and Images empty when the entry is served redacted.
type EntryDTO struct {
	ID         string     `json:"id"`
	Content    *string    `json:"content"`
	Date       time.Time  `json:"date"`
	Tags       []TagDTO   `json:"tags"`
	WakeTime   *time.Time `json:"wake_time"`
	SleepTime  *time.Time `json:"sleep_time"`
	DidSport   bool       `json:"did_sport"`
	Asmr       bool       `json:"asmr"`
	ScreenTime *int       `json:"screen_time"`
	IsLocked   bool       `json:"is_locked"`
	Images     []ImageDTO `json:"images"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// EntryListResponse pairs a page of entries with the unpaginated total.
type EntryListResponse struct {
	Data  []EntryDTO `json:"data"`
	Total int64      `json:"total"`
}

// GoalDTO represents a goal in API responses
type GoalDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Deadline    time.Time  `json:"deadline"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	Remark      *string    `json:"remark"`
	CreatedAt   time.Time  `json:"created_at"`
}

// WritingDTO represents a long-form writing in API responses
type WritingDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectLinkDTO represents an external link attached to a project
type ProjectLinkDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	Links       []ProjectLinkDTO     `json:"links"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// SettingsDTO exposes stored preferences. The PIN hash never leaves the
// server; only its presence does.
type SettingsDTO struct {
	BlurLevel    int  `json:"blur_level"`
	ItemsPerPage int  `json:"items_per_page"`
	HasPin       bool `json:"has_pin"`
}

// StatsRowDTO is the raw projection used by the charts.
type StatsRowDTO struct {
	ID         string     `json:"id"`
	Date       time.Time  `json:"date"`
	WakeTime   *time.Time `json:"wake_time"`
	SleepTime  *time.Time `json:"sleep_time"`
	ScreenTime *int       `json:"screen_time"`
}

// SleepPointDTO is one point of the sleep chart. Hours are clock values
// shifted so the series is centred on the night instead of wrapping at
// midnight.
type SleepPointDTO struct {
	Date         time.Time `json:"date"`
	WakeShifted  *float64  `json:"wake_shifted"`
	SleepShifted *float64  `json:"sleep_shifted"`
}

// ScreenTimeWeekDTO is the average screen time for one ISO week.
type ScreenTimeWeekDTO struct {
	Week           string `json:"week"`
	Year           int    `json:"year"`
	WeekNum        int    `json:"week_num"`
	AverageMinutes int    `json:"average_minutes"`
}

// Conversion functions

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
	}
}

func toTagDTOs(tags []models.Tag) []TagDTO {
	dtos := make([]TagDTO, len(tags))
	for i, t := range tags {
		dtos[i] = ToTagDTO(t)
	}
	return dtos
}

func toImageDTOs(images []models.Image) []ImageDTO {
	dtos := make([]ImageDTO, len(images))
	for i, img := range images {
		dtos[i] = ImageDTO{ID: img.ID, URL: img.URL}
	}
	return dtos
}

// ToEntryDTO converts an Entry to its client-safe view. A locked entry is
// redacted: content becomes null and the image list empties, whatever is
// stored. Tags are never redacted. Pass redact=false only on a
// PIN-verified unlock.
func ToEntryDTO(entry models.Entry, redact bool) EntryDTO {
	dto := EntryDTO{
		ID:         entry.ID,
		Date:       entry.Date,
		Tags:       toTagDTOs(entry.Tags),
		WakeTime:   entry.WakeTime,
		SleepTime:  entry.SleepTime,
		DidSport:   entry.DidSport,
		Asmr:       entry.Asmr,
		ScreenTime: entry.ScreenTime,
		IsLocked:   entry.IsLocked,
		Images:     []ImageDTO{},
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}

	if entry.IsLocked && redact {
		return dto
	}

	content := entry.Content
	dto.Content = &content
	dto.Images = toImageDTOs(entry.Images)
	return dto
}

// ToGoalDTO converts a Goal model to GoalDTO
func ToGoalDTO(goal models.Goal) GoalDTO {
	return GoalDTO{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Deadline:    goal.Deadline,
		IsCompleted: goal.IsCompleted,
		CompletedAt: goal.CompletedAt,
		Remark:      goal.Remark,
		CreatedAt:   goal.CreatedAt,
	}
}

// ToWritingDTO converts a Writing model to WritingDTO
func ToWritingDTO(writing models.Writing) WritingDTO {
	return WritingDTO{
		ID:        writing.ID,
		Title:     writing.Title,
		Content:   writing.Content,
		CreatedAt: writing.CreatedAt,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	links := make([]ProjectLinkDTO, len(project.Links))
	for i, l := range project.Links {
		links[i] = ProjectLinkDTO{ID: l.ID, Title: l.Title, URL: l.URL}
	}

	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		Links:       links,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToSettingsDTO converts a User's preferences to SettingsDTO
func ToSettingsDTO(user models.User) SettingsDTO {
	return SettingsDTO{
		BlurLevel:    user.BlurLevel,
		ItemsPerPage: user.ItemsPerPage,
		HasPin:       user.HasPin(),
	}
}

// ToStatsRowDTO converts an Entry to its stats projection
func ToStatsRowDTO(entry models.Entry) StatsRowDTO {
	return StatsRowDTO{
		ID:         entry.ID,
		Date:       entry.Date,
		WakeTime:   entry.WakeTime,
		SleepTime:  entry.SleepTime,
		ScreenTime: entry.ScreenTime,
	}
}
