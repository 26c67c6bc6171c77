package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/monjournal/journal-api/internal/dto"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

// StatsService computes read-only projections over the entry history.
type StatsService struct {
	entryRepo repository.EntryRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(entryRepo repository.EntryRepository) *StatsService {
	return &StatsService{entryRepo: entryRepo}
}

// StatsRows returns the raw chart projection ordered by date ascending
func (s *StatsService) StatsRows(user *models.User) ([]dto.StatsRowDTO, error) {
	entries, err := s.entryRepo.ListStatsRows(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats rows: %w", err)
	}

	rows := make([]dto.StatsRowDTO, len(entries))
	for i, e := range entries {
		rows[i] = dto.ToStatsRowDTO(e)
	}
	return rows, nil
}

// EntryDates returns the dates of entries with non-empty content, used
// to mark the calendar.
func (s *StatsService) EntryDates(user *models.User) ([]time.Time, error) {
	entries, err := s.entryRepo.ListDatesWithContent(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry dates: %w", err)
	}

	dates := make([]time.Time, len(entries))
	for i, e := range entries {
		dates[i] = e.Date
	}
	return dates, nil
}

// SleepSeries returns wake/sleep clock values per date, shifted so the
// axis is centred on the night. Entries without either time are skipped.
func (s *StatsService) SleepSeries(user *models.User) ([]dto.SleepPointDTO, error) {
	entries, err := s.entryRepo.ListStatsRows(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep series: %w", err)
	}

	points := make([]dto.SleepPointDTO, 0, len(entries))
	for _, e := range entries {
		if e.WakeTime == nil && e.SleepTime == nil {
			continue
		}
		points = append(points, dto.SleepPointDTO{
			Date:         e.Date,
			WakeShifted:  shiftedClock(e.WakeTime),
			SleepShifted: shiftedClock(e.SleepTime),
		})
	}
	return points, nil
}

// ScreenTimeWeekly returns average screen time per ISO week, in
// chronological order.
func (s *StatsService) ScreenTimeWeekly(user *models.User) ([]dto.ScreenTimeWeekDTO, error) {
	entries, err := s.entryRepo.ListStatsRows(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load screen time: %w", err)
	}

	type bucket struct {
		total int
		count int
	}
	buckets := map[[2]int]*bucket{}

	for _, e := range entries {
		if e.ScreenTime == nil {
			continue
		}
		year, week := e.Date.ISOWeek()
		key := [2]int{year, week}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.total += *e.ScreenTime
		b.count++
	}

	weeks := make([]dto.ScreenTimeWeekDTO, 0, len(buckets))
	for key, b := range buckets {
		avg := float64(b.total) / float64(b.count)
		weeks = append(weeks, dto.ScreenTimeWeekDTO{
			Week:           fmt.Sprintf("%d-S%d", key[0], key[1]),
			Year:           key[0],
			WeekNum:        key[1],
			AverageMinutes: int(avg + 0.5),
		})
	}

	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year < weeks[j].Year
		}
		return weeks[i].WeekNum < weeks[j].WeekNum
	})

	return weeks, nil
}

// shiftedClock maps a timestamp's clock time onto an axis starting at
// 18:00, so a night of sleep plots as a contiguous range instead of
// wrapping at midnight. 18:00 -> 0, 00:00 -> 6, 06:00 -> 12.
func shiftedClock(t *time.Time) *float64 {
	if t == nil {
		return nil
	}

	hours := float64(t.Hour()) + float64(t.Minute())/60

	shifted := hours - 18
	if shifted < 0 {
		shifted += 24
	}
	return &shifted
}
