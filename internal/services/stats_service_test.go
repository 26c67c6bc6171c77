package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

type StatsServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	user    *models.User
	service *StatsService
}

func (s *StatsServiceTestSuite) SetupTest() {
	var err error
	s.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)

	s.Require().NoError(s.db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Entry{},
		&models.Image{},
	))

	s.user = &models.User{Email: "stats@journal.local", PasswordHash: "unused"}
	s.Require().NoError(s.db.Create(s.user).Error)

	s.service = NewStatsService(repository.NewEntryRepository(s.db))
}

func (s *StatsServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *StatsServiceTestSuite) createEntry(entry *models.Entry) {
	entry.UserID = s.user.ID
	s.Require().NoError(s.db.Create(entry).Error)
}

func clock(day time.Time, hour, min int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

func (s *StatsServiceTestSuite) TestSleepSeries_ShiftsClockValues() {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.createEntry(&models.Entry{
		Content:   "slept well",
		Date:      day,
		WakeTime:  clock(day, 7, 30),
		SleepTime: clock(day, 23, 0),
	})

	points, err := s.service.SleepSeries(s.user)
	s.Require().NoError(err)
	s.Require().Len(points, 1)

	// 07:30 is 13.5 hours after 18:00, 23:00 is 5 hours after.
	s.Require().NotNil(points[0].WakeShifted)
	s.InDelta(13.5, *points[0].WakeShifted, 1e-9)
	s.Require().NotNil(points[0].SleepShifted)
	s.InDelta(5.0, *points[0].SleepShifted, 1e-9)
}

func (s *StatsServiceTestSuite) TestSleepSeries_EighteenHundredIsOrigin() {
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	s.createEntry(&models.Entry{
		Content:   "early night",
		Date:      day,
		SleepTime: clock(day, 18, 0),
	})

	points, err := s.service.SleepSeries(s.user)
	s.Require().NoError(err)
	s.Require().Len(points, 1)
	s.Nil(points[0].WakeShifted)
	s.Require().NotNil(points[0].SleepShifted)
	s.InDelta(0.0, *points[0].SleepShifted, 1e-9)
}

func (s *StatsServiceTestSuite) TestSleepSeries_SkipsEntriesWithoutTimes() {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	s.createEntry(&models.Entry{Content: "no times", Date: day})
	s.createEntry(&models.Entry{Content: "wake only", Date: day.AddDate(0, 0, 1), WakeTime: clock(day, 6, 0)})

	points, err := s.service.SleepSeries(s.user)
	s.Require().NoError(err)
	s.Require().Len(points, 1)
	s.Require().NotNil(points[0].WakeShifted)
	s.InDelta(12.0, *points[0].WakeShifted, 1e-9)
}

func (s *StatsServiceTestSuite) TestScreenTimeWeekly_AveragesPerISOWeek() {
	// 2025-03-10 and 2025-03-11 fall in ISO week 11; 2025-03-17 in week 12.
	s.createEntry(&models.Entry{
		Content:    "a",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ScreenTime: intPtr(100),
	})
	s.createEntry(&models.Entry{
		Content:    "b",
		Date:       time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		ScreenTime: intPtr(151),
	})
	s.createEntry(&models.Entry{
		Content:    "c",
		Date:       time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		ScreenTime: intPtr(60),
	})
	s.createEntry(&models.Entry{
		Content: "untracked",
		Date:    time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC),
	})

	weeks, err := s.service.ScreenTimeWeekly(s.user)
	s.Require().NoError(err)
	s.Require().Len(weeks, 2)

	s.Equal("2025-S11", weeks[0].Week)
	s.Equal(126, weeks[0].AverageMinutes) // (100+151)/2 = 125.5, rounded up

	s.Equal("2025-S12", weeks[1].Week)
	s.Equal(60, weeks[1].AverageMinutes)
}

func (s *StatsServiceTestSuite) TestScreenTimeWeekly_OrdersAcrossYearBoundary() {
	// 2024-12-30 belongs to ISO week 1 of 2025.
	s.createEntry(&models.Entry{
		Content:    "new year",
		Date:       time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
		ScreenTime: intPtr(30),
	})
	s.createEntry(&models.Entry{
		Content:    "old year",
		Date:       time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		ScreenTime: intPtr(90),
	})

	weeks, err := s.service.ScreenTimeWeekly(s.user)
	s.Require().NoError(err)
	s.Require().Len(weeks, 2)
	s.Equal("2024-S51", weeks[0].Week)
	s.Equal("2025-S1", weeks[1].Week)
}

func (s *StatsServiceTestSuite) TestEntryDates_ExcludesEmptyContent() {
	s.createEntry(&models.Entry{Content: "written", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)})
	s.createEntry(&models.Entry{Content: "", Date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)})

	dates, err := s.service.EntryDates(s.user)
	s.Require().NoError(err)
	s.Require().Len(dates, 1)
	s.Equal(10, dates[0].Day())
}

func (s *StatsServiceTestSuite) TestStatsRows_OrderedByDateAscending() {
	s.createEntry(&models.Entry{Content: "later", Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)})
	s.createEntry(&models.Entry{Content: "earlier", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)})

	rows, err := s.service.StatsRows(s.user)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.True(rows[0].Date.Before(rows[1].Date))
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
