package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/monjournal/journal-api/internal/errors"
	"github.com/monjournal/journal-api/internal/middleware"
	"github.com/monjournal/journal-api/internal/services"
)

// StatsHandler serves read-only projections over the entry history.
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// StatsRows returns the raw per-entry chart projection, date ascending.
func (h *StatsHandler) StatsRows(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	rows, err := h.statsService.StatsRows(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to load stats")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// SleepSeries returns the night-centred sleep chart series.
func (h *StatsHandler) SleepSeries(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	points, err := h.statsService.SleepSeries(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to load sleep series")
		return
	}

	c.JSON(http.StatusOK, points)
}

// ScreenTimeWeekly returns average screen time per ISO week.
func (h *StatsHandler) ScreenTimeWeekly(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	weeks, err := h.statsService.ScreenTimeWeekly(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to load screen time")
		return
	}

	c.JSON(http.StatusOK, weeks)
}

// EntryDates returns the dates of entries with content, for the calendar.
func (h *StatsHandler) EntryDates(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	dates, err := h.statsService.EntryDates(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to load entry dates")
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}
