package handlers

import (
	"net/http"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/analytics"
	"github.com/devakalpa1/DeckOracle/internal/config"
	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProgressHandler serves the read-only analytics surface. Every request
// recomputes from history; nothing here is cached or mutated.
type ProgressHandler struct {
	log *zap.Logger
}

func NewProgressHandler(log *zap.Logger) *ProgressHandler {
	return &ProgressHandler{log: log}
}

// parseFilter reads the optional deck_id/start_date/end_date query
// params. Dates accept RFC 3339 or plain YYYY-MM-DD; a date-only end
// bound covers the whole day (the range is inclusive).
func parseFilter(c *gin.Context) (analytics.Filter, bool) {
	var f analytics.Filter

	if raw := c.Query("deck_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck_id"})
			return f, false
		}
		f.DeckID = &id
	}

	parse := func(raw string, endOfDay bool) (*time.Time, bool) {
		if raw == "" {
			return nil, true
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return &t, true
		}
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			if endOfDay {
				t = t.Add(24*time.Hour - time.Nanosecond)
			}
			return &t, true
		}
		return nil, false
	}

	start, ok := parse(c.Query("start_date"), false)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
		return f, false
	}
	end, ok := parse(c.Query("end_date"), true)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
		return f, false
	}
	f.StartDate = start
	f.EndDate = end
	return f, true
}

// history loads the outcome and session sets analytics folds over.
func (h *ProgressHandler) history(c *gin.Context, userID uuid.UUID) ([]models.CardOutcome, []models.StudySession, bool) {
	outcomes, err := repository.OutcomesForUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load outcomes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load progress"})
		return nil, nil, false
	}
	sessions, err := repository.ListAllSessions(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load sessions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load progress"})
		return nil, nil, false
	}
	return outcomes, sessions, true
}

func policyFromConfig() analytics.Policy {
	policy := analytics.DefaultPolicy()
	if config.Conf == nil {
		return policy
	}
	statuses := make([]models.CardStatus, 0, len(config.Conf.Study.LearnedStatuses))
	for _, s := range config.Conf.Study.LearnedStatuses {
		status := models.CardStatus(s)
		if status.Valid() {
			statuses = append(statuses, status)
		}
	}
	if len(statuses) > 0 {
		policy.LearnedStatuses = statuses
	}
	return policy
}

func graceDays() int {
	if config.Conf != nil && config.Conf.Study.StreakGraceDays > 0 {
		return config.Conf.Study.StreakGraceDays
	}
	return 1
}

func reviewLimit() int {
	if config.Conf != nil && config.Conf.Study.ReviewListLimit > 0 {
		return config.Conf.Study.ReviewListLimit
	}
	return 100
}

func (h *ProgressHandler) Overview(c *gin.Context) {
	user := mustUser(c)
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	outcomes, sessions, ok := h.history(c, user.ID)
	if !ok {
		return
	}

	overview := analytics.ComputeOverview(outcomes, sessions, filter)
	streak := analytics.ComputeStreaks(outcomes, time.Now(), time.UTC, graceDays())

	c.JSON(http.StatusOK, gin.H{
		"total_cards_studied":      overview.TotalCardsStudied,
		"total_study_time_minutes": overview.TotalStudyTimeMinutes,
		"average_accuracy":         overview.AverageAccuracy,
		"total_sessions":           overview.TotalSessions,
		"decks_in_progress":        overview.DecksInProgress,
		"streak_days":              streak.CurrentStreak,
	})
}

func (h *ProgressHandler) DeckProgress(c *gin.Context) {
	user := mustUser(c)
	outcomes, _, ok := h.history(c, user.ID)
	if !ok {
		return
	}

	decks, err := repository.ListDecks(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list decks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load progress"})
		return
	}

	policy := policyFromConfig()
	reports := make([]analytics.DeckProgress, 0, len(decks))
	for _, deck := range decks {
		cards, err := repository.ListCards(c.Request.Context(), deck.ID)
		if err != nil {
			h.log.Error("Failed to list deck cards", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load progress"})
			return
		}
		reports = append(reports, analytics.ComputeDeckProgress(deck.Deck, cards, outcomes, policy))
	}
	c.JSON(http.StatusOK, reports)
}

func (h *ProgressHandler) SingleDeckProgress(c *gin.Context) {
	user := mustUser(c)
	deckID, err := uuid.Parse(c.Param("deckId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck id"})
		return
	}

	deck, err := repository.GetDeck(c.Request.Context(), user.ID, deckID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return
	}
	cards, err := repository.ListCards(c.Request.Context(), deckID)
	if err != nil {
		h.log.Error("Failed to list deck cards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load progress"})
		return
	}
	outcomes, _, ok := h.history(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, analytics.ComputeDeckProgress(*deck, cards, outcomes, policyFromConfig()))
}

func (h *ProgressHandler) CardPerformance(c *gin.Context) {
	user := mustUser(c)
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	outcomes, sessions, ok := h.history(c, user.ID)
	if !ok {
		return
	}
	cards, err := repository.ListCardsForUser(c.Request.Context(), user.ID, filter.DeckID)
	if err != nil {
		h.log.Error("Failed to list user cards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load progress"})
		return
	}

	c.JSON(http.StatusOK, analytics.ComputeCardPerformance(cards, outcomes, sessions, filter, reviewLimit()))
}

func (h *ProgressHandler) LearningCurve(c *gin.Context) {
	user := mustUser(c)
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	outcomes, sessions, ok := h.history(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, analytics.ComputeLearningCurve(outcomes, sessions, filter, time.UTC))
}

func (h *ProgressHandler) Streaks(c *gin.Context) {
	user := mustUser(c)
	outcomes, _, ok := h.history(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, analytics.ComputeStreaks(outcomes, time.Now(), time.UTC, graceDays()))
}

func (h *ProgressHandler) Weekly(c *gin.Context) {
	user := mustUser(c)
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	outcomes, sessions, ok := h.history(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, analytics.ComputeWeeklyProgress(outcomes, sessions, filter, time.UTC))
}
