package handlers

import (
	"net/http"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/analytics"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AchievementsHandler evaluates the YAML-defined catalog against the
// user's study history. Earned status is derived fresh on every request.
type AchievementsHandler struct {
	log     *zap.Logger
	catalog *models.AchievementCatalog
}

func NewAchievementsHandler(log *zap.Logger, catalog *models.AchievementCatalog) *AchievementsHandler {
	return &AchievementsHandler{log: log, catalog: catalog}
}

func (h *AchievementsHandler) List(c *gin.Context) {
	user := mustUser(c)

	progress := NewProgressHandler(h.log)
	outcomes, sessions, ok := progress.history(c, user.ID)
	if !ok {
		return
	}

	overview := analytics.ComputeOverview(outcomes, sessions, analytics.Filter{})
	streak := analytics.ComputeStreaks(outcomes, time.Now(), time.UTC, graceDays())

	completedSessions := 0
	for _, s := range sessions {
		if s.CompletedAt != nil {
			completedSessions++
		}
	}

	statuses := make([]models.AchievementStatus, 0, len(h.catalog.Achievements))
	for _, achievement := range h.catalog.Achievements {
		var current int
		switch achievement.CriteriaType {
		case "cards_studied":
			current = overview.TotalCardsStudied
		case "streak_days":
			current = streak.CurrentStreak
		case "sessions_completed":
			current = completedSessions
		default:
			h.log.Warn("Unknown achievement criteria type",
				zap.String("id", achievement.ID),
				zap.String("criteria_type", achievement.CriteriaType),
			)
			continue
		}

		statuses = append(statuses, models.AchievementStatus{
			Achievement: achievement,
			Earned:      current >= achievement.CriteriaValue,
			Progress:    current,
		})
	}

	c.JSON(http.StatusOK, statuses)
}
