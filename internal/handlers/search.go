package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves text search over the user's own and public
// decks and their cards.
type SearchHandler struct {
	log *zap.Logger
}

func NewSearchHandler(log *zap.Logger) *SearchHandler {
	return &SearchHandler{log: log}
}

// searchTerm reads the q query param. A blank query is not an error;
// callers return empty result sets for it.
func searchTerm(c *gin.Context) string {
	return strings.TrimSpace(c.Query("q"))
}

func searchLimit(c *gin.Context, fallback int) int {
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return fallback
}

// Search runs the combined overview search: a handful of decks plus a
// handful of cards.
func (h *SearchHandler) Search(c *gin.Context) {
	user := mustUser(c)
	term := searchTerm(c)
	if term == "" {
		c.JSON(http.StatusOK, gin.H{
			"decks": []models.DeckWithStats{},
			"cards": []models.CardSearchResult{},
		})
		return
	}

	decks, err := repository.SearchDecks(c.Request.Context(), user.ID, term, 5)
	if err != nil {
		h.log.Error("Deck search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	cards, err := repository.SearchCards(c.Request.Context(), user.ID, term, 10)
	if err != nil {
		h.log.Error("Card search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"decks": decks, "cards": cards})
}

// SearchDecks searches decks only, with an optional limit param.
func (h *SearchHandler) SearchDecks(c *gin.Context) {
	user := mustUser(c)
	term := searchTerm(c)
	if term == "" {
		c.JSON(http.StatusOK, []models.DeckWithStats{})
		return
	}

	decks, err := repository.SearchDecks(c.Request.Context(), user.ID, term, searchLimit(c, 20))
	if err != nil {
		h.log.Error("Deck search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, decks)
}

// SearchCards searches card fronts and backs only.
func (h *SearchHandler) SearchCards(c *gin.Context) {
	user := mustUser(c)
	term := searchTerm(c)
	if term == "" {
		c.JSON(http.StatusOK, []models.CardSearchResult{})
		return
	}

	cards, err := repository.SearchCards(c.Request.Context(), user.ID, term, searchLimit(c, 50))
	if err != nil {
		h.log.Error("Card search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, cards)
}
