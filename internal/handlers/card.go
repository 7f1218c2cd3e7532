package handlers

import (
	"net/http"

	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CardHandler struct {
	log *zap.Logger
}

func NewCardHandler(log *zap.Logger) *CardHandler {
	return &CardHandler{log: log}
}

type cardRequest struct {
	Front    string `json:"front" binding:"required"`
	Back     string `json:"back" binding:"required"`
	Position *int   `json:"position"`
}

// deckForUser resolves the deck path param and enforces ownership.
func (h *CardHandler) deckForUser(c *gin.Context) (*models.Deck, bool) {
	user := mustUser(c)
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck id"})
		return nil, false
	}
	deck, err := repository.GetDeck(c.Request.Context(), user.ID, deckID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return nil, false
	}
	return deck, true
}

func (h *CardHandler) Create(c *gin.Context) {
	deck, ok := h.deckForUser(c)
	if !ok {
		return
	}

	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	card := &models.Card{
		DeckID: deck.ID,
		Front:  req.Front,
		Back:   req.Back,
	}
	if req.Position != nil {
		card.Position = *req.Position
	}

	if err := repository.CreateCard(c.Request.Context(), card); err != nil {
		h.log.Error("Failed to create card", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create card"})
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) List(c *gin.Context) {
	deck, ok := h.deckForUser(c)
	if !ok {
		return
	}

	cards, err := repository.ListCards(c.Request.Context(), deck.ID)
	if err != nil {
		h.log.Error("Failed to list cards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list cards"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) Update(c *gin.Context) {
	deck, ok := h.deckForUser(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card id"})
		return
	}
	card, err := repository.GetCard(c.Request.Context(), cardID)
	if err != nil || card.DeckID != deck.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	var req struct {
		Front    *string `json:"front"`
		Back     *string `json:"back"`
		Position *int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Front != nil {
		updates["front"] = *req.Front
	}
	if req.Back != nil {
		updates["back"] = *req.Back
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := repository.UpdateCard(c.Request.Context(), cardID, updates); err != nil {
		h.log.Error("Failed to update card", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update card"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CardHandler) Delete(c *gin.Context) {
	deck, ok := h.deckForUser(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card id"})
		return
	}
	card, err := repository.GetCard(c.Request.Context(), cardID)
	if err != nil || card.DeckID != deck.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	if err := repository.DeleteCard(c.Request.Context(), cardID); err != nil {
		h.log.Error("Failed to delete card", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete card"})
		return
	}
	c.Status(http.StatusNoContent)
}
