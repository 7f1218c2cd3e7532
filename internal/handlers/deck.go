package handlers

import (
	"net/http"

	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DeckHandler struct {
	log *zap.Logger
}

func NewDeckHandler(log *zap.Logger) *DeckHandler {
	return &DeckHandler{log: log}
}

type deckRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	FolderID    *uuid.UUID `json:"folder_id"`
	IsPublic    bool       `json:"is_public"`
}

func (h *DeckHandler) Create(c *gin.Context) {
	user := mustUser(c)

	var req deckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	deck := &models.Deck{
		UserID:      user.ID,
		FolderID:    req.FolderID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if err := repository.CreateDeck(c.Request.Context(), deck); err != nil {
		h.log.Error("Failed to create deck", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create deck"})
		return
	}
	c.JSON(http.StatusCreated, deck)
}

func (h *DeckHandler) List(c *gin.Context) {
	user := mustUser(c)

	decks, err := repository.ListDecks(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list decks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list decks"})
		return
	}
	c.JSON(http.StatusOK, decks)
}

func (h *DeckHandler) Get(c *gin.Context) {
	user := mustUser(c)
	deckID, err := uuid.Parse(c.Param("id"))
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load deck"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deck": deck, "cards": cards})
}

func (h *DeckHandler) Update(c *gin.Context) {
	user := mustUser(c)
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck id"})
		return
	}

	var req struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		FolderID    *uuid.UUID `json:"folder_id"`
		IsPublic    *bool      `json:"is_public"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.FolderID != nil {
		updates["folder_id"] = *req.FolderID
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := repository.UpdateDeck(c.Request.Context(), user.ID, deckID, updates); err != nil {
		h.log.Error("Failed to update deck", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update deck"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DeckHandler) Delete(c *gin.Context) {
	user := mustUser(c)
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck id"})
		return
	}

	if err := repository.DeleteDeck(c.Request.Context(), user.ID, deckID); err != nil {
		h.log.Error("Failed to delete deck", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete deck"})
		return
	}
	c.Status(http.StatusNoContent)
}
