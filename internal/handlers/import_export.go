package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImportExportHandler moves deck contents in and out as CSV with
// front,back columns.
type ImportExportHandler struct {
	log *zap.Logger
}

func NewImportExportHandler(log *zap.Logger) *ImportExportHandler {
	return &ImportExportHandler{log: log}
}

func (h *ImportExportHandler) ExportDeck(c *gin.Context) {
	cardHandler := &CardHandler{log: h.log}
	deck, ok := cardHandler.deckForUser(c)
	if !ok {
		return
	}

	cards, err := repository.ListCards(c.Request.Context(), deck.ID)
	if err != nil {
		h.log.Error("Failed to list cards for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not export deck"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deck.Name+".csv"))

	writer := csv.NewWriter(c.Writer)
	writer.Write([]string{"front", "back"})
	for _, card := range cards {
		writer.Write([]string{card.Front, card.Back})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.log.Error("Failed to write CSV export", zap.Error(err))
	}
}

func (h *ImportExportHandler) ImportDeck(c *gin.Context) {
	cardHandler := &CardHandler{log: h.log}
	deck, ok := cardHandler.deckForUser(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV file upload"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed CSV"})
		return
	}

	existing, err := repository.ListCards(c.Request.Context(), deck.ID)
	if err != nil {
		h.log.Error("Failed to list cards for import", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not import deck"})
		return
	}
	position := len(existing)

	cards := make([]models.Card, 0, len(records))
	skipped := 0
	for i, record := range records {
		// Tolerate a header row.
		if i == 0 && len(record) >= 2 &&
			strings.EqualFold(strings.TrimSpace(record[0]), "front") &&
			strings.EqualFold(strings.TrimSpace(record[1]), "back") {
			continue
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" || strings.TrimSpace(record[1]) == "" {
			skipped++
			continue
		}
		cards = append(cards, models.Card{
			DeckID:   deck.ID,
			Front:    strings.TrimSpace(record[0]),
			Back:     strings.TrimSpace(record[1]),
			Position: position,
		})
		position++
	}

	if err := repository.CreateCards(c.Request.Context(), cards); err != nil {
		h.log.Error("Failed to import cards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not import deck"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"imported": len(cards),
		"skipped":  skipped,
	})
}
