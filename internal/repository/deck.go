package repository

import (
	"context"

	"github.com/devakalpa1/DeckOracle/internal/database"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func CreateDeck(ctx context.Context, deck *models.Deck) error {
	return database.DB.WithContext(ctx).Create(deck).Error
}

func GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*models.Deck, error) {
	var deck models.Deck
	result := database.DB.WithContext(ctx).
		First(&deck, "id = ? AND user_id = ?", deckID, userID)
	return &deck, result.Error
}

// ListDecks returns the user's decks with card counts and last-studied
// timestamps for listing views.
func ListDecks(ctx context.Context, userID uuid.UUID) ([]models.DeckWithStats, error) {
	var decks []models.Deck
	if err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&decks).Error; err != nil {
		return nil, err
	}

	stats := make([]models.DeckWithStats, 0, len(decks))
	for _, deck := range decks {
		entry := models.DeckWithStats{Deck: deck}

		if err := database.DB.WithContext(ctx).Model(&models.Card{}).
			Where("deck_id = ?", deck.ID).
			Count(&entry.CardCount).Error; err != nil {
			return nil, err
		}

		var session models.StudySession
		err := database.DB.WithContext(ctx).
			Where("deck_id = ? AND user_id = ?", deck.ID, userID).
			Order("started_at DESC").
			First(&session).Error
		if err == nil {
			entry.LastStudied = &session.StartedAt
		}

		stats = append(stats, entry)
	}
	return stats, nil
}

func ListDecksInFolder(ctx context.Context, userID, folderID uuid.UUID) ([]models.Deck, error) {
	var decks []models.Deck
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND folder_id = ?", userID, folderID).
		Order("created_at").
		Find(&decks).Error
	return decks, err
}

func UpdateDeck(ctx context.Context, userID, deckID uuid.UUID, updates map[string]interface{}) error {
	return database.DB.WithContext(ctx).Model(&models.Deck{}).
		Where("id = ? AND user_id = ?", deckID, userID).
		Updates(updates).Error
}

func DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	return database.DB.WithContext(ctx).
		Delete(&models.Deck{}, "id = ? AND user_id = ?", deckID, userID).Error
}
