package repository

import (
	"context"

	"github.com/devakalpa1/DeckOracle/internal/database"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func CreateCard(ctx context.Context, card *models.Card) error {
	return database.DB.WithContext(ctx).Create(card).Error
}

// CreateCards inserts a batch of cards in one transaction (CSV import).
func CreateCards(ctx context.Context, cards []models.Card) error {
	if len(cards) == 0 {
		return nil
	}
	return database.DB.WithContext(ctx).Create(&cards).Error
}

func GetCard(ctx context.Context, cardID uuid.UUID) (*models.Card, error) {
	var card models.Card
	result := database.DB.WithContext(ctx).First(&card, "id = ?", cardID)
	return &card, result.Error
}

// ListCards returns a deck's cards in their deck order.
func ListCards(ctx context.Context, deckID uuid.UUID) ([]models.Card, error) {
	var cards []models.Card
	err := database.DB.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("position, created_at").
		Find(&cards).Error
	return cards, err
}

// ListCardsForUser returns all cards across the user's decks, optionally
// narrowed to one deck. Analytics uses this to resolve card fronts and
// deck membership.
func ListCardsForUser(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID) ([]models.Card, error) {
	query := database.DB.WithContext(ctx).Model(&models.Card{}).
		Joins("JOIN decks ON decks.id = cards.deck_id").
		Where("decks.user_id = ?", userID)
	if deckID != nil {
		query = query.Where("cards.deck_id = ?", *deckID)
	}

	var cards []models.Card
	err := query.Order("cards.position, cards.created_at").Find(&cards).Error
	return cards, err
}

func UpdateCard(ctx context.Context, cardID uuid.UUID, updates map[string]interface{}) error {
	return database.DB.WithContext(ctx).Model(&models.Card{}).
		Where("id = ?", cardID).
		Updates(updates).Error
}

func DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	return database.DB.WithContext(ctx).Delete(&models.Card{}, "id = ?", cardID).Error
}
