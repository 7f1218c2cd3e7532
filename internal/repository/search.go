package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/devakalpa1/DeckOracle/internal/database"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

// likePattern wraps a search term for a case-insensitive contains
// match, escaping LIKE metacharacters so user input matches literally.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

// containsFold reports whether s contains the already-lowercased term.
func containsFold(s, loweredTerm string) bool {
	return strings.Contains(strings.ToLower(s), loweredTerm)
}

// SearchDecks matches the user's own and public decks on name or
// description. Name matches rank ahead of description-only matches.
func SearchDecks(ctx context.Context, userID uuid.UUID, term string, limit int) ([]models.DeckWithStats, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := likePattern(term)

	var decks []models.Deck
	err := database.DB.WithContext(ctx).
		Where("(user_id = ? OR is_public = ?)", userID, true).
		Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("name").
		Limit(limit).
		Find(&decks).Error
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(term)
	sort.SliceStable(decks, func(i, j int) bool {
		return containsFold(decks[i].Name, lowered) && !containsFold(decks[j].Name, lowered)
	})

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

// SearchCards matches card fronts and backs across the user's own and
// public decks. Front matches rank ahead of back-only matches.
func SearchCards(ctx context.Context, userID uuid.UUID, term string, limit int) ([]models.CardSearchResult, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := likePattern(term)

	var results []models.CardSearchResult
	err := database.DB.WithContext(ctx).
		Table("cards").
		Select("cards.*, decks.name AS deck_name").
		Joins("JOIN decks ON decks.id = cards.deck_id").
		Where("(decks.user_id = ? OR decks.is_public = ?)", userID, true).
		Where("(cards.front ILIKE ? OR cards.back ILIKE ?)", pattern, pattern).
		Order("cards.position").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(term)
	sort.SliceStable(results, func(i, j int) bool {
		return containsFold(results[i].Front, lowered) && !containsFold(results[j].Front, lowered)
	})
	return results, nil
}
