package repository

import (
	"context"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/database"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreateSession opens a study session over the given card order.
func CreateSession(ctx context.Context, userID, deckID uuid.UUID, studyMode string, cardIDs []uuid.UUID) (*models.StudySession, error) {
	order := make(pq.StringArray, len(cardIDs))
	for i, id := range cardIDs {
		order[i] = id.String()
	}

	session := &models.StudySession{
		UserID:    userID,
		DeckID:    deckID,
		StudyMode: studyMode,
		CardOrder: order,
	}
	err := database.DB.WithContext(ctx).Create(session).Error
	return session, err
}

func GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*models.StudySession, error) {
	var session models.StudySession
	result := database.DB.WithContext(ctx).
		First(&session, "id = ? AND user_id = ?", sessionID, userID)
	return &session, result.Error
}

func ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]models.StudySession, error) {
	if limit <= 0 {
		limit = 50
	}
	var sessions []models.StudySession
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// ListAllSessions returns every session for a user, for analytics.
func ListAllSessions(ctx context.Context, userID uuid.UUID) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&sessions).Error
	return sessions, err
}

// CompleteSession sets the completion timestamp exactly once. Completing
// an already-completed session returns it unchanged, so duplicate
// submits cannot move the timestamp.
func CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*models.StudySession, error) {
	session, err := GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CompletedAt != nil {
		return session, nil
	}

	now := time.Now().UTC()
	err = database.DB.WithContext(ctx).Model(session).
		Where("completed_at IS NULL").
		Update("completed_at", now).Error
	if err != nil {
		return nil, err
	}
	// Re-read rather than trust our own write; a concurrent complete may
	// have won the race.
	return GetSession(ctx, userID, sessionID)
}

// OutcomeStore adapts the database to the study engine's OutcomeSink.
type OutcomeStore struct{}

func (OutcomeStore) SaveOutcome(outcome *models.CardOutcome) error {
	return database.DB.Create(outcome).Error
}

func OutcomesForSession(ctx context.Context, sessionID uuid.UUID) ([]models.CardOutcome, error) {
	var outcomes []models.CardOutcome
	err := database.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("recorded_at").
		Find(&outcomes).Error
	return outcomes, err
}

// CountOutcomesForSession reports how many cards a session has answered,
// used to resume an interrupted pass at the right position.
func CountOutcomesForSession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.CardOutcome{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return int(count), err
}

// OutcomesForUser returns a user's full outcome history, for analytics.
func OutcomesForUser(ctx context.Context, userID uuid.UUID) ([]models.CardOutcome, error) {
	var outcomes []models.CardOutcome
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at").
		Find(&outcomes).Error
	return outcomes, err
}

// HasStudiedToday checks whether a user recorded any outcome on the
// current UTC day, for the reminder service.
func HasStudiedToday(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	err := database.DB.WithContext(ctx).Model(&models.CardOutcome{}).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, today, tomorrow).
		Count(&count).Error
	return count > 0, err
}

// UsersForReminder finds users whose reminder is due at the given UTC
// "HH:MM" time.
func UsersForReminder(ctx context.Context, reminderTime string) ([]models.User, error) {
	var users []models.User
	err := database.DB.WithContext(ctx).
		Where("reminders_enabled = ? AND reminder_time = ?", true, reminderTime).
		Find(&users).Error
	return users, err
}
