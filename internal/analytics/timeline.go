package analytics

import (
	"sort"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

// LearningCurvePoint is one day of the learning curve. Days with no
// outcomes are omitted: the series is sparse, not zero-filled.
type LearningCurvePoint struct {
	Date             time.Time `json:"date"`
	CardsStudied     int       `json:"cards_studied"`
	Accuracy         float64   `json:"accuracy"`
	StudyTimeMinutes int64     `json:"study_time_minutes"`
}

// WeeklyProgressPoint is one ISO week's rollup. Only weeks with at
// least one outcome appear.
type WeeklyProgressPoint struct {
	WeekStart             time.Time `json:"week_start"`
	TotalCardsStudied     int       `json:"total_cards_studied"`
	AverageAccuracy       float64   `json:"average_accuracy"`
	TotalStudyTimeMinutes int64     `json:"total_study_time_minutes"`
	SessionsCompleted     int       `json:"sessions_completed"`
}

// dayOf truncates t to its calendar date in the reporting location.
func dayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// weekStartOf truncates t to the Monday starting its ISO week.
func weekStartOf(t time.Time, loc *time.Location) time.Time {
	day := dayOf(t, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// ComputeLearningCurve groups filtered outcomes by calendar date and
// emits per-day accuracy, volume, and study time, ordered by date.
func ComputeLearningCurve(outcomes []models.CardOutcome, sessions []models.StudySession, f Filter, loc *time.Location) []LearningCurvePoint {
	filtered := filterOutcomes(outcomes, sessionDecks(sessions), f)

	byDay := make(map[time.Time][]models.CardOutcome)
	for _, o := range filtered {
		day := dayOf(o.RecordedAt, loc)
		byDay[day] = append(byDay[day], o)
	}

	curve := make([]LearningCurvePoint, 0, len(byDay))
	for day, dayOutcomes := range byDay {
		curve = append(curve, LearningCurvePoint{
			Date:             day,
			CardsStudied:     len(dayOutcomes),
			Accuracy:         accuracy(dayOutcomes),
			StudyTimeMinutes: studyTimeMinutes(dayOutcomes),
		})
	}

	sort.Slice(curve, func(i, j int) bool {
		return curve[i].Date.Before(curve[j].Date)
	})
	return curve
}

// ComputeWeeklyProgress rolls filtered outcomes up by ISO week. A
// session counts as completed in the week it recorded outcomes, once it
// has a completion timestamp.
func ComputeWeeklyProgress(outcomes []models.CardOutcome, sessions []models.StudySession, f Filter, loc *time.Location) []WeeklyProgressPoint {
	decks := sessionDecks(sessions)
	filtered := filterOutcomes(outcomes, decks, f)

	completed := make(map[uuid.UUID]bool, len(sessions))
	for _, s := range sessions {
		completed[s.ID] = s.CompletedAt != nil
	}

	byWeek := make(map[time.Time][]models.CardOutcome)
	for _, o := range filtered {
		week := weekStartOf(o.RecordedAt, loc)
		byWeek[week] = append(byWeek[week], o)
	}

	progress := make([]WeeklyProgressPoint, 0, len(byWeek))
	for week, weekOutcomes := range byWeek {
		sessionSeen := make(map[uuid.UUID]struct{})
		for _, o := range weekOutcomes {
			if completed[o.SessionID] {
				sessionSeen[o.SessionID] = struct{}{}
			}
		}
		progress = append(progress, WeeklyProgressPoint{
			WeekStart:             week,
			TotalCardsStudied:     len(weekOutcomes),
			AverageAccuracy:       accuracy(weekOutcomes),
			TotalStudyTimeMinutes: studyTimeMinutes(weekOutcomes),
			SessionsCompleted:     len(sessionSeen),
		})
	}

	sort.Slice(progress, func(i, j int) bool {
		return progress[i].WeekStart.Before(progress[j].WeekStart)
	})
	return progress
}
