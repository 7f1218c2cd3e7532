package analytics

import (
	"sort"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"
)

// StreakInfo reports consecutive-day study streaks. A streak survives a
// grace period (one day by default): studying yesterday but not yet
// today keeps the streak current; a full missed day beyond the grace
// breaks it.
type StreakInfo struct {
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastStudyDate *time.Time `json:"last_study_date,omitempty"`
}

// ComputeStreaks derives streaks from the distinct calendar dates on
// which at least one outcome was recorded, evaluated as of the given
// instant in the reporting location.
func ComputeStreaks(outcomes []models.CardOutcome, asOf time.Time, loc *time.Location, graceDays int) StreakInfo {
	if graceDays < 1 {
		graceDays = 1
	}

	daySet := make(map[time.Time]struct{})
	for _, o := range outcomes {
		daySet[dayOf(o.RecordedAt, loc)] = struct{}{}
	}
	if len(daySet) == 0 {
		return StreakInfo{}
	}

	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	// Longest run of consecutive days anywhere in history.
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if nextDay(days[i-1], days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := days[len(days)-1]
	info := StreakInfo{LongestStreak: longest, LastStudyDate: &last}

	// The current streak ends at the most recent study day; it stays
	// current until more than graceDays calendar days pass without one.
	today := dayOf(asOf, loc)
	gap := 0
	for day := last; day.Before(today); day = day.AddDate(0, 0, 1) {
		gap++
		if gap > graceDays {
			return info
		}
	}

	current := 1
	for i := len(days) - 1; i > 0; i-- {
		if !nextDay(days[i-1], days[i]) {
			break
		}
		current++
	}
	info.CurrentStreak = current
	return info
}

// nextDay reports whether b is the calendar day right after a. Both
// arguments are location-local midnights; date arithmetic rather than
// duration comparison keeps 23- and 25-hour DST days consecutive.
func nextDay(a, b time.Time) bool {
	return a.AddDate(0, 0, 1).Equal(b)
}
