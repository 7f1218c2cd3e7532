package study

import (
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

// OutcomeSink receives each recorded outcome for persistence. The
// recorder itself holds no state, so a single Recorder is safe to share
// across sessions.
type OutcomeSink interface {
	SaveOutcome(outcome *models.CardOutcome) error
}

// RecordOptions carries the optional collaborator-supplied fields of an
// outcome. IsCorrect, when set, overrides the default derivation from
// status (used for quiz modes where correctness is graded externally).
type RecordOptions struct {
	UserAnswer *string
	IsCorrect  *bool
}

// Recorder turns a raw user action into a durable CardOutcome.
type Recorder struct {
	sink OutcomeSink
}

func NewRecorder(sink OutcomeSink) *Recorder {
	return &Recorder{sink: sink}
}

// Record validates and timestamps one per-card outcome and hands it to
// the sink. A zero startedAt means no timing was measured (skips); the
// outcome is stored without a response time. Inconsistent clocks are an
// error rather than silently stored garbage.
func (r *Recorder) Record(sessionID, cardID, userID uuid.UUID, status models.CardStatus, startedAt, answeredAt time.Time, opts *RecordOptions) (*models.CardOutcome, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var responseTime *int
	if !startedAt.IsZero() {
		elapsed := answeredAt.Sub(startedAt)
		if elapsed < 0 {
			return nil, ErrInvalidTiming
		}
		ms := int(elapsed.Milliseconds())
		responseTime = &ms
	}

	outcome := &models.CardOutcome{
		SessionID:      sessionID,
		CardID:         cardID,
		UserID:         userID,
		Status:         status,
		ResponseTimeMs: responseTime,
		IsCorrect:      status.Correct(),
		RecordedAt:     answeredAt,
	}
	if opts != nil {
		outcome.UserAnswer = opts.UserAnswer
		if opts.IsCorrect != nil {
			outcome.IsCorrect = *opts.IsCorrect
		}
	}

	if err := r.sink.SaveOutcome(outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}
