package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"
	"github.com/devakalpa1/DeckOracle/internal/study"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StudyHandler drives study sessions. Active sequencers are held in an
// in-memory registry; a sequencer lost to a restart is rebuilt from the
// session's stored card order and its recorded outcome count.
type StudyHandler struct {
	log      *zap.Logger
	recorder *study.Recorder

	mu     sync.Mutex
	active map[uuid.UUID]*study.Sequencer
}

func NewStudyHandler(log *zap.Logger) *StudyHandler {
	return &StudyHandler{
		log:      log,
		recorder: study.NewRecorder(repository.OutcomeStore{}),
		active:   make(map[uuid.UUID]*study.Sequencer),
	}
}

type createSessionRequest struct {
	DeckID    uuid.UUID   `json:"deck_id" binding:"required"`
	StudyMode string      `json:"study_mode"`
	CardIDs   []uuid.UUID `json:"card_ids"` // optional custom subset/order
}

type answerRequest struct {
	Status     string  `json:"status" binding:"required"`
	UserAnswer *string `json:"user_answer"`
	IsCorrect  *bool   `json:"is_correct"`
}

func (h *StudyHandler) CreateSession(c *gin.Context) {
	user := mustUser(c)

	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.StudyMode == "" {
		req.StudyMode = "standard"
	}

	if _, err := repository.GetDeck(c.Request.Context(), user.ID, req.DeckID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return
	}

	deckCards, err := repository.ListCards(c.Request.Context(), req.DeckID)
	if err != nil {
		h.log.Error("Failed to load deck cards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start session"})
		return
	}

	cards := deckCards
	if len(req.CardIDs) > 0 {
		byID := make(map[uuid.UUID]models.Card, len(deckCards))
		for _, card := range deckCards {
			byID[card.ID] = card
		}
		cards = make([]models.Card, 0, len(req.CardIDs))
		for _, id := range req.CardIDs {
			card, ok := byID[id]
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Card not in study deck"})
				return
			}
			cards = append(cards, card)
		}
	}

	cardIDs := make([]uuid.UUID, len(cards))
	for i, card := range cards {
		cardIDs[i] = card.ID
	}

	session, err := repository.CreateSession(c.Request.Context(), user.ID, req.DeckID, req.StudyMode, cardIDs)
	if err != nil {
		h.log.Error("Failed to create study session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start session"})
		return
	}

	seq := study.NewSequencer(session.ID, user.ID, cards, h.recorder)
	h.mu.Lock()
	h.active[session.ID] = seq
	h.mu.Unlock()

	// An empty deck is not an error: the session is born complete and
	// the caller reports "nothing to study".
	c.JSON(http.StatusCreated, gin.H{
		"session":     session,
		"total_cards": len(cards),
		"complete":    seq.Complete(),
	})
}

func (h *StudyHandler) ListSessions(c *gin.Context) {
	user := mustUser(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	sessions, err := repository.ListSessions(c.Request.Context(), user.ID, limit)
	if err != nil {
		h.log.Error("Failed to list sessions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *StudyHandler) GetSession(c *gin.Context) {
	user := mustUser(c)
	session, ok := h.sessionForUser(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session)
}

// CurrentCard returns the card being studied. The back stays hidden
// until the card has been flipped.
func (h *StudyHandler) CurrentCard(c *gin.Context) {
	user := mustUser(c)
	seq, ok := h.sequencerForUser(c, user)
	if !ok {
		return
	}

	if seq.Complete() {
		c.JSON(http.StatusOK, gin.H{"complete": true, "progress": seq.Progress()})
		return
	}

	card, err := seq.Current()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
		return
	}

	payload := gin.H{
		"card_id":  card.ID,
		"front":    card.Front,
		"index":    seq.Index(),
		"total":    seq.Len(),
		"progress": seq.Progress(),
		"revealed": seq.Revealed(),
		"complete": false,
	}
	if seq.Revealed() {
		payload["back"] = card.Back
	}
	c.JSON(http.StatusOK, payload)
}

func (h *StudyHandler) Flip(c *gin.Context) {
	user := mustUser(c)
	seq, ok := h.sequencerForUser(c, user)
	if !ok {
		return
	}

	if err := seq.Flip(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
		return
	}
	h.CurrentCard(c)
}

func (h *StudyHandler) Answer(c *gin.Context) {
	user := mustUser(c)
	seq, ok := h.sequencerForUser(c, user)
	if !ok {
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	outcome, err := seq.Answer(models.CardStatus(req.Status), &study.RecordOptions{
		UserAnswer: req.UserAnswer,
		IsCorrect:  req.IsCorrect,
	})
	if err != nil {
		h.answerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"outcome":  outcome,
		"progress": seq.Progress(),
		"complete": seq.Complete(),
	})
}

func (h *StudyHandler) Skip(c *gin.Context) {
	user := mustUser(c)
	seq, ok := h.sequencerForUser(c, user)
	if !ok {
		return
	}

	outcome, err := seq.Skip()
	if err != nil {
		h.answerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"outcome":  outcome,
		"progress": seq.Progress(),
		"complete": seq.Complete(),
	})
}

// answerError maps engine errors onto HTTP statuses. Validation
// failures are retryable: the sequencer state is untouched and the
// caller can re-answer the same card.
func (h *StudyHandler) answerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, study.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of easy, medium, hard, forgot"})
	case errors.Is(err, study.ErrInvalidTiming):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Inconsistent answer timing"})
	case errors.Is(err, study.ErrOutOfSequence):
		c.JSON(http.StatusConflict, gin.H{"error": "Answer out of sequence; flip the current card first"})
	case errors.Is(err, study.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
	default:
		h.log.Error("Failed to record outcome", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record answer"})
	}
}

func (h *StudyHandler) Complete(c *gin.Context) {
	user := mustUser(c)
	session, ok := h.sessionForUser(c, user)
	if !ok {
		return
	}

	completed, err := repository.CompleteSession(c.Request.Context(), user.ID, session.ID)
	if err != nil {
		h.log.Error("Failed to complete session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete session"})
		return
	}

	h.mu.Lock()
	delete(h.active, session.ID)
	h.mu.Unlock()

	c.JSON(http.StatusOK, completed)
}

func (h *StudyHandler) Summary(c *gin.Context) {
	user := mustUser(c)
	session, ok := h.sessionForUser(c, user)
	if !ok {
		return
	}

	outcomes, err := repository.OutcomesForSession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load session outcomes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load summary"})
		return
	}

	c.JSON(http.StatusOK, study.Summarize(session.ID, outcomes))
}

func (h *StudyHandler) sessionForUser(c *gin.Context, user *models.User) (*models.StudySession, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return nil, false
	}
	session, err := repository.GetSession(c.Request.Context(), user.ID, sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	return session, true
}

// sequencerForUser finds the live sequencer for a session, rebuilding it
// from persisted state when the in-memory one is gone.
func (h *StudyHandler) sequencerForUser(c *gin.Context, user *models.User) (*study.Sequencer, bool) {
	session, ok := h.sessionForUser(c, user)
	if !ok {
		return nil, false
	}
	if session.CompletedAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
		return nil, false
	}

	h.mu.Lock()
	seq, found := h.active[session.ID]
	h.mu.Unlock()
	if found {
		return seq, true
	}

	deckCards, err := repository.ListCards(c.Request.Context(), session.DeckID)
	if err != nil {
		h.log.Error("Failed to load deck cards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not resume session"})
		return nil, false
	}
	byID := make(map[uuid.UUID]models.Card, len(deckCards))
	for _, card := range deckCards {
		byID[card.ID] = card
	}

	cards := make([]models.Card, 0, len(session.CardOrder))
	for _, raw := range session.CardOrder {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		if card, ok := byID[id]; ok {
			cards = append(cards, card)
		}
	}

	answered, err := repository.CountOutcomesForSession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to count session outcomes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not resume session"})
		return nil, false
	}

	seq = study.ResumeSequencer(session.ID, user.ID, cards, h.recorder, answered)
	h.mu.Lock()
	h.active[session.ID] = seq
	h.mu.Unlock()
	return seq, true
}
