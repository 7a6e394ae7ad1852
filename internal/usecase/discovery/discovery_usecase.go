package discovery

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
	"github.com/emberapp/ember-backend/internal/usecase/scoring"
)

// matchPreview seeds the conversation a fresh match starts with.
const matchPreview = "New Match!"

// Rand is the randomness source for match draws. Injected so tests can fix
// the outcome; production wires math/rand.
type Rand interface {
	Float64() float64
}

// FeedState describes what the discovery screen should show.
type FeedState string

const (
	// FeedActive means a candidate is available at the cursor.
	FeedActive FeedState = "active"
	// FeedLocked means the session profile is below the completion gate.
	FeedLocked FeedState = "locked"
	// FeedExhausted means the cursor has passed the last candidate. Terminal
	// until Reset.
	FeedExhausted FeedState = "exhausted"
)

// DiscoveryUseCase walks a cursor over the candidate list, applies swipes and
// resolves match outcomes. Swipe is the atomic transition: the cursor always
// advances by exactly one, synchronously. Presentation delays are the
// caller's concern; there are no waits here.
type DiscoveryUseCase struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
	convRepo    repository.ConversationRepository
	rng         Rand
	logger      *zap.Logger

	matchProbability float64
	minCompletion    int

	mu     sync.Mutex
	cursor int
}

func NewDiscoveryUseCase(
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
	convRepo repository.ConversationRepository,
	rng Rand,
	matchProbability float64,
	minCompletion int,
	logger *zap.Logger,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		profileRepo:      profileRepo,
		sessionRepo:      sessionRepo,
		convRepo:         convRepo,
		rng:              rng,
		logger:           logger,
		matchProbability: matchProbability,
		minCompletion:    minCompletion,
	}
}

// FeedResponse is what the discovery screen renders.
type FeedResponse struct {
	State           FeedState       `json:"state"`
	Profile         *domain.Profile `json:"profile,omitempty"`
	CompletionScore int             `json:"completion_score"`
	MinCompletion   int             `json:"min_completion"`
}

// SwipeRequest is a decision on the current candidate.
type SwipeRequest struct {
	Direction domain.SwipeDirection `json:"direction" binding:"required,oneof=reject like superlike"`
}

// SwipeResponse reports the outcome of a swipe.
type SwipeResponse struct {
	ProfileID    string                `json:"profile_id"`
	Direction    domain.SwipeDirection `json:"direction"`
	IsMatch      bool                  `json:"is_match"`
	Conversation *domain.Conversation  `json:"conversation,omitempty"`
}

// Current returns the candidate at the cursor, or the locked/exhausted state.
// Locked and exhausted are display states, not errors.
func (uc *DiscoveryUseCase) Current() (*FeedResponse, error) {
	score, err := uc.sessionScore()
	if err != nil {
		return nil, err
	}

	resp := &FeedResponse{
		CompletionScore: score,
		MinCompletion:   uc.minCompletion,
	}
	if score < uc.minCompletion {
		resp.State = FeedLocked
		return resp, nil
	}

	uc.mu.Lock()
	cursor := uc.cursor
	uc.mu.Unlock()

	candidates := uc.profileRepo.ListCandidates()
	if cursor >= len(candidates) {
		resp.State = FeedExhausted
		return resp, nil
	}

	resp.State = FeedActive
	resp.Profile = candidates[cursor]
	return resp, nil
}

// Swipe records the decision for the current candidate and advances the
// cursor by one, whatever the direction. A like additionally rolls for a
// match; on success a new conversation is prepended to the chat list.
func (uc *DiscoveryUseCase) Swipe(req *SwipeRequest) (*SwipeResponse, error) {
	score, err := uc.sessionScore()
	if err != nil {
		return nil, err
	}
	if score < uc.minCompletion {
		return nil, domain.ErrDiscoveryLocked
	}

	candidates := uc.profileRepo.ListCandidates()

	uc.mu.Lock()
	if uc.cursor >= len(candidates) {
		uc.mu.Unlock()
		return nil, domain.ErrFeedExhausted
	}
	candidate := candidates[uc.cursor]
	uc.cursor++
	uc.mu.Unlock()

	resp := &SwipeResponse{
		ProfileID: candidate.ID,
		Direction: req.Direction,
	}

	// Only a plain like can match; superlikes and rejects never roll.
	if req.Direction != domain.SwipeLike {
		return resp, nil
	}

	if uc.rng.Float64() >= uc.matchProbability {
		return resp, nil
	}

	conv := &domain.Conversation{
		ID:           uuid.NewString(),
		PartnerID:    candidate.ID,
		LastMessage:  matchPreview,
		UnreadCount:  1,
		LastActivity: time.Now(),
	}
	if err := uc.convRepo.Prepend(conv); err != nil {
		return nil, err
	}

	uc.logger.Info("new match",
		zap.String("partner_id", candidate.ID),
		zap.String("conversation_id", conv.ID),
	)

	resp.IsMatch = true
	resp.Conversation = conv
	return resp, nil
}

// Reset rewinds the cursor so the same candidate sequence can be traversed
// again ("start over").
func (uc *DiscoveryUseCase) Reset() {
	uc.mu.Lock()
	uc.cursor = 0
	uc.mu.Unlock()
}

func (uc *DiscoveryUseCase) sessionScore() (int, error) {
	id, err := uc.sessionRepo.CurrentProfileID()
	if err != nil {
		return 0, err
	}
	p, err := uc.profileRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	return scoring.Score(p), nil
}
