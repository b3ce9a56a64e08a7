package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luiyirmrz/linguapp-engine/internal/domain"
	"github.com/luiyirmrz/linguapp-engine/internal/domain/evaluation"
	"github.com/luiyirmrz/linguapp-engine/internal/domain/srs"
	"github.com/luiyirmrz/linguapp-engine/internal/platform/logger"
	"github.com/luiyirmrz/linguapp-engine/internal/store"
)

// Verify interface compliance at compile time
var _ ReviewService = (*reviewServiceImpl)(nil)

// casRetries bounds how often a submission re-reads and retries after
// losing the optimistic concurrency race.
const casRetries = 3

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	stateStore store.MemoryStateStore
	evaluator  evaluation.Service
	scheduler  srs.Service
	logger     *slog.Logger
	now        func() time.Time
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(
	stateStore store.MemoryStateStore,
	evaluator evaluation.Service,
	scheduler srs.Service,
	log *slog.Logger,
) ReviewService {
	if stateStore == nil {
		panic("stateStore cannot be nil")
	}
	if evaluator == nil {
		panic("evaluator cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &reviewServiceImpl{
		stateStore: stateStore,
		evaluator:  evaluator,
		scheduler:  scheduler,
		logger:     log.With(slog.String("component", "review_service")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SubmitReview implements ReviewService.SubmitReview.
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	userID, itemID uuid.UUID,
	exercise *domain.Exercise,
	input domain.EvaluationInput,
) (*ReviewResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("processing review submission",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
		slog.String("exercise_id", exercise.ID.String()),
		slog.String("exercise_type", string(exercise.Type)))

	// Evaluation is pure; a failure here is a contract violation by the
	// caller and surfaces unchanged.
	result, err := s.evaluator.Evaluate(exercise, input)
	if err != nil {
		log.Warn("submission failed validation",
			slog.String("user_id", userID.String()),
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	newState, err := s.scheduleAndSave(ctx, userID, itemID, result, input)
	if err != nil {
		if domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to persist review",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("item_id", itemID.String()))
		return nil, NewSubmitReviewError("failed to persist review", err)
	}

	log.Debug("successfully processed review submission",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
		slog.Bool("is_correct", result.IsCorrect),
		slog.Int("score", result.Score),
		slog.Int("quality", int(result.Quality)),
		slog.Float64("ease_factor", newState.EaseFactor),
		slog.Int("interval", newState.Interval),
		slog.Time("next_review_at", newState.NextReviewAt))

	return &ReviewResult{
		Evaluation: result,
		State:      newState,
	}, nil
}

// scheduleAndSave reschedules the item and commits the new state with a
// compare-and-swap loop. Each iteration reads the current state (creating a
// fresh one for a first review), schedules from it, and tries to commit at
// the version it read; a conflict means another review for the same
// (user, item) pair won the race, so the loop re-reads and retries.
func (s *reviewServiceImpl) scheduleAndSave(
	ctx context.Context,
	userID, itemID uuid.UUID,
	result *domain.EvaluationResult,
	input domain.EvaluationInput,
) (*domain.VocabularyMemoryState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for attempt := 0; attempt < casRetries; attempt++ {
		state, version, err := s.stateStore.Get(ctx, userID, itemID)
		if err != nil {
			if !errors.Is(err, store.ErrStateNotFound) {
				return nil, fmt.Errorf("failed to get memory state: %w", err)
			}
			// First exposure to this item
			state, err = domain.NewVocabularyMemoryState(userID, itemID)
			if err != nil {
				return nil, fmt.Errorf("failed to create memory state: %w", err)
			}
			version = 0
		}

		// The clock is read per attempt: a retry schedules against a state
		// that a concurrent review may have stamped after this submission
		// started. Clamping covers clock skew between racing writers.
		reviewedAt := s.now()
		if reviewedAt.Before(state.LastReviewedAt) {
			reviewedAt = state.LastReviewedAt
		}

		newState, err := s.scheduler.Schedule(state, result.Quality, reviewedAt, input.TimeSpentMs)
		if err != nil {
			return nil, fmt.Errorf("failed to schedule next review: %w", err)
		}

		err = s.stateStore.Save(ctx, newState, version)
		if err == nil {
			return newState, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, fmt.Errorf("failed to save memory state: %w", err)
		}

		log.Debug("retrying review after version conflict",
			slog.String("user_id", userID.String()),
			slog.String("item_id", itemID.String()),
			slog.Int("attempt", attempt+1))
	}

	return nil, ErrConcurrentUpdate
}

// DueItems implements ReviewService.DueItems.
func (s *reviewServiceImpl) DueItems(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.VocabularyMemoryState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("building review queue", slog.String("user_id", userID.String()))

	due, err := s.stateStore.ListDue(ctx, userID, s.now(), limit)
	if err != nil {
		log.Error("failed to list due items",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewDueItemsError("failed to list due items", err)
	}

	if len(due) == 0 {
		log.Debug("no items due for review", slog.String("user_id", userID.String()))
		return nil, ErrNoItemsDue
	}

	log.Debug("successfully built review queue",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(due)))
	return due, nil
}
