// Package main runs a short scripted review session against the engine:
// it loads configuration, wires the evaluator, scheduler, and in-memory
// store together, submits a handful of answers for one learner, and prints
// the resulting schedule and practice recommendations.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luiyirmrz/linguapp-engine/internal/config"
	"github.com/luiyirmrz/linguapp-engine/internal/domain"
	"github.com/luiyirmrz/linguapp-engine/internal/domain/evaluation"
	"github.com/luiyirmrz/linguapp-engine/internal/domain/srs"
	"github.com/luiyirmrz/linguapp-engine/internal/platform/logger"
	"github.com/luiyirmrz/linguapp-engine/internal/service/review"
	"github.com/luiyirmrz/linguapp-engine/internal/stats"
	"github.com/luiyirmrz/linguapp-engine/internal/store"
)

// submission pairs an exercise with one learner answer for the demo script.
type submission struct {
	exercise *domain.Exercise
	input    domain.EvaluationInput
}

func main() {
	svc, err := initializeApp()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := runSession(context.Background(), svc); err != nil {
		log.Fatalf("demo session failed: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the review
// service with its collaborators.
func initializeApp() (review.ReviewService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("engine configuration loaded",
		"log_level", cfg.Logging.Level,
		"min_ease_factor", cfg.Scheduler.MinEaseFactor,
		"max_ease_factor", cfg.Scheduler.MaxEaseFactor)

	evaluator := evaluation.NewServiceWithPolicy(cfg.Evaluation.EvaluationPolicy())
	scheduler := srs.NewServiceWithParams(cfg.Scheduler.SchedulerParams())
	stateStore := store.NewMemoryStore()

	return review.NewReviewService(stateStore, evaluator, scheduler, appLogger), nil
}

// runSession submits the scripted answers and prints the outcome of each one
// plus the aggregate recommendations.
func runSession(ctx context.Context, svc review.ReviewService) error {
	userID := uuid.New()
	history := make([]stats.ReviewRecord, 0, 4)

	for _, sub := range demoSubmissions() {
		result, err := svc.SubmitReview(ctx, userID, uuid.New(), sub.exercise, sub.input)
		if err != nil {
			return fmt.Errorf("submission for exercise %s failed: %w", sub.exercise.ID, err)
		}

		fmt.Printf("%-16s correct=%-5v score=%-3d quality=%d next_review=%s\n",
			sub.exercise.Type,
			result.Evaluation.IsCorrect,
			result.Evaluation.Score,
			result.Evaluation.Quality,
			result.State.NextReviewAt.Format("2006-01-02"))
		fmt.Printf("                 feedback: %s\n", result.Evaluation.Feedback)

		history = append(history, stats.ReviewRecord{
			Result:      *result.Evaluation,
			TimeSpentMs: sub.input.TimeSpentMs,
			HintsUsed:   sub.input.HintsUsed,
		})
	}

	summary := stats.Summarize(history)
	fmt.Printf("\nsession: %d reviews, %.0f%% accuracy, average score %.1f\n",
		summary.TotalReviews, summary.AccuracyPercent, summary.AverageScore)

	for _, rec := range stats.Recommend(summary) {
		fmt.Printf("recommendation [%s]: %s\n", rec.Code, rec.Message)
	}

	return nil
}

// demoSubmissions builds the scripted session: a fast perfect answer, a
// hesitant one with hints, a wrong answer, and an ordered matching exercise.
func demoSubmissions() []submission {
	return []submission{
		{
			exercise: &domain.Exercise{
				ID:               uuid.New(),
				Type:             domain.ExerciseTypeTranslate,
				CorrectAnswer:    domain.SingleAnswer("agua"),
				Difficulty:       1,
				TimeLimitSeconds: 30,
			},
			input: domain.EvaluationInput{
				Answer:      domain.SingleAnswer(" Agua "),
				TimeSpentMs: 8_000,
				Attempts:    1,
			},
		},
		{
			exercise: &domain.Exercise{
				ID:               uuid.New(),
				Type:             domain.ExerciseTypeFillBlank,
				CorrectAnswer:    domain.SingleAnswer("biblioteca"),
				Difficulty:       3,
				TimeLimitSeconds: 45,
				HintsAvailable:   3,
			},
			input: domain.EvaluationInput{
				Answer:      domain.SingleAnswer("biblioteca"),
				TimeSpentMs: 40_000,
				HintsUsed:   2,
				Attempts:    2,
			},
		},
		{
			exercise: &domain.Exercise{
				ID:            uuid.New(),
				Type:          domain.ExerciseTypeMultipleChoice,
				CorrectAnswer: domain.SingleAnswer("el puente"),
				Difficulty:    2,
			},
			input: domain.EvaluationInput{
				Answer:   domain.SingleAnswer("la puerta"),
				Attempts: 1,
			},
		},
		{
			exercise: &domain.Exercise{
				ID:            uuid.New(),
				Type:          domain.ExerciseTypeMatchPairs,
				CorrectAnswer: domain.OrderedAnswer("perro", "gato", "pájaro"),
				Difficulty:    2,
			},
			input: domain.EvaluationInput{
				Answer:      domain.OrderedAnswer("perro", "gato", "pájaro"),
				TimeSpentMs: 12_000,
				Attempts:    1,
			},
		},
	}
}
