package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/momentum/internal/client/client"
	"github.com/dmitrijs2005/momentum/internal/client/models"
	"github.com/dmitrijs2005/momentum/internal/common"
	"github.com/dmitrijs2005/momentum/internal/logging"
)

// WellnessService exposes the read-mostly extras of the service: objective
// history, hobbies and workout suggestions. Results go straight back to the
// caller; nothing is kept in the session.
type WellnessService interface {
	Objectives(ctx context.Context, date string) ([]models.Objective, error)
	HobbySuggestion(ctx context.Context) (*models.HobbySuggestion, error)
	Hobbies(ctx context.Context) ([]models.Hobby, error)
	AddHobby(ctx context.Context, hobby models.NewHobby) (*models.Hobby, error)
	WorkoutPlan(ctx context.Context) (*models.WorkoutPlan, error)
}

type wellnessService struct {
	client   client.Client
	notifier Notifier
	logger   logging.Logger
}

func NewWellnessService(c client.Client, n Notifier, l logging.Logger) WellnessService {
	return &wellnessService{client: c, notifier: n, logger: l.With("component", "wellness")}
}

func (w *wellnessService) fail(ctx context.Context, op string, err error, message string) error {
	w.logger.Error(ctx, op+" failed", "error", err)
	w.notifier.Notify(ctx, errorNotice(message))
	return fmt.Errorf("%s: %w", op, err)
}

// Objectives lists objectives for date (YYYY-MM-DD). An empty date means
// today as seen by the service.
func (w *wellnessService) Objectives(ctx context.Context, date string) ([]models.Objective, error) {
	date = strings.TrimSpace(date)
	if date != "" {
		if _, err := time.Parse(common.DateLayout, date); err != nil {
			w.notifier.Notify(ctx, errorNotice("Invalid date format. Use YYYY-MM-DD"))
			return nil, &ValidationError{Fields: []string{"date"}, Reason: "must be YYYY-MM-DD"}
		}
	}

	list, err := w.client.ListObjectives(ctx, date)
	if err != nil {
		return nil, w.fail(ctx, "list objectives", err, "Failed to load objectives")
	}
	return list, nil
}

func (w *wellnessService) HobbySuggestion(ctx context.Context) (*models.HobbySuggestion, error) {
	s, err := w.client.GetHobbySuggestion(ctx)
	if err != nil {
		return nil, w.fail(ctx, "hobby suggestion", err, "Failed to get a hobby suggestion")
	}
	return s, nil
}

func (w *wellnessService) Hobbies(ctx context.Context) ([]models.Hobby, error) {
	list, err := w.client.ListHobbies(ctx)
	if err != nil {
		return nil, w.fail(ctx, "list hobbies", err, "Failed to load hobbies")
	}
	return list, nil
}

func (w *wellnessService) AddHobby(ctx context.Context, hobby models.NewHobby) (*models.Hobby, error) {
	hobby.Name = strings.TrimSpace(hobby.Name)
	if err := requireFields("name", hobby.Name); err != nil {
		w.notifier.Notify(ctx, errorNotice("Hobby name is required"))
		return nil, err
	}

	h, err := w.client.CreateHobby(ctx, hobby)
	if err != nil {
		return nil, w.fail(ctx, "create hobby", err, "Failed to add hobby")
	}
	return h, nil
}

func (w *wellnessService) WorkoutPlan(ctx context.Context) (*models.WorkoutPlan, error) {
	p, err := w.client.GetWorkoutPlan(ctx)
	if err != nil {
		return nil, w.fail(ctx, "workout plan", err, "Failed to get a workout plan")
	}
	return p, nil
}
