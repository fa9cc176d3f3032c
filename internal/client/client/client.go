package client

import (
	"context"

	"github.com/dmitrijs2005/momentum/internal/client/models"
)

// Client is the transport contract with the Momentum service: one method per
// remote resource. Implementations never touch session state themselves.
type Client interface {
	Onboard(ctx context.Context, req models.OnboardingRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)

	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error)

	GetDailyPlan(ctx context.Context) (*models.DailyPlan, error)
	ListObjectives(ctx context.Context, date string) ([]models.Objective, error)
	UpdateObjective(ctx context.Context, id int64, patch models.ObjectivePatch) (*models.Objective, error)

	SubmitCheckIn(ctx context.Context, checkIn models.CheckIn) (*models.CheckInRecord, error)
	GetRandomTip(ctx context.Context) (*models.Tip, error)

	GetHobbySuggestion(ctx context.Context) (*models.HobbySuggestion, error)
	ListHobbies(ctx context.Context) ([]models.Hobby, error)
	CreateHobby(ctx context.Context, hobby models.NewHobby) (*models.Hobby, error)
	GetWorkoutPlan(ctx context.Context) (*models.WorkoutPlan, error)
}

// TokenSource yields the credential to attach to the next request.
// An empty string means no credential is set.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, handy for scripts and tests.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }
