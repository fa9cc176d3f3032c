// Package services contains the application services of the Momentum client.
// This file defines the authentication service: onboarding, login, logout
// and the user profile.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/momentum/internal/client/client"
	"github.com/dmitrijs2005/momentum/internal/client/models"
	"github.com/dmitrijs2005/momentum/internal/client/session"
	"github.com/dmitrijs2005/momentum/internal/logging"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Onboard: create an account, then commit credential and user.
//   - Login: authenticate, then commit credential and user.
//   - Logout: wipe the session in one transition.
//   - LoadProfile / UpdateProfile: fetch or patch the profile and commit it.
//
// Failures are reported once through the Notifier and returned.
type AuthService interface {
	Onboard(ctx context.Context, req models.OnboardingRequest) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	LoadProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error)
}

type authService struct {
	client   client.Client
	store    *session.Store
	notifier Notifier
	logger   logging.Logger
}

// NewAuthService constructs an AuthService that commits into store.
func NewAuthService(c client.Client, store *session.Store, n Notifier, l logging.Logger) AuthService {
	return &authService{client: c, store: store, notifier: n, logger: l.With("component", "auth")}
}

// failWith notifies the server message when there is one, fallback otherwise.
func (a *authService) failWith(ctx context.Context, err error, fallback string) {
	msg := client.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}
	a.notifier.Notify(ctx, errorNotice(msg))
}

func (a *authService) commit(resp *models.AuthResponse) *models.User {
	user := resp.User()
	a.store.SetCredential(resp.Token)
	a.store.SetUser(&user)
	return &user
}

// Onboard validates required fields locally, creates the account and
// signs the user in. An empty scheduling method means Atomic Habits.
func (a *authService) Onboard(ctx context.Context, req models.OnboardingRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := requireFields("username", req.Username, "email", req.Email, "password", req.Password, "goal", req.Goal); err != nil {
		a.notifier.Notify(ctx, errorNotice("Please fill in all required fields"))
		return nil, err
	}
	if req.SchedulingMethod == "" {
		req.SchedulingMethod = models.SchedulingAtomicHabits
	}
	if !req.SchedulingMethod.Valid() {
		err := &ValidationError{Fields: []string{"scheduling_method"}, Reason: "unknown"}
		a.notifier.Notify(ctx, errorNotice("Unknown scheduling method"))
		return nil, err
	}

	resp, err := a.client.Onboard(ctx, req)
	if err != nil {
		a.logger.Error(ctx, "onboarding failed", "username", req.Username, "error", err)
		a.failWith(ctx, err, "Failed to create account")
		return nil, fmt.Errorf("onboard: %w", err)
	}

	user := a.commit(resp)
	a.logger.Info(ctx, "account created", "user_id", user.ID)
	return user, nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	username = strings.TrimSpace(username)
	if err := requireFields("username", username, "password", string(password)); err != nil {
		a.notifier.Notify(ctx, errorNotice("Please fill in all required fields"))
		return nil, err
	}

	resp, err := a.client.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	if err != nil {
		a.logger.Error(ctx, "login failed", "username", username, "error", err)
		a.failWith(ctx, err, "Login failed")
		return nil, fmt.Errorf("login: %w", err)
	}

	user := a.commit(resp)
	a.logger.Info(ctx, "logged in", "user_id", user.ID)
	return user, nil
}

// Logout wipes credential, user, profile and objectives together.
func (a *authService) Logout(ctx context.Context) error {
	a.store.Logout()
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) LoadProfile(ctx context.Context) (*models.Profile, error) {
	p, err := a.client.GetProfile(ctx)
	if err != nil {
		a.logger.Error(ctx, "profile fetch failed", "error", err)
		a.failWith(ctx, err, "Failed to load profile")
		return nil, fmt.Errorf("get profile: %w", err)
	}
	a.store.SetProfile(p)
	return p, nil
}

func (a *authService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error) {
	if patch.SchedulingMethod != nil && !patch.SchedulingMethod.Valid() {
		a.notifier.Notify(ctx, errorNotice("Unknown scheduling method"))
		return nil, &ValidationError{Fields: []string{"scheduling_method"}, Reason: "unknown"}
	}
	if patch.Goal != nil && strings.TrimSpace(*patch.Goal) == "" {
		a.notifier.Notify(ctx, errorNotice("Goal cannot be empty"))
		return nil, &ValidationError{Fields: []string{"goal"}}
	}

	p, err := a.client.UpdateProfile(ctx, patch)
	if err != nil {
		a.logger.Error(ctx, "profile update failed", "error", err)
		a.failWith(ctx, err, "Failed to update profile")
		return nil, fmt.Errorf("update profile: %w", err)
	}
	a.store.SetProfile(p)
	return p, nil
}
