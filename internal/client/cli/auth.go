package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/momentum/internal/client/models"
	"github.com/dmitrijs2005/momentum/internal/common"
)

// Onboard prompts for the account details, creates the account and opens
// the dashboard. Validation and service failures are reported by the
// service notifier and returned unchanged.
func (a *App) Onboard(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	goal, err := getSimpleText(a.reader, "What is your main goal?", os.Stdout)
	if err != nil {
		return err
	}
	method, err := a.askSchedulingMethod()
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Onboard(ctx, models.OnboardingRequest{
		Username:         username,
		Email:            email,
		Password:         string(password),
		FirstName:        firstName,
		Goal:             goal,
		SchedulingMethod: method,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return a.Plan(ctx)
}

// askSchedulingMethod accepts a list number or a method name. An empty
// answer leaves the choice to the service default.
func (a *App) askSchedulingMethod() (models.SchedulingMethod, error) {
	methods := models.SchedulingMethods()
	printlnFn("Scheduling methods:")
	for i, m := range methods {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, m))
	}

	answer, err := getSimpleText(a.reader, "Choose a method (Enter for Atomic Habits)", os.Stdout)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(methods) {
		return methods[n-1], nil
	}
	for _, m := range methods {
		if strings.EqualFold(answer, string(m)) {
			return m, nil
		}
	}
	return models.SchedulingMethod(answer), nil
}

// Login prompts for credentials, signs in and opens the dashboard.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s", user.Username))
	return a.Plan(ctx)
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p, err := a.auth.LoadProfile(ctx)
	if err != nil {
		return err
	}

	if p.User != nil {
		name := strings.TrimSpace(p.User.FirstName + " " + p.User.LastName)
		if name == "" {
			name = p.User.Username
		}
		printlnFn(fmt.Sprintf("Name: %s <%s>", name, p.User.Email))
	}
	printlnFn("Goal:", p.Goal)
	printlnFn("Scheduling method:", p.SchedulingMethod)
	if p.HeightCM != nil {
		printlnFn(fmt.Sprintf("Height: %.1f cm", *p.HeightCM))
	}
	if p.WeightKG != nil {
		printlnFn(fmt.Sprintf("Weight: %.1f kg", *p.WeightKG))
	}
	if p.BodyFatPercentage != nil {
		printlnFn(fmt.Sprintf("Body fat: %.1f%%", *p.BodyFatPercentage))
	}
	return nil
}

// Goal replaces the profile goal.
func (a *App) Goal(ctx context.Context) error {
	goal, err := getSimpleText(a.reader, "New goal", os.Stdout)
	if err != nil {
		return err
	}
	if _, err := a.auth.UpdateProfile(ctx, models.ProfilePatch{Goal: &goal}); err != nil {
		return err
	}
	printlnFn("Goal updated")
	return nil
}
