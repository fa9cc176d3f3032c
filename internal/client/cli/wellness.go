package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/momentum/internal/client/models"
)

func (a *App) Hobbies(ctx context.Context) error {
	list, err := a.wellness.Hobbies(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No hobbies yet, try 'addhobby' or 'suggest'")
		return nil
	}
	for _, h := range list {
		line := "- " + h.Name
		if h.Description != "" {
			line += ": " + h.Description
		}
		if h.Frequency != "" {
			line += fmt.Sprintf(" (%s)", h.Frequency)
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) AddHobby(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Hobby name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	frequency, err := getSimpleText(a.reader, "How often? (optional)", os.Stdout)
	if err != nil {
		return err
	}

	h, err := a.wellness.AddHobby(ctx, models.NewHobby{Name: name, Description: description, Frequency: frequency})
	if err != nil {
		return err
	}
	printlnFn("Added hobby:", h.Name)
	return nil
}

func (a *App) Suggest(ctx context.Context) error {
	s, err := a.wellness.HobbySuggestion(ctx)
	if err != nil {
		return err
	}
	printlnFn("Try:", s.HobbyName)
	if s.Description != "" {
		printlnFn(s.Description)
	}
	if s.GettingStarted != "" {
		printlnFn("Getting started:", s.GettingStarted)
	}
	return nil
}

func (a *App) Workout(ctx context.Context) error {
	w, err := a.wellness.WorkoutPlan(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Workout: %s (%g min)", w.WorkoutType, w.DurationMinutes))
	for _, e := range w.Exercises {
		line := fmt.Sprintf("- %s, %s", e.Name, e.Duration)
		if e.Notes != "" {
			line += ": " + e.Notes
		}
		printlnFn(line)
	}
	if w.Encouragement != "" {
		printlnFn(w.Encouragement)
	}
	return nil
}
