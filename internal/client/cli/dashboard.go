package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/momentum/internal/client/models"
	"github.com/dmitrijs2005/momentum/internal/client/services"
)

var errNoSuchObjective = errors.New("no such objective")

func formatObjective(n int, o models.Objective) string {
	mark := " "
	if o.IsCompleted {
		mark = "x"
	}
	s := fmt.Sprintf("%d. [%s] %s", n, mark, o.Description)
	if o.ProjectName != "" {
		s += fmt.Sprintf(" (%s)", o.ProjectName)
	}
	return s
}

func printObjectives(list []models.Objective, empty string) {
	if len(list) == 0 {
		printlnFn(empty)
		return
	}
	for i, o := range list {
		printlnFn(formatObjective(i+1, o))
	}
}

func printTip(tip *models.Tip) {
	if tip == nil {
		return
	}
	line := fmt.Sprintf("Tip [%s]: %s", tip.Category, tip.Content)
	if tip.Source != "" {
		line += fmt.Sprintf(" (%s)", tip.Source)
	}
	printlnFn(line)
}

// Plan activates the dashboard and renders today's tip and objectives. The
// tip is loaded independently of the plan and is shown even when the plan
// fetch fails.
func (a *App) Plan(ctx context.Context) error {
	err := a.dashboard.Activate(ctx)
	printTip(a.dashboard.State().DailyTip)
	if err != nil {
		return err
	}

	printlnFn("Today's objectives:")
	printObjectives(a.store.Snapshot().Objectives, "No objectives for today")
	return nil
}

func (a *App) Tip(_ context.Context) error {
	tip := a.dashboard.State().DailyTip
	if tip == nil {
		printlnFn("No tip loaded yet, run 'plan' first")
		return nil
	}
	printTip(tip)
	return nil
}

// Toggle flips the completion of the n-th objective as listed by plan.
func (a *App) Toggle(ctx context.Context, arg string) error {
	list := a.store.Snapshot().Objectives
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(list) {
		printlnFn(fmt.Sprintf("No objective #%s", arg))
		return errNoSuchObjective
	}

	o := list[n-1]
	if err := a.dashboard.ToggleObjective(ctx, o); err != nil {
		if errors.Is(err, services.ErrToggleInFlight) {
			printlnFn("Update already in progress")
		}
		return err
	}

	if updated, ok := a.store.Snapshot().Objective(o.ID); ok {
		printlnFn(formatObjective(n, updated))
	}
	return nil
}

// Objectives lists objectives of date (YYYY-MM-DD), today when empty. The
// dashboard list is left alone.
func (a *App) Objectives(ctx context.Context, date string) error {
	list, err := a.wellness.Objectives(ctx, date)
	if err != nil {
		return err
	}
	when := date
	if when == "" {
		when = "today"
	}
	printObjectives(list, "No objectives for "+when)
	return nil
}

func parseMoodChoice(answer string) (models.Mood, error) {
	moods := models.Moods()
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(moods) {
			return moods[n-1], nil
		}
		return "", fmt.Errorf("%w: %d", models.ErrUnknownMood, n)
	}
	return models.ParseMood(answer)
}

// CheckIn runs the end-of-day prompt. A failed submission keeps the prompt
// open; "cancel" or end of input closes it without contacting the service.
func (a *App) CheckIn(ctx context.Context) error {
	a.dashboard.BeginCheckIn()

	printlnFn("How was your day?")
	for i, m := range models.Moods() {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, m))
	}

	for {
		answer, err := getSimpleText(a.reader, "Mood (number or name, 'cancel' to skip)", os.Stdout)
		if err != nil {
			a.dashboard.CancelCheckIn()
			return err
		}
		if strings.EqualFold(answer, "cancel") {
			a.dashboard.CancelCheckIn()
			printlnFn("Check-in skipped")
			return nil
		}

		mood, err := parseMoodChoice(answer)
		if err != nil {
			printlnFn("Unknown mood:", answer)
			continue
		}

		err = a.dashboard.SubmitCheckIn(ctx, mood)
		if err == nil {
			return nil
		}
		if errors.Is(err, services.ErrNotPrompting) {
			return err
		}
	}
}
