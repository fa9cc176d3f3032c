package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/momentum/internal/client/client"
	"github.com/dmitrijs2005/momentum/internal/client/models"
	"github.com/dmitrijs2005/momentum/internal/client/session"
	"github.com/dmitrijs2005/momentum/internal/common"
	"github.com/dmitrijs2005/momentum/internal/logging"
	"golang.org/x/sync/errgroup"
)

// CheckInState is the end-of-day prompt state. Submission in flight is not
// a separate state: the prompt stays open until the service acknowledges.
type CheckInState int

const (
	CheckInIdle CheckInState = iota
	CheckInPrompting
)

func (s CheckInState) String() string {
	if s == CheckInPrompting {
		return "prompting"
	}
	return "idle"
}

// DashboardState is the view-facing state owned by the Dashboard.
type DashboardState struct {
	Loading  bool
	DailyTip *models.Tip
	CheckIn  CheckInState
}

// Dashboard coordinates the daily plan, the daily tip, objective toggles and
// the end-of-day check-in, committing results into the session store.
type Dashboard struct {
	client   client.Client
	store    *session.Store
	notifier Notifier
	logger   logging.Logger
	now      func() time.Time

	mu       sync.Mutex
	state    DashboardState
	toggling map[int64]struct{}
}

func NewDashboard(c client.Client, store *session.Store, n Notifier, l logging.Logger) *Dashboard {
	return &Dashboard{
		client:   c,
		store:    store,
		notifier: n,
		logger:   l.With("component", "dashboard"),
		now:      time.Now,
		toggling: make(map[int64]struct{}),
	}
}

// State returns a copy of the dashboard state.
func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := d.state
	if st.DailyTip != nil {
		tip := *st.DailyTip
		st.DailyTip = &tip
	}
	return st
}

func (d *Dashboard) update(fn func(st *DashboardState)) {
	d.mu.Lock()
	fn(&d.state)
	d.mu.Unlock()
}

// Activate loads the daily plan and the daily tip concurrently. The returned
// error is the plan error; a tip failure is logged and otherwise ignored.
func (d *Dashboard) Activate(ctx context.Context) error {
	d.update(func(st *DashboardState) {
		st.Loading = true
		st.DailyTip = nil
	})

	// A plain Group: a failing fetch must not cancel its sibling.
	var g errgroup.Group
	g.Go(func() error { return d.loadPlan(ctx) })
	g.Go(func() error {
		d.loadTip(ctx)
		return nil
	})
	return g.Wait()
}

func (d *Dashboard) loadPlan(ctx context.Context) error {
	plan, err := d.client.GetDailyPlan(ctx)
	if err != nil {
		d.update(func(st *DashboardState) { st.Loading = false })
		d.logger.Error(ctx, "daily plan load failed", "error", err)
		d.notifier.Notify(ctx, errorNotice("Failed to load daily plan"))
		return fmt.Errorf("load daily plan: %w", err)
	}

	d.store.SetObjectives(plan.Objectives)
	d.update(func(st *DashboardState) { st.Loading = false })
	d.logger.Debug(ctx, "daily plan loaded", "objectives", len(plan.Objectives))
	return nil
}

func (d *Dashboard) loadTip(ctx context.Context) {
	tip, err := d.client.GetRandomTip(ctx)
	if err != nil {
		d.logger.Warn(ctx, "daily tip load failed", "error", err)
		return
	}
	d.update(func(st *DashboardState) { st.DailyTip = tip })
}

// ToggleObjective flips o's completion on the service and, only after the
// service acknowledges, in the store. While a toggle for o.ID is in flight
// further toggles for it are rejected with ErrToggleInFlight.
func (d *Dashboard) ToggleObjective(ctx context.Context, o models.Objective) error {
	d.mu.Lock()
	if _, busy := d.toggling[o.ID]; busy {
		d.mu.Unlock()
		d.logger.Debug(ctx, "toggle rejected, update in flight", "objective_id", o.ID)
		return ErrToggleInFlight
	}
	d.toggling[o.ID] = struct{}{}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.toggling, o.ID)
		d.mu.Unlock()
	}()

	patch := models.CompletionPatch(!o.IsCompleted)
	if _, err := d.client.UpdateObjective(ctx, o.ID, patch); err != nil {
		d.logger.Error(ctx, "objective update failed", "objective_id", o.ID, "error", err)
		d.notifier.Notify(ctx, errorNotice("Failed to update objective"))
		return fmt.Errorf("update objective %d: %w", o.ID, err)
	}

	d.store.UpdateObjective(o.ID, patch)
	return nil
}

// BeginCheckIn opens the end-of-day prompt.
func (d *Dashboard) BeginCheckIn() {
	d.update(func(st *DashboardState) { st.CheckIn = CheckInPrompting })
}

// CancelCheckIn closes the prompt without contacting the service.
func (d *Dashboard) CancelCheckIn() {
	d.update(func(st *DashboardState) { st.CheckIn = CheckInIdle })
}

// SubmitCheckIn sends mood for today's local date. On success the prompt
// closes; on failure it stays open so the user can retry or cancel.
func (d *Dashboard) SubmitCheckIn(ctx context.Context, mood models.Mood) error {
	if d.State().CheckIn != CheckInPrompting {
		return ErrNotPrompting
	}
	if !mood.Valid() {
		return &ValidationError{Fields: []string{"mood"}, Reason: "unknown"}
	}

	checkIn := models.CheckIn{
		Mood:  mood,
		Notes: "",
		Date:  d.now().Local().Format(common.DateLayout),
	}
	if _, err := d.client.SubmitCheckIn(ctx, checkIn); err != nil {
		d.logger.Error(ctx, "check-in failed", "mood", mood, "error", err)
		d.notifier.Notify(ctx, errorNotice("Failed to submit check-in"))
		return fmt.Errorf("submit check-in: %w", err)
	}

	d.update(func(st *DashboardState) { st.CheckIn = CheckInIdle })
	d.notifier.Notify(ctx, successNotice("Check-in submitted! See you tomorrow."))
	return nil
}
