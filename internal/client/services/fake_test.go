package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/momentum/internal/client/client"
	"github.com/dmitrijs2005/momentum/internal/client/models"
)

// ---- fake client ----

// fakeClient implements client.Client for service unit tests. Results are
// preset per method; arguments of the last call are captured. The optional
// hooks run before a method returns and may block.
type fakeClient struct {
	mu sync.Mutex

	OnboardRet *models.AuthResponse
	OnboardErr error
	LoginRet   *models.AuthResponse
	LoginErr   error

	ProfileRet       *models.Profile
	ProfileErr       error
	UpdateProfileRet *models.Profile
	UpdateProfileErr error

	PlanRet  *models.DailyPlan
	PlanErr  error
	PlanHook func(ctx context.Context)

	ObjectivesRet []models.Objective
	ObjectivesErr error

	UpdateObjectiveErr  error
	UpdateObjectiveHook func(ctx context.Context)

	CheckInErr error

	TipRet  *models.Tip
	TipErr  error
	TipHook func(ctx context.Context)

	SuggestionRet  *models.HobbySuggestion
	SuggestionErr  error
	HobbiesRet     []models.Hobby
	HobbiesErr     error
	CreateHobbyErr error
	WorkoutRet     *models.WorkoutPlan
	WorkoutErr     error

	// captured arguments
	LastOnboard        models.OnboardingRequest
	LastCredentials    models.Credentials
	LastProfilePatch   models.ProfilePatch
	LastObjectivesDate string
	LastObjectiveID    int64
	LastObjectivePatch models.ObjectivePatch
	LastCheckIn        models.CheckIn
	LastNewHobby       models.NewHobby

	Calls map[string]int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[name]++
}

func (f *fakeClient) calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		n += c
	}
	return n
}

func (f *fakeClient) Onboard(ctx context.Context, req models.OnboardingRequest) (*models.AuthResponse, error) {
	f.record("Onboard")
	f.LastOnboard = req
	return f.OnboardRet, f.OnboardErr
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.record("Login")
	f.LastCredentials = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	f.record("GetProfile")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error) {
	f.record("UpdateProfile")
	f.LastProfilePatch = patch
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) GetDailyPlan(ctx context.Context) (*models.DailyPlan, error) {
	f.record("GetDailyPlan")
	if f.PlanHook != nil {
		f.PlanHook(ctx)
	}
	return f.PlanRet, f.PlanErr
}

func (f *fakeClient) ListObjectives(ctx context.Context, date string) ([]models.Objective, error) {
	f.record("ListObjectives")
	f.LastObjectivesDate = date
	return f.ObjectivesRet, f.ObjectivesErr
}

func (f *fakeClient) UpdateObjective(ctx context.Context, id int64, patch models.ObjectivePatch) (*models.Objective, error) {
	f.record("UpdateObjective")
	f.mu.Lock()
	f.LastObjectiveID = id
	f.LastObjectivePatch = patch
	f.mu.Unlock()
	if f.UpdateObjectiveHook != nil {
		f.UpdateObjectiveHook(ctx)
	}
	if f.UpdateObjectiveErr != nil {
		return nil, f.UpdateObjectiveErr
	}
	o := patch.Apply(models.Objective{ID: id})
	return &o, nil
}

func (f *fakeClient) SubmitCheckIn(ctx context.Context, checkIn models.CheckIn) (*models.CheckInRecord, error) {
	f.record("SubmitCheckIn")
	f.LastCheckIn = checkIn
	if f.CheckInErr != nil {
		return nil, f.CheckInErr
	}
	return &models.CheckInRecord{ID: 1, Mood: checkIn.Mood, Notes: checkIn.Notes, Date: checkIn.Date}, nil
}

func (f *fakeClient) GetRandomTip(ctx context.Context) (*models.Tip, error) {
	f.record("GetRandomTip")
	if f.TipHook != nil {
		f.TipHook(ctx)
	}
	return f.TipRet, f.TipErr
}

func (f *fakeClient) GetHobbySuggestion(ctx context.Context) (*models.HobbySuggestion, error) {
	f.record("GetHobbySuggestion")
	return f.SuggestionRet, f.SuggestionErr
}

func (f *fakeClient) ListHobbies(ctx context.Context) ([]models.Hobby, error) {
	f.record("ListHobbies")
	return f.HobbiesRet, f.HobbiesErr
}

func (f *fakeClient) CreateHobby(ctx context.Context, hobby models.NewHobby) (*models.Hobby, error) {
	f.record("CreateHobby")
	f.LastNewHobby = hobby
	if f.CreateHobbyErr != nil {
		return nil, f.CreateHobbyErr
	}
	return &models.Hobby{ID: 7, Name: hobby.Name, Description: hobby.Description}, nil
}

func (f *fakeClient) GetWorkoutPlan(ctx context.Context) (*models.WorkoutPlan, error) {
	f.record("GetWorkoutPlan")
	return f.WorkoutRet, f.WorkoutErr
}

// ---- recording notifier ----

type recordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recordingNotifier) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingNotifier) all() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}
