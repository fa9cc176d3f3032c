package models

import "time"

// User identifies the authenticated account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// SchedulingMethod is the planning technique the daily plan is framed with.
type SchedulingMethod string

const (
	SchedulingAtomicHabits      SchedulingMethod = "Atomic Habits"
	SchedulingEisenhowerMatrix  SchedulingMethod = "Eisenhower Matrix"
	SchedulingTimeBlocking      SchedulingMethod = "Time Blocking"
	SchedulingPomodoro          SchedulingMethod = "Pomodoro"
	SchedulingGettingThingsDone SchedulingMethod = "GTD"
)

var schedulingMethods = []SchedulingMethod{
	SchedulingAtomicHabits,
	SchedulingEisenhowerMatrix,
	SchedulingTimeBlocking,
	SchedulingPomodoro,
	SchedulingGettingThingsDone,
}

func SchedulingMethods() []SchedulingMethod {
	return append([]SchedulingMethod(nil), schedulingMethods...)
}

func (m SchedulingMethod) Valid() bool {
	for _, known := range schedulingMethods {
		if m == known {
			return true
		}
	}
	return false
}

// OnboardingRequest is the body of POST /onboarding/.
type OnboardingRequest struct {
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	Password         string           `json:"password"`
	FirstName        string           `json:"first_name"`
	Goal             string           `json:"goal"`
	SchedulingMethod SchedulingMethod `json:"scheduling_method"`
}

// Credentials is the body of POST /login/.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both onboarding and login.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message,omitempty"`
}

func (r AuthResponse) User() User {
	return User{ID: r.UserID, Username: r.Username}
}

// ProfileUser is the account block nested in a Profile.
type ProfileUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile holds user settings. It is fetched and updated independently of
// objectives.
type Profile struct {
	ID                int64            `json:"id"`
	User              *ProfileUser     `json:"user,omitempty"`
	Goal              string           `json:"goal"`
	HeightCM          *float64         `json:"height_cm"`
	WeightKG          *float64         `json:"weight_kg"`
	BodyFatPercentage *float64         `json:"body_fat_percentage"`
	SchedulingMethod  SchedulingMethod `json:"scheduling_method"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ProfilePatch is the body of PATCH /profile/update/.
type ProfilePatch struct {
	Goal              *string           `json:"goal,omitempty"`
	HeightCM          *float64          `json:"height_cm,omitempty"`
	WeightKG          *float64          `json:"weight_kg,omitempty"`
	BodyFatPercentage *float64          `json:"body_fat_percentage,omitempty"`
	SchedulingMethod  *SchedulingMethod `json:"scheduling_method,omitempty"`
}
