package models

type Exercise struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Notes    string `json:"notes,omitempty"`
}

// WorkoutPlan is a generated workout. DurationMinutes comes from model
// output and may arrive as 30 or 30.0.
type WorkoutPlan struct {
	WorkoutType     string     `json:"workout_type"`
	DurationMinutes float64    `json:"duration_minutes"`
	Encouragement   string     `json:"encouragement,omitempty"`
	Exercises       []Exercise `json:"exercises"`
}
