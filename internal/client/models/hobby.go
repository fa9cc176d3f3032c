package models

import "time"

type Hobby struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Frequency   string    `json:"frequency,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHobby is the body of POST /hobbies/.
type NewHobby struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
}

type HobbySuggestion struct {
	HobbyName      string `json:"hobby_name"`
	Description    string `json:"description"`
	GettingStarted string `json:"getting_started"`
}
