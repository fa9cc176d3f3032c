package models

// Tip is the read-only snippet shown on the dashboard.
type Tip struct {
	ID       int64  `json:"id,omitempty"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Source   string `json:"source"`
}
