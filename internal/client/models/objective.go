package models

import "time"

// Objective is a single daily task. ID is assigned by the service and never
// changes; every other field may be replaced through an ObjectivePatch.
type Objective struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	Date        string     `json:"date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Project     *int64     `json:"project,omitempty"`
	ProjectName string     `json:"project_name,omitempty"`
}

// ObjectivePatch is a partial objective update. Nil fields are left alone,
// both on the wire and when applied locally.
type ObjectivePatch struct {
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// CompletionPatch builds the patch sent by the toggle protocol.
func CompletionPatch(completed bool) ObjectivePatch {
	return ObjectivePatch{IsCompleted: &completed}
}

// Apply returns o with the fields present in p replaced.
func (p ObjectivePatch) Apply(o Objective) Objective {
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.IsCompleted != nil {
		o.IsCompleted = *p.IsCompleted
	}
	if p.Date != nil {
		o.Date = *p.Date
	}
	return o
}

func (p ObjectivePatch) IsEmpty() bool {
	return p.Description == nil && p.IsCompleted == nil && p.Date == nil
}

// DailyPlan is the body of GET /daily-plan/.
type DailyPlan struct {
	Objectives []Objective `json:"objectives"`
	Message    string      `json:"message,omitempty"`
}
