package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestObjectivePatch_Apply(t *testing.T) {
	base := Objective{ID: 7, Description: "Read", IsCompleted: false, Date: "2026-10-18", ProjectName: "Books"}

	tests := []struct {
		name  string
		patch ObjectivePatch
		want  Objective
	}{
		{
			name:  "empty patch keeps everything",
			patch: ObjectivePatch{},
			want:  base,
		},
		{
			name:  "completion only",
			patch: CompletionPatch(true),
			want:  Objective{ID: 7, Description: "Read", IsCompleted: true, Date: "2026-10-18", ProjectName: "Books"},
		},
		{
			name:  "description and date",
			patch: ObjectivePatch{Description: strPtr("Write"), Date: strPtr("2026-10-19")},
			want:  Objective{ID: 7, Description: "Write", IsCompleted: false, Date: "2026-10-19", ProjectName: "Books"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(base)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.patch.Apply(got), "applying twice must be idempotent")
		})
	}
}

func TestCompletionPatch_WireFormat(t *testing.T) {
	b, err := json.Marshal(CompletionPatch(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_completed": false}`, string(b))

	assert.False(t, CompletionPatch(false).IsEmpty())
	assert.True(t, ObjectivePatch{}.IsEmpty())
}

func TestDailyPlan_Decode(t *testing.T) {
	body := `{"objectives":[{"id":1,"description":"Read","is_completed":false,"date":"2026-10-18","completed_at":null,"project":null,"project_name":null}],"message":"Daily plan generated successfully"}`

	var plan DailyPlan
	require.NoError(t, json.Unmarshal([]byte(body), &plan))
	require.Len(t, plan.Objectives, 1)
	assert.Equal(t, Objective{ID: 1, Description: "Read", Date: "2026-10-18"}, plan.Objectives[0])
}
