package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		preset      *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-t", "10", "-l", "debug"}, expectPanic: false,
			expected: &Config{ServerBaseURL: "http://127.0.0.1:9090/api", RequestTimeout: 10 * time.Second, LogLevel: "debug"}},
		{name: "Test2 foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-t", "3"}, expectPanic: false,
			expected: &Config{RequestTimeout: 3 * time.Second}},
		{name: "Test3 no -t keeps sub-second timeout", args: []string{"cmd", "-l", "warn"}, preset: &Config{RequestTimeout: 1500 * time.Millisecond},
			expected: &Config{RequestTimeout: 1500 * time.Millisecond, LogLevel: "warn"}},
		{name: "Test4 incorrect timeout", args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}
			if tt.preset != nil {
				*config = *tt.preset
			}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
