package config

import (
	"flag"
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
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK",
			args:        []string{"cmd", "-a", "http://api.example:9090", "-d", "alt.db", "-t", "30", "-b", "10", "-r", "500", "-o", "127.0.0.1:4400", "-m", "127.0.0.1:9100"},
			expectPanic: false,
			expected: &Config{
				APIBaseURL:        "http://api.example:9090",
				DatabaseDSN:       "alt.db",
				RequestTimeout:    30 * time.Second,
				HeartbeatInterval: 10 * time.Second,
				ReconnectDelay:    500 * time.Millisecond,
				OAuthCallbackAddr: "127.0.0.1:4400",
				MetricsAddr:       "127.0.0.1:9100",
			}},
		{name: "Test2 incorrect timeout", args: []string{"cmd", "-a", "http://api.example:9090", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
