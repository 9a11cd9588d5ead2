package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fundscope/fundscope-cli/internal/flagx"
	"github.com/fundscope/fundscope-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "20s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	RealtimeURL       string         `json:"realtime_url"`
	DatabaseDSN       string         `json:"database_dsn"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	HeartbeatInterval timex.Duration `json:"heartbeat_interval"`
	ReconnectDelay    timex.Duration `json:"reconnect_delay"`
	OAuthCallbackAddr string         `json:"oauth_callback_addr"`
	MetricsAddr       string         `json:"metrics_addr"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies fields that are present (non-zero) into the provided Config,
//     so a partial file overlays only what it names.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RealtimeURL != "" {
		cfg.RealtimeURL = jc.RealtimeURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.HeartbeatInterval.Duration != 0 {
		cfg.HeartbeatInterval = time.Duration(jc.HeartbeatInterval.Duration)
	}
	if jc.ReconnectDelay.Duration != 0 {
		cfg.ReconnectDelay = time.Duration(jc.ReconnectDelay.Duration)
	}
	if jc.OAuthCallbackAddr != "" {
		cfg.OAuthCallbackAddr = jc.OAuthCallbackAddr
	}
	if jc.MetricsAddr != "" {
		cfg.MetricsAddr = jc.MetricsAddr
	}
}
