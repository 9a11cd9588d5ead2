package config

import (
	"net/url"
	"strings"
	"time"
)

// Config holds runtime settings for the FundScope CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - RealtimeURL: websocket URL of the realtime endpoint. When empty it is
//     derived from APIBaseURL by WSURL.
//   - DatabaseDSN: sqlite DSN of the local credential database.
//   - RequestTimeout: per-request deadline for API calls.
//   - HeartbeatInterval: realtime keepalive ping period.
//   - ReconnectDelay: fixed delay between realtime reconnect attempts.
//   - OAuthCallbackAddr: loopback listen address for the OAuth redirect.
//   - MetricsAddr: listen address for the metrics endpoint; empty disables it.
type Config struct {
	APIBaseURL        string
	RealtimeURL       string
	DatabaseDSN       string
	RequestTimeout    time.Duration
	HeartbeatInterval time.Duration
	ReconnectDelay    time.Duration
	OAuthCallbackAddr string
	MetricsAddr       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RealtimeURL = ""
	c.DatabaseDSN = "fundscope.db"
	c.RequestTimeout = 15 * time.Second
	c.HeartbeatInterval = 20 * time.Second
	c.ReconnectDelay = 200 * time.Millisecond
	c.OAuthCallbackAddr = "127.0.0.1:4300"
	c.MetricsAddr = ""
}

// WSURL returns the realtime endpoint URL. An explicitly configured
// RealtimeURL wins; otherwise the URL is derived from APIBaseURL by swapping
// the scheme to ws/wss and appending the /ws path.
func (c *Config) WSURL() string {
	if c.RealtimeURL != "" {
		return c.RealtimeURL
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Host == "" {
		return ""
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String()
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
