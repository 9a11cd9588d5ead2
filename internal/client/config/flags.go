package config

import (
	"flag"
	"os"
	"time"

	"github.com/fundscope/fundscope-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-w string   websocket URL of the realtime endpoint
//	-d string   sqlite DSN of the local credential database
//	-t int      API request timeout in seconds
//	-b int      realtime heartbeat interval in seconds
//	-r int      realtime reconnect delay in milliseconds
//	-o string   loopback address for the OAuth callback listener
//	-m string   metrics listen address (empty disables the endpoint)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-t", "-b", "-r", "-o", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.RealtimeURL, "w", cfg.RealtimeURL, "websocket URL of the realtime endpoint")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN of the local credential database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "API request timeout (in seconds)")
	heartbeatInterval := fs.Int("b", int(cfg.HeartbeatInterval.Seconds()), "realtime heartbeat interval (in seconds)")
	reconnectDelay := fs.Int("r", int(cfg.ReconnectDelay.Milliseconds()), "realtime reconnect delay (in milliseconds)")
	fs.StringVar(&cfg.OAuthCallbackAddr, "o", cfg.OAuthCallbackAddr, "loopback address for the OAuth callback listener")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address (empty disables the endpoint)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.HeartbeatInterval = time.Duration(*heartbeatInterval) * time.Second
	cfg.ReconnectDelay = time.Duration(*reconnectDelay) * time.Millisecond
}
