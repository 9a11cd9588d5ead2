package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/fundscope/fundscope-cli/internal/client/cli"
	"github.com/fundscope/fundscope-cli/internal/client/config"
	"github.com/fundscope/fundscope-cli/internal/logging"
	"github.com/fundscope/fundscope-cli/internal/obs"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	obs.Init()
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", obs.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error(ctx, "metrics listener failed", "err", err)
			}
		}()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
