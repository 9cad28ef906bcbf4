package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-recommender/internal/bootstrap"
	"job-recommender/internal/shared/config"
	"job-recommender/internal/shared/telemetry"
	"job-recommender/internal/toolserver"
)

func main() {
	cfg := config.Load()
	// stdout carries the MCP protocol.
	telemetry.SetLogger(telemetry.New(os.Stderr, cfg.LogLevel))
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, _, _ := bootstrap.NewService(cfg)
	telemetry.Info("toolserver.start", map[string]any{"llm_provider": cfg.LLMProvider, "job_source": cfg.JobSource})
	if err := toolserver.Run(ctx, svc); err != nil && ctx.Err() == nil {
		log.Fatalf("tool server: %v", err)
	}
}
