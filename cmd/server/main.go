// Command server runs the study API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. SIGINT or SIGTERM stops the server and flushes queued
// progress writes.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/one393143/quizlet/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
