package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dreamcatcher/dreamcatcher-go/internal/buildinfo"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/cli"
	"github.com/dreamcatcher/dreamcatcher-go/internal/client/config"
	"github.com/dreamcatcher/dreamcatcher-go/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
