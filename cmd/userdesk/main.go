package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/userdesk-dev/userdesk/internal/client/cli"
	"github.com/userdesk-dev/userdesk/internal/client/config"
	"github.com/userdesk-dev/userdesk/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, logger)
	app.Run(context.Background())
}
