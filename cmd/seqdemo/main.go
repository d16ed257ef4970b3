package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/lessonkit/lazyseq/internal/config"
	"github.com/lessonkit/lazyseq/internal/demo"
)

func main() {
	ctx := context.Background()
	logger.Configure(func(l *logging.Logger) { l.Out = os.Stderr })

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "failed to load the configuration", logging.ErrField(err))
		os.Exit(cli.ExitCodeError)
	}
	logger.Configure(cfg.ConfigureLogger)

	cli.Main(ctx, demo.Mux(cfg))
}
