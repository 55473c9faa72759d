// Command web запускает веб-клиент сервиса сокращения ссылок.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/trunc_web/internal/app"
	"github.com/InQaaaaGit/trunc_web/internal/buildinfo"
	"github.com/InQaaaaGit/trunc_web/internal/server"
)

// Заполняются через -ldflags "-X main.buildVersion=..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("web: %v", err)
	}
}

func run() error {
	cfg, err := server.InitConfig()
	if err != nil {
		return err
	}

	logger, cleanup, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Log(logger)

	application := app.NewApp(cfg, logger)
	srv := server.NewHTTPServer(application.GetServer(), cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-errCh
}
