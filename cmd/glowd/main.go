package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/glow/internal/api"
	"github.com/wheelibin/glow/internal/auth"
	"github.com/wheelibin/glow/internal/config"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/glow"
	"github.com/wheelibin/glow/internal/lights"
	"github.com/wheelibin/glow/internal/repos"
	"github.com/wheelibin/glow/internal/schedule"
	"github.com/wheelibin/glow/internal/settings"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newLogger(cfg *config.Config) *log.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		}
	}
	return log.NewWithOptions(out, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		ReportCaller:    cfg.Level() == log.DebugLevel,
		TimeFormat:      "2006/01/02 15:04:05",
	})
}

func main() {

	// read the config file
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal("unable to read config", "err", err)
	}

	logger := newLogger(cfg)
	logger.Info("glowd starting", "listen", cfg.ListenAddress, "db", cfg.DBPath)

	db, err := repos.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	// create/wire up services
	userRepo := repos.NewUserRepo(logger, db)
	sessionRepo := repos.NewSessionRepo(logger, db)

	as := auth.NewAuthService(logger, userRepo, sessionRepo, cfg.SessionTTL)
	ss := settings.NewSettingsService(logger, userRepo)
	ls := lights.NewLightService(logger, ss, schedule.NewScheduleService(logger), cfg.Location())

	events := sse.New()
	events.AutoStream = true
	events.AutoReplay = false

	feed := glow.NewGlow(logger, ls, events, cfg.FeedInterval)

	srv := api.NewServer(logger, api.Deps{
		Auth:      as,
		Settings:  ss,
		Lights:    ls,
		Feed:      feed,
		Events:    events,
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Location:  cfg.Location(),
	})

	httpServer := &http.Server{Addr: cfg.ListenAddress, Handler: srv.Routes()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// start the colour feed loop
	go feed.Run(ctx)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	// cleanup before exit, Shutdown waits on open event streams
	events.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "err", err)
	}
	logger.Info("glowd is closing")
}
