// polytaskd serves the multilingual task board API: entity writes fan out to
// translations in every supported locale, reads are locale-merged, and a
// change feed pushes updates to connected clients.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	config "github.com/Pranav99t/polytask/configs"
	dbsqlite "github.com/Pranav99t/polytask/internal/adapters/db/sqlite"
	"github.com/Pranav99t/polytask/internal/adapters/translate/factory"
	apiapp "github.com/Pranav99t/polytask/internal/api/app"
	"github.com/Pranav99t/polytask/internal/api/web"
	"github.com/Pranav99t/polytask/internal/notify"
	"github.com/Pranav99t/polytask/internal/usecase/localizer"
)

const (
	readHeaderTimeout = 15 * time.Second
	readTimeout       = 15 * time.Second
	idleTimeout       = 30 * time.Second

	serverShutdownDeadline = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := flag.String("config", "config.yaml", "path to YAML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := dbsqlite.Init(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	orgRepo := dbsqlite.NewOrganizationRepo(db)
	projectRepo := dbsqlite.NewProjectRepo(db)
	taskRepo := dbsqlite.NewTaskRepo(db)
	commentRepo := dbsqlite.NewCommentRepo(db)
	translationRepo := dbsqlite.NewTranslationRepo(db)

	hub := notify.New()

	translator := factory.FromConfig(cfg.Translator.BaseURL, cfg.Translator.APIKey, cfg.Translator.Timeout)
	locSvc := localizer.New(localizer.Deps{
		Translator:   translator,
		Translations: translationRepo,
		Events:       hub,
		Concurrency:  cfg.Localizer.Concurrency,
	})

	handlers := &web.Handlers{
		Orgs:     apiapp.NewOrganizationAPI(orgRepo, locSvc, hub),
		Projects: apiapp.NewProjectAPI(projectRepo, locSvc, hub),
		Tasks:    apiapp.NewTaskAPI(taskRepo, locSvc, hub),
		Comments: apiapp.NewCommentAPI(commentRepo, locSvc, hub),
		Feed:     hub,
	}

	router := web.NewRouter()
	router.DefineRoutes(handlers)
	router.RegisterMiddleware()

	// No WriteTimeout: /api/events streams until the client disconnects.
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		IdleTimeout:       idleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			serverErrors <- fmt.Errorf("failed to create listener: %w", err)
			return
		}
		log.Info().Str("addr", addr).Msg("Listening")
		serverErrors <- server.Serve(listener)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}
	return nil
}
