package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/deliverus-owner/internal/api"
	"github.com/jask/deliverus-owner/internal/app"
	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/config"
	"github.com/jask/deliverus-owner/internal/logging"
	"github.com/jask/deliverus-owner/internal/mockapi"
)

func main() {
	demo := flag.Bool("demo", false, "run against an in-process mock backend with seeded data")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logFile, err := logging.OpenFile(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.SetDefault(logger)

	token := config.ResolveToken(cfg)
	if *demo {
		d, err := mockapi.StartDemo(ctx, cfg.Demo.Addr, cfg.Demo.Secret, logger.With(slog.String("component", "mockapi")))
		if err != nil {
			log.Fatalf("demo backend: %v", err)
		}
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
			defer stop()
			_ = d.Close(shutdownCtx)
		}()
		cfg.API.BaseURL = d.BaseURL
		token = d.Token
	}

	var user *auth.User
	if token != "" {
		if user, err = auth.UserFromToken(token); err != nil {
			logger.Warn("ignoring configured token", slog.Any("error", err))
			user = nil
		}
	}
	store := auth.NewStore(user)

	rest := api.NewRESTClient(cfg.API.BaseURL, cfg.API.Timeout, nil, store, logger.With(slog.String("component", "api")))
	logger.Info("starting", slog.String("api", rest.BaseURL()), slog.Bool("demo", *demo), slog.Bool("signed_in", user != nil))

	model := app.NewModel(app.Deps{
		Ctx:         ctx,
		Config:      cfg,
		Restaurants: api.NewRestaurantClient(rest),
		Auth:        store,
		Log:         logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
