package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"practicedesk/internal/api"
	"practicedesk/internal/config"
	"practicedesk/internal/lifecycle"
	"practicedesk/internal/logging"
	"practicedesk/internal/querycache"
	"practicedesk/internal/stream"
	"practicedesk/internal/telemetry"
	"practicedesk/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := context.Background()
	provider, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutCtx)
	}()

	client := api.NewClient(cfg.APIURL, cfg.Token, log)
	events := stream.New(stream.Config{
		URL:    cfg.StreamURL,
		Token:  cfg.Token,
		Logger: log,
	})
	defer events.Disconnect()

	cache := querycache.New()
	engine := lifecycle.NewEngine(client, events, cache, log)
	store := engine.Store()

	app := ui.NewAppModel(store, cache, client, log)
	program := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())

	// Store and cache changes reach the UI as injected messages.
	store.SetOnChange(func(state lifecycle.ModalState) {
		program.Send(ui.ModalStateMsg{State: state})
	})
	cache.SetOnInvalidate(func(groups []string) {
		program.Send(ui.PracticesStaleMsg{Groups: groups})
	})

	// Token and role come from config; the session is considered settled
	// once both are loaded here.
	sess := lifecycle.Session{
		Role:        cfg.Role,
		Loading:     false,
		UserPresent: cfg.Token != "",
	}
	engine.Start(ctx, sess)
	defer engine.Stop()

	log.Info("practicedesk starting",
		zap.String("api", cfg.APIURL),
		zap.String("role", string(cfg.Role)),
		zap.String("session", client.SessionID()))

	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
