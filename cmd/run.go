package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/app"
	"github.com/abhisek/persona/internal/logging"
	"github.com/abhisek/persona/internal/session"
)

// runApp resolves config, builds the logger and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("version", version),
		zap.String("locale", string(cfg.Locale())),
		zap.Uint64("seed", cfg.Seed),
	)

	return app.Run(app.Options{
		Locale:     cfg.Locale(),
		NewSession: sessionFactory(cfg.Seed, logging.NewSessionObserver(logger)),
		Logger:     logger,
	})
}

// sessionFactory builds a fresh engine per quiz. A non-zero seed makes
// every run pick the same questions.
func sessionFactory(seed uint64, obs session.Observer) func() (*session.Session, error) {
	return func() (*session.Session, error) {
		return session.New(session.Options{
			Rand:     session.NewRand(seed),
			Observer: obs,
		})
	}
}
