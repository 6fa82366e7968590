package scheduler

import (
	"log/slog"

	"github.com/Alireza01sjd/project-god-mode/internal/api/repository"

	"github.com/robfig/cron/v3"
)

// TokenCleanup periodically removes expired and revoked refresh tokens
// so the table does not grow without bound.
type TokenCleanup struct {
	cron   *cron.Cron
	repo   repository.RefreshTokenRepository
	logger *slog.Logger
}

func NewTokenCleanup(repo repository.RefreshTokenRepository, logger *slog.Logger) *TokenCleanup {
	return &TokenCleanup{
		cron:   cron.New(),
		repo:   repo,
		logger: logger,
	}
}

// Start schedules the cleanup job. Hourly is frequent enough; tokens are
// checked for expiry on every refresh anyway, this only reclaims rows.
func (t *TokenCleanup) Start() error {
	_, err := t.cron.AddFunc("@hourly", t.run)
	if err != nil {
		return err
	}
	t.cron.Start()
	t.logger.Info("Refresh token cleanup scheduled", "interval", "@hourly")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (t *TokenCleanup) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
}

func (t *TokenCleanup) run() {
	deleted, err := t.repo.DeleteExpired()
	if err != nil {
		t.logger.Error("Refresh token cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		t.logger.Info("Removed stale refresh tokens", "count", deleted)
	}
}
