package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor periodically drops quizzes the learner walked away from.
type SessionJanitor struct {
	sessions SessionEvictor
	ttl      time.Duration
	schedule string
	logger   *zap.Logger
}

func NewSessionJanitor(sessions SessionEvictor, ttl time.Duration, schedule string, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		ttl:      ttl,
		schedule: schedule,
		logger:   logger,
	}
}

// Start runs the sweep on schedule until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(j.schedule, j.Sweep); err != nil {
		return err
	}

	c.Start()
	j.logger.Info("session janitor started",
		zap.String("schedule", j.schedule),
		zap.Duration("idle_ttl", j.ttl),
	)

	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()
	j.logger.Info("session janitor stopped")

	return nil
}

// Sweep evicts idle sessions once.
func (j *SessionJanitor) Sweep() {
	evicted := j.sessions.EvictIdle(j.ttl)
	if len(evicted) == 0 {
		return
	}

	j.logger.Info("idle quizzes evicted",
		zap.Int("count", len(evicted)),
		zap.Int64s("user_ids", evicted),
	)
}
