package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/patterns-quiz-bot/internal/infra/postgres/repository"
)

type ResetService struct {
	tr            Transactor
	sessions      SessionStore
	defaultLength int
}

func NewResetService(
	tr Transactor,
	sessions SessionStore,
	defaultLength int,
) *ResetService {
	return &ResetService{
		tr:            tr,
		sessions:      sessions,
		defaultLength: defaultLength,
	}
}

// ResetUser restores default settings, deletes the quiz history and drops the
// live quiz of the user.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		resetRepo := repository.NewResetRepository(tx)
		settingsRepo := repository.NewSettingsRepository(tx)

		if err := settingsRepo.UpsertDefaults(ctx, userID, s.defaultLength); err != nil {
			return err
		}

		if err := resetRepo.ResetUser(ctx, userID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.sessions.Delete(userID)
	return nil
}
