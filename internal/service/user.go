package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

// UserService keeps the learner registry in sync with incoming messages.
type UserService struct {
	repository UserRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewUserService(repository UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repository: repository, logger: logger, now: time.Now}
}

// EnsureUser registers the learner on first contact and refreshes the chat,
// username and last contact time afterwards.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, username string) error {
	created, err := s.repository.Save(ctx, entities.NewUser(userID, chatID, username, s.now()))
	if err != nil {
		return err
	}

	if created {
		s.logger.Info("new user registered",
			zap.Int64("user_id", userID),
			zap.String("username", username),
		)
	}

	return nil
}
