package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/patterns-quiz-bot/internal/domain/entities"
)

const recentResultsLimit = 5

// StatsSummary is what the learner sees on /stats.
type StatsSummary struct {
	Stats  *entities.QuizStats
	Recent []*entities.QuizResult
}

type StatsService struct {
	repository ResultRepository
}

func NewStatsService(repository ResultRepository) *StatsService {
	return &StatsService{repository: repository}
}

// GetSummary returns lifetime stats and the latest quizzes of the user.
func (s *StatsService) GetSummary(ctx context.Context, userID int64) (*StatsSummary, error) {
	stats, err := s.repository.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	recent, err := s.repository.ListRecent(ctx, userID, recentResultsLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent results: %w", err)
	}

	return &StatsSummary{Stats: stats, Recent: recent}, nil
}
