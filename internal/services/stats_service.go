package services

import (
	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/pkg/apperrors"
)

const defaultTopSectors = 10

type StatsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) GetMarketplaceStats() (*dto.MarketplaceStats, error) {
	stats, err := s.statsRepo.GetMarketplaceStats(defaultTopSectors)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
