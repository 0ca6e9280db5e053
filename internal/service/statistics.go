package service

import (
	"context"
	"fmt"

	"github.com/sibaq/festival-api/internal/domain"
)

type StatisticsService struct {
	candidateRepo CandidateRepository
	programRepo   ProgramRepository
	darsRepo      DarsRepository
}

func NewStatisticsService(candidateRepo CandidateRepository, programRepo ProgramRepository, darsRepo DarsRepository) *StatisticsService {
	return &StatisticsService{
		candidateRepo: candidateRepo,
		programRepo:   programRepo,
		darsRepo:      darsRepo,
	}
}

// Statistics computes the whole-store roll-up. An empty store yields zero
// totals and empty maps.
func (s *StatisticsService) Statistics(ctx context.Context) (domain.Statistics, error) {
	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
	}

	totalPrograms, err := s.programRepo.Count(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("s.programRepo.Count -> %w", err)
	}

	totalDars, err := s.darsRepo.Count(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("s.darsRepo.Count -> %w", err)
	}

	byCategory, byZone := RollupCandidates(candidates)

	return domain.Statistics{
		TotalCandidates:      len(candidates),
		TotalPrograms:        int(totalPrograms),
		TotalDars:            int(totalDars),
		CandidatesByCategory: byCategory,
		CandidatesByZone:     byZone,
	}, nil
}
