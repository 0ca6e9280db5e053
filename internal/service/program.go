package service

import (
	"context"
	"fmt"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository"
)

var ErrProgramNotFound = repository.ErrProgramNotFound

type ProgramRepository interface {
	Create(ctx context.Context, program domain.Program) (domain.Program, error)
	FindAll(ctx context.Context) ([]domain.Program, error)
	FindByID(ctx context.Context, id uint) (domain.Program, error)
	Update(ctx context.Context, program domain.Program) (domain.Program, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type ProgramService struct {
	repo          ProgramRepository
	candidateRepo CandidateRepository
}

func NewProgramService(repo ProgramRepository, candidateRepo CandidateRepository) *ProgramService {
	return &ProgramService{
		repo:          repo,
		candidateRepo: candidateRepo,
	}
}

// List returns the program catalog, name ascending.
func (s *ProgramService) List(ctx context.Context) ([]domain.Program, error) {
	programs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return programs, nil
}

// Aggregate derives the public program listing from candidate slot values,
// not from the catalog: a program appears once per (name, category) pair
// with every participating candidate attached.
func (s *ProgramService) Aggregate(ctx context.Context, category, zone string) ([]domain.ProgramGroup, error) {
	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
	}

	return AggregatePrograms(candidates, category, zone), nil
}

func (s *ProgramService) Create(ctx context.Context, program domain.Program) (domain.Program, error) {
	created, err := s.repo.Create(ctx, program)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ProgramService) Update(ctx context.Context, id uint, program domain.Program) (domain.Program, error) {
	program.ID = id

	updated, err := s.repo.Update(ctx, program)
	if err != nil {
		return domain.Program{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
