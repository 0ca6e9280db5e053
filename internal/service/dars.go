package service

import (
	"context"
	"fmt"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository"
)

var (
	ErrDarsExists   = repository.ErrDarsExists
	ErrDarsNotFound = repository.ErrDarsNotFound
)

type DarsRepository interface {
	Create(ctx context.Context, entry domain.DarsEntry) (domain.DarsEntry, error)
	FindAll(ctx context.Context) ([]domain.DarsEntry, error)
	FindByID(ctx context.Context, id uint) (domain.DarsEntry, error)
	FindByNameAndZone(ctx context.Context, darsname, zone string) (domain.DarsEntry, error)
	Update(ctx context.Context, entry domain.DarsEntry) (domain.DarsEntry, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type DarsService struct {
	repo          DarsRepository
	candidateRepo CandidateRepository
}

func NewDarsService(repo DarsRepository, candidateRepo CandidateRepository) *DarsService {
	return &DarsService{
		repo:          repo,
		candidateRepo: candidateRepo,
	}
}

// Aggregate serves the dars listing with live candidate counts, grouped
// fresh from the candidate table on every call. The cached totals on
// dars_data rows are deliberately not used; they drift when candidates churn.
func (s *DarsService) Aggregate(ctx context.Context, zone, search string) ([]domain.DarsSummary, error) {
	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
	}

	return AggregateDars(candidates, zone, search), nil
}

// List returns the raw dars_data catalog rows for admin management.
func (s *DarsService) List(ctx context.Context) ([]domain.DarsEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return entries, nil
}

func (s *DarsService) Create(ctx context.Context, entry domain.DarsEntry) (domain.DarsEntry, error) {
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.DarsEntry{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update never changes darsname; the name half of the (darsname, zone)
// identity is fixed at creation.
func (s *DarsService) Update(ctx context.Context, id uint, entry domain.DarsEntry) (domain.DarsEntry, error) {
	entry.ID = id

	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return domain.DarsEntry{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DarsService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
