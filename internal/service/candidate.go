package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository"
)

var (
	ErrCandidateCodeExists = repository.ErrCandidateCodeExists
	ErrCandidateNotFound   = repository.ErrCandidateNotFound
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	FindAll(ctx context.Context) ([]domain.Candidate, error)
	FindByID(ctx context.Context, id uint) (domain.Candidate, error)
	FindByCode(ctx context.Context, code string) (domain.Candidate, error)
	Update(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type CandidateService struct {
	repo CandidateRepository
}

func NewCandidateService(repo CandidateRepository) *CandidateService {
	return &CandidateService{
		repo: repo,
	}
}

// Search reads a fresh candidate snapshot and runs the engine filter over
// it. All three parameters may be empty; an unfiltered call returns the
// whole store ordered by code.
func (s *CandidateService) Search(ctx context.Context, query, zone, category string) ([]domain.Candidate, error) {
	candidates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return FilterCandidates(candidates, query, zone, category), nil
}

func (s *CandidateService) Get(ctx context.Context, id uint) (domain.Candidate, error) {
	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return candidate, nil
}

// Create registers a candidate. The code must be unused; the pre-check gives
// a friendly conflict before insert, the unique index backs it up against
// races.
func (s *CandidateService) Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	_, err := s.repo.FindByCode(ctx, candidate.Code)
	if err == nil {
		return domain.Candidate{}, ErrCandidateCodeExists
	}
	if !errors.Is(err, repository.ErrCandidateNotFound) {
		return domain.Candidate{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update replaces the mutable attributes of a candidate. The code is carried
// over from the stored record; a code in the update payload is ignored.
func (s *CandidateService) Update(ctx context.Context, id uint, candidate domain.Candidate) (domain.Candidate, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	candidate.ID = existing.ID
	candidate.Code = existing.Code

	updated, err := s.repo.Update(ctx, candidate)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CandidateService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
