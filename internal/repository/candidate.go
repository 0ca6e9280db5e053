package repository

import (
	"context"
	"fmt"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository/dao"
)

var (
	ErrCandidateCodeExists = dao.ErrCandidateCodeExists
	ErrCandidateNotFound   = dao.ErrCandidateNotFound
)

type CandidateDAO interface {
	Insert(ctx context.Context, candidate dao.Candidate) (dao.Candidate, error)
	FindAll(ctx context.Context) ([]dao.Candidate, error)
	FindByID(ctx context.Context, id uint) (dao.Candidate, error)
	FindByCode(ctx context.Context, code string) (dao.Candidate, error)
	Update(ctx context.Context, candidate dao.Candidate) (dao.Candidate, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type CandidateRepository struct {
	dao CandidateDAO
}

func NewCandidateRepository(dao CandidateDAO) *CandidateRepository {
	return &CandidateRepository{
		dao: dao,
	}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(candidate))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CandidateRepository) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(found))
	for _, c := range found {
		candidates = append(candidates, r.daoToDomain(c))
	}

	return candidates, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uint) (domain.Candidate, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CandidateRepository) FindByCode(ctx context.Context, code string) (domain.Candidate, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CandidateRepository) Update(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(candidate))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CandidateRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *CandidateRepository) daoToDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		DarsName:      c.DarsName,
		DarsPlace:     c.DarsPlace,
		Zone:          c.Zone,
		Slug:          c.Slug,
		Category:      c.Category,
		Stage1:        c.Stage1,
		Stage2:        c.Stage2,
		Stage3:        c.Stage3,
		GroupStage1:   c.GroupStage1,
		GroupStage2:   c.GroupStage2,
		GroupStage3:   c.GroupStage3,
		OffStage1:     c.OffStage1,
		OffStage2:     c.OffStage2,
		OffStage3:     c.OffStage3,
		GroupOffStage: c.GroupOffStage,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (r *CandidateRepository) domainToDAO(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		DarsName:      c.DarsName,
		DarsPlace:     c.DarsPlace,
		Zone:          c.Zone,
		Slug:          c.Slug,
		Category:      c.Category,
		Stage1:        c.Stage1,
		Stage2:        c.Stage2,
		Stage3:        c.Stage3,
		GroupStage1:   c.GroupStage1,
		GroupStage2:   c.GroupStage2,
		GroupStage3:   c.GroupStage3,
		OffStage1:     c.OffStage1,
		OffStage2:     c.OffStage2,
		OffStage3:     c.OffStage3,
		GroupOffStage: c.GroupOffStage,
	}
}
