package repository

import (
	"context"
	"fmt"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository/dao"
)

var (
	ErrDarsExists   = dao.ErrDarsExists
	ErrDarsNotFound = dao.ErrDarsNotFound
)

type DarsDAO interface {
	Insert(ctx context.Context, entry dao.DarsEntry) (dao.DarsEntry, error)
	FindAll(ctx context.Context) ([]dao.DarsEntry, error)
	FindByID(ctx context.Context, id uint) (dao.DarsEntry, error)
	FindByNameAndZone(ctx context.Context, darsname, zone string) (dao.DarsEntry, error)
	Update(ctx context.Context, entry dao.DarsEntry) (dao.DarsEntry, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type DarsRepository struct {
	dao DarsDAO
}

func NewDarsRepository(dao DarsDAO) *DarsRepository {
	return &DarsRepository{
		dao: dao,
	}
}

func (r *DarsRepository) Create(ctx context.Context, entry domain.DarsEntry) (domain.DarsEntry, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(entry))
	if err != nil {
		return domain.DarsEntry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DarsRepository) FindAll(ctx context.Context) ([]domain.DarsEntry, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	entries := make([]domain.DarsEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, r.daoToDomain(e))
	}

	return entries, nil
}

func (r *DarsRepository) FindByID(ctx context.Context, id uint) (domain.DarsEntry, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.DarsEntry{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DarsRepository) FindByNameAndZone(ctx context.Context, darsname, zone string) (domain.DarsEntry, error) {
	found, err := r.dao.FindByNameAndZone(ctx, darsname, zone)
	if err != nil {
		return domain.DarsEntry{}, fmt.Errorf("r.dao.FindByNameAndZone -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DarsRepository) Update(ctx context.Context, entry domain.DarsEntry) (domain.DarsEntry, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(entry))
	if err != nil {
		return domain.DarsEntry{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *DarsRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DarsRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *DarsRepository) daoToDomain(e dao.DarsEntry) domain.DarsEntry {
	return domain.DarsEntry{
		ID:              e.ID,
		DarsName:        e.DarsName,
		DarsPlace:       e.DarsPlace,
		Zone:            e.Zone,
		Slug:            e.Slug,
		TotalCandidates: e.TotalCandidates,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (r *DarsRepository) domainToDAO(e domain.DarsEntry) dao.DarsEntry {
	return dao.DarsEntry{
		ID:              e.ID,
		DarsName:        e.DarsName,
		DarsPlace:       e.DarsPlace,
		Zone:            e.Zone,
		Slug:            e.Slug,
		TotalCandidates: e.TotalCandidates,
	}
}
