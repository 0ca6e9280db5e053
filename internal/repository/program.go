package repository

import (
	"context"
	"fmt"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository/dao"
)

var ErrProgramNotFound = dao.ErrProgramNotFound

type ProgramDAO interface {
	Insert(ctx context.Context, program dao.Program) (dao.Program, error)
	FindAll(ctx context.Context) ([]dao.Program, error)
	FindByID(ctx context.Context, id uint) (dao.Program, error)
	Update(ctx context.Context, program dao.Program) (dao.Program, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type ProgramRepository struct {
	dao ProgramDAO
}

func NewProgramRepository(dao ProgramDAO) *ProgramRepository {
	return &ProgramRepository{
		dao: dao,
	}
}

func (r *ProgramRepository) Create(ctx context.Context, program domain.Program) (domain.Program, error) {
	created, err := r.dao.Insert(ctx, dao.Program{
		Name:        program.Name,
		Category:    program.Category,
		Type:        program.Type,
		Description: program.Description,
	})
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProgramRepository) FindAll(ctx context.Context) ([]domain.Program, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	programs := make([]domain.Program, 0, len(found))
	for _, p := range found {
		programs = append(programs, r.daoToDomain(p))
	}

	return programs, nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id uint) (domain.Program, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ProgramRepository) Update(ctx context.Context, program domain.Program) (domain.Program, error) {
	updated, err := r.dao.Update(ctx, dao.Program{
		ID:          program.ID,
		Name:        program.Name,
		Category:    program.Category,
		Type:        program.Type,
		Description: program.Description,
	})
	if err != nil {
		return domain.Program{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProgramRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *ProgramRepository) daoToDomain(p dao.Program) domain.Program {
	return domain.Program{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Type:        p.Type,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
