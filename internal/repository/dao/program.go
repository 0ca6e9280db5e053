package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrProgramNotFound = errors.New("program not found")

type Program struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Category    string `gorm:"size:20;not null"`
	Type        string `gorm:"size:20;not null"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProgramDAO struct {
	db *gorm.DB
}

func NewProgramDAO(db *gorm.DB) *ProgramDAO {
	return &ProgramDAO{
		db: db,
	}
}

func (d *ProgramDAO) Insert(ctx context.Context, program Program) (Program, error) {
	result := d.db.WithContext(ctx).Create(&program)
	if result.Error != nil {
		return Program{}, result.Error
	}

	return program, nil
}

func (d *ProgramDAO) FindAll(ctx context.Context) ([]Program, error) {
	var programs []Program

	result := d.db.WithContext(ctx).Order("name asc").Find(&programs)
	if result.Error != nil {
		return nil, result.Error
	}

	return programs, nil
}

func (d *ProgramDAO) FindByID(ctx context.Context, id uint) (Program, error) {
	var program Program

	result := d.db.WithContext(ctx).First(&program, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Program{}, ErrProgramNotFound
		}

		return Program{}, result.Error
	}

	return program, nil
}

func (d *ProgramDAO) Update(ctx context.Context, program Program) (Program, error) {
	result := d.db.WithContext(ctx).
		Model(&Program{}).
		Where("id = ?", program.ID).
		Select("name", "category", "type", "description").
		Updates(&program)
	if result.Error != nil {
		return Program{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Program{}, ErrProgramNotFound
	}

	return d.FindByID(ctx, program.ID)
}

func (d *ProgramDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Program{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProgramNotFound
	}

	return nil
}

func (d *ProgramDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Program{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
