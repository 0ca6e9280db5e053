package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCandidateCodeExists = errors.New("candidate code already registered")
	ErrCandidateNotFound   = errors.New("candidate not found")
)

type Candidate struct {
	ID uint `gorm:"primaryKey"`

	Code      string `gorm:"size:10;unique;not null"`
	Name      string `gorm:"not null"`
	DarsName  string `gorm:"column:darsname;not null"`
	DarsPlace string `gorm:"column:darsplace"`
	Zone      string `gorm:"size:50;not null"`
	Slug      string `gorm:"size:100"`
	Category  string `gorm:"size:20;not null"`

	Stage1        string
	Stage2        string
	Stage3        string
	GroupStage1   string `gorm:"column:groupstage1"`
	GroupStage2   string `gorm:"column:groupstage2"`
	GroupStage3   string `gorm:"column:groupstage3"`
	OffStage1     string `gorm:"column:offstage1"`
	OffStage2     string `gorm:"column:offstage2"`
	OffStage3     string `gorm:"column:offstage3"`
	GroupOffStage string `gorm:"column:groupoffstage"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CandidateDAO struct {
	db *gorm.DB
}

func NewCandidateDAO(db *gorm.DB) *CandidateDAO {
	return &CandidateDAO{
		db: db,
	}
}

func (d *CandidateDAO) Insert(ctx context.Context, candidate Candidate) (Candidate, error) {
	result := d.db.WithContext(ctx).Create(&candidate)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Candidate{}, ErrCandidateCodeExists
		}

		return Candidate{}, result.Error
	}

	return candidate, nil
}

// FindAll returns every candidate in canonical order, code ascending.
func (d *CandidateDAO) FindAll(ctx context.Context) ([]Candidate, error) {
	var candidates []Candidate

	result := d.db.WithContext(ctx).Order("code asc").Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

func (d *CandidateDAO) FindByID(ctx context.Context, id uint) (Candidate, error) {
	var candidate Candidate

	result := d.db.WithContext(ctx).First(&candidate, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Candidate{}, ErrCandidateNotFound
		}

		return Candidate{}, result.Error
	}

	return candidate, nil
}

func (d *CandidateDAO) FindByCode(ctx context.Context, code string) (Candidate, error) {
	var candidate Candidate

	result := d.db.WithContext(ctx).First(&candidate, "code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Candidate{}, ErrCandidateNotFound
		}

		return Candidate{}, result.Error
	}

	return candidate, nil
}

// Update persists every mutable column of the candidate. Code is left alone
// even when the passed struct carries one.
func (d *CandidateDAO) Update(ctx context.Context, candidate Candidate) (Candidate, error) {
	result := d.db.WithContext(ctx).
		Model(&Candidate{}).
		Where("id = ?", candidate.ID).
		Select("name", "darsname", "darsplace", "zone", "slug", "category",
			"stage1", "stage2", "stage3",
			"groupstage1", "groupstage2", "groupstage3",
			"offstage1", "offstage2", "offstage3", "groupoffstage").
		Updates(&candidate)
	if result.Error != nil {
		return Candidate{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Candidate{}, ErrCandidateNotFound
	}

	return d.FindByID(ctx, candidate.ID)
}

func (d *CandidateDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Candidate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}

	return nil
}

func (d *CandidateDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Candidate{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
