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
	ErrDarsExists   = errors.New("dars already registered for this zone")
	ErrDarsNotFound = errors.New("dars not found")
)

// DarsEntry rows live in dars_data, unique on (darsname, zone).
type DarsEntry struct {
	ID uint `gorm:"primaryKey"`

	DarsName        string `gorm:"column:darsname;not null;uniqueIndex:idx_dars_data_name_zone"`
	DarsPlace       string `gorm:"column:darsplace"`
	Zone            string `gorm:"size:50;not null;uniqueIndex:idx_dars_data_name_zone"`
	Slug            string `gorm:"size:100"`
	TotalCandidates int    `gorm:"column:total_candidates;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (DarsEntry) TableName() string {
	return "dars_data"
}

type DarsDAO struct {
	db *gorm.DB
}

func NewDarsDAO(db *gorm.DB) *DarsDAO {
	return &DarsDAO{
		db: db,
	}
}

func (d *DarsDAO) Insert(ctx context.Context, entry DarsEntry) (DarsEntry, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return DarsEntry{}, ErrDarsExists
		}

		return DarsEntry{}, result.Error
	}

	return entry, nil
}

func (d *DarsDAO) FindAll(ctx context.Context) ([]DarsEntry, error) {
	var entries []DarsEntry

	result := d.db.WithContext(ctx).Order("darsname asc").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *DarsDAO) FindByID(ctx context.Context, id uint) (DarsEntry, error) {
	var entry DarsEntry

	result := d.db.WithContext(ctx).First(&entry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DarsEntry{}, ErrDarsNotFound
		}

		return DarsEntry{}, result.Error
	}

	return entry, nil
}

func (d *DarsDAO) FindByNameAndZone(ctx context.Context, darsname, zone string) (DarsEntry, error) {
	var entry DarsEntry

	result := d.db.WithContext(ctx).First(&entry, "darsname = ? AND zone = ?", darsname, zone)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DarsEntry{}, ErrDarsNotFound
		}

		return DarsEntry{}, result.Error
	}

	return entry, nil
}

// Update never touches darsname, the identity half of the unique pair.
func (d *DarsDAO) Update(ctx context.Context, entry DarsEntry) (DarsEntry, error) {
	result := d.db.WithContext(ctx).
		Model(&DarsEntry{}).
		Where("id = ?", entry.ID).
		Select("darsplace", "zone", "slug", "total_candidates").
		Updates(&entry)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return DarsEntry{}, ErrDarsExists
		}

		return DarsEntry{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DarsEntry{}, ErrDarsNotFound
	}

	return d.FindByID(ctx, entry.ID)
}

func (d *DarsDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&DarsEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDarsNotFound
	}

	return nil
}

func (d *DarsDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&DarsEntry{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
