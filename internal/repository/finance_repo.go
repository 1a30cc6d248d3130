package repository

import (
	"context"
	"errors"

	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinanceRepo is the repository for finance configuration
type FinanceRepo struct {
	db *gorm.DB
}

// NewFinanceRepo creates a new FinanceRepo
func NewFinanceRepo(db *gorm.DB) *FinanceRepo {
	return &FinanceRepo{db: db}
}

// Get gets a single finance config entry by key
func (r *FinanceRepo) Get(ctx context.Context, key string) (*entity.FinanceConfig, error) {
	var cfg entity.FinanceConfig
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// List returns all finance config entries
func (r *FinanceRepo) List(ctx context.Context) ([]*entity.FinanceConfig, error) {
	var cfgs []*entity.FinanceConfig
	err := r.db.WithContext(ctx).Order("`key` ASC").Find(&cfgs).Error
	if err != nil {
		return nil, err
	}
	return cfgs, nil
}

// Upsert creates or replaces a finance config entry
func (r *FinanceRepo) Upsert(ctx context.Context, cfg *entity.FinanceConfig) error {
	cfg.UpdatedAt = entity.NowUnixMilli()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      cfg.Value,
			"updated_by": cfg.UpdatedBy,
			"updated_at": cfg.UpdatedAt,
		}),
	}).Create(cfg).Error
}
