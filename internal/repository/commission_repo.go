package repository

import (
	"context"
	"errors"

	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"gorm.io/gorm"
)

// CommissionRepo is the repository for commission rule operations
type CommissionRepo struct {
	db *gorm.DB
}

// NewCommissionRepo creates a new CommissionRepo
func NewCommissionRepo(db *gorm.DB) *CommissionRepo {
	return &CommissionRepo{db: db}
}

// Create creates a new commission rule
func (r *CommissionRepo) Create(ctx context.Context, rule *entity.CommissionRule) error {
	now := entity.NowUnixMilli()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	return r.db.WithContext(ctx).Create(rule).Error
}

// GetById gets a commission rule by id
func (r *CommissionRepo) GetById(ctx context.Context, id int64) (*entity.CommissionRule, error) {
	var rule entity.CommissionRule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// List returns all commission rules, highest priority first
func (r *CommissionRepo) List(ctx context.Context) ([]*entity.CommissionRule, error) {
	var rules []*entity.CommissionRule
	err := r.db.WithContext(ctx).
		Order("priority DESC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// ListActiveForPartner returns active rules that apply to partnerId
// (partner-scoped and global), highest priority first with partner-scoped
// rules winning ties
func (r *CommissionRepo) ListActiveForPartner(ctx context.Context, partnerId string) ([]*entity.CommissionRule, error) {
	var rules []*entity.CommissionRule
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND (partner_id IS NULL OR partner_id = ?)", true, partnerId).
		Order("priority DESC, partner_id DESC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// Update applies the given column updates to a commission rule
func (r *CommissionRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	updates["updated_at"] = entity.NowUnixMilli()
	return r.db.WithContext(ctx).
		Model(&entity.CommissionRule{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes a commission rule
func (r *CommissionRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.CommissionRule{}).Error
}
