package repository

import (
	"context"
	"errors"

	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"gorm.io/gorm"
)

// PartnerListFilter narrows partner list queries
type PartnerListFilter struct {
	Status       string
	BusinessType string
	Search       string // matched against business_name
}

// PartnerRepo is the repository for partner operations
type PartnerRepo struct {
	db *gorm.DB
}

// NewPartnerRepo creates a new PartnerRepo
func NewPartnerRepo(db *gorm.DB) *PartnerRepo {
	return &PartnerRepo{db: db}
}

// Create creates a new partner
func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) error {
	now := entity.NowUnixMilli()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.db.WithContext(ctx).Create(p).Error
}

// GetById gets a partner by id
func (r *PartnerRepo) GetById(ctx context.Context, id string) (*entity.Partner, error) {
	var p entity.Partner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns one page of partners matching the filter, newest first
func (r *PartnerRepo) List(ctx context.Context, filter *PartnerListFilter, page, limit int) ([]*entity.Partner, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}

	query := r.db.WithContext(ctx).Model(&entity.Partner{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.BusinessType != "" {
			query = query.Where("business_type = ?", filter.BusinessType)
		}
		if filter.Search != "" {
			query = query.Where("business_name LIKE ?", "%"+filter.Search+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var partners []*entity.Partner
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&partners).Error
	if err != nil {
		return nil, 0, err
	}

	return partners, total, nil
}

// Update applies the given column updates to a partner
func (r *PartnerRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = entity.NowUnixMilli()
	return r.db.WithContext(ctx).
		Model(&entity.Partner{}).
		Where("id = ?", id).
		Updates(updates).Error
}
