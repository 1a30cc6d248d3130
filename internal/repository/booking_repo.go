package repository

import (
	"context"
	"errors"

	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"gorm.io/gorm"
)

// BookingListFilter narrows booking list queries
type BookingListFilter struct {
	Status    string
	UserId    string
	PartnerId string
}

// BookingRepo is the repository for booking operations
type BookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo creates a new BookingRepo
func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create creates a new booking
func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	now := entity.NowUnixMilli()
	b.CreatedAt = now
	b.UpdatedAt = now
	return r.db.WithContext(ctx).Create(b).Error
}

// GetById gets a booking by id
func (r *BookingRepo) GetById(ctx context.Context, id string) (*entity.Booking, error) {
	var b entity.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// List returns one page of bookings matching the filter, newest first
func (r *BookingRepo) List(ctx context.Context, filter *BookingListFilter, page, limit int) ([]*entity.Booking, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}

	query := r.db.WithContext(ctx).Model(&entity.Booking{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.UserId != "" {
			query = query.Where("user_id = ?", filter.UserId)
		}
		if filter.PartnerId != "" {
			query = query.Where("partner_id = ?", filter.PartnerId)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []*entity.Booking
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// Update applies the given column updates to a booking
func (r *BookingRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = entity.NowUnixMilli()
	return r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}
