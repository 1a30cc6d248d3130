package repository

import (
	"context"
	"errors"

	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"gorm.io/gorm"
)

// ConversationRepo is the repository for conversation operations
type ConversationRepo struct {
	db *gorm.DB
}

// NewConversationRepo creates a new ConversationRepo
func NewConversationRepo(db *gorm.DB) *ConversationRepo {
	return &ConversationRepo{db: db}
}

// Create creates a new conversation. The unique index on booking_id makes the
// create fail when a concurrent caller won the race for the same booking.
func (r *ConversationRepo) Create(ctx context.Context, conv *entity.Conversation) error {
	now := entity.NowUnixMilli()
	conv.CreatedAt = now
	conv.UpdatedAt = now
	return r.db.WithContext(ctx).Create(conv).Error
}

// GetById gets a conversation by id
func (r *ConversationRepo) GetById(ctx context.Context, id int64) (*entity.Conversation, error) {
	var conv entity.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// GetByBookingId gets the conversation attached to a booking, if any
func (r *ConversationRepo) GetByBookingId(ctx context.Context, bookingId string) (*entity.Conversation, error) {
	var conv entity.Conversation
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingId).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// ListByParticipant gets all conversations where callerId is one of the parties,
// newest activity first
func (r *ConversationRepo) ListByParticipant(ctx context.Context, callerId string) ([]*entity.Conversation, error) {
	var convs []*entity.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR partner_id = ?", callerId, callerId).
		Order("last_activity DESC").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// TouchActivity bumps the conversation's last_activity timestamp
func (r *ConversationRepo) TouchActivity(ctx context.Context, tx *gorm.DB, id int64, ts int64) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).
		Model(&entity.Conversation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_activity": ts,
			"updated_at":    entity.NowUnixMilli(),
		}).Error
}
