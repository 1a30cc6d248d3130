package repository

import (
	"context"
	"errors"

	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"gorm.io/gorm"
)

// MessageRepo is the repository for message operations
type MessageRepo struct {
	db *gorm.DB
}

// NewMessageRepo creates a new MessageRepo
func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// Create appends a new message. Bumping the conversation's activity is the
// caller's responsibility so the two writes can share one transaction.
func (r *MessageRepo) Create(ctx context.Context, tx *gorm.DB, msg *entity.Message) error {
	if tx == nil {
		tx = r.db
	}
	now := entity.NowUnixMilli()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	return tx.WithContext(ctx).Create(msg).Error
}

// GetById gets a message by id
func (r *MessageRepo) GetById(ctx context.Context, id int64) (*entity.Message, error) {
	var msg entity.Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// Page returns one page of a conversation's messages, newest first, together
// with the total message count. limit is clamped to [1,100], page to >= 1.
func (r *MessageRepo) Page(ctx context.Context, conversationId int64, page, limit int) ([]*entity.Message, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}

	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("conversation_id = ?", conversationId).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var messages []*entity.Message
	err = r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationId).
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// Latest returns the most recent message of a conversation, or nil if empty
func (r *MessageRepo) Latest(ctx context.Context, conversationId int64) (*entity.Message, error) {
	var msg entity.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationId).
		Order("id DESC").
		First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// MarkRead transitions a message to read and stamps read_at
func (r *MessageRepo) MarkRead(ctx context.Context, id int64, readAt int64) error {
	return r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     constant.MsgStatusRead,
			"read_at":    readAt,
			"updated_at": entity.NowUnixMilli(),
		}).Error
}

// CountUnread counts the messages in the conversation that the other party sent
// and callerId has not read yet
func (r *MessageRepo) CountUnread(ctx context.Context, conversationId int64, callerId string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND status = ?",
			conversationId, callerId, constant.MsgStatusSent).
		Count(&count).Error
	return count, err
}
