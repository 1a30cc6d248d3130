package service

import (
	"context"
	"strings"

	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"gorm.io/gorm"
)

// MessageService handles message-related business logic: appending messages,
// paging, and the sent -> read status transition.
type MessageService struct {
	msgRepo  *repository.MessageRepo
	convRepo *repository.ConversationRepo
	repos    *repository.Repositories
}

// NewMessageService creates a new MessageService
func NewMessageService(repos *repository.Repositories) *MessageService {
	return &MessageService{
		msgRepo:  repos.Message,
		convRepo: repos.Conversation,
		repos:    repos,
	}
}

// SendMessageRequest represents send message request
type SendMessageRequest struct {
	ConversationId int64   `json:"conversation_id"`
	Content        string  `json:"content"`
	MessageType    string  `json:"message_type,omitempty"`
	ActionType     *string `json:"action_type,omitempty"`
}

// SendMessage appends a message to a conversation on behalf of senderId.
// senderRole comes from the caller's identity claims, not from the
// conversation row.
func (s *MessageService) SendMessage(ctx context.Context, senderId, senderRole string, req *SendMessageRequest) (*entity.Message, error) {
	conv, err := s.convRepo.GetById(ctx, req.ConversationId)
	if err != nil {
		log.CtxError(ctx, "get conversation failed: conversation_id=%d, error=%v", req.ConversationId, err)
		return nil, errcode.ErrInternalServer
	}
	if conv == nil {
		return nil, errcode.ErrConvNotFound
	}

	if !conv.HasParticipant(senderId) {
		return nil, errcode.ErrNotParticipant
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errcode.ErrEmptyContent
	}

	if senderRole != constant.SenderTypeUser && senderRole != constant.SenderTypePartner {
		return nil, errcode.ErrInvalidParam
	}

	msgType := req.MessageType
	if msgType == "" {
		msgType = constant.MsgTypeText
	}

	msg := &entity.Message{
		ConversationId: conv.Id,
		SenderId:       senderId,
		SenderType:     senderRole,
		Content:        content,
		MessageType:    msgType,
		Status:         constant.MsgStatusSent,
		ActionType:     req.ActionType,
	}

	// The append and the activity bump share one transaction; the message is
	// the durable fact, last_activity only drives inbox sort order.
	err = s.repos.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.msgRepo.Create(ctx, tx, msg); err != nil {
			return err
		}
		return s.convRepo.TouchActivity(ctx, tx, conv.Id, entity.NowUnixMilli())
	})
	if err != nil {
		log.CtxError(ctx, "send message failed: conversation_id=%d, sender_id=%s, error=%v", conv.Id, senderId, err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "message sent: conversation_id=%d, message_id=%d, sender_id=%s", conv.Id, msg.Id, senderId)
	return msg, nil
}

// ListMessages returns one page of a conversation's messages, newest first,
// after verifying the caller is a participant.
func (s *MessageService) ListMessages(ctx context.Context, callerId string, conversationId int64, page, limit int) ([]*entity.Message, int64, error) {
	conv, err := s.convRepo.GetById(ctx, conversationId)
	if err != nil {
		log.CtxError(ctx, "get conversation failed: conversation_id=%d, error=%v", conversationId, err)
		return nil, 0, errcode.ErrInternalServer
	}
	if conv == nil {
		return nil, 0, errcode.ErrConvNotFound
	}

	if !conv.HasParticipant(callerId) {
		return nil, 0, errcode.ErrNotParticipant
	}

	messages, total, err := s.msgRepo.Page(ctx, conversationId, page, limit)
	if err != nil {
		log.CtxError(ctx, "page messages failed: conversation_id=%d, error=%v", conversationId, err)
		return nil, 0, errcode.ErrInternalServer
	}

	return messages, total, nil
}

// MarkMessageRead transitions a message to read on behalf of callerId.
// Read receipts are strictly received-party actions: the sender cannot mark
// their own message. read is terminal; marking an already-read message again
// returns it unchanged.
func (s *MessageService) MarkMessageRead(ctx context.Context, callerId string, messageId int64) (*entity.Message, error) {
	msg, err := s.msgRepo.GetById(ctx, messageId)
	if err != nil {
		log.CtxError(ctx, "get message failed: message_id=%d, error=%v", messageId, err)
		return nil, errcode.ErrInternalServer
	}
	if msg == nil {
		return nil, errcode.ErrMessageNotFound
	}

	conv, err := s.convRepo.GetById(ctx, msg.ConversationId)
	if err != nil {
		log.CtxError(ctx, "get conversation failed: conversation_id=%d, error=%v", msg.ConversationId, err)
		return nil, errcode.ErrInternalServer
	}
	if conv == nil || !conv.HasParticipant(callerId) {
		return nil, errcode.ErrNotParticipant
	}

	if msg.SenderId == callerId {
		return nil, errcode.ErrSelfRead
	}

	if msg.IsRead() {
		return msg, nil
	}

	if err := s.msgRepo.MarkRead(ctx, messageId, entity.NowUnixMilli()); err != nil {
		log.CtxError(ctx, "mark read failed: message_id=%d, error=%v", messageId, err)
		return nil, errcode.ErrInternalServer
	}

	updated, err := s.msgRepo.GetById(ctx, messageId)
	if err != nil || updated == nil {
		log.CtxError(ctx, "reload message failed: message_id=%d, error=%v", messageId, err)
		return nil, errcode.ErrInternalServer
	}

	return updated, nil
}
