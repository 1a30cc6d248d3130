package service

import (
	"context"

	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
)

// ConversationService manages conversation identity: one conversation per
// booking, created idempotently on first message intent.
type ConversationService struct {
	convRepo *repository.ConversationRepo
	msgRepo  *repository.MessageRepo
	repos    *repository.Repositories
}

// NewConversationService creates a new ConversationService
func NewConversationService(repos *repository.Repositories) *ConversationService {
	return &ConversationService{
		convRepo: repos.Conversation,
		msgRepo:  repos.Message,
		repos:    repos,
	}
}

// CreateConversation returns the booking's conversation, creating it if absent.
// Calling it twice for the same booking yields the same conversation; a lost
// creation race is resolved by re-reading the winner's row, so the conflict
// never reaches the caller.
func (s *ConversationService) CreateConversation(ctx context.Context, bookingId, userId, partnerId string) (*entity.Conversation, error) {
	existing, err := s.convRepo.GetByBookingId(ctx, bookingId)
	if err != nil {
		log.CtxError(ctx, "get conversation by booking failed: booking_id=%s, error=%v", bookingId, err)
		return nil, errcode.ErrInternalServer
	}
	if existing != nil {
		return existing, nil
	}

	conv := &entity.Conversation{
		BookingId:    bookingId,
		UserId:       userId,
		PartnerId:    partnerId,
		IsActive:     true,
		LastActivity: entity.NowUnixMilli(),
	}

	if err := s.convRepo.Create(ctx, conv); err != nil {
		// A concurrent caller may have created the row between our read and
		// write; the unique index on booking_id rejects the duplicate. Re-read
		// and return the existing conversation.
		winner, getErr := s.convRepo.GetByBookingId(ctx, bookingId)
		if getErr == nil && winner != nil {
			return winner, nil
		}
		log.CtxError(ctx, "create conversation failed: booking_id=%s, error=%v", bookingId, err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "conversation created: id=%d, booking_id=%s", conv.Id, bookingId)
	return conv, nil
}

// ListConversations returns the caller's conversations, newest activity first,
// each enriched with its latest message and the caller's unread count.
// One query per conversation for the enrichment; fine for inbox-sized lists.
func (s *ConversationService) ListConversations(ctx context.Context, callerId string) ([]*entity.ConversationInfo, error) {
	convs, err := s.convRepo.ListByParticipant(ctx, callerId)
	if err != nil {
		log.CtxError(ctx, "list conversations failed: caller_id=%s, error=%v", callerId, err)
		return nil, errcode.ErrInternalServer
	}

	result := make([]*entity.ConversationInfo, 0, len(convs))
	for _, conv := range convs {
		info := conv.ToConversationInfo()

		last, err := s.msgRepo.Latest(ctx, conv.Id)
		if err != nil {
			log.CtxError(ctx, "get latest message failed: conversation_id=%d, error=%v", conv.Id, err)
			return nil, errcode.ErrInternalServer
		}
		if last != nil {
			info.LastMessage = last.ToMessageInfo()
		}

		unread, err := s.msgRepo.CountUnread(ctx, conv.Id, callerId)
		if err != nil {
			log.CtxError(ctx, "count unread failed: conversation_id=%d, error=%v", conv.Id, err)
			return nil, errcode.ErrInternalServer
		}
		info.UnreadCount = unread

		result = append(result, info)
	}

	return result, nil
}

// TotalUnread sums the caller's unread counts across all their conversations.
// Drives the inbox badge in the admin UI.
func (s *ConversationService) TotalUnread(ctx context.Context, callerId string) (int64, error) {
	convs, err := s.convRepo.ListByParticipant(ctx, callerId)
	if err != nil {
		log.CtxError(ctx, "list conversations failed: caller_id=%s, error=%v", callerId, err)
		return 0, errcode.ErrInternalServer
	}

	var total int64
	for _, conv := range convs {
		unread, err := s.msgRepo.CountUnread(ctx, conv.Id, callerId)
		if err != nil {
			log.CtxError(ctx, "count unread failed: conversation_id=%d, error=%v", conv.Id, err)
			return 0, errcode.ErrInternalServer
		}
		total += unread
	}

	return total, nil
}
