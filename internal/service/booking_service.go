package service

import (
	"context"

	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/idgen"
)

// BookingService handles booking administration
type BookingService struct {
	bookingRepo *repository.BookingRepo
}

// NewBookingService creates a new BookingService
func NewBookingService(repos *repository.Repositories) *BookingService {
	return &BookingService{bookingRepo: repos.Booking}
}

// CreateBookingRequest represents create booking request
type CreateBookingRequest struct {
	UserId    string `json:"user_id"`
	PartnerId string `json:"partner_id"`
	SpaceName string `json:"space_name"`
	StartAt   int64  `json:"start_at"`
	EndAt     int64  `json:"end_at"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency,omitempty"`
}

// CreateBooking records a new booking in pending status
func (s *BookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*entity.Booking, error) {
	if req.UserId == "" || req.PartnerId == "" || req.StartAt <= 0 || req.EndAt <= req.StartAt {
		return nil, errcode.ErrInvalidParam
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	id, err := idgen.PrefixedID(idgen.PrefixBooking)
	if err != nil {
		log.CtxError(ctx, "generate booking id failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	b := &entity.Booking{
		Id:        id,
		UserId:    req.UserId,
		PartnerId: req.PartnerId,
		SpaceName: req.SpaceName,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		Amount:    req.Amount,
		Currency:  currency,
		Status:    constant.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		log.CtxError(ctx, "create booking failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "booking created: id=%s, user_id=%s, partner_id=%s", b.Id, b.UserId, b.PartnerId)
	return b, nil
}

// GetBooking gets a booking by id
func (s *BookingService) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	b, err := s.bookingRepo.GetById(ctx, id)
	if err != nil {
		log.CtxError(ctx, "get booking failed: id=%s, error=%v", id, err)
		return nil, errcode.ErrInternalServer
	}
	if b == nil {
		return nil, errcode.ErrBookingNotFound
	}
	return b, nil
}

// ListBookings returns one page of bookings matching the filter
func (s *BookingService) ListBookings(ctx context.Context, filter *repository.BookingListFilter, page, limit int) ([]*entity.Booking, int64, error) {
	bookings, total, err := s.bookingRepo.List(ctx, filter, page, limit)
	if err != nil {
		log.CtxError(ctx, "list bookings failed: %v", err)
		return nil, 0, errcode.ErrInternalServer
	}
	return bookings, total, nil
}

// ConfirmBooking moves a pending booking to confirmed
func (s *BookingService) ConfirmBooking(ctx context.Context, id string) (*entity.Booking, error) {
	return s.transition(ctx, id, constant.BookingStatusConfirmed, "")
}

// CompleteBooking moves a confirmed booking to completed
func (s *BookingService) CompleteBooking(ctx context.Context, id string) (*entity.Booking, error) {
	return s.transition(ctx, id, constant.BookingStatusCompleted, "")
}

// CancelBooking cancels a booking that is not yet completed or cancelled
func (s *BookingService) CancelBooking(ctx context.Context, id, reason string) (*entity.Booking, error) {
	return s.transition(ctx, id, constant.BookingStatusCancelled, reason)
}

func (s *BookingService) transition(ctx context.Context, id, target, reason string) (*entity.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.CanTransitionTo(target) {
		return nil, errcode.ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": target}
	if reason != "" {
		updates["cancel_reason"] = reason
	}

	if err := s.bookingRepo.Update(ctx, id, updates); err != nil {
		log.CtxError(ctx, "booking transition failed: id=%s, target=%s, error=%v", id, target, err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "booking status changed: id=%s, from=%s, to=%s", id, b.Status, target)
	return s.GetBooking(ctx, id)
}
