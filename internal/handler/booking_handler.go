package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/internal/service"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/response"
)

// BookingHandler handles booking management requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking handles booking creation
func (h *BookingHandler) CreateBooking(ctx context.Context, c *app.RequestContext) {
	var req service.CreateBookingRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	booking, err := h.bookingService.CreateBooking(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, booking)
}

// GetBooking handles get booking request
func (h *BookingHandler) GetBooking(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	booking, err := h.bookingService.GetBooking(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, booking)
}

// ListBookings handles booking listing with optional filters
func (h *BookingHandler) ListBookings(ctx context.Context, c *app.RequestContext) {
	filter := &repository.BookingListFilter{
		Status:    c.Query("status"),
		UserId:    c.Query("user_id"),
		PartnerId: c.Query("partner_id"),
	}
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	bookings, total, err := h.bookingService.ListBookings(ctx, filter, page, limit)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"bookings": bookings,
		"total":    total,
	})
}

// ConfirmBooking handles booking confirmation
func (h *BookingHandler) ConfirmBooking(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	booking, err := h.bookingService.ConfirmBooking(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, booking)
}

// CompleteBooking handles booking completion
func (h *BookingHandler) CompleteBooking(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	booking, err := h.bookingService.CompleteBooking(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, booking)
}

// CancelBookingRequest represents a booking cancellation request
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBooking handles booking cancellation
func (h *BookingHandler) CancelBooking(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	var req CancelBookingRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	booking, err := h.bookingService.CancelBooking(ctx, id, req.Reason)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, booking)
}
