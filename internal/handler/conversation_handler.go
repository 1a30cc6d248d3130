package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/uniqpixl/cowors-backend-admin/internal/middleware"
	"github.com/uniqpixl/cowors-backend-admin/internal/service"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/response"
)

// ConversationHandler handles conversation-related requests
type ConversationHandler struct {
	convService *service.ConversationService
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(convService *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{convService: convService}
}

// CreateConversationRequest represents create conversation request
type CreateConversationRequest struct {
	BookingId    string `json:"booking_id"`
	OtherPartyId string `json:"other_party_id"`
}

// CreateConversation handles create conversation request. The caller becomes
// one party; their role decides which participant slot they fill.
func (h *ConversationHandler) CreateConversation(ctx context.Context, c *app.RequestContext) {
	callerId := middleware.GetUserId(c)
	if callerId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrUnauthorized)
		return
	}

	var req CreateConversationRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}
	if req.BookingId == "" || req.OtherPartyId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	userId, partnerId := callerId, req.OtherPartyId
	if middleware.GetRole(c) == constant.RolePartner {
		userId, partnerId = req.OtherPartyId, callerId
	}

	conv, err := h.convService.CreateConversation(ctx, req.BookingId, userId, partnerId)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, conv.ToConversationInfo())
}

// ListConversations handles list conversations request
func (h *ConversationHandler) ListConversations(ctx context.Context, c *app.RequestContext) {
	callerId := middleware.GetUserId(c)
	if callerId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrUnauthorized)
		return
	}

	convs, err := h.convService.ListConversations(ctx, callerId)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, convs)
}

// TotalUnread handles the unread badge count request
func (h *ConversationHandler) TotalUnread(ctx context.Context, c *app.RequestContext) {
	callerId := middleware.GetUserId(c)
	if callerId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrUnauthorized)
		return
	}

	total, err := h.convService.TotalUnread(ctx, callerId)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"unread_count": total,
	})
}
