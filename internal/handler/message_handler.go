package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/middleware"
	"github.com/uniqpixl/cowors-backend-admin/internal/service"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/response"
)

// MessageHandler handles message-related requests
type MessageHandler struct {
	msgService *service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(msgService *service.MessageService) *MessageHandler {
	return &MessageHandler{msgService: msgService}
}

// SendMessage handles send message request
func (h *MessageHandler) SendMessage(ctx context.Context, c *app.RequestContext) {
	callerId := middleware.GetUserId(c)
	if callerId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrUnauthorized)
		return
	}

	var req service.SendMessageRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	msg, err := h.msgService.SendMessage(ctx, callerId, middleware.GetRole(c), &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, msg.ToMessageInfo())
}

// ListMessages handles list messages request
func (h *MessageHandler) ListMessages(ctx context.Context, c *app.RequestContext) {
	callerId := middleware.GetUserId(c)
	if callerId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrUnauthorized)
		return
	}

	conversationId, err := strconv.ParseInt(c.Query("conversation_id"), 10, 64)
	if err != nil || conversationId <= 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	messages, total, err := h.msgService.ListMessages(ctx, callerId, conversationId, page, limit)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	msgInfos := make([]*entity.MessageInfo, 0, len(messages))
	for _, msg := range messages {
		msgInfos = append(msgInfos, msg.ToMessageInfo())
	}

	response.Success(ctx, c, map[string]interface{}{
		"messages": msgInfos,
		"total":    total,
	})
}

// MarkReadRequest represents mark message read request
type MarkReadRequest struct {
	MessageId int64 `json:"message_id"`
}

// MarkRead handles mark message read request
func (h *MessageHandler) MarkRead(ctx context.Context, c *app.RequestContext) {
	callerId := middleware.GetUserId(c)
	if callerId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrUnauthorized)
		return
	}

	var req MarkReadRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	msg, err := h.msgService.MarkMessageRead(ctx, callerId, req.MessageId)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, msg.ToMessageInfo())
}
