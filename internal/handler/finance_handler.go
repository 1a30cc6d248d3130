package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/uniqpixl/cowors-backend-admin/internal/middleware"
	"github.com/uniqpixl/cowors-backend-admin/internal/service"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/response"
)

// FinanceHandler handles finance settings requests
type FinanceHandler struct {
	financeService *service.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// ListConfigs handles listing all finance settings
func (h *FinanceHandler) ListConfigs(ctx context.Context, c *app.RequestContext) {
	configs, err := h.financeService.ListConfigs(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"configs": configs,
	})
}

// GetConfig handles get finance setting request
func (h *FinanceHandler) GetConfig(ctx context.Context, c *app.RequestContext) {
	key := c.Param("key")
	if key == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	cfg, err := h.financeService.GetConfig(ctx, key)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, cfg)
}

// SetConfigRequest represents a finance setting update request
type SetConfigRequest struct {
	Value string `json:"value"`
}

// SetConfig handles finance setting updates
func (h *FinanceHandler) SetConfig(ctx context.Context, c *app.RequestContext) {
	key := c.Param("key")
	if key == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	var req SetConfigRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	cfg, err := h.financeService.SetConfig(ctx, key, req.Value, middleware.GetUserId(c))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, cfg)
}
