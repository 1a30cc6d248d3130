package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/uniqpixl/cowors-backend-admin/internal/service"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/response"
)

// CommissionHandler handles commission rule administration requests
type CommissionHandler struct {
	commissionService *service.CommissionService
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissionService *service.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// CreateRule handles commission rule creation
func (h *CommissionHandler) CreateRule(ctx context.Context, c *app.RequestContext) {
	var req service.CreateRuleRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	rule, err := h.commissionService.CreateRule(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, rule)
}

// GetRule handles get commission rule request
func (h *CommissionHandler) GetRule(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	rule, err := h.commissionService.GetRule(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, rule)
}

// ListRules handles commission rule listing
func (h *CommissionHandler) ListRules(ctx context.Context, c *app.RequestContext) {
	rules, err := h.commissionService.ListRules(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"rules": rules,
		"total": len(rules),
	})
}

// UpdateRule handles commission rule updates
func (h *CommissionHandler) UpdateRule(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	var req service.UpdateRuleRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	rule, err := h.commissionService.UpdateRule(ctx, id, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, rule)
}

// DeleteRule handles commission rule deletion
func (h *CommissionHandler) DeleteRule(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	if err := h.commissionService.DeleteRule(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, nil)
}

// ResolveCommission handles commission resolution for a partner and amount
func (h *CommissionHandler) ResolveCommission(ctx context.Context, c *app.RequestContext) {
	partnerId := c.Query("partner_id")
	if partnerId == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil || amount < 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	resolved, err := h.commissionService.ResolveCommission(ctx, partnerId, amount)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resolved)
}
