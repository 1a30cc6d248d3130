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

// PartnerHandler handles partner management requests
type PartnerHandler struct {
	partnerService *service.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// CreatePartner handles partner registration
func (h *PartnerHandler) CreatePartner(ctx context.Context, c *app.RequestContext) {
	var req service.CreatePartnerRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	partner, err := h.partnerService.CreatePartner(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, partner)
}

// GetPartner handles get partner request
func (h *PartnerHandler) GetPartner(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	partner, err := h.partnerService.GetPartner(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, partner)
}

// ListPartners handles partner listing with optional filters
func (h *PartnerHandler) ListPartners(ctx context.Context, c *app.RequestContext) {
	filter := &repository.PartnerListFilter{
		Status:       c.Query("status"),
		BusinessType: c.Query("business_type"),
		Search:       c.Query("search"),
	}
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	partners, total, err := h.partnerService.ListPartners(ctx, filter, page, limit)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"partners": partners,
		"total":    total,
	})
}

// UpdatePartner handles partner profile updates
func (h *PartnerHandler) UpdatePartner(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	var req service.UpdatePartnerRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	partner, err := h.partnerService.UpdatePartner(ctx, id, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, partner)
}

// SetPartnerStatusRequest represents a partner status change request
type SetPartnerStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// SetPartnerStatus handles partner status transitions
func (h *PartnerHandler) SetPartnerStatus(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	var req SetPartnerStatusRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	partner, err := h.partnerService.SetPartnerStatus(ctx, id, req.Status, req.Reason)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, partner)
}
