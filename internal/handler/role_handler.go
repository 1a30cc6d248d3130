package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/service"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/response"
)

// RoleHandler handles role and admin user administration requests
type RoleHandler struct {
	roleService *service.RoleService
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// CreateRole handles role creation
func (h *RoleHandler) CreateRole(ctx context.Context, c *app.RequestContext) {
	var req service.CreateRoleRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	role, err := h.roleService.CreateRole(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, role.ToRoleInfo())
}

// GetRole handles get role request
func (h *RoleHandler) GetRole(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	role, err := h.roleService.GetRole(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, role.ToRoleInfo())
}

// ListRoles handles role listing
func (h *RoleHandler) ListRoles(ctx context.Context, c *app.RequestContext) {
	roles, err := h.roleService.ListRoles(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	roleInfos := make([]*entity.RoleInfo, 0, len(roles))
	for _, role := range roles {
		roleInfos = append(roleInfos, role.ToRoleInfo())
	}

	response.Success(ctx, c, map[string]interface{}{
		"roles": roleInfos,
		"total": len(roleInfos),
	})
}

// UpdatePermissionsRequest represents a role permission update request
type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// UpdateRolePermissions handles replacing a role's permission set
func (h *RoleHandler) UpdateRolePermissions(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	var req UpdatePermissionsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	role, err := h.roleService.UpdateRolePermissions(ctx, id, req.Permissions)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, role.ToRoleInfo())
}

// DeleteRole handles role deletion
func (h *RoleHandler) DeleteRole(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	if err := h.roleService.DeleteRole(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, nil)
}

// CreateAdminUser handles dashboard operator account creation
func (h *RoleHandler) CreateAdminUser(ctx context.Context, c *app.RequestContext) {
	var req service.CreateAdminUserRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	user, err := h.roleService.CreateAdminUser(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, user)
}

// ListAdminUsers handles admin user listing
func (h *RoleHandler) ListAdminUsers(ctx context.Context, c *app.RequestContext) {
	users, err := h.roleService.ListAdminUsers(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"users": users,
		"total": len(users),
	})
}

// UpdateAdminUser handles admin user updates
func (h *RoleHandler) UpdateAdminUser(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	var req service.UpdateAdminUserRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	user, err := h.roleService.UpdateAdminUser(ctx, id, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, user)
}

// DeactivateAdminUser handles admin user deactivation
func (h *RoleHandler) DeactivateAdminUser(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		response.ErrorWithCode(ctx, c, errcode.ErrInvalidParam)
		return
	}

	if err := h.roleService.DeactivateAdminUser(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, nil)
}
