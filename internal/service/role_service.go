package service

import (
	"context"

	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/config"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/idgen"
	"github.com/uniqpixl/cowors-backend-admin/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// RoleService handles role and admin-user administration
type RoleService struct {
	roleRepo   *repository.RoleRepo
	tokenStore *jwt.TokenStore
}

// NewRoleService creates a new RoleService
func NewRoleService(repos *repository.Repositories, cfg *config.Config) *RoleService {
	var tokenStore *jwt.TokenStore
	if repos.Redis != nil {
		tokenStore = jwt.NewTokenStore(repos.Redis, cfg.JWT.ExpireHours)
	}
	return &RoleService{
		roleRepo:   repos.Role,
		tokenStore: tokenStore,
	}
}

// CreateRoleRequest represents create role request
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// CreateRole creates a new non-system role
func (s *RoleService) CreateRole(ctx context.Context, req *CreateRoleRequest) (*entity.Role, error) {
	if req.Name == "" {
		return nil, errcode.ErrInvalidParam
	}

	existing, err := s.roleRepo.GetRoleByName(ctx, req.Name)
	if err != nil {
		log.CtxError(ctx, "get role by name failed: %v", err)
		return nil, errcode.ErrInternalServer
	}
	if existing != nil {
		return nil, errcode.ErrRoleExists
	}

	role := &entity.Role{Name: req.Name}
	if err := role.SetPermissionList(req.Permissions); err != nil {
		return nil, errcode.ErrInvalidParam.Wrap(err)
	}

	if err := s.roleRepo.CreateRole(ctx, role); err != nil {
		log.CtxError(ctx, "create role failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "role created: id=%d, name=%s", role.Id, role.Name)
	return role, nil
}

// GetRole gets a role by id
func (s *RoleService) GetRole(ctx context.Context, id int64) (*entity.Role, error) {
	role, err := s.roleRepo.GetRoleById(ctx, id)
	if err != nil {
		log.CtxError(ctx, "get role failed: id=%d, error=%v", id, err)
		return nil, errcode.ErrInternalServer
	}
	if role == nil {
		return nil, errcode.ErrRoleNotFound
	}
	return role, nil
}

// ListRoles returns all roles
func (s *RoleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		log.CtxError(ctx, "list roles failed: %v", err)
		return nil, errcode.ErrInternalServer
	}
	return roles, nil
}

// UpdateRolePermissions replaces a role's permission list. System roles are immutable.
func (s *RoleService) UpdateRolePermissions(ctx context.Context, id int64, permissions []string) (*entity.Role, error) {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsSystem {
		return nil, errcode.ErrSystemRole
	}

	if err := role.SetPermissionList(permissions); err != nil {
		return nil, errcode.ErrInvalidParam.Wrap(err)
	}

	if err := s.roleRepo.UpdateRole(ctx, id, map[string]interface{}{
		"permissions": role.Permissions,
	}); err != nil {
		log.CtxError(ctx, "update role failed: id=%d, error=%v", id, err)
		return nil, errcode.ErrInternalServer
	}

	return s.GetRole(ctx, id)
}

// DeleteRole removes a non-system role
func (s *RoleService) DeleteRole(ctx context.Context, id int64) error {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return errcode.ErrSystemRole
	}
	if err := s.roleRepo.DeleteRole(ctx, id); err != nil {
		log.CtxError(ctx, "delete role failed: id=%d, error=%v", id, err)
		return errcode.ErrInternalServer
	}
	return nil
}

// HasPermission reports whether the role grants perm
func (s *RoleService) HasPermission(ctx context.Context, roleId int64, perm string) (bool, error) {
	role, err := s.GetRole(ctx, roleId)
	if err != nil {
		return false, err
	}
	return role.HasPermission(perm), nil
}

// CreateAdminUserRequest represents create admin user request
type CreateAdminUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	RoleId   int64  `json:"role_id"`
}

// CreateAdminUser creates a new dashboard operator account
func (s *RoleService) CreateAdminUser(ctx context.Context, req *CreateAdminUserRequest) (*entity.AdminUserInfo, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errcode.ErrInvalidParam
	}

	if _, err := s.GetRole(ctx, req.RoleId); err != nil {
		return nil, err
	}

	existing, err := s.roleRepo.GetAdminUserByEmail(ctx, req.Email)
	if err != nil {
		log.CtxError(ctx, "get admin user by email failed: %v", err)
		return nil, errcode.ErrInternalServer
	}
	if existing != nil {
		return nil, errcode.ErrAdminUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.CtxError(ctx, "hash password failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	id, err := idgen.PrefixedID(idgen.PrefixAdminUser)
	if err != nil {
		log.CtxError(ctx, "generate admin user id failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	u := &entity.AdminUser{
		Id:       id,
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		RoleId:   req.RoleId,
		IsActive: true,
	}

	if err := s.roleRepo.CreateAdminUser(ctx, u); err != nil {
		log.CtxError(ctx, "create admin user failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "admin user created: id=%s, email=%s", u.Id, u.Email)
	return u.ToAdminUserInfo(), nil
}

// ListAdminUsers returns all admin users
func (s *RoleService) ListAdminUsers(ctx context.Context) ([]*entity.AdminUserInfo, error) {
	users, err := s.roleRepo.ListAdminUsers(ctx)
	if err != nil {
		log.CtxError(ctx, "list admin users failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	result := make([]*entity.AdminUserInfo, 0, len(users))
	for _, u := range users {
		result = append(result, u.ToAdminUserInfo())
	}
	return result, nil
}

// UpdateAdminUserRequest represents update admin user request
type UpdateAdminUserRequest struct {
	Name   *string `json:"name,omitempty"`
	RoleId *int64  `json:"role_id,omitempty"`
}

// UpdateAdminUser updates an admin account's name or role
func (s *RoleService) UpdateAdminUser(ctx context.Context, id string, req *UpdateAdminUserRequest) (*entity.AdminUserInfo, error) {
	u, err := s.roleRepo.GetAdminUserById(ctx, id)
	if err != nil {
		log.CtxError(ctx, "get admin user failed: id=%s, error=%v", id, err)
		return nil, errcode.ErrInternalServer
	}
	if u == nil {
		return nil, errcode.ErrAdminUserNotFound
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.RoleId != nil {
		if _, err := s.GetRole(ctx, *req.RoleId); err != nil {
			return nil, err
		}
		updates["role_id"] = *req.RoleId
	}

	if len(updates) > 0 {
		if err := s.roleRepo.UpdateAdminUser(ctx, id, updates); err != nil {
			log.CtxError(ctx, "update admin user failed: id=%s, error=%v", id, err)
			return nil, errcode.ErrInternalServer
		}
	}

	updated, err := s.roleRepo.GetAdminUserById(ctx, id)
	if err != nil || updated == nil {
		log.CtxError(ctx, "reload admin user failed: id=%s, error=%v", id, err)
		return nil, errcode.ErrInternalServer
	}
	return updated.ToAdminUserInfo(), nil
}

// DeactivateAdminUser disables an admin account and revokes its outstanding tokens
func (s *RoleService) DeactivateAdminUser(ctx context.Context, id string) error {
	u, err := s.roleRepo.GetAdminUserById(ctx, id)
	if err != nil {
		log.CtxError(ctx, "get admin user failed: id=%s, error=%v", id, err)
		return errcode.ErrInternalServer
	}
	if u == nil {
		return errcode.ErrAdminUserNotFound
	}

	if err := s.roleRepo.UpdateAdminUser(ctx, id, map[string]interface{}{
		"is_active": false,
	}); err != nil {
		log.CtxError(ctx, "deactivate admin user failed: id=%s, error=%v", id, err)
		return errcode.ErrInternalServer
	}

	if s.tokenStore != nil {
		if err := s.tokenStore.RevokeUser(ctx, id); err != nil {
			// Revocation is best effort; the account flag already blocks new sessions
			log.CtxError(ctx, "revoke admin tokens failed: id=%s, error=%v", id, err)
		}
	}

	log.CtxInfo(ctx, "admin user deactivated: id=%s", id)
	return nil
}
