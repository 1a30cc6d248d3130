package repository

import (
	"context"
	"errors"

	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"gorm.io/gorm"
)

// RoleRepo is the repository for roles and admin users
type RoleRepo struct {
	db *gorm.DB
}

// NewRoleRepo creates a new RoleRepo
func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

// CreateRole creates a new role
func (r *RoleRepo) CreateRole(ctx context.Context, role *entity.Role) error {
	now := entity.NowUnixMilli()
	role.CreatedAt = now
	role.UpdatedAt = now
	return r.db.WithContext(ctx).Create(role).Error
}

// GetRoleById gets a role by id
func (r *RoleRepo) GetRoleById(ctx context.Context, id int64) (*entity.Role, error) {
	var role entity.Role
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// GetRoleByName gets a role by its unique name
func (r *RoleRepo) GetRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// ListRoles returns all roles
func (r *RoleRepo) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var roles []*entity.Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// UpdateRole applies the given column updates to a role
func (r *RoleRepo) UpdateRole(ctx context.Context, id int64, updates map[string]interface{}) error {
	updates["updated_at"] = entity.NowUnixMilli()
	return r.db.WithContext(ctx).
		Model(&entity.Role{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteRole removes a role
func (r *RoleRepo) DeleteRole(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Role{}).Error
}

// CreateAdminUser creates a new admin user
func (r *RoleRepo) CreateAdminUser(ctx context.Context, u *entity.AdminUser) error {
	now := entity.NowUnixMilli()
	u.CreatedAt = now
	u.UpdatedAt = now
	return r.db.WithContext(ctx).Create(u).Error
}

// GetAdminUserById gets an admin user by id
func (r *RoleRepo) GetAdminUserById(ctx context.Context, id string) (*entity.AdminUser, error) {
	var u entity.AdminUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetAdminUserByEmail gets an admin user by email
func (r *RoleRepo) GetAdminUserByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var u entity.AdminUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ListAdminUsers returns all admin users
func (r *RoleRepo) ListAdminUsers(ctx context.Context) ([]*entity.AdminUser, error) {
	var users []*entity.AdminUser
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateAdminUser applies the given column updates to an admin user
func (r *RoleRepo) UpdateAdminUser(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = entity.NowUnixMilli()
	return r.db.WithContext(ctx).
		Model(&entity.AdminUser{}).
		Where("id = ?", id).
		Updates(updates).Error
}
