package entity

import "encoding/json"

// Role represents an admin role with a flat permission list.
// System roles ship with the product and cannot be edited or deleted.
type Role struct {
	Id          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:name;uniqueIndex"`
	Permissions string `json:"-" gorm:"column:permissions;type:json"`
	IsSystem    bool   `json:"is_system" gorm:"column:is_system"`
	CreatedAt   int64  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   int64  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// PermissionList decodes the stored permission JSON
func (r *Role) PermissionList() []string {
	var perms []string
	if r.Permissions == "" {
		return perms
	}
	_ = json.Unmarshal([]byte(r.Permissions), &perms)
	return perms
}

// SetPermissionList encodes the permission list into the stored JSON column
func (r *Role) SetPermissionList(perms []string) error {
	data, err := json.Marshal(perms)
	if err != nil {
		return err
	}
	r.Permissions = string(data)
	return nil
}

// HasPermission reports whether the role grants perm. The wildcard "*" grants everything.
func (r *Role) HasPermission(perm string) bool {
	for _, p := range r.PermissionList() {
		if p == "*" || p == perm {
			return true
		}
	}
	return false
}

// RoleInfo represents role info for API response
type RoleInfo struct {
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	IsSystem    bool     `json:"is_system"`
	CreatedAt   int64    `json:"created_at"`
}

// ToRoleInfo converts Role to RoleInfo
func (r *Role) ToRoleInfo() *RoleInfo {
	return &RoleInfo{
		Id:          r.Id,
		Name:        r.Name,
		Permissions: r.PermissionList(),
		IsSystem:    r.IsSystem,
		CreatedAt:   r.CreatedAt,
	}
}

// AdminUser represents a dashboard operator account
type AdminUser struct {
	Id        string `json:"id" gorm:"column:id;primaryKey"`
	Email     string `json:"email" gorm:"column:email;uniqueIndex"`
	Name      string `json:"name" gorm:"column:name"`
	Password  string `json:"-" gorm:"column:password"`
	RoleId    int64  `json:"role_id" gorm:"column:role_id;index"`
	IsActive  bool   `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt int64  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt int64  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for AdminUser
func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminUserInfo represents public admin user info (without password hash)
type AdminUserInfo struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	RoleId    int64  `json:"role_id"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

// ToAdminUserInfo converts AdminUser to AdminUserInfo
func (u *AdminUser) ToAdminUserInfo() *AdminUserInfo {
	return &AdminUserInfo{
		Id:        u.Id,
		Email:     u.Email,
		Name:      u.Name,
		RoleId:    u.RoleId,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
