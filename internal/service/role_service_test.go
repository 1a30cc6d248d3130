package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniqpixl/cowors-backend-admin/internal/config"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"golang.org/x/crypto/bcrypt"
)

func newRoleService(t *testing.T) (*RoleService, *repository.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	cfg := &config.Config{JWT: config.JWTConfig{ExpireHours: 168}}
	return NewRoleService(repos, cfg), repos
}

func TestRoleLifecycle(t *testing.T) {
	svc, _ := newRoleService(t)
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, &CreateRoleRequest{
		Name:        "support",
		Permissions: []string{constant.PermMessagesView, constant.PermBookingsManage},
	})
	require.NoError(t, err)
	assert.False(t, role.IsSystem)
	assert.True(t, role.HasPermission(constant.PermMessagesView))
	assert.False(t, role.HasPermission(constant.PermFinanceManage))

	_, err = svc.CreateRole(ctx, &CreateRoleRequest{Name: "support"})
	assert.Equal(t, errcode.ErrRoleExists, err)

	role, err = svc.UpdateRolePermissions(ctx, role.Id, []string{constant.PermMessagesView})
	require.NoError(t, err)
	assert.False(t, role.HasPermission(constant.PermBookingsManage))

	ok, err := svc.HasPermission(ctx, role.Id, constant.PermMessagesView)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.DeleteRole(ctx, role.Id))
	_, err = svc.GetRole(ctx, role.Id)
	assert.Equal(t, errcode.ErrRoleNotFound, err)
}

func TestSystemRoleProtected(t *testing.T) {
	svc, repos := newRoleService(t)
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, &CreateRoleRequest{Name: "superadmin", Permissions: []string{"*"}})
	require.NoError(t, err)

	err = repos.Role.UpdateRole(ctx, role.Id, map[string]interface{}{"is_system": true})
	require.NoError(t, err)

	_, err = svc.UpdateRolePermissions(ctx, role.Id, []string{constant.PermMessagesView})
	assert.Equal(t, errcode.ErrSystemRole, err)

	err = svc.DeleteRole(ctx, role.Id)
	assert.Equal(t, errcode.ErrSystemRole, err)

	// Wildcard grants everything
	ok, err := svc.HasPermission(ctx, role.Id, constant.PermFinanceManage)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateAdminUser(t *testing.T) {
	svc, repos := newRoleService(t)
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, &CreateRoleRequest{Name: "ops"})
	require.NoError(t, err)

	user, err := svc.CreateAdminUser(ctx, &CreateAdminUserRequest{
		Email:    "ops@cowors.com",
		Name:     "Ops One",
		Password: "s3cret-pass",
		RoleId:   role.Id,
	})
	require.NoError(t, err)
	assert.Contains(t, user.Id, "usr_")
	assert.True(t, user.IsActive)

	// The stored hash verifies against the original password
	stored, err := repos.Role.GetAdminUserById(ctx, user.Id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))

	_, err = svc.CreateAdminUser(ctx, &CreateAdminUserRequest{
		Email:    "ops@cowors.com",
		Password: "other",
		RoleId:   role.Id,
	})
	assert.Equal(t, errcode.ErrAdminUserExists, err)

	_, err = svc.CreateAdminUser(ctx, &CreateAdminUserRequest{
		Email:    "new@cowors.com",
		Password: "pass",
		RoleId:   role.Id + 999,
	})
	assert.Equal(t, errcode.ErrRoleNotFound, err)
}

func TestUpdateAdminUser(t *testing.T) {
	svc, _ := newRoleService(t)
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, &CreateRoleRequest{Name: "ops"})
	require.NoError(t, err)
	other, err := svc.CreateRole(ctx, &CreateRoleRequest{Name: "finance"})
	require.NoError(t, err)

	user, err := svc.CreateAdminUser(ctx, &CreateAdminUserRequest{
		Email:    "ops@cowors.com",
		Name:     "Before",
		Password: "pass",
		RoleId:   role.Id,
	})
	require.NoError(t, err)

	name := "After"
	updated, err := svc.UpdateAdminUser(ctx, user.Id, &UpdateAdminUserRequest{
		Name:   &name,
		RoleId: &other.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, other.Id, updated.RoleId)

	missing := role.Id + 999
	_, err = svc.UpdateAdminUser(ctx, user.Id, &UpdateAdminUserRequest{RoleId: &missing})
	assert.Equal(t, errcode.ErrRoleNotFound, err)

	_, err = svc.UpdateAdminUser(ctx, "usr_missing", &UpdateAdminUserRequest{})
	assert.Equal(t, errcode.ErrAdminUserNotFound, err)
}

func TestDeactivateAdminUser(t *testing.T) {
	svc, repos := newRoleService(t)
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, &CreateRoleRequest{Name: "temp"})
	require.NoError(t, err)

	user, err := svc.CreateAdminUser(ctx, &CreateAdminUserRequest{
		Email:    "temp@cowors.com",
		Password: "pass",
		RoleId:   role.Id,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateAdminUser(ctx, user.Id))

	stored, err := repos.Role.GetAdminUserById(ctx, user.Id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)

	err = svc.DeactivateAdminUser(ctx, "usr_missing")
	assert.Equal(t, errcode.ErrAdminUserNotFound, err)
}
