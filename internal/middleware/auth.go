package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/uniqpixl/cowors-backend-admin/internal/config"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/jwt"
	"github.com/uniqpixl/cowors-backend-admin/pkg/response"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer token
	BearerPrefix = "Bearer "
	// UserIdKey is the context key for the caller's user id
	UserIdKey = "user_id"
	// RoleKey is the context key for the caller's role
	RoleKey = "role"
)

// JWTAuth validates the bearer token issued by the external auth service and
// stores the caller's identity in the request context. When a token store is
// provided, revoked accounts are rejected even before their tokens expire.
func JWTAuth(tokenStore *jwt.TokenStore) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		authHeader := string(c.GetHeader(AuthorizationHeader))
		if authHeader == "" {
			response.ErrorWithCode(ctx, c, errcode.ErrTokenMissing)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.ErrorWithCode(ctx, c, errcode.ErrTokenInvalid)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwt.ParseToken(tokenString, config.GlobalConfig.JWT.Secret)
		if err != nil {
			response.ErrorWithCode(ctx, c, errcode.ErrTokenInvalid)
			c.Abort()
			return
		}

		if tokenStore != nil && claims.IssuedAt != nil {
			revoked, err := tokenStore.IsRevoked(ctx, claims.UserId, claims.IssuedAt.Time)
			if err == nil && revoked {
				response.ErrorWithCode(ctx, c, errcode.ErrTokenRevoked)
				c.Abort()
				return
			}
		}

		c.Set(UserIdKey, claims.UserId)
		c.Set(RoleKey, claims.Role)

		c.Next(ctx)
	}
}

// RequireAdmin rejects callers whose role is not admin. Must run after JWTAuth.
func RequireAdmin() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if GetRole(c) != constant.RoleAdmin {
			response.ErrorWithCode(ctx, c, errcode.ErrNoPermission)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}

// GetUserId gets the caller's user id from context
func GetUserId(c *app.RequestContext) string {
	if v, ok := c.Get(UserIdKey); ok {
		return v.(string)
	}
	return ""
}

// GetRole gets the caller's role from context
func GetRole(c *app.RequestContext) string {
	if v, ok := c.Get(RoleKey); ok {
		return v.(string)
	}
	return ""
}
