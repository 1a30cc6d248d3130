package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/uniqpixl/cowors-backend-admin/internal/handler"
	"github.com/uniqpixl/cowors-backend-admin/internal/middleware"
	"github.com/uniqpixl/cowors-backend-admin/pkg/jwt"
)

// SetupRouter sets up all routes
func SetupRouter(h *server.Hertz, handlers *Handlers, tokenStore *jwt.TokenStore) {
	// CORS middleware
	h.Use(middleware.CORS())

	// Health check
	h.GET("/health", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, map[string]string{"status": "ok"})
	})

	auth := middleware.JWTAuth(tokenStore)

	// Conversation routes (auth required)
	convGroup := h.Group("/conversations", auth)
	{
		convGroup.POST("", handlers.Conversation.CreateConversation)
		convGroup.GET("", handlers.Conversation.ListConversations)
		convGroup.GET("/unread_count", handlers.Conversation.TotalUnread)
	}

	// Message routes (auth required)
	msgGroup := h.Group("/messages", auth)
	{
		msgGroup.POST("/send", handlers.Message.SendMessage)
		msgGroup.GET("", handlers.Message.ListMessages)
		msgGroup.POST("/mark_read", handlers.Message.MarkRead)
	}

	// Admin dashboard routes (admin role required)
	adminGroup := h.Group("/admin", auth, middleware.RequireAdmin())
	{
		partnerGroup := adminGroup.Group("/partners")
		{
			partnerGroup.POST("", handlers.Partner.CreatePartner)
			partnerGroup.GET("", handlers.Partner.ListPartners)
			partnerGroup.GET("/:id", handlers.Partner.GetPartner)
			partnerGroup.PUT("/:id", handlers.Partner.UpdatePartner)
			partnerGroup.POST("/:id/status", handlers.Partner.SetPartnerStatus)
		}

		bookingGroup := adminGroup.Group("/bookings")
		{
			bookingGroup.POST("", handlers.Booking.CreateBooking)
			bookingGroup.GET("", handlers.Booking.ListBookings)
			bookingGroup.GET("/:id", handlers.Booking.GetBooking)
			bookingGroup.POST("/:id/confirm", handlers.Booking.ConfirmBooking)
			bookingGroup.POST("/:id/complete", handlers.Booking.CompleteBooking)
			bookingGroup.POST("/:id/cancel", handlers.Booking.CancelBooking)
		}

		commissionGroup := adminGroup.Group("/commission")
		{
			commissionGroup.POST("/rules", handlers.Commission.CreateRule)
			commissionGroup.GET("/rules", handlers.Commission.ListRules)
			commissionGroup.GET("/rules/:id", handlers.Commission.GetRule)
			commissionGroup.PUT("/rules/:id", handlers.Commission.UpdateRule)
			commissionGroup.DELETE("/rules/:id", handlers.Commission.DeleteRule)
			commissionGroup.GET("/resolve", handlers.Commission.ResolveCommission)
		}

		financeGroup := adminGroup.Group("/finance")
		{
			financeGroup.GET("/configs", handlers.Finance.ListConfigs)
			financeGroup.GET("/configs/:key", handlers.Finance.GetConfig)
			financeGroup.PUT("/configs/:key", handlers.Finance.SetConfig)
		}

		roleGroup := adminGroup.Group("/roles")
		{
			roleGroup.POST("", handlers.Role.CreateRole)
			roleGroup.GET("", handlers.Role.ListRoles)
			roleGroup.GET("/:id", handlers.Role.GetRole)
			roleGroup.PUT("/:id/permissions", handlers.Role.UpdateRolePermissions)
			roleGroup.DELETE("/:id", handlers.Role.DeleteRole)
		}

		userGroup := adminGroup.Group("/users")
		{
			userGroup.POST("", handlers.Role.CreateAdminUser)
			userGroup.GET("", handlers.Role.ListAdminUsers)
			userGroup.PUT("/:id", handlers.Role.UpdateAdminUser)
			userGroup.POST("/:id/deactivate", handlers.Role.DeactivateAdminUser)
		}
	}
}

// Handlers holds all HTTP handlers
type Handlers struct {
	Conversation *handler.ConversationHandler
	Message      *handler.MessageHandler
	Partner      *handler.PartnerHandler
	Booking      *handler.BookingHandler
	Commission   *handler.CommissionHandler
	Finance      *handler.FinanceHandler
	Role         *handler.RoleHandler
}
