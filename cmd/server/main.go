package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/config"
	"github.com/uniqpixl/cowors-backend-admin/internal/handler"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/internal/router"
	"github.com/uniqpixl/cowors-backend-admin/internal/service"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/jwt"
)

func main() {
	ctx := context.TODO()

	// Load configuration
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.CtxError(ctx, "failed to load config: %v", err)
		panic(err)
	}

	log.CtxInfo(ctx, "config loaded: mode=%s", cfg.Server.Mode)

	// Initialize Redis key prefix
	constant.InitRedisKeyPrefix(cfg.Redis.KeyPrefix)
	log.CtxInfo(ctx, "redis key prefix: %s", constant.GetRedisKeyPrefix())

	// Initialize repositories
	repos, err := repository.NewRepositories(cfg)
	if err != nil {
		log.CtxError(ctx, "failed to initialize repositories: %v", err)
		panic(err)
	}
	defer repos.Close()

	// Check database connection
	if err := repos.CheckConnection(ctx); err != nil {
		log.CtxError(ctx, "database connection check failed: %v", err)
		panic(err)
	}
	log.CtxInfo(ctx, "database connection established")

	// Token revocation store shared by auth middleware and admin user service
	tokenStore := jwt.NewTokenStore(repos.Redis, cfg.JWT.ExpireHours)

	// Initialize services
	convService := service.NewConversationService(repos)
	msgService := service.NewMessageService(repos)
	partnerService := service.NewPartnerService(repos)
	bookingService := service.NewBookingService(repos)
	commissionService := service.NewCommissionService(repos)
	financeService := service.NewFinanceService(repos)
	roleService := service.NewRoleService(repos, cfg)

	// Initialize handlers
	handlers := &router.Handlers{
		Conversation: handler.NewConversationHandler(convService),
		Message:      handler.NewMessageHandler(msgService),
		Partner:      handler.NewPartnerHandler(partnerService),
		Booking:      handler.NewBookingHandler(bookingService),
		Commission:   handler.NewCommissionHandler(commissionService),
		Finance:      handler.NewFinanceHandler(financeService),
		Role:         handler.NewRoleHandler(roleService),
	}

	// Create Hertz server
	h := server.Default(
		server.WithHostPorts(fmt.Sprintf(":%d", cfg.Server.HTTPPort)),
	)

	// Setup routes
	router.SetupRouter(h, handlers, tokenStore)

	log.CtxInfo(ctx, "server starting on port %d", cfg.Server.HTTPPort)

	// Start server in goroutine
	go func() {
		h.Spin()
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.CtxInfo(ctx, "shutting down server...")

	// Graceful shutdown
	if err := h.Shutdown(ctx); err != nil {
		log.CtxError(ctx, "server shutdown error: %v", err)
	}

	log.CtxInfo(ctx, "server stopped")
}
