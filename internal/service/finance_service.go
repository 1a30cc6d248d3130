package service

import (
	"context"

	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
)

// financeKeys is the closed set of settings the dashboard exposes
var financeKeys = map[string]bool{
	constant.FinanceKeyDefaultCommissionRate: true,
	constant.FinanceKeyCurrency:              true,
	constant.FinanceKeyPayoutSchedule:        true,
	constant.FinanceKeyMinPayoutAmount:       true,
}

// FinanceService handles finance settings
type FinanceService struct {
	financeRepo *repository.FinanceRepo
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(repos *repository.Repositories) *FinanceService {
	return &FinanceService{financeRepo: repos.Finance}
}

// GetConfig gets a single finance setting
func (s *FinanceService) GetConfig(ctx context.Context, key string) (*entity.FinanceConfig, error) {
	if !financeKeys[key] {
		return nil, errcode.ErrInvalidParam
	}
	cfg, err := s.financeRepo.Get(ctx, key)
	if err != nil {
		log.CtxError(ctx, "get finance config failed: key=%s, error=%v", key, err)
		return nil, errcode.ErrInternalServer
	}
	if cfg == nil {
		return nil, errcode.ErrConfigNotFound
	}
	return cfg, nil
}

// ListConfigs returns all finance settings
func (s *FinanceService) ListConfigs(ctx context.Context) ([]*entity.FinanceConfig, error) {
	cfgs, err := s.financeRepo.List(ctx)
	if err != nil {
		log.CtxError(ctx, "list finance configs failed: %v", err)
		return nil, errcode.ErrInternalServer
	}
	return cfgs, nil
}

// SetConfig creates or replaces a finance setting, recording who changed it
func (s *FinanceService) SetConfig(ctx context.Context, key, value, updatedBy string) (*entity.FinanceConfig, error) {
	if !financeKeys[key] || value == "" {
		return nil, errcode.ErrInvalidParam
	}

	cfg := &entity.FinanceConfig{
		Key:       key,
		Value:     value,
		UpdatedBy: updatedBy,
	}

	if err := s.financeRepo.Upsert(ctx, cfg); err != nil {
		log.CtxError(ctx, "set finance config failed: key=%s, error=%v", key, err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "finance config updated: key=%s, updated_by=%s", key, updatedBy)
	return cfg, nil
}
