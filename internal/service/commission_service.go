package service

import (
	"context"
	"strconv"

	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
)

// CommissionService handles commission rules and rate resolution
type CommissionService struct {
	commissionRepo *repository.CommissionRepo
	financeRepo    *repository.FinanceRepo
}

// NewCommissionService creates a new CommissionService
func NewCommissionService(repos *repository.Repositories) *CommissionService {
	return &CommissionService{
		commissionRepo: repos.Commission,
		financeRepo:    repos.Finance,
	}
}

// CreateRuleRequest represents create commission rule request
type CreateRuleRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	RuleType    string   `json:"rule_type"`
	PartnerId   *string  `json:"partner_id,omitempty"`
	Percentage  *float64 `json:"percentage,omitempty"`
	FixedAmount *int64   `json:"fixed_amount,omitempty"`
	Priority    int      `json:"priority"`
}

// CreateRule creates a new active commission rule
func (s *CommissionService) CreateRule(ctx context.Context, req *CreateRuleRequest) (*entity.CommissionRule, error) {
	if req.Name == "" {
		return nil, errcode.ErrInvalidParam
	}
	switch req.RuleType {
	case constant.CommissionTypePercentage:
		if req.Percentage == nil || *req.Percentage < 0 || *req.Percentage > 100 {
			return nil, errcode.ErrInvalidParam
		}
	case constant.CommissionTypeFixed:
		if req.FixedAmount == nil || *req.FixedAmount < 0 {
			return nil, errcode.ErrInvalidParam
		}
	default:
		return nil, errcode.ErrInvalidParam
	}

	rule := &entity.CommissionRule{
		Name:        req.Name,
		Description: req.Description,
		RuleType:    req.RuleType,
		PartnerId:   req.PartnerId,
		Percentage:  req.Percentage,
		FixedAmount: req.FixedAmount,
		Priority:    req.Priority,
		IsActive:    true,
	}

	if err := s.commissionRepo.Create(ctx, rule); err != nil {
		log.CtxError(ctx, "create commission rule failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "commission rule created: id=%d, name=%s", rule.Id, rule.Name)
	return rule, nil
}

// GetRule gets a commission rule by id
func (s *CommissionService) GetRule(ctx context.Context, id int64) (*entity.CommissionRule, error) {
	rule, err := s.commissionRepo.GetById(ctx, id)
	if err != nil {
		log.CtxError(ctx, "get commission rule failed: id=%d, error=%v", id, err)
		return nil, errcode.ErrInternalServer
	}
	if rule == nil {
		return nil, errcode.ErrRuleNotFound
	}
	return rule, nil
}

// ListRules returns all commission rules
func (s *CommissionService) ListRules(ctx context.Context) ([]*entity.CommissionRule, error) {
	rules, err := s.commissionRepo.List(ctx)
	if err != nil {
		log.CtxError(ctx, "list commission rules failed: %v", err)
		return nil, errcode.ErrInternalServer
	}
	return rules, nil
}

// UpdateRuleRequest represents update commission rule request
type UpdateRuleRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Percentage  *float64 `json:"percentage,omitempty"`
	FixedAmount *int64   `json:"fixed_amount,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// UpdateRule updates a commission rule
func (s *CommissionService) UpdateRule(ctx context.Context, id int64, req *UpdateRuleRequest) (*entity.CommissionRule, error) {
	if _, err := s.GetRule(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Percentage != nil {
		updates["percentage"] = *req.Percentage
	}
	if req.FixedAmount != nil {
		updates["fixed_amount"] = *req.FixedAmount
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.commissionRepo.Update(ctx, id, updates); err != nil {
			log.CtxError(ctx, "update commission rule failed: id=%d, error=%v", id, err)
			return nil, errcode.ErrInternalServer
		}
	}

	return s.GetRule(ctx, id)
}

// DeleteRule removes a commission rule
func (s *CommissionService) DeleteRule(ctx context.Context, id int64) error {
	if _, err := s.GetRule(ctx, id); err != nil {
		return err
	}
	if err := s.commissionRepo.Delete(ctx, id); err != nil {
		log.CtxError(ctx, "delete commission rule failed: id=%d, error=%v", id, err)
		return errcode.ErrInternalServer
	}
	return nil
}

// ResolvedCommission is the outcome of rate resolution for a booking amount
type ResolvedCommission struct {
	RuleId     *int64  `json:"rule_id,omitempty"`
	RuleName   string  `json:"rule_name"`
	RuleType   string  `json:"rule_type"`
	Rate       float64 `json:"rate,omitempty"`
	Commission int64   `json:"commission"`
}

// ResolveCommission picks the effective rule for a partner and computes the
// commission for the given amount. Partner-scoped rules beat global ones at
// equal priority; with no matching rule the finance-config default rate applies.
func (s *CommissionService) ResolveCommission(ctx context.Context, partnerId string, amount int64) (*ResolvedCommission, error) {
	rules, err := s.commissionRepo.ListActiveForPartner(ctx, partnerId)
	if err != nil {
		log.CtxError(ctx, "list rules for partner failed: partner_id=%s, error=%v", partnerId, err)
		return nil, errcode.ErrInternalServer
	}

	for _, rule := range rules {
		if !rule.AppliesTo(partnerId) {
			continue
		}
		result := &ResolvedCommission{
			RuleId:     &rule.Id,
			RuleName:   rule.Name,
			RuleType:   rule.RuleType,
			Commission: rule.CommissionFor(amount),
		}
		if rule.Percentage != nil {
			result.Rate = *rule.Percentage
		}
		return result, nil
	}

	// No rule matched, fall back to the configured default rate
	rate := s.defaultRate(ctx)
	return &ResolvedCommission{
		RuleName:   "default",
		RuleType:   constant.CommissionTypePercentage,
		Rate:       rate,
		Commission: int64(float64(amount) * rate / 100.0),
	}, nil
}

// defaultRate reads the platform default commission rate from finance config,
// falling back to 10% when unset
func (s *CommissionService) defaultRate(ctx context.Context) float64 {
	cfg, err := s.financeRepo.Get(ctx, constant.FinanceKeyDefaultCommissionRate)
	if err != nil || cfg == nil {
		return 10.0
	}
	rate, err := strconv.ParseFloat(cfg.Value, 64)
	if err != nil {
		return 10.0
	}
	return rate
}
