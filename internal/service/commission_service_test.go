package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
)

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }
func strPtr(v string) *string     { return &v }

func TestCreateRuleValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommissionService(repos)
	ctx := context.Background()

	_, err := svc.CreateRule(ctx, &CreateRuleRequest{
		RuleType:   constant.CommissionTypePercentage,
		Percentage: floatPtr(10),
	})
	assert.Equal(t, errcode.ErrInvalidParam, err)

	_, err = svc.CreateRule(ctx, &CreateRuleRequest{
		Name:       "too high",
		RuleType:   constant.CommissionTypePercentage,
		Percentage: floatPtr(150),
	})
	assert.Equal(t, errcode.ErrInvalidParam, err)

	_, err = svc.CreateRule(ctx, &CreateRuleRequest{
		Name:     "missing amount",
		RuleType: constant.CommissionTypeFixed,
	})
	assert.Equal(t, errcode.ErrInvalidParam, err)

	_, err = svc.CreateRule(ctx, &CreateRuleRequest{
		Name:     "bad type",
		RuleType: "tiered",
	})
	assert.Equal(t, errcode.ErrInvalidParam, err)

	rule, err := svc.CreateRule(ctx, &CreateRuleRequest{
		Name:       "standard",
		RuleType:   constant.CommissionTypePercentage,
		Percentage: floatPtr(12.5),
	})
	require.NoError(t, err)
	assert.True(t, rule.IsActive)
	assert.Nil(t, rule.PartnerId)
}

func TestResolveCommissionPrecedence(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommissionService(repos)
	ctx := context.Background()

	global, err := svc.CreateRule(ctx, &CreateRuleRequest{
		Name:       "global base",
		RuleType:   constant.CommissionTypePercentage,
		Percentage: floatPtr(10),
		Priority:   1,
	})
	require.NoError(t, err)

	scoped, err := svc.CreateRule(ctx, &CreateRuleRequest{
		Name:       "ptr_1 deal",
		RuleType:   constant.CommissionTypePercentage,
		PartnerId:  strPtr("ptr_1"),
		Percentage: floatPtr(5),
		Priority:   1,
	})
	require.NoError(t, err)

	// Partner-scoped beats global at equal priority
	resolved, err := svc.ResolveCommission(ctx, "ptr_1", 10000)
	require.NoError(t, err)
	require.NotNil(t, resolved.RuleId)
	assert.Equal(t, scoped.Id, *resolved.RuleId)
	assert.Equal(t, int64(500), resolved.Commission)

	// Other partners fall through to the global rule
	resolved, err = svc.ResolveCommission(ctx, "ptr_2", 10000)
	require.NoError(t, err)
	require.NotNil(t, resolved.RuleId)
	assert.Equal(t, global.Id, *resolved.RuleId)
	assert.Equal(t, int64(1000), resolved.Commission)

	// Higher priority wins regardless of scope
	promo, err := svc.CreateRule(ctx, &CreateRuleRequest{
		Name:        "launch promo",
		RuleType:    constant.CommissionTypeFixed,
		FixedAmount: int64Ptr(100),
		Priority:    10,
	})
	require.NoError(t, err)

	resolved, err = svc.ResolveCommission(ctx, "ptr_1", 10000)
	require.NoError(t, err)
	assert.Equal(t, promo.Id, *resolved.RuleId)
	assert.Equal(t, int64(100), resolved.Commission)
}

func TestResolveCommissionIgnoresInactiveRules(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommissionService(repos)
	ctx := context.Background()

	rule, err := svc.CreateRule(ctx, &CreateRuleRequest{
		Name:       "retired",
		RuleType:   constant.CommissionTypePercentage,
		Percentage: floatPtr(50),
		Priority:   10,
	})
	require.NoError(t, err)

	off := false
	_, err = svc.UpdateRule(ctx, rule.Id, &UpdateRuleRequest{IsActive: &off})
	require.NoError(t, err)

	resolved, err := svc.ResolveCommission(ctx, "ptr_1", 10000)
	require.NoError(t, err)
	assert.Nil(t, resolved.RuleId)
	assert.Equal(t, "default", resolved.RuleName)
}

func TestResolveCommissionDefaultRate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommissionService(repos)
	finSvc := NewFinanceService(repos)
	ctx := context.Background()

	// No rules and no config: the built-in 10% applies
	resolved, err := svc.ResolveCommission(ctx, "ptr_1", 20000)
	require.NoError(t, err)
	assert.Nil(t, resolved.RuleId)
	assert.Equal(t, 10.0, resolved.Rate)
	assert.Equal(t, int64(2000), resolved.Commission)

	// Finance config overrides the fallback
	_, err = finSvc.SetConfig(ctx, constant.FinanceKeyDefaultCommissionRate, "15", "usr_admin")
	require.NoError(t, err)

	resolved, err = svc.ResolveCommission(ctx, "ptr_1", 20000)
	require.NoError(t, err)
	assert.Equal(t, 15.0, resolved.Rate)
	assert.Equal(t, int64(3000), resolved.Commission)
}

func TestDeleteRule(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCommissionService(repos)
	ctx := context.Background()

	rule, err := svc.CreateRule(ctx, &CreateRuleRequest{
		Name:       "short lived",
		RuleType:   constant.CommissionTypePercentage,
		Percentage: floatPtr(5),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRule(ctx, rule.Id))

	_, err = svc.GetRule(ctx, rule.Id)
	assert.Equal(t, errcode.ErrRuleNotFound, err)

	err = svc.DeleteRule(ctx, rule.Id)
	assert.Equal(t, errcode.ErrRuleNotFound, err)
}
