package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
)

func TestCreatePartner(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPartnerService(repos)
	ctx := context.Background()

	p, err := svc.CreatePartner(ctx, &CreatePartnerRequest{
		UserId:       "user_1",
		BusinessName: "Workloft Indiranagar",
		ContactInfo:  &entity.PartnerContactInfo{Email: "hello@workloft.in"},
	})
	require.NoError(t, err)
	assert.Contains(t, p.Id, "ptr_")
	assert.Equal(t, constant.PartnerStatusPending, p.Status)
	assert.Equal(t, constant.VerificationPending, p.VerificationStatus)
	assert.Equal(t, constant.PartnerTypeSpace, p.BusinessType)
	require.NotNil(t, p.ContactInfo)
	assert.Contains(t, *p.ContactInfo, "hello@workloft.in")

	_, err = svc.CreatePartner(ctx, &CreatePartnerRequest{UserId: "user_1"})
	assert.Equal(t, errcode.ErrInvalidParam, err)
}

func TestPartnerStatusMachine(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPartnerService(repos)
	ctx := context.Background()

	p, err := svc.CreatePartner(ctx, &CreatePartnerRequest{
		UserId:       "user_1",
		BusinessName: "Deskhive",
	})
	require.NoError(t, err)

	// Approval marks verification as well
	p, err = svc.SetPartnerStatus(ctx, p.Id, constant.PartnerStatusActive, "")
	require.NoError(t, err)
	assert.Equal(t, constant.PartnerStatusActive, p.Status)
	assert.Equal(t, constant.VerificationVerified, p.VerificationStatus)

	// Active cannot go back to pending or rejected
	_, err = svc.SetPartnerStatus(ctx, p.Id, constant.PartnerStatusPending, "")
	assert.Equal(t, errcode.ErrInvalidTransition, err)
	_, err = svc.SetPartnerStatus(ctx, p.Id, constant.PartnerStatusRejected, "")
	assert.Equal(t, errcode.ErrInvalidTransition, err)

	p, err = svc.SetPartnerStatus(ctx, p.Id, constant.PartnerStatusSuspended, "payment disputes")
	require.NoError(t, err)
	assert.Equal(t, constant.PartnerStatusSuspended, p.Status)
	require.NotNil(t, p.StatusReason)
	assert.Equal(t, "payment disputes", *p.StatusReason)

	p, err = svc.SetPartnerStatus(ctx, p.Id, constant.PartnerStatusActive, "resolved")
	require.NoError(t, err)
	assert.Equal(t, constant.PartnerStatusActive, p.Status)
}

func TestPartnerRejection(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPartnerService(repos)
	ctx := context.Background()

	p, err := svc.CreatePartner(ctx, &CreatePartnerRequest{
		UserId:       "user_2",
		BusinessName: "Popup Cowork",
	})
	require.NoError(t, err)

	p, err = svc.SetPartnerStatus(ctx, p.Id, constant.PartnerStatusRejected, "incomplete documents")
	require.NoError(t, err)
	assert.Equal(t, constant.PartnerStatusRejected, p.Status)
	assert.Equal(t, constant.VerificationRejected, p.VerificationStatus)

	// Rejected is terminal
	_, err = svc.SetPartnerStatus(ctx, p.Id, constant.PartnerStatusActive, "")
	assert.Equal(t, errcode.ErrInvalidTransition, err)
}

func TestListPartnersFilterAndSearch(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPartnerService(repos)
	ctx := context.Background()

	a, err := svc.CreatePartner(ctx, &CreatePartnerRequest{UserId: "user_1", BusinessName: "Workloft HSR"})
	require.NoError(t, err)
	_, err = svc.CreatePartner(ctx, &CreatePartnerRequest{UserId: "user_2", BusinessName: "Deskhive Koramangala"})
	require.NoError(t, err)

	_, err = svc.SetPartnerStatus(ctx, a.Id, constant.PartnerStatusActive, "")
	require.NoError(t, err)

	active, total, err := svc.ListPartners(ctx, &repository.PartnerListFilter{Status: constant.PartnerStatusActive}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, a.Id, active[0].Id)

	found, total, err := svc.ListPartners(ctx, &repository.PartnerListFilter{Search: "Deskhive"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.Equal(t, "Deskhive Koramangala", found[0].BusinessName)
}

func TestUpdatePartner(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPartnerService(repos)
	ctx := context.Background()

	p, err := svc.CreatePartner(ctx, &CreatePartnerRequest{UserId: "user_1", BusinessName: "Old Name"})
	require.NoError(t, err)

	name := "New Name"
	override := 7.5
	p, err = svc.UpdatePartner(ctx, p.Id, &UpdatePartnerRequest{
		BusinessName:       &name,
		CommissionOverride: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", p.BusinessName)
	require.NotNil(t, p.CommissionOverride)
	assert.Equal(t, 7.5, *p.CommissionOverride)

	_, err = svc.UpdatePartner(ctx, "ptr_missing", &UpdatePartnerRequest{})
	assert.Equal(t, errcode.ErrPartnerNotFound, err)
}
