package service

import (
	"context"
	"encoding/json"

	"github.com/mbeoliero/kit/log"
	"github.com/uniqpixl/cowors-backend-admin/internal/entity"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
	"github.com/uniqpixl/cowors-backend-admin/pkg/idgen"
)

// PartnerService handles partner management
type PartnerService struct {
	partnerRepo *repository.PartnerRepo
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(repos *repository.Repositories) *PartnerService {
	return &PartnerService{partnerRepo: repos.Partner}
}

// CreatePartnerRequest represents create partner request
type CreatePartnerRequest struct {
	UserId             string                     `json:"user_id"`
	BusinessName       string                     `json:"business_name"`
	BusinessType       string                     `json:"business_type"`
	ContactInfo        *entity.PartnerContactInfo `json:"contact_info,omitempty"`
	CommissionOverride *float64                   `json:"commission_override,omitempty"`
}

// CreatePartner registers a new partner in pending status
func (s *PartnerService) CreatePartner(ctx context.Context, req *CreatePartnerRequest) (*entity.Partner, error) {
	if req.UserId == "" || req.BusinessName == "" {
		return nil, errcode.ErrInvalidParam
	}

	businessType := req.BusinessType
	if businessType == "" {
		businessType = constant.PartnerTypeSpace
	}

	id, err := idgen.PrefixedID(idgen.PrefixPartner)
	if err != nil {
		log.CtxError(ctx, "generate partner id failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	p := &entity.Partner{
		Id:                 id,
		UserId:             req.UserId,
		BusinessName:       req.BusinessName,
		BusinessType:       businessType,
		Status:             constant.PartnerStatusPending,
		VerificationStatus: constant.VerificationPending,
		CommissionOverride: req.CommissionOverride,
	}

	if req.ContactInfo != nil {
		data, err := json.Marshal(req.ContactInfo)
		if err != nil {
			return nil, errcode.ErrInvalidParam.Wrap(err)
		}
		contact := string(data)
		p.ContactInfo = &contact
	}

	if err := s.partnerRepo.Create(ctx, p); err != nil {
		log.CtxError(ctx, "create partner failed: %v", err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "partner created: id=%s, business_name=%s", p.Id, p.BusinessName)
	return p, nil
}

// GetPartner gets a partner by id
func (s *PartnerService) GetPartner(ctx context.Context, id string) (*entity.Partner, error) {
	p, err := s.partnerRepo.GetById(ctx, id)
	if err != nil {
		log.CtxError(ctx, "get partner failed: id=%s, error=%v", id, err)
		return nil, errcode.ErrInternalServer
	}
	if p == nil {
		return nil, errcode.ErrPartnerNotFound
	}
	return p, nil
}

// ListPartners returns one page of partners matching the filter
func (s *PartnerService) ListPartners(ctx context.Context, filter *repository.PartnerListFilter, page, limit int) ([]*entity.Partner, int64, error) {
	partners, total, err := s.partnerRepo.List(ctx, filter, page, limit)
	if err != nil {
		log.CtxError(ctx, "list partners failed: %v", err)
		return nil, 0, errcode.ErrInternalServer
	}
	return partners, total, nil
}

// UpdatePartnerRequest represents update partner request
type UpdatePartnerRequest struct {
	BusinessName       *string                    `json:"business_name,omitempty"`
	BusinessType       *string                    `json:"business_type,omitempty"`
	ContactInfo        *entity.PartnerContactInfo `json:"contact_info,omitempty"`
	CommissionOverride *float64                   `json:"commission_override,omitempty"`
}

// UpdatePartner updates partner profile fields
func (s *PartnerService) UpdatePartner(ctx context.Context, id string, req *UpdatePartnerRequest) (*entity.Partner, error) {
	if _, err := s.GetPartner(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.BusinessName != nil {
		updates["business_name"] = *req.BusinessName
	}
	if req.BusinessType != nil {
		updates["business_type"] = *req.BusinessType
	}
	if req.ContactInfo != nil {
		data, err := json.Marshal(req.ContactInfo)
		if err != nil {
			return nil, errcode.ErrInvalidParam.Wrap(err)
		}
		updates["contact_info"] = string(data)
	}
	if req.CommissionOverride != nil {
		updates["commission_override"] = *req.CommissionOverride
	}

	if len(updates) > 0 {
		if err := s.partnerRepo.Update(ctx, id, updates); err != nil {
			log.CtxError(ctx, "update partner failed: id=%s, error=%v", id, err)
			return nil, errcode.ErrInternalServer
		}
	}

	return s.GetPartner(ctx, id)
}

// SetPartnerStatus moves a partner to the given status with an optional reason.
// approve: pending -> active (also marks verification verified)
// reject: pending -> rejected; suspend: active -> suspended;
// reactivate: suspended -> active.
func (s *PartnerService) SetPartnerStatus(ctx context.Context, id, target string, reason string) (*entity.Partner, error) {
	p, err := s.GetPartner(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := map[string][]string{
		constant.PartnerStatusPending:   {constant.PartnerStatusActive, constant.PartnerStatusRejected},
		constant.PartnerStatusActive:    {constant.PartnerStatusSuspended},
		constant.PartnerStatusSuspended: {constant.PartnerStatusActive},
	}

	ok := false
	for _, t := range allowed[p.Status] {
		if t == target {
			ok = true
			break
		}
	}
	if !ok {
		return nil, errcode.ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": target}
	if reason != "" {
		updates["status_reason"] = reason
	}
	if p.Status == constant.PartnerStatusPending && target == constant.PartnerStatusActive {
		updates["verification_status"] = constant.VerificationVerified
	}
	if target == constant.PartnerStatusRejected {
		updates["verification_status"] = constant.VerificationRejected
	}

	if err := s.partnerRepo.Update(ctx, id, updates); err != nil {
		log.CtxError(ctx, "set partner status failed: id=%s, target=%s, error=%v", id, target, err)
		return nil, errcode.ErrInternalServer
	}

	log.CtxInfo(ctx, "partner status changed: id=%s, from=%s, to=%s", id, p.Status, target)
	return s.GetPartner(ctx, id)
}
