package entity

import "github.com/uniqpixl/cowors-backend-admin/pkg/constant"

// CommissionRule represents a commission rule. Rules may be global
// (PartnerId nil) or scoped to a single partner; the highest-priority active
// matching rule wins.
type CommissionRule struct {
	Id          int64    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string   `json:"name" gorm:"column:name"`
	Description *string  `json:"description,omitempty" gorm:"column:description"`
	RuleType    string   `json:"rule_type" gorm:"column:rule_type"`
	PartnerId   *string  `json:"partner_id,omitempty" gorm:"column:partner_id;index"`
	Percentage  *float64 `json:"percentage,omitempty" gorm:"column:percentage"`
	FixedAmount *int64   `json:"fixed_amount,omitempty" gorm:"column:fixed_amount"`
	Priority    int      `json:"priority" gorm:"column:priority"`
	IsActive    bool     `json:"is_active" gorm:"column:is_active;index"`
	CreatedAt   int64    `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   int64    `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for CommissionRule
func (CommissionRule) TableName() string {
	return "commission_rules"
}

// AppliesTo reports whether the rule matches the given partner
func (r *CommissionRule) AppliesTo(partnerId string) bool {
	if !r.IsActive {
		return false
	}
	return r.PartnerId == nil || *r.PartnerId == partnerId
}

// CommissionFor computes the commission amount for a booking amount in minor units
func (r *CommissionRule) CommissionFor(amount int64) int64 {
	switch r.RuleType {
	case constant.CommissionTypeFixed:
		if r.FixedAmount != nil {
			return *r.FixedAmount
		}
		return 0
	default:
		if r.Percentage != nil {
			return int64(float64(amount) * *r.Percentage / 100.0)
		}
		return 0
	}
}
