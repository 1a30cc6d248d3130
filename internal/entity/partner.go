package entity

// PartnerContactInfo represents partner contact details stored as JSON
type PartnerContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Partner represents a coworking-space partner (host business)
type Partner struct {
	Id                 string   `json:"id" gorm:"column:id;primaryKey"`
	UserId             string   `json:"user_id" gorm:"column:user_id;index"`
	BusinessName       string   `json:"business_name" gorm:"column:business_name"`
	BusinessType       string   `json:"business_type" gorm:"column:business_type"`
	Status             string   `json:"status" gorm:"column:status;index"`
	VerificationStatus string   `json:"verification_status" gorm:"column:verification_status"`
	ContactInfo        *string  `json:"contact_info" gorm:"column:contact_info;type:json"`
	CommissionOverride *float64 `json:"commission_override,omitempty" gorm:"column:commission_override"`
	StatusReason       *string  `json:"status_reason,omitempty" gorm:"column:status_reason"`
	CreatedAt          int64    `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          int64    `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for Partner
func (Partner) TableName() string {
	return "partners"
}
