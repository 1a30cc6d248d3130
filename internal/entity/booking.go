package entity

import "github.com/uniqpixl/cowors-backend-admin/pkg/constant"

// Booking represents a space booking between a user and a partner
type Booking struct {
	Id           string  `json:"id" gorm:"column:id;primaryKey"`
	UserId       string  `json:"user_id" gorm:"column:user_id;index"`
	PartnerId    string  `json:"partner_id" gorm:"column:partner_id;index"`
	SpaceName    string  `json:"space_name" gorm:"column:space_name"`
	StartAt      int64   `json:"start_at" gorm:"column:start_at"`
	EndAt        int64   `json:"end_at" gorm:"column:end_at"`
	Amount       int64   `json:"amount" gorm:"column:amount"` // minor currency units
	Currency     string  `json:"currency" gorm:"column:currency"`
	Status       string  `json:"status" gorm:"column:status;index"`
	CancelReason *string `json:"cancel_reason,omitempty" gorm:"column:cancel_reason"`
	CreatedAt    int64   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    int64   `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// CanTransitionTo reports whether the booking status machine allows moving to target.
// pending -> confirmed | cancelled; confirmed -> completed | cancelled.
// completed and cancelled are terminal.
func (b *Booking) CanTransitionTo(target string) bool {
	switch b.Status {
	case constant.BookingStatusPending:
		return target == constant.BookingStatusConfirmed || target == constant.BookingStatusCancelled
	case constant.BookingStatusConfirmed:
		return target == constant.BookingStatusCompleted || target == constant.BookingStatusCancelled
	default:
		return false
	}
}
