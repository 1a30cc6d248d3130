package entity

// Conversation represents the single conversation attached to a booking.
// Each booking has at most one conversation; the two participant slots are the
// booking's user and partner.
type Conversation struct {
	Id           int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	BookingId    string `json:"booking_id" gorm:"column:booking_id;uniqueIndex"`
	UserId       string `json:"user_id" gorm:"column:user_id;index"`
	PartnerId    string `json:"partner_id" gorm:"column:partner_id;index"`
	IsActive     bool   `json:"is_active" gorm:"column:is_active;default:true"`
	LastActivity int64  `json:"last_activity" gorm:"column:last_activity"`
	CreatedAt    int64  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    int64  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for Conversation
func (Conversation) TableName() string {
	return "conversations"
}

// HasParticipant reports whether callerId is one of the two parties.
// This is the whole access-control check for conversation-scoped operations.
func (c *Conversation) HasParticipant(callerId string) bool {
	return callerId == c.UserId || callerId == c.PartnerId
}

// OtherParty returns the participant opposite to callerId.
// Returns "" if callerId is not a participant.
func (c *Conversation) OtherParty(callerId string) string {
	switch callerId {
	case c.UserId:
		return c.PartnerId
	case c.PartnerId:
		return c.UserId
	default:
		return ""
	}
}

// ConversationInfo represents conversation info for API response
type ConversationInfo struct {
	Id           int64        `json:"id"`
	BookingId    string       `json:"booking_id"`
	UserId       string       `json:"user_id"`
	PartnerId    string       `json:"partner_id"`
	IsActive     bool         `json:"is_active"`
	LastActivity int64        `json:"last_activity"`
	LastMessage  *MessageInfo `json:"last_message,omitempty"`
	UnreadCount  int64        `json:"unread_count"`
	CreatedAt    int64        `json:"created_at"`
}

// ToConversationInfo converts Conversation to ConversationInfo
func (c *Conversation) ToConversationInfo() *ConversationInfo {
	return &ConversationInfo{
		Id:           c.Id,
		BookingId:    c.BookingId,
		UserId:       c.UserId,
		PartnerId:    c.PartnerId,
		IsActive:     c.IsActive,
		LastActivity: c.LastActivity,
		CreatedAt:    c.CreatedAt,
	}
}
