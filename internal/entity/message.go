package entity

import "github.com/uniqpixl/cowors-backend-admin/pkg/constant"

// Message represents a message within a conversation. Messages are append-only:
// the only mutation ever applied is the sent -> read status transition.
type Message struct {
	Id             int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ConversationId int64   `json:"conversation_id" gorm:"column:conversation_id;index:idx_conv_status"`
	SenderId       string  `json:"sender_id" gorm:"column:sender_id"`
	SenderType     string  `json:"sender_type" gorm:"column:sender_type"`
	Content        string  `json:"content" gorm:"column:content;type:text"`
	MessageType    string  `json:"message_type" gorm:"column:message_type"`
	Status         string  `json:"status" gorm:"column:status;index:idx_conv_status"`
	ActionType     *string `json:"action_type,omitempty" gorm:"column:action_type"`
	ReadAt         *int64  `json:"read_at,omitempty" gorm:"column:read_at"`
	CreatedAt      int64   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      int64   `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}

// IsRead reports whether the message has reached its terminal status
func (m *Message) IsRead() bool {
	return m.Status == constant.MsgStatusRead
}

// MessageInfo represents message info for API response
type MessageInfo struct {
	Id             int64   `json:"id"`
	ConversationId int64   `json:"conversation_id"`
	SenderId       string  `json:"sender_id"`
	SenderType     string  `json:"sender_type"`
	Content        string  `json:"content"`
	MessageType    string  `json:"message_type"`
	Status         string  `json:"status"`
	ActionType     *string `json:"action_type,omitempty"`
	ReadAt         *int64  `json:"read_at,omitempty"`
	CreatedAt      int64   `json:"created_at"`
}

// ToMessageInfo converts Message to MessageInfo
func (m *Message) ToMessageInfo() *MessageInfo {
	return &MessageInfo{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		SenderId:       m.SenderId,
		SenderType:     m.SenderType,
		Content:        m.Content,
		MessageType:    m.MessageType,
		Status:         m.Status,
		ActionType:     m.ActionType,
		ReadAt:         m.ReadAt,
		CreatedAt:      m.CreatedAt,
	}
}
