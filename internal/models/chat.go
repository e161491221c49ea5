// internal/models/chat.go
package models

import "github.com/google/uuid"

// ChatSession tracks one conversation between a user and an advisory expert.
// MessageCount drives which scripted reply the expert sends next.
type ChatSession struct {
	BaseModel
	ExpertID     string    `json:"expert_id" gorm:"size:50;not null;index"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	MessageCount int       `json:"message_count" gorm:"default:0"`

	Messages []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:SessionID"`
}

type ChatMessage struct {
	BaseModel
	SessionID uuid.UUID  `json:"session_id" gorm:"type:uuid;not null;index"`
	Sender    ChatSender `json:"sender" gorm:"type:varchar(10);not null"`
	Body      string     `json:"body" gorm:"type:text;not null"`
}
