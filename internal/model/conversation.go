// internal/model/conversation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Conversation は1回の「会話を始める」操作に対応するシナリオ付き会話です
type Conversation struct {
	ConversationID uuid.UUID `gorm:"type:uuid;primaryKey" json:"conversation_id"`
	LearnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Scenario       string    `gorm:"type:varchar(100);not null" json:"scenario"`
	CreatedAt      time.Time `json:"created_at"`

	// 関連 (Preload用)
	Messages []Message `gorm:"foreignKey:ConversationID" json:"-"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// StartConversationRequest は会話開始リクエストのDTO
type StartConversationRequest struct {
	Scenario string `json:"scenario" validate:"required"`
}

// StartConversationResponse は会話開始レスポンスのDTO
type StartConversationResponse struct {
	ConversationID uuid.UUID       `json:"conversation_id"`
	Message        MessageResponse `json:"message"`
}
