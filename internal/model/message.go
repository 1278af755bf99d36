// internal/model/message.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Message は会話内の1ターン分の発話を表します。
// タイムスタンプは会話内で単調非減少であり、表示順を定義します。
type Message struct {
	MessageID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"message_id"`
	ConversationID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	IsUser            bool      `gorm:"not null;default:false" json:"is_user"` // true=学習者, false=アシスタント
	Content           string    `gorm:"type:text;not null" json:"content"`
	TranslatedContent *string   `gorm:"type:text" json:"translated_content,omitempty"` // アシスタント発話の翻訳のみ
	Timestamp         time.Time `gorm:"not null;index" json:"timestamp"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest はメッセージ送信リクエストのDTO
type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// MessageResponse はクライアントに返すメッセージ情報のDTO
type MessageResponse struct {
	ID         uuid.UUID            `json:"id"`
	Content    string               `json:"content"`
	Translated *string              `json:"translated"`
	IsUser     bool                 `json:"is_user"`
	Timestamp  time.Time            `json:"timestamp"`
	Errors     []LanguageErrorEntry `json:"errors,omitempty"` // 学習者メッセージのみ
}

// SendMessageResponse はメッセージ交換レスポンスのDTO
type SendMessageResponse struct {
	UserMessage MessageResponse `json:"user_message"`
	BotMessage  MessageResponse `json:"bot_message"`
}

// NewMessageResponse はエンティティからレスポンスDTOを組み立てます
func NewMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:         m.MessageID,
		Content:    m.Content,
		Translated: m.TranslatedContent,
		IsUser:     m.IsUser,
		Timestamp:  m.Timestamp,
	}
}
