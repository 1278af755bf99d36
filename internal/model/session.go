// internal/model/session.go
package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session はブラウザセッションと学習者・アクティブ会話の紐付けを表します。
// conversation_id は会話開始時に更新される唯一の可変カラムです。
type Session struct {
	SessionID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"session_id"`
	LearnerID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"learner_id"`
	ConversationID *uuid.UUID `gorm:"type:uuid" json:"conversation_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

type ContextKey string

const (
	SessionIDKey ContextKey = "sessionID"
)

// SessionClaims はセッショントークン(JWT)のペイロード。
// Subject にセッションIDを入れる。
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionCookieName はブラウザフローで使うセッショントークンのCookie名
const SessionCookieName = "session_token"
