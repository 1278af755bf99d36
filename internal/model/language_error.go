// internal/model/language_error.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// エラー分類。外部の分類器が返す値なので実際には開放的だが、
// レビュー集計ではこの3種のみを特別扱いする。
const (
	ErrorTypeGrammar    = "grammar"
	ErrorTypeVocabulary = "vocabulary"
	ErrorTypeSyntax     = "syntax"
)

// LanguageError は学習者メッセージから検出された言語エラーを表します。
// 直接クエリできるよう learner/conversation への参照を非正規化して持ちます。
type LanguageError struct {
	ErrorID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"error_id"`
	LearnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	MessageID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ErrorText      string    `gorm:"type:text;not null" json:"error_text"`
	Correction     string    `gorm:"type:text;not null" json:"correction"`
	ErrorType      string    `gorm:"type:varchar(50);not null" json:"error_type"`
	CreatedAt      time.Time `json:"created_at"`
}

func (LanguageError) TableName() string {
	return "language_errors"
}

// LanguageErrorEntry はAPIレスポンスに載せるエラー1件分のDTO
type LanguageErrorEntry struct {
	ErrorText  string `json:"error_text"`
	Correction string `json:"correction"`
	ErrorType  string `json:"error_type"`
}
