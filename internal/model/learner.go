// internal/model/learner.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Learner は学習者のプロフィール（母語・学習言語・習熟度）を表します。
// セットアップ時に作成され、以降は変更されません。
type Learner struct {
	LearnerID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"learner_id"`
	NativeLanguage   string    `gorm:"type:varchar(50);not null" json:"native_language"`
	TargetLanguage   string    `gorm:"type:varchar(50);not null" json:"target_language"`
	ProficiencyLevel string    `gorm:"type:varchar(20);not null" json:"proficiency_level"`
	CreatedAt        time.Time `json:"created_at"`

	// 関連 (Preload用)
	Conversations []Conversation `gorm:"foreignKey:LearnerID" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

// SetupRequest はセットアップフォームの内容 (DTO)
type SetupRequest struct {
	NativeLanguage   string `json:"native_language" validate:"required"`
	TargetLanguage   string `json:"target_language" validate:"required,nefield=NativeLanguage"`
	ProficiencyLevel string `json:"proficiency_level" validate:"required"`
}
