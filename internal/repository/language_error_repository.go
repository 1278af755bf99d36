//go:generate mockery --name LanguageErrorRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LanguageErrorRepository interface {
	Create(ctx context.Context, tx *gorm.DB, languageError *model.LanguageError) error
	// FindByConversation は学習者の会話に紐づく全エラーを作成順で返します
	FindByConversation(ctx context.Context, db *gorm.DB, learnerID, conversationID uuid.UUID) ([]*model.LanguageError, error)
	FindByMessage(ctx context.Context, db *gorm.DB, messageID uuid.UUID) ([]*model.LanguageError, error)
}

type gormLanguageErrorRepository struct{}

func NewGormLanguageErrorRepository() LanguageErrorRepository {
	return &gormLanguageErrorRepository{}
}

func (r *gormLanguageErrorRepository) Create(ctx context.Context, tx *gorm.DB, languageError *model.LanguageError) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(languageError)
	if result.Error != nil {
		logger.Error("Error creating language error in DB",
			"error", result.Error,
			"message_id", languageError.MessageID.String(),
			"error_type", languageError.ErrorType,
		)
		return fmt.Errorf("gormLanguageErrorRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLanguageErrorRepository) FindByConversation(ctx context.Context, db *gorm.DB, learnerID, conversationID uuid.UUID) ([]*model.LanguageError, error) {
	logger := middleware.GetLogger(ctx)
	var languageErrors []*model.LanguageError
	result := db.WithContext(ctx).
		Where("learner_id = ? AND conversation_id = ?", learnerID, conversationID).
		Order("created_at ASC").
		Find(&languageErrors)
	if result.Error != nil {
		logger.Error("Error finding language errors by conversation in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"conversation_id", conversationID.String(),
		)
		return nil, fmt.Errorf("gormLanguageErrorRepository.FindByConversation: %w", result.Error)
	}
	return languageErrors, nil
}

func (r *gormLanguageErrorRepository) FindByMessage(ctx context.Context, db *gorm.DB, messageID uuid.UUID) ([]*model.LanguageError, error) {
	logger := middleware.GetLogger(ctx)
	var languageErrors []*model.LanguageError
	result := db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at ASC").
		Find(&languageErrors)
	if result.Error != nil {
		logger.Error("Error finding language errors by message in DB",
			"error", result.Error,
			"message_id", messageID.String(),
		)
		return nil, fmt.Errorf("gormLanguageErrorRepository.FindByMessage: %w", result.Error)
	}
	return languageErrors, nil
}
