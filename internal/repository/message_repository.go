//go:generate mockery --name MessageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, tx *gorm.DB, message *model.Message) error
	FindByID(ctx context.Context, db *gorm.DB, messageID uuid.UUID) (*model.Message, error)
	// FindByConversation は会話内の全メッセージをタイムスタンプ昇順で返します
	FindByConversation(ctx context.Context, db *gorm.DB, conversationID uuid.UUID) ([]*model.Message, error)
}

type gormMessageRepository struct{}

func NewGormMessageRepository() MessageRepository {
	return &gormMessageRepository{}
}

func (r *gormMessageRepository) Create(ctx context.Context, tx *gorm.DB, message *model.Message) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(message)
	if result.Error != nil {
		logger.Error("Error creating message in DB",
			"error", result.Error,
			"conversation_id", message.ConversationID.String(),
			"is_user", message.IsUser,
		)
		return fmt.Errorf("gormMessageRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormMessageRepository) FindByID(ctx context.Context, db *gorm.DB, messageID uuid.UUID) (*model.Message, error) {
	logger := middleware.GetLogger(ctx)
	var message model.Message
	result := db.WithContext(ctx).Where("message_id = ?", messageID).First(&message)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding message by ID in DB",
			"error", result.Error,
			"message_id", messageID.String(),
		)
		return nil, fmt.Errorf("gormMessageRepository.FindByID: %w", result.Error)
	}
	return &message, nil
}

func (r *gormMessageRepository) FindByConversation(ctx context.Context, db *gorm.DB, conversationID uuid.UUID) ([]*model.Message, error) {
	logger := middleware.GetLogger(ctx)
	var messages []*model.Message
	result := db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("timestamp ASC").
		Find(&messages)
	if result.Error != nil {
		logger.Error("Error finding messages by conversation in DB",
			"error", result.Error,
			"conversation_id", conversationID.String(),
		)
		return nil, fmt.Errorf("gormMessageRepository.FindByConversation: %w", result.Error)
	}
	return messages, nil
}
