//go:generate mockery --name ConversationRepository --output ./mocks --outpkg mocks --case=underscore
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

type ConversationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, conversation *model.Conversation) error
	FindByID(ctx context.Context, db *gorm.DB, conversationID uuid.UUID) (*model.Conversation, error)
}

type gormConversationRepository struct{}

func NewGormConversationRepository() ConversationRepository {
	return &gormConversationRepository{}
}

func (r *gormConversationRepository) Create(ctx context.Context, tx *gorm.DB, conversation *model.Conversation) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(conversation)
	if result.Error != nil {
		logger.Error("Error creating conversation in DB",
			"error", result.Error,
			"learner_id", conversation.LearnerID.String(),
			"scenario", conversation.Scenario,
		)
		return fmt.Errorf("gormConversationRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormConversationRepository) FindByID(ctx context.Context, db *gorm.DB, conversationID uuid.UUID) (*model.Conversation, error) {
	logger := middleware.GetLogger(ctx)
	var conversation model.Conversation
	result := db.WithContext(ctx).Where("conversation_id = ?", conversationID).First(&conversation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding conversation by ID in DB",
			"error", result.Error,
			"conversation_id", conversationID.String(),
		)
		return nil, fmt.Errorf("gormConversationRepository.FindByID: %w", result.Error)
	}
	return &conversation, nil
}
