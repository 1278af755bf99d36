//go:generate mockery --name SpeechService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/base64"
	"errors"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpeechService は保存済みメッセージの音声化を担当します
type SpeechService interface {
	GetSpeech(ctx context.Context, sessionID, messageID uuid.UUID) (*model.SpeechResponse, error)
}

type speechService struct {
	db           *gorm.DB
	setupService SetupService
	messageRepo  repository.MessageRepository
	synthesizer  SpeechSynthesizer
}

func NewSpeechService(db *gorm.DB, setupService SetupService, messageRepo repository.MessageRepository, synthesizer SpeechSynthesizer) SpeechService {
	return &speechService{
		db:           db,
		setupService: setupService,
		messageRepo:  messageRepo,
		synthesizer:  synthesizer,
	}
}

func (s *speechService) GetSpeech(ctx context.Context, sessionID, messageID uuid.UUID) (*model.SpeechResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID, "message_id", messageID)

	_, learner, err := s.setupService.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	message, err := s.messageRepo.FindByID(ctx, s.db, messageID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("MESSAGE_NOT_FOUND", "メッセージが見つかりません。", "message_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "メッセージの取得に失敗しました。", "", err)
	}

	ctx, cancel := context.WithTimeout(ctx, adapterTimeout)
	defer cancel()

	// 合成失敗はリクエスト失敗にせず、audio_data=nullのまま返す
	audioData, err := s.synthesizer.Synthesize(ctx, message.Content, learner.TargetLanguage)
	if err != nil {
		logger.Error("Speech synthesis failed, returning null audio", "error", err)
		return &model.SpeechResponse{AudioData: nil}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(audioData)
	logger.Info("Speech synthesized", "bytes", len(audioData))
	return &model.SpeechResponse{AudioData: &encoded}, nil
}
