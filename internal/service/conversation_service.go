//go:generate mockery --name ConversationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationService は会話の開始・メッセージ交換・履歴取得を担当します
type ConversationService interface {
	StartConversation(ctx context.Context, sessionID uuid.UUID, scenario string) (*model.StartConversationResponse, error)
	SendMessage(ctx context.Context, sessionID uuid.UUID, message string) (*model.SendMessageResponse, error)
	GetHistory(ctx context.Context, sessionID uuid.UUID) (*model.HistoryResponse, error)
}

type conversationService struct {
	db               *gorm.DB
	setupService     SetupService
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	langErrorRepo    repository.LanguageErrorRepository
	sessionRepo      repository.SessionRepository
	generator        ResponseGenerator
	translator       Translator
	detector         ErrorDetector
}

func NewConversationService(
	db *gorm.DB,
	setupService SetupService,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	langErrorRepo repository.LanguageErrorRepository,
	sessionRepo repository.SessionRepository,
	generator ResponseGenerator,
	translator Translator,
	detector ErrorDetector,
) ConversationService {
	return &conversationService{
		db:               db,
		setupService:     setupService,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		langErrorRepo:    langErrorRepo,
		sessionRepo:      sessionRepo,
		generator:        generator,
		translator:       translator,
		detector:         detector,
	}
}

func (s *conversationService) StartConversation(ctx context.Context, sessionID uuid.UUID, scenario string) (*model.StartConversationResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID)

	session, learner, err := s.setupService.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !model.IsValidScenario(scenario) {
		return nil, model.NewAppError("INVALID_SCENARIO", "未定義のシナリオが指定されました。", "scenario", model.ErrInvalidInput)
	}

	conversation := &model.Conversation{
		ConversationID: uuid.New(),
		LearnerID:      learner.LearnerID,
		Scenario:       scenario,
	}
	if err := s.conversationRepo.Create(ctx, s.db, conversation); err != nil {
		logger.Error("Failed to create conversation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "会話の作成に失敗しました。", "", err)
	}

	// 最初の挨拶を生成して母語へ翻訳する（失敗はプレースホルダに縮退する）
	// アダプタ呼び出しはトランザクションの外で行う
	greeting := s.generator.Generate(ctx, nil, scenario, learner)
	translated := s.translator.Translate(ctx, greeting, learner.TargetLanguage, learner.NativeLanguage)

	botMessage := &model.Message{
		MessageID:         uuid.New(),
		ConversationID:    conversation.ConversationID,
		IsUser:            false,
		Content:           greeting,
		TranslatedContent: &translated,
		Timestamp:         time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.messageRepo.Create(ctx, tx, botMessage); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メッセージの保存に失敗しました。", "", err)
		}
		// セッションのアクティブ会話を付け替える
		if err := s.sessionRepo.UpdateConversation(ctx, tx, session.SessionID, conversation.ConversationID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの更新に失敗しました。", "", err)
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Conversation started",
		"conversation_id", conversation.ConversationID.String(),
		"scenario", scenario,
	)

	return &model.StartConversationResponse{
		ConversationID: conversation.ConversationID,
		Message:        model.NewMessageResponse(botMessage),
	}, nil
}

func (s *conversationService) SendMessage(ctx context.Context, sessionID uuid.UUID, message string) (*model.SendMessageResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID)

	session, learner, err := s.setupService.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ConversationID == nil {
		return nil, model.NewAppError("NO_ACTIVE_CONVERSATION", "アクティブな会話がありません。先に会話を開始してください。", "", model.ErrUnauthorized)
	}

	conversation, err := s.conversationRepo.FindByID(ctx, s.db, *session.ConversationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CONVERSATION_NOT_FOUND", "会話が見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "会話の取得に失敗しました。", "", err)
	}

	// 1. 学習者メッセージを保存（翻訳は保存しない）
	userMessage := &model.Message{
		MessageID:      uuid.New(),
		ConversationID: conversation.ConversationID,
		IsUser:         true,
		Content:        message,
		Timestamp:      time.Now(),
	}
	if err := s.messageRepo.Create(ctx, s.db, userMessage); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "メッセージの保存に失敗しました。", "", err)
	}

	// 2. 言語エラーを検出して保存（検出失敗で会話を止めない）
	entries := s.detector.Detect(ctx, message, learner.TargetLanguage, learner.ProficiencyLevel)
	for _, entry := range entries {
		languageError := &model.LanguageError{
			ErrorID:        uuid.New(),
			LearnerID:      learner.LearnerID,
			ConversationID: conversation.ConversationID,
			MessageID:      userMessage.MessageID,
			ErrorText:      entry.ErrorText,
			Correction:     entry.Correction,
			ErrorType:      entry.ErrorType,
		}
		if err := s.langErrorRepo.Create(ctx, s.db, languageError); err != nil {
			// 保存に失敗したエラーはレスポンスにも載せない方が一貫するが、
			// ここでは検出結果を優先してログのみに留める
			logger.Error("Failed to persist language error", "error", err)
		}
	}

	// 3. 返答を生成して母語へ翻訳（失敗はプレースホルダに縮退する）
	reply := s.generator.Generate(ctx, &message, conversation.Scenario, learner)
	translated := s.translator.Translate(ctx, reply, learner.TargetLanguage, learner.NativeLanguage)

	// 4. アシスタントの返答を保存
	botMessage := &model.Message{
		MessageID:         uuid.New(),
		ConversationID:    conversation.ConversationID,
		IsUser:            false,
		Content:           reply,
		TranslatedContent: &translated,
		Timestamp:         time.Now(),
	}
	if err := s.messageRepo.Create(ctx, s.db, botMessage); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "メッセージの保存に失敗しました。", "", err)
	}

	userResponse := model.NewMessageResponse(userMessage)
	userResponse.Errors = entries

	logger.Info("Message exchange completed",
		"conversation_id", conversation.ConversationID.String(),
		"detected_errors", len(entries),
	)

	return &model.SendMessageResponse{
		UserMessage: userResponse,
		BotMessage:  model.NewMessageResponse(botMessage),
	}, nil
}

func (s *conversationService) GetHistory(ctx context.Context, sessionID uuid.UUID) (*model.HistoryResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID)

	session, _, err := s.setupService.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ConversationID == nil {
		return nil, model.NewAppError("NO_ACTIVE_CONVERSATION", "アクティブな会話がありません。", "", model.ErrUnauthorized)
	}

	messages, err := s.messageRepo.FindByConversation(ctx, s.db, *session.ConversationID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "履歴の取得に失敗しました。", "", err)
	}

	responses := make([]model.MessageResponse, 0, len(messages))
	for _, m := range messages {
		response := model.NewMessageResponse(m)
		// 学習者メッセージにはエラーを添付する
		if m.IsUser {
			languageErrors, err := s.langErrorRepo.FindByMessage(ctx, s.db, m.MessageID)
			if err != nil {
				return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "エラー情報の取得に失敗しました。", "", err)
			}
			for _, le := range languageErrors {
				response.Errors = append(response.Errors, model.LanguageErrorEntry{
					ErrorText:  le.ErrorText,
					Correction: le.Correction,
					ErrorType:  le.ErrorType,
				})
			}
		}
		responses = append(responses, response)
	}

	logger.Info("History retrieved", "count", len(responses))
	return &model.HistoryResponse{Messages: responses}, nil
}
