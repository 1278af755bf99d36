// internal/service/conversation_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_lingua_chat/internal/model"
	repo_mocks "go_5_lingua_chat/internal/repository/mocks"
	svc_mocks "go_5_lingua_chat/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type conversationTestMocks struct {
	setupSvc         *svc_mocks.SetupService
	conversationRepo *repo_mocks.ConversationRepository
	messageRepo      *repo_mocks.MessageRepository
	langErrorRepo    *repo_mocks.LanguageErrorRepository
	sessionRepo      *repo_mocks.SessionRepository
	generator        *svc_mocks.ResponseGenerator
	translator       *svc_mocks.Translator
	detector         *svc_mocks.ErrorDetector
}

func newConversationTestMocks() *conversationTestMocks {
	return &conversationTestMocks{
		setupSvc:         new(svc_mocks.SetupService),
		conversationRepo: new(repo_mocks.ConversationRepository),
		messageRepo:      new(repo_mocks.MessageRepository),
		langErrorRepo:    new(repo_mocks.LanguageErrorRepository),
		sessionRepo:      new(repo_mocks.SessionRepository),
		generator:        new(svc_mocks.ResponseGenerator),
		translator:       new(svc_mocks.Translator),
		detector:         new(svc_mocks.ErrorDetector),
	}
}

func (m *conversationTestMocks) newService(t *testing.T) ConversationService {
	return NewConversationService(
		setupTestDB(t),
		m.setupSvc,
		m.conversationRepo,
		m.messageRepo,
		m.langErrorRepo,
		m.sessionRepo,
		m.generator,
		m.translator,
		m.detector,
	)
}

func (m *conversationTestMocks) assertExpectations(t *testing.T) {
	m.setupSvc.AssertExpectations(t)
	m.conversationRepo.AssertExpectations(t)
	m.messageRepo.AssertExpectations(t)
	m.langErrorRepo.AssertExpectations(t)
	m.sessionRepo.AssertExpectations(t)
	m.generator.AssertExpectations(t)
	m.translator.AssertExpectations(t)
	m.detector.AssertExpectations(t)
}

func Test_conversationService_StartConversation(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	learnerID := uuid.New()
	learner := &model.Learner{
		LearnerID:        learnerID,
		NativeLanguage:   "Japanese",
		TargetLanguage:   "English",
		ProficiencyLevel: model.ProficiencyBeginner,
	}
	session := &model.Session{SessionID: sessionID, LearnerID: learnerID}

	t.Run("正常系: 会話が作成され挨拶が保存される", func(t *testing.T) {
		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(session, learner, nil).Once()
		m.conversationRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Conversation")).Return(nil).Once()
		m.generator.On("Generate", mock.Anything, (*string)(nil), "cafe", learner).
			Return("Hello! Welcome to the café.").Once()
		m.translator.On("Translate", mock.Anything, "Hello! Welcome to the café.", "English", "Japanese").
			Return("こんにちは！カフェへようこそ。").Once()
		m.messageRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(msg *model.Message) bool {
			return !msg.IsUser && msg.Content == "Hello! Welcome to the café."
		})).Return(nil).Once()
		m.sessionRepo.On("UpdateConversation", mock.Anything, mock.Anything, sessionID, mock.AnythingOfType("uuid.UUID")).
			Return(nil).Once()

		svc := m.newService(t)
		resp, err := svc.StartConversation(ctx, sessionID, "cafe")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.ConversationID)
		assert.Equal(t, "Hello! Welcome to the café.", resp.Message.Content)
		require.NotNil(t, resp.Message.Translated)
		assert.Equal(t, "こんにちは！カフェへようこそ。", *resp.Message.Translated)
		assert.False(t, resp.Message.IsUser)
		m.assertExpectations(t)
	})

	t.Run("異常系: 未定義のシナリオ", func(t *testing.T) {
		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(session, learner, nil).Once()

		svc := m.newService(t)
		resp, err := svc.StartConversation(ctx, sessionID, "space-station")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_SCENARIO", appErr.Detail.Code)
		assert.Nil(t, resp)
		m.conversationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("異常系: セッション解決に失敗", func(t *testing.T) {
		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).
			Return(nil, nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "", model.ErrUnauthorized)).Once()

		svc := m.newService(t)
		resp, err := svc.StartConversation(ctx, sessionID, "cafe")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
		assert.Nil(t, resp)
		m.assertExpectations(t)
	})
}

func Test_conversationService_SendMessage(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	learnerID := uuid.New()
	conversationID := uuid.New()
	learner := &model.Learner{
		LearnerID:        learnerID,
		NativeLanguage:   "Japanese",
		TargetLanguage:   "English",
		ProficiencyLevel: model.ProficiencyBeginner,
	}
	activeSession := &model.Session{
		SessionID:      sessionID,
		LearnerID:      learnerID,
		ConversationID: &conversationID,
	}
	conversation := &model.Conversation{
		ConversationID: conversationID,
		LearnerID:      learnerID,
		Scenario:       "cafe",
	}

	t.Run("正常系: エラー検出付きでメッセージが交換される", func(t *testing.T) {
		detected := []model.LanguageErrorEntry{
			{ErrorText: "I goed", Correction: "I went", ErrorType: model.ErrorTypeGrammar},
		}

		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
		m.conversationRepo.On("FindByID", mock.Anything, mock.Anything, conversationID).Return(conversation, nil).Once()
		m.messageRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(msg *model.Message) bool {
			return msg.IsUser && msg.Content == "I goed to the cafe"
		})).Return(nil).Once()
		m.detector.On("Detect", mock.Anything, "I goed to the cafe", "English", model.ProficiencyBeginner).
			Return(detected).Once()
		m.langErrorRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(le *model.LanguageError) bool {
			return le.ErrorText == "I goed" && le.ErrorType == model.ErrorTypeGrammar
		})).Return(nil).Once()
		m.generator.On("Generate", mock.Anything, mock.AnythingOfType("*string"), "cafe", learner).
			Return("Nice! What did you order?").Once()
		m.translator.On("Translate", mock.Anything, "Nice! What did you order?", "English", "Japanese").
			Return("いいですね！何を注文しましたか？").Once()
		m.messageRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(msg *model.Message) bool {
			return !msg.IsUser && msg.Content == "Nice! What did you order?"
		})).Return(nil).Once()

		svc := m.newService(t)
		resp, err := svc.SendMessage(ctx, sessionID, "I goed to the cafe")

		require.NoError(t, err)
		assert.True(t, resp.UserMessage.IsUser)
		assert.Equal(t, "I goed to the cafe", resp.UserMessage.Content)
		assert.Equal(t, detected, resp.UserMessage.Errors)
		assert.False(t, resp.BotMessage.IsUser)
		assert.Equal(t, "Nice! What did you order?", resp.BotMessage.Content)
		assert.Empty(t, resp.BotMessage.Errors)
		m.assertExpectations(t)
	})

	t.Run("正常系: エラー保存の失敗は交換を止めない", func(t *testing.T) {
		detected := []model.LanguageErrorEntry{
			{ErrorText: "goed", Correction: "went", ErrorType: model.ErrorTypeGrammar},
		}

		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
		m.conversationRepo.On("FindByID", mock.Anything, mock.Anything, conversationID).Return(conversation, nil).Once()
		m.messageRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil).Twice()
		m.detector.On("Detect", mock.Anything, mock.Anything, "English", model.ProficiencyBeginner).Return(detected).Once()
		m.langErrorRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.LanguageError")).
			Return(assert.AnError).Once()
		m.generator.On("Generate", mock.Anything, mock.AnythingOfType("*string"), "cafe", learner).
			Return("Got it!").Once()
		m.translator.On("Translate", mock.Anything, "Got it!", "English", "Japanese").
			Return("わかりました！").Once()

		svc := m.newService(t)
		resp, err := svc.SendMessage(ctx, sessionID, "I goed home")

		require.NoError(t, err)
		assert.Equal(t, detected, resp.UserMessage.Errors)
		m.assertExpectations(t)
	})

	t.Run("異常系: アクティブな会話がない", func(t *testing.T) {
		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).
			Return(&model.Session{SessionID: sessionID, LearnerID: learnerID}, learner, nil).Once()

		svc := m.newService(t)
		resp, err := svc.SendMessage(ctx, sessionID, "hello there")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NO_ACTIVE_CONVERSATION", appErr.Detail.Code)
		assert.Nil(t, resp)
		m.assertExpectations(t)
	})

	t.Run("異常系: 会話が見つからない", func(t *testing.T) {
		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
		m.conversationRepo.On("FindByID", mock.Anything, mock.Anything, conversationID).
			Return(nil, model.ErrNotFound).Once()

		svc := m.newService(t)
		resp, err := svc.SendMessage(ctx, sessionID, "hello there")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
		m.assertExpectations(t)
	})
}

func Test_conversationService_GetHistory(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	learnerID := uuid.New()
	conversationID := uuid.New()
	learner := &model.Learner{LearnerID: learnerID, TargetLanguage: "English"}
	activeSession := &model.Session{
		SessionID:      sessionID,
		LearnerID:      learnerID,
		ConversationID: &conversationID,
	}

	t.Run("正常系: 学習者メッセージにエラーが添付される", func(t *testing.T) {
		userMsgID := uuid.New()
		botMsgID := uuid.New()
		messages := []*model.Message{
			{MessageID: botMsgID, ConversationID: conversationID, IsUser: false, Content: "Hello!"},
			{MessageID: userMsgID, ConversationID: conversationID, IsUser: true, Content: "I goed home"},
		}

		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
		m.messageRepo.On("FindByConversation", mock.Anything, mock.Anything, conversationID).Return(messages, nil).Once()
		m.langErrorRepo.On("FindByMessage", mock.Anything, mock.Anything, userMsgID).
			Return([]*model.LanguageError{
				{ErrorID: uuid.New(), MessageID: userMsgID, ErrorText: "goed", Correction: "went", ErrorType: model.ErrorTypeGrammar},
			}, nil).Once()

		svc := m.newService(t)
		resp, err := svc.GetHistory(ctx, sessionID)

		require.NoError(t, err)
		require.Len(t, resp.Messages, 2)
		assert.Empty(t, resp.Messages[0].Errors)
		require.Len(t, resp.Messages[1].Errors, 1)
		assert.Equal(t, "goed", resp.Messages[1].Errors[0].ErrorText)
		m.assertExpectations(t)
	})

	t.Run("異常系: アクティブな会話がない", func(t *testing.T) {
		m := newConversationTestMocks()
		m.setupSvc.On("ResolveSession", mock.Anything, sessionID).
			Return(&model.Session{SessionID: sessionID, LearnerID: learnerID}, learner, nil).Once()

		svc := m.newService(t)
		resp, err := svc.GetHistory(ctx, sessionID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
		assert.Nil(t, resp)
		m.assertExpectations(t)
	})
}
