// internal/service/review_service_test.go
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

func Test_reviewService_GetReview(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	learnerID := uuid.New()
	conversationID := uuid.New()

	activeSession := &model.Session{
		SessionID:      sessionID,
		LearnerID:      learnerID,
		ConversationID: &conversationID,
	}
	learner := &model.Learner{LearnerID: learnerID, TargetLanguage: "English"}

	grammarError := func(text, correction string) *model.LanguageError {
		return &model.LanguageError{
			ErrorID: uuid.New(), LearnerID: learnerID, ConversationID: conversationID,
			ErrorText: text, Correction: correction, ErrorType: model.ErrorTypeGrammar,
		}
	}
	vocabularyError := func(text, correction string) *model.LanguageError {
		return &model.LanguageError{
			ErrorID: uuid.New(), LearnerID: learnerID, ConversationID: conversationID,
			ErrorText: text, Correction: correction, ErrorType: model.ErrorTypeVocabulary,
		}
	}

	tests := []struct {
		name            string
		setupMock       func(setupSvc *svc_mocks.SetupService, langErrorRepo *repo_mocks.LanguageErrorRepository)
		wantErrIs       error
		wantTotalErrors int
		wantSuggestions []string
	}{
		{
			name: "正常系: エラーなしはポジティブな声かけ",
			setupMock: func(setupSvc *svc_mocks.SetupService, langErrorRepo *repo_mocks.LanguageErrorRepository) {
				setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
				langErrorRepo.On("FindByConversation", mock.Anything, mock.Anything, learnerID, conversationID).
					Return([]*model.LanguageError{}, nil).Once()
			},
			wantTotalErrors: 0,
			wantSuggestions: []string{suggestionPositive},
		},
		{
			name: "正常系: 文法エラー2件でカテゴリ別アドバイス",
			setupMock: func(setupSvc *svc_mocks.SetupService, langErrorRepo *repo_mocks.LanguageErrorRepository) {
				setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
				langErrorRepo.On("FindByConversation", mock.Anything, mock.Anything, learnerID, conversationID).
					Return([]*model.LanguageError{
						grammarError("goed", "went"),
						grammarError("she go", "she goes"),
					}, nil).Once()
			},
			wantTotalErrors: 2,
			// 総数が3未満なのでポジティブな声かけも併記される
			wantSuggestions: []string{suggestionGrammar, suggestionPositive},
		},
		{
			name: "正常系: 複数カテゴリのアドバイスが併記される",
			setupMock: func(setupSvc *svc_mocks.SetupService, langErrorRepo *repo_mocks.LanguageErrorRepository) {
				setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
				langErrorRepo.On("FindByConversation", mock.Anything, mock.Anything, learnerID, conversationID).
					Return([]*model.LanguageError{
						grammarError("goed", "went"),
						grammarError("she go", "she goes"),
						vocabularyError("big water", "ocean"),
						vocabularyError("house of dog", "doghouse"),
					}, nil).Once()
			},
			wantTotalErrors: 4,
			wantSuggestions: []string{suggestionGrammar, suggestionVocabulary},
		},
		{
			name: "正常系: カテゴリ閾値未満かつ総数3以上は汎用アドバイス",
			setupMock: func(setupSvc *svc_mocks.SetupService, langErrorRepo *repo_mocks.LanguageErrorRepository) {
				setupSvc.On("ResolveSession", mock.Anything, sessionID).Return(activeSession, learner, nil).Once()
				langErrorRepo.On("FindByConversation", mock.Anything, mock.Anything, learnerID, conversationID).
					Return([]*model.LanguageError{
						grammarError("goed", "went"),
						vocabularyError("big water", "ocean"),
						{
							ErrorID: uuid.New(), LearnerID: learnerID, ConversationID: conversationID,
							ErrorText: "apple red", Correction: "red apple", ErrorType: model.ErrorTypeSyntax,
						},
					}, nil).Once()
			},
			wantTotalErrors: 3,
			wantSuggestions: []string{suggestionGeneric},
		},
		{
			name: "異常系: アクティブな会話がない",
			setupMock: func(setupSvc *svc_mocks.SetupService, langErrorRepo *repo_mocks.LanguageErrorRepository) {
				setupSvc.On("ResolveSession", mock.Anything, sessionID).
					Return(&model.Session{SessionID: sessionID, LearnerID: learnerID}, learner, nil).Once()
			},
			wantErrIs: model.ErrUnauthorized,
		},
		{
			name: "異常系: セッション解決に失敗",
			setupMock: func(setupSvc *svc_mocks.SetupService, langErrorRepo *repo_mocks.LanguageErrorRepository) {
				setupSvc.On("ResolveSession", mock.Anything, sessionID).
					Return(nil, nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "", model.ErrUnauthorized)).Once()
			},
			wantErrIs: model.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			setupSvc := new(svc_mocks.SetupService)
			langErrorRepo := new(repo_mocks.LanguageErrorRepository)
			tt.setupMock(setupSvc, langErrorRepo)
			reviewService := NewReviewService(db, setupSvc, langErrorRepo)

			resp, err := reviewService.GetReview(ctx, sessionID)

			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTotalErrors, resp.TotalErrors)
				assert.Equal(t, tt.wantSuggestions, resp.Suggestions)
			}

			setupSvc.AssertExpectations(t)
			langErrorRepo.AssertExpectations(t)
		})
	}
}

func Test_buildSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		summary map[string][]model.ErrorCorrection
		total   int
		want    []string
	}{
		{
			name:    "エラーゼロ",
			summary: map[string][]model.ErrorCorrection{},
			total:   0,
			want:    []string{suggestionPositive},
		},
		{
			name: "構文エラーのみ2件",
			summary: map[string][]model.ErrorCorrection{
				model.ErrorTypeSyntax: {{}, {}},
			},
			total: 2,
			want:  []string{suggestionSyntax, suggestionPositive},
		},
		{
			name: "全カテゴリ2件ずつ",
			summary: map[string][]model.ErrorCorrection{
				model.ErrorTypeGrammar:    {{}, {}},
				model.ErrorTypeVocabulary: {{}, {}},
				model.ErrorTypeSyntax:     {{}, {}},
			},
			total: 6,
			want:  []string{suggestionGrammar, suggestionVocabulary, suggestionSyntax},
		},
		{
			name: "未知カテゴリだけ3件は汎用アドバイス",
			summary: map[string][]model.ErrorCorrection{
				"spelling": {{}, {}, {}},
			},
			total: 3,
			want:  []string{suggestionGeneric},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSuggestions(tt.summary, tt.total))
		})
	}
}
