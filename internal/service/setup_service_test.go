// internal/service/setup_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_lingua_chat/internal/config"
	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err)
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.SecretKey = "test-secret-key"
	cfg.Session.TokenTTLHours = 1
	return cfg
}

func Test_setupService_Setup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		req          *model.SetupRequest
		setupMock    func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository)
		wantErrIs    error
		wantErrCode  string
		wantHasToken bool
	}{
		{
			name: "正常系: 学習者とセッションが作成される",
			req: &model.SetupRequest{
				NativeLanguage:   "Japanese",
				TargetLanguage:   "English",
				ProficiencyLevel: model.ProficiencyBeginner,
			},
			setupMock: func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {
				learnerRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Learner")).Return(nil).Once()
				sessionRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Session")).Return(nil).Once()
			},
			wantHasToken: true,
		},
		{
			name: "異常系: 未対応の母語",
			req: &model.SetupRequest{
				NativeLanguage:   "Klingon",
				TargetLanguage:   "English",
				ProficiencyLevel: model.ProficiencyBeginner,
			},
			setupMock:   func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {},
			wantErrIs:   model.ErrInvalidInput,
			wantErrCode: "UNSUPPORTED_LANGUAGE",
		},
		{
			name: "異常系: 未対応の学習言語",
			req: &model.SetupRequest{
				NativeLanguage:   "Japanese",
				TargetLanguage:   "Klingon",
				ProficiencyLevel: model.ProficiencyBeginner,
			},
			setupMock:   func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {},
			wantErrIs:   model.ErrInvalidInput,
			wantErrCode: "UNSUPPORTED_LANGUAGE",
		},
		{
			name: "異常系: 母語と学習言語が同一",
			req: &model.SetupRequest{
				NativeLanguage:   "English",
				TargetLanguage:   "English",
				ProficiencyLevel: model.ProficiencyBeginner,
			},
			setupMock:   func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {},
			wantErrIs:   model.ErrInvalidInput,
			wantErrCode: "SAME_LANGUAGE",
		},
		{
			name: "異常系: 不正な習熟度",
			req: &model.SetupRequest{
				NativeLanguage:   "Japanese",
				TargetLanguage:   "English",
				ProficiencyLevel: "Expert",
			},
			setupMock:   func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {},
			wantErrIs:   model.ErrInvalidInput,
			wantErrCode: "INVALID_PROFICIENCY",
		},
		{
			name: "異常系: 学習者作成に失敗するとロールバックされる",
			req: &model.SetupRequest{
				NativeLanguage:   "Japanese",
				TargetLanguage:   "English",
				ProficiencyLevel: model.ProficiencyBeginner,
			},
			setupMock: func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {
				learnerRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Learner")).
					Return(errors.New("db error")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			learnerRepo := new(mocks.LearnerRepository)
			sessionRepo := new(mocks.SessionRepository)
			tt.setupMock(learnerRepo, sessionRepo)
			cfg := testConfig()
			setupService := NewSetupService(db, learnerRepo, sessionRepo, cfg)

			session, token, err := setupService.Setup(ctx, tt.req)

			if tt.wantErrIs != nil || !tt.wantHasToken {
				if tt.wantHasToken {
					t.Fatal("test case misconfigured")
				}
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				if tt.wantErrCode != "" {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.wantErrCode, appErr.Detail.Code)
				}
				assert.Nil(t, session)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.NotEqual(t, uuid.Nil, session.SessionID)
				assert.NotEqual(t, uuid.Nil, session.LearnerID)
				assert.Nil(t, session.ConversationID)

				// 発行されたトークンのsubjectがセッションIDであること
				parsedID, parseErr := middleware.ParseSessionToken(cfg, token)
				require.NoError(t, parseErr)
				assert.Equal(t, session.SessionID, parsedID)
			}

			learnerRepo.AssertExpectations(t)
			sessionRepo.AssertExpectations(t)
		})
	}
}

func Test_setupService_ResolveSession(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()
	learnerID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository)
		wantErrIs error
	}{
		{
			name: "正常系: セッションと学習者が解決される",
			setupMock: func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByID", mock.Anything, mock.Anything, sessionID).
					Return(&model.Session{SessionID: sessionID, LearnerID: learnerID}, nil).Once()
				learnerRepo.On("FindByID", mock.Anything, mock.Anything, learnerID).
					Return(&model.Learner{LearnerID: learnerID, NativeLanguage: "Japanese", TargetLanguage: "English"}, nil).Once()
			},
		},
		{
			name: "異常系: セッションが存在しない場合は認証切れ扱い",
			setupMock: func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByID", mock.Anything, mock.Anything, sessionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErrIs: model.ErrUnauthorized,
		},
		{
			name: "異常系: 学習者が存在しない",
			setupMock: func(learnerRepo *mocks.LearnerRepository, sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByID", mock.Anything, mock.Anything, sessionID).
					Return(&model.Session{SessionID: sessionID, LearnerID: learnerID}, nil).Once()
				learnerRepo.On("FindByID", mock.Anything, mock.Anything, learnerID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErrIs: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			learnerRepo := new(mocks.LearnerRepository)
			sessionRepo := new(mocks.SessionRepository)
			tt.setupMock(learnerRepo, sessionRepo)
			setupService := NewSetupService(db, learnerRepo, sessionRepo, testConfig())

			session, learner, err := setupService.ResolveSession(ctx, sessionID)

			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, session)
				assert.Nil(t, learner)
			} else {
				require.NoError(t, err)
				assert.Equal(t, sessionID, session.SessionID)
				assert.Equal(t, learnerID, learner.LearnerID)
			}

			learnerRepo.AssertExpectations(t)
			sessionRepo.AssertExpectations(t)
		})
	}
}
