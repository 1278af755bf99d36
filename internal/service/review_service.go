//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// カテゴリ別の定型アドバイス
const (
	suggestionGrammar    = "Focus on improving your grammar skills, particularly with sentence structure."
	suggestionVocabulary = "Work on expanding your vocabulary in this context."
	suggestionSyntax     = "Pay attention to word order and syntax rules."
	suggestionPositive   = "Great job! You made very few mistakes in this conversation."
	suggestionGeneric    = "Continue practicing in different scenarios to improve your language skills."
)

// カテゴリ別アドバイスを出す発生回数の下限と、
// ポジティブな声かけを出す総エラー数の上限
const (
	categorySuggestionThreshold = 2
	positiveSuggestionThreshold = 3
)

// ReviewService はアクティブ会話のエラー集計とアドバイス生成を担当します
type ReviewService interface {
	GetReview(ctx context.Context, sessionID uuid.UUID) (*model.ReviewResponse, error)
}

type reviewService struct {
	db            *gorm.DB
	setupService  SetupService
	langErrorRepo repository.LanguageErrorRepository
}

func NewReviewService(db *gorm.DB, setupService SetupService, langErrorRepo repository.LanguageErrorRepository) ReviewService {
	return &reviewService{
		db:            db,
		setupService:  setupService,
		langErrorRepo: langErrorRepo,
	}
}

func (s *reviewService) GetReview(ctx context.Context, sessionID uuid.UUID) (*model.ReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID)

	session, learner, err := s.setupService.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ConversationID == nil {
		return nil, model.NewAppError("NO_ACTIVE_CONVERSATION", "アクティブな会話がありません。", "", model.ErrUnauthorized)
	}

	languageErrors, err := s.langErrorRepo.FindByConversation(ctx, s.db, learner.LearnerID, *session.ConversationID)
	if err != nil {
		logger.Error("Failed to find language errors for review", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "エラー集計の取得に失敗しました。", "", err)
	}

	// カテゴリごとにグルーピング
	errorSummary := make(map[string][]model.ErrorCorrection)
	for _, le := range languageErrors {
		errorSummary[le.ErrorType] = append(errorSummary[le.ErrorType], model.ErrorCorrection{
			ErrorText:  le.ErrorText,
			Correction: le.Correction,
		})
	}

	suggestions := buildSuggestions(errorSummary, len(languageErrors))

	logger.Info("Review generated",
		"total_errors", len(languageErrors),
		"suggestions", len(suggestions),
	)

	return &model.ReviewResponse{
		ErrorSummary: errorSummary,
		Suggestions:  suggestions,
		TotalErrors:  len(languageErrors),
	}, nil
}

// buildSuggestions は固定ルールでアドバイスのリストを導出します。
// カテゴリ別アドバイスは該当カテゴリが2件以上のとき、
// ポジティブな声かけは総数3件未満のとき、
// どちらも出なかった場合は汎用アドバイスを返します。
func buildSuggestions(errorSummary map[string][]model.ErrorCorrection, totalErrors int) []string {
	suggestions := []string{}

	if len(errorSummary[model.ErrorTypeGrammar]) >= categorySuggestionThreshold {
		suggestions = append(suggestions, suggestionGrammar)
	}
	if len(errorSummary[model.ErrorTypeVocabulary]) >= categorySuggestionThreshold {
		suggestions = append(suggestions, suggestionVocabulary)
	}
	if len(errorSummary[model.ErrorTypeSyntax]) >= categorySuggestionThreshold {
		suggestions = append(suggestions, suggestionSyntax)
	}

	if totalErrors < positiveSuggestionThreshold {
		suggestions = append(suggestions, suggestionPositive)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, suggestionGeneric)
	}

	return suggestions
}
