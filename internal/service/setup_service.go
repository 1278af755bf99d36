//go:generate mockery --name SetupService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_lingua_chat/internal/config"
	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetupService は学習者プロフィールの作成とセッションの解決を担当します
type SetupService interface {
	// Setup は学習者とセッションを作成し、署名済みセッショントークンを返します
	Setup(ctx context.Context, req *model.SetupRequest) (*model.Session, string, error)
	// ResolveSession はセッションIDから学習者プロフィール込みでセッションを解決します
	ResolveSession(ctx context.Context, sessionID uuid.UUID) (*model.Session, *model.Learner, error)
}

type setupService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewSetupService(db *gorm.DB, learnerRepo repository.LearnerRepository, sessionRepo repository.SessionRepository, cfg *config.Config) SetupService {
	return &setupService{
		db:          db,
		learnerRepo: learnerRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func (s *setupService) Setup(ctx context.Context, req *model.SetupRequest) (*model.Session, string, error) {
	logger := middleware.GetLogger(ctx)

	// 対応言語の固定セットに対する検証
	if !model.IsSupportedLanguage(req.NativeLanguage) {
		return nil, "", model.NewAppError("UNSUPPORTED_LANGUAGE", "対応していない母語が指定されました。", "native_language", model.ErrInvalidInput)
	}
	if !model.IsSupportedLanguage(req.TargetLanguage) {
		return nil, "", model.NewAppError("UNSUPPORTED_LANGUAGE", "対応していない学習言語が指定されました。", "target_language", model.ErrInvalidInput)
	}
	if req.NativeLanguage == req.TargetLanguage {
		return nil, "", model.NewAppError("SAME_LANGUAGE", "母語と学習言語には別の言語を指定してください。", "target_language", model.ErrInvalidInput)
	}
	if !model.IsValidProficiencyLevel(req.ProficiencyLevel) {
		return nil, "", model.NewAppError("INVALID_PROFICIENCY", "習熟度の値が正しくありません。", "proficiency_level", model.ErrInvalidInput)
	}

	var session *model.Session

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		learner := &model.Learner{
			LearnerID:        uuid.New(),
			NativeLanguage:   req.NativeLanguage,
			TargetLanguage:   req.TargetLanguage,
			ProficiencyLevel: req.ProficiencyLevel,
		}
		if err := s.learnerRepo.Create(ctx, tx, learner); err != nil {
			logger.Error("Failed to create learner", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習者の作成に失敗しました。", "", err)
		}

		newSession := &model.Session{
			SessionID: uuid.New(),
			LearnerID: learner.LearnerID,
		}
		if err := s.sessionRepo.Create(ctx, tx, newSession); err != nil {
			logger.Error("Failed to create session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの作成に失敗しました。", "", err)
		}

		session = newSession
		return nil // コミット
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.signSessionToken(session.SessionID)
	if err != nil {
		logger.Error("Failed to sign session token", "error", err)
		return nil, "", model.NewAppError("INTERNAL_SERVER_ERROR", "セッショントークンの発行に失敗しました。", "", err)
	}

	logger.Info("Learner setup completed",
		"learner_id", session.LearnerID.String(),
		"session_id", session.SessionID.String(),
	)
	return session, token, nil
}

func (s *setupService) ResolveSession(ctx context.Context, sessionID uuid.UUID) (*model.Session, *model.Learner, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// トークンは正しいがセッション行が無い場合は認証切れとして扱う
			return nil, nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "", model.ErrUnauthorized)
		}
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	learner, err := s.learnerRepo.FindByID(ctx, s.db, session.LearnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.NewAppError("LEARNER_NOT_FOUND", "学習者が見つかりません。", "", model.ErrNotFound)
		}
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習者の取得に失敗しました。", "", err)
	}

	return session, learner, nil
}

// signSessionToken はセッションIDをsubjectに持つHS256署名のJWTを発行します
func (s *setupService) signSessionToken(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Session.TokenTTLHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Session.SecretKey))
}
