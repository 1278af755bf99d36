package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_5_lingua_chat/internal/config"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionAuthMiddleware はセッショントークン(JWT)を検証し、
// セッションIDをリクエストコンテキストに格納するミドルウェアです。
// トークンは Authorization ヘッダー (Bearer) または Cookie から取得します。
func SessionAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tokenString := ExtractSessionToken(r)
			if tokenString == "" {
				logger.Warn("Session auth failed: no session token")
				appErr := model.NewAppError("UNAUTHORIZED", "セッションが見つかりません。先にセットアップを行ってください。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			sessionID, err := ParseSessionToken(cfg, tokenString)
			if err != nil {
				logger.Warn("Session auth failed: invalid token", "error", err)
				appErr := model.NewAppError("INVALID_SESSION", "セッショントークンが無効です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// リクエストコンテキストにセッションIDをセット
			ctx := context.WithValue(r.Context(), model.SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractSessionToken は Authorization ヘッダーまたは Cookie からトークン文字列を取り出します。
// 見つからない場合は空文字を返します。
func ExtractSessionToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) == 2 && strings.ToLower(headerParts[0]) == "bearer" {
			return headerParts[1]
		}
	}
	if cookie, err := r.Cookie(model.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// ParseSessionToken はJWTを検証し、subjectのセッションIDを返します。
func ParseSessionToken(cfg *config.Config, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムが期待通り(HS256)かチェック
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Session.SecretKey), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}

	sessionID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, err
	}
	return sessionID, nil
}

// GetSessionIDFromContext はコンテキストからセッションIDを取得します。
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.SessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "コンテキストからセッション情報を取得できませんでした。", "", model.ErrUnauthorized)
	}
	return value, nil
}
