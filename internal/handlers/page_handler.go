// internal/handlers/page_handler.go
package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"go_5_lingua_chat/internal/config"
	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/service"
	"go_5_lingua_chat/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// PageHandler はブラウザ向けのHTMLページを返すハンドラ群です。
// APIハンドラと違い、エラー時はJSONではなくページ再表示かリダイレクトで応答します。
type PageHandler struct {
	service   service.SetupService
	templates *template.Template
	cfg       *config.Config
	logger    *slog.Logger
}

func NewPageHandler(s service.SetupService, templates *template.Template, cfg *config.Config, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service:   s,
		templates: templates,
		cfg:       cfg,
		logger:    logger,
	}
}

type indexPageData struct {
	Languages         []string
	ProficiencyLevels []string
	Error             string
}

type chatPageData struct {
	Learner   *model.Learner
	Scenarios []model.Scenario
}

// Index は言語選択フォームを表示するためのハンドラ
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Index"))
	h.renderIndex(w, logger, http.StatusOK, "")
}

// Setup はセットアップフォームの送信を処理するためのハンドラ。
// 成功時はセッションクッキーを発行して /chat へリダイレクトします。
func (h *PageHandler) Setup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Setup"))

	if err := r.ParseForm(); err != nil {
		logger.Warn("Failed to parse setup form", slog.String("error", err.Error()))
		h.renderIndex(w, logger, http.StatusBadRequest, "フォームの形式が正しくありません。")
		return
	}

	req := model.SetupRequest{
		NativeLanguage:   r.PostFormValue("native_language"),
		TargetLanguage:   r.PostFormValue("target_language"),
		ProficiencyLevel: r.PostFormValue("proficiency_level"),
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Setup validation failed", slog.Any("errors", validationErrors.Error()))
			h.renderIndex(w, logger, http.StatusBadRequest, validationErrors[0].Translate(webutil.Trans))
			return
		}
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		h.renderIndex(w, logger, http.StatusInternalServerError, "サーバー内部でエラーが発生しました。")
		return
	}

	session, token, err := h.service.Setup(r.Context(), &req)
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) && errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Setup rejected", slog.Any("error", err))
			h.renderIndex(w, logger, http.StatusBadRequest, appErr.Detail.Message)
			return
		}
		logger.Error("Error setting up learner in service", slog.Any("error", err))
		h.renderIndex(w, logger, http.StatusInternalServerError, "サーバー内部でエラーが発生しました。")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     model.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.Session.TokenTTLHours * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("Learner setup completed", slog.String("session_id", session.SessionID.String()))
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

// Chat はチャット画面を表示するためのハンドラ。
// 有効なセッションが無い場合はトップページへ戻します。
func (h *PageHandler) Chat(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Chat"))

	tokenString := middleware.ExtractSessionToken(r)
	if tokenString == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sessionID, err := middleware.ParseSessionToken(h.cfg, tokenString)
	if err != nil {
		logger.Warn("Invalid session token on chat page", slog.String("error", err.Error()))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, learner, err := h.service.ResolveSession(r.Context(), sessionID)
	if err != nil {
		logger.Warn("Failed to resolve session on chat page", slog.Any("error", err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := chatPageData{
		Learner:   learner,
		Scenarios: model.Scenarios,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "chat.html", data); err != nil {
		logger.Error("Failed to render chat page", slog.Any("error", err))
	}
}

func (h *PageHandler) renderIndex(w http.ResponseWriter, logger *slog.Logger, statusCode int, errorMessage string) {
	data := indexPageData{
		Languages:         model.SupportedLanguages,
		ProficiencyLevels: model.ProficiencyLevels,
		Error:             errorMessage,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := h.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		logger.Error("Failed to render index page", slog.Any("error", err))
	}
}
