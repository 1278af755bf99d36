// internal/handlers/conversation_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
	"go_5_lingua_chat/internal/service"
	"go_5_lingua_chat/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type ConversationHandler struct {
	service service.ConversationService
	logger  *slog.Logger
}

func NewConversationHandler(s service.ConversationService, logger *slog.Logger) *ConversationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConversationHandler{
		service: s,
		logger:  logger,
	}
}

// StartConversation はシナリオを指定して新しい会話を開始するためのハンドラ
func (h *ConversationHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartConversation"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.StartConversationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.StartConversation(r.Context(), sessionID, req.Scenario)
	if err != nil {
		logger.Error("Error starting conversation in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Conversation started successfully", slog.String("conversation_id", resp.ConversationID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// SendMessage は学習者メッセージを受け取りアシスタントの返答を返すためのハンドラ
func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SendMessage"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.SendMessageRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.SendMessage(r.Context(), sessionID, req.Message)
	if err != nil {
		logger.Error("Error sending message in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Message exchanged successfully", slog.Int("detected_errors", len(resp.UserMessage.Errors)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetHistory はアクティブな会話の全メッセージを取得するためのハンドラ
func (h *ConversationHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHistory"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	resp, err := h.service.GetHistory(r.Context(), sessionID)
	if err != nil {
		logger.Error("Error getting history from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("History retrieved successfully", slog.Int("count", len(resp.Messages)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
