// internal/handlers/speech_handler.go
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

type SpeechHandler struct {
	service service.SpeechService
	logger  *slog.Logger
}

func NewSpeechHandler(s service.SpeechService, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeechHandler{
		service: s,
		logger:  logger,
	}
}

// GetSpeech は保存済みメッセージの読み上げ音声を取得するためのハンドラ
func (h *SpeechHandler) GetSpeech(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSpeech"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.SpeechRequest
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

	resp, err := h.service.GetSpeech(r.Context(), sessionID, req.MessageID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Message not found for speech synthesis", slog.Any("error", err))
		} else {
			logger.Error("Error getting speech from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Speech retrieved successfully", slog.Bool("has_audio", resp.AudioData != nil))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
