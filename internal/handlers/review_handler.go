// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/service"
	"go_5_lingua_chat/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetReview はアクティブな会話のエラー集計とアドバイスを取得するためのハンドラ
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReview"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	resp, err := h.service.GetReview(r.Context(), sessionID)
	if err != nil {
		logger.Error("Error getting review from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review retrieved successfully", slog.Int("total_errors", resp.TotalErrors))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
