// internal/model/review.go
package model

// ErrorCorrection はレビューのエラー集計1件分のDTO
type ErrorCorrection struct {
	ErrorText  string `json:"error_text"`
	Correction string `json:"correction"`
}

// ReviewResponse は会話レビューのレスポンスDTO
type ReviewResponse struct {
	ErrorSummary map[string][]ErrorCorrection `json:"error_summary"`
	Suggestions  []string                     `json:"suggestions"`
	TotalErrors  int                          `json:"total_errors"`
}

// HistoryResponse は会話履歴のレスポンスDTO
type HistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
}
