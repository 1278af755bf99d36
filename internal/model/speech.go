// internal/model/speech.go
package model

import "github.com/google/uuid"

// SpeechRequest は音声合成リクエストのDTO
type SpeechRequest struct {
	MessageID uuid.UUID `json:"message_id" validate:"required"`
}

// SpeechResponse は音声合成レスポンスのDTO。
// 合成に失敗した場合、AudioDataはnullのまま返します。
type SpeechResponse struct {
	AudioData *string `json:"audio_data"`
}
