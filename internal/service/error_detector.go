//go:generate mockery --name ErrorDetector --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
)

// ErrorDetector は学習者メッセージの言語エラーを外部の分類器で検出します。
// 失敗・不正な出力はすべて「エラーなし」に縮退し、会話を止めません。
type ErrorDetector interface {
	Detect(ctx context.Context, message, targetLanguage, proficiencyLevel string) []model.LanguageErrorEntry
}

type chatErrorDetector struct {
	chat ChatClient
}

func NewErrorDetector(chat ChatClient) ErrorDetector {
	return &chatErrorDetector{chat: chat}
}

// detectionResult は分類器のJSON出力のスキーマ。
// この形に厳密にデコードできない出力はアダプタ失敗として扱います。
type detectionResult struct {
	Errors []detectedError `json:"errors"`
}

type detectedError struct {
	ErrorText  string `json:"error_text"`
	Correction string `json:"correction"`
	ErrorType  string `json:"error_type"`
}

func (d *chatErrorDetector) Detect(ctx context.Context, message, targetLanguage, proficiencyLevel string) []model.LanguageErrorEntry {
	logger := middleware.GetLogger(ctx)

	// 短すぎるメッセージから意味のあるエラーは拾えない
	if len(strings.Fields(message)) < 2 {
		return []model.LanguageErrorEntry{}
	}

	systemPrompt := buildDetectorSystemPrompt(targetLanguage, proficiencyLevel)

	ctx, cancel := context.WithTimeout(ctx, adapterTimeout)
	defer cancel()

	content, err := d.chat.Complete(ctx, systemPrompt, message)
	if err != nil {
		if err == ErrNoAPIKey {
			logger.Warn("Cannot detect language errors: API key missing")
		} else {
			logger.Error("Error detection request failed, treating as zero errors", "error", err)
		}
		return []model.LanguageErrorEntry{}
	}

	result, err := parseDetectionResult(content)
	if err != nil {
		logger.Error("Error detection returned malformed JSON, treating as zero errors",
			"error", err,
			"content", content,
		)
		return []model.LanguageErrorEntry{}
	}

	entries := make([]model.LanguageErrorEntry, 0, len(result.Errors))
	for _, e := range result.Errors {
		// 必須フィールドを欠くレコードは信用しない
		if e.ErrorText == "" || e.Correction == "" {
			logger.Warn("Skipping incomplete error record from detector", "record", e)
			continue
		}
		entries = append(entries, model.LanguageErrorEntry{
			ErrorText:  e.ErrorText,
			Correction: e.Correction,
			ErrorType:  e.ErrorType,
		})
	}
	return entries
}

// parseDetectionResult は分類器出力をスキーマ検証付きでパースします。
// モデルがコードフェンスで囲んで返すことがあるため、その場合は剥がします。
func parseDetectionResult(content string) (*detectionResult, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var result detectionResult
	decoder := json.NewDecoder(strings.NewReader(content))
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("parseDetectionResult: %w", err)
	}
	return &result, nil
}

func buildDetectorSystemPrompt(targetLanguage, proficiencyLevel string) string {
	return fmt.Sprintf(`You are a language tutor analyzing text in %s from a %s level student.
Your task is to identify grammar, vocabulary, and syntax errors in their message.
For each error:
1. Identify the specific error text
2. Provide the correct form
3. Classify the error type (grammar, vocabulary, syntax)

FORMAT YOUR RESPONSE AS JSON:
{
  "errors": [
    {
      "error_text": "[text with error]",
      "correction": "[corrected text]",
      "error_type": "[grammar|vocabulary|syntax]"
    }
  ]
}

If there are no errors, return an empty array for "errors".
ONLY RETURN VALID JSON. Do not include any explanations or text before or after the JSON.
`, targetLanguage, strings.ToLower(proficiencyLevel))
}
