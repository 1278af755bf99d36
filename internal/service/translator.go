//go:generate mockery --name Translator --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"strings"

	"go_5_lingua_chat/internal/middleware"
)

// Translator はテキストを別言語へ翻訳します。
// アダプタの失敗はここで吸収され、常に表示可能なテキストを返します。
type Translator interface {
	Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) string
}

type chatTranslator struct {
	chat ChatClient
}

func NewTranslator(chat ChatClient) Translator {
	return &chatTranslator{chat: chat}
}

func (t *chatTranslator) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) string {
	logger := middleware.GetLogger(ctx)

	systemPrompt := fmt.Sprintf(
		"You are a professional translator. Translate the given text from %s to %s accurately.",
		sourceLanguage, targetLanguage,
	)
	userPrompt := fmt.Sprintf("Translate the following text from %s to %s:\n\nText to translate: %q\n\nTranslation:",
		sourceLanguage, targetLanguage, text,
	)

	ctx, cancel := context.WithTimeout(ctx, adapterTimeout)
	defer cancel()

	translation, err := t.chat.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		if err == ErrNoAPIKey {
			logger.Warn("Cannot translate: API key missing, using mock translation")
			return fmt.Sprintf("[Translation to %s]: %s", targetLanguage, text)
		}
		logger.Error("Translation request failed, falling back to placeholder", "error", err)
		return "[Translation error]"
	}

	// モデルが引用符で囲んで返した場合は取り除く
	return strings.Trim(translation, `"`)
}
