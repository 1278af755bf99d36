//go:generate mockery --name ResponseGenerator --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
)

// アダプタ呼び出しの固定タイムアウト
const adapterTimeout = 30 * time.Second

// 生成失敗時に会話へ表示するプレースホルダ
const (
	generatePlaceholder   = "I'm sorry, I encountered an error while generating a response."
	missingKeyPlaceholder = "I'm sorry, I can't generate a response right now. API key is missing."
)

// ResponseGenerator はシナリオと学習者情報からアシスタントの発話を生成します。
// アダプタの失敗はここで吸収され、常に表示可能なテキストを返します。
type ResponseGenerator interface {
	// Generate は userMessage が nil の場合「会話の最初の挨拶」モードになります
	Generate(ctx context.Context, userMessage *string, scenario string, learner *model.Learner) string
}

type chatResponseGenerator struct {
	chat ChatClient
}

func NewResponseGenerator(chat ChatClient) ResponseGenerator {
	return &chatResponseGenerator{chat: chat}
}

func (g *chatResponseGenerator) Generate(ctx context.Context, userMessage *string, scenario string, learner *model.Learner) string {
	logger := middleware.GetLogger(ctx)

	systemPrompt := buildTutorSystemPrompt(scenario, learner)

	var userPrompt string
	if userMessage == nil {
		userPrompt = fmt.Sprintf(
			"Start a conversation with me in %s for the %s scenario. I am a %s level speaker.",
			learner.TargetLanguage, scenario, strings.ToLower(learner.ProficiencyLevel),
		)
	} else {
		userPrompt = *userMessage
	}

	ctx, cancel := context.WithTimeout(ctx, adapterTimeout)
	defer cancel()

	response, err := g.chat.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		if err == ErrNoAPIKey {
			logger.Warn("Cannot generate bot response: API key missing")
			return missingKeyPlaceholder
		}
		logger.Error("Failed to generate bot response, falling back to placeholder", "error", err)
		return generatePlaceholder
	}

	return response
}

// buildTutorSystemPrompt は会話パートナー役のシステムプロンプトを組み立てます
func buildTutorSystemPrompt(scenario string, learner *model.Learner) string {
	return fmt.Sprintf(`You are a language learning assistant helping someone practice %s.
You are simulating %s.

GUIDELINES:
1. Respond ONLY in %s.
2. %s
3. Keep the conversation relevant to the %s scenario.
4. Be patient, encouraging, and helpful.
5. Your response should be 1-3 sentences long.
6. Do not provide translations or language explanations in your response.
`,
		learner.TargetLanguage,
		model.ScenarioDescription(scenario),
		learner.TargetLanguage,
		model.ProficiencyDescription(learner.ProficiencyLevel),
		scenario,
	)
}
