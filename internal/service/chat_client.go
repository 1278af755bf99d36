//go:generate mockery --name ChatClient --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go_5_lingua_chat/internal/config"
	"go_5_lingua_chat/internal/middleware"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrNoAPIKey はチャット補完APIのキーが未設定の場合に返されます。
// 呼び出し側はこのエラーを各自のプレースホルダにフォールバックさせます。
var ErrNoAPIKey = errors.New("chat completion API key is not configured")

// ChatClient はチャット補完APIへの1回分の問い合わせを抽象化します
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// --- openRouterChatClient ---

// openRouterChatClient はOpenRouterのOpenAI互換エンドポイントを呼び出します
type openRouterChatClient struct {
	llm llms.Model
}

func (c *openRouterChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	logger := middleware.GetLogger(ctx)

	resp, err := c.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	})
	if err != nil {
		logger.Error("Chat completion request failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		logger.Error("Chat completion returned no choices")
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// --- placeholderChatClient ---

// placeholderChatClient はAPIキー未設定時に使われ、常に ErrNoAPIKey を返します
type placeholderChatClient struct{}

func (c *placeholderChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "", ErrNoAPIKey
}

// --- NewChatClient ファクトリ関数 ---

func NewChatClient(cfg *config.Config) (ChatClient, error) {
	logger := slog.Default()

	if cfg.OpenRouter.APIKey == "" {
		logger.Warn("OpenRouter API key is not set, using placeholder chat client")
		return &placeholderChatClient{}, nil
	}

	llm, err := openai.New(
		openai.WithToken(cfg.OpenRouter.APIKey),
		openai.WithBaseURL(cfg.OpenRouter.BaseURL),
		openai.WithModel(cfg.OpenRouter.Model),
	)
	if err != nil {
		logger.Error("Failed to initialize OpenRouter client", "error", err)
		return nil, err
	}

	logger.Info("Initialized OpenRouter chat client", "model", cfg.OpenRouter.Model)
	return &openRouterChatClient{llm: llm}, nil
}
