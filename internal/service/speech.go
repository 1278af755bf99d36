//go:generate mockery --name SpeechSynthesizer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go_5_lingua_chat/internal/config"
	"go_5_lingua_chat/internal/middleware"
	"go_5_lingua_chat/internal/model"
)

// SpeechSynthesizer はテキストを音声データ(MP3バイト列)に変換します
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// googleTTSClient はGoogle翻訳のTTSエンドポイントを呼び出します。
// キャッシュは持たず、リクエストごとに合成します。
type googleTTSClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewGoogleTTSClient() SpeechSynthesizer {
	return &googleTTSClient{
		endpoint: config.GoogleTTSEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *googleTTSClient) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	logger := middleware.GetLogger(ctx)

	ttsLang := model.TTSLanguageCode(language)

	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", ttsLang)
	query.Set("q", text)

	requestURL := c.endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("googleTTSClient.Synthesize: creating request: %w", err)
	}

	logger.Debug("Requesting speech synthesis", "lang", ttsLang, "chars", len(text))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("googleTTSClient.Synthesize: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("googleTTSClient.Synthesize: tts error %d: %s", resp.StatusCode, string(body))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("googleTTSClient.Synthesize: reading audio data: %w", err)
	}

	logger.Debug("Speech synthesis succeeded", "bytes", len(audioData))
	return audioData, nil
}
