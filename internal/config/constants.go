// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "LinguaChat"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultSessionSecretKey     = "dev-only-insecure-secret"
	DefaultSessionTokenTTLHours = 24
)

// 外部サービスのエンドポイントとデフォルトモデル
const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel   = "google/gemini-2.5-pro-exp-03-25:free"
	GoogleTTSEndpoint        = "https://translate.google.com/translate_tts"
)
