// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	OpenRouter struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"openrouter"`
	Session struct {
		SecretKey     string `mapstructure:"secret_key"`
		TokenTTLHours int    `mapstructure:"token_ttl_hours"`
	} `mapstructure:"session"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からも読み込めるようにする (例: APP_OPENROUTER_API_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	viper.BindEnv("session.secret_key", "SESSION_SECRET_KEY")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.OpenRouter.BaseURL == "" {
		Cfg.OpenRouter.BaseURL = DefaultOpenRouterBaseURL
	}
	if Cfg.OpenRouter.Model == "" {
		log.Printf("OpenRouter model not set, using default '%s'", DefaultOpenRouterModel)
		Cfg.OpenRouter.Model = DefaultOpenRouterModel
	}
	if Cfg.OpenRouter.APIKey == "" {
		// キーが無くても起動はできる（生成・翻訳はプレースホルダにフォールバックする）
		log.Println("Warning: OpenRouter API key is not set. Generation and translation will be degraded.")
	}
	if Cfg.Session.SecretKey == "" {
		log.Println("Warning: Session secret key not set, using insecure default. Do not use in production.")
		Cfg.Session.SecretKey = DefaultSessionSecretKey
	}
	if Cfg.Session.TokenTTLHours <= 0 {
		Cfg.Session.TokenTTLHours = DefaultSessionTokenTTLHours
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("OpenRouter Model: %s", Cfg.OpenRouter.Model)
	log.Printf("Session Token TTL: %dh", Cfg.Session.TokenTTLHours)

	return nil
}
