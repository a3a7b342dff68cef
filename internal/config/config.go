package config

import (
	"log"
	"os"
	"strings"
)

const (
	defaultOrigin = "http://localhost:5173"
	defaultPort   = "8080"
)

// Config holds everything read from the environment. It is loaded once in
// main and passed explicitly; nothing reads env vars after Load returns.
type Config struct {
	AllowedOrigins   []string
	TelegramBotToken string
	TelegramChatID   string
	Port             string
}

func Load() *Config {
	cfg := &Config{
		AllowedOrigins:   parseOrigins(),
		TelegramBotToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		TelegramChatID:   strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
		Port:             getEnv("PORT", defaultPort),
	}

	if !cfg.TelegramConfigured() {
		log.Printf("config: telegram credentials missing, lead delivery disabled")
	}
	log.Printf("config: port=%s allowed_origins=%s", cfg.Port, strings.Join(cfg.AllowedOrigins, ","))

	return cfg
}

// TelegramConfigured reports whether both delivery credentials are present.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// ALLOWED_ORIGINS wins over the older CORS_ALLOWED_ORIGINS name; both are
// comma-separated. With neither set, only the local frontend is allowed.
func parseOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if strings.TrimSpace(raw) == "" {
		raw = os.Getenv("CORS_ALLOWED_ORIGINS")
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{defaultOrigin}
	}
	return origins
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
