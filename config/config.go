package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the console's environment, loaded once at startup and injected
// into everything that needs it.
type Config struct {
	APIBaseURL string
	Token      string
	UserID     string

	RedisAddr string
	CacheTTL  time.Duration

	// stub server
	Port      string
	JWTSecret string
	UploadDir string
}

// Load reads .env (if present) then the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL: getenv("TOURDESK_API_URL", "http://localhost:8080"),
		Token:      os.Getenv("TOURDESK_TOKEN"),
		UserID:     os.Getenv("TOURDESK_USER_ID"),
		RedisAddr:  getenv("TOURDESK_REDIS_ADDR", "localhost:6379"),
		CacheTTL:   5 * time.Minute,
		Port:       getenv("PORT", ":8080"),
		JWTSecret:  getenv("TOURDESK_JWT_SECRET", "dev-only-secret"),
		UploadDir:  getenv("TOURDESK_UPLOAD_DIR", "./static/tourpic"),
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	if s := os.Getenv("TOURDESK_CACHE_TTL_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.CacheTTL = time.Duration(n) * time.Second
		}
	}
	return cfg
}

// RequireAuth errors unless a token and user id are configured.
func (c Config) RequireAuth() error {
	if c.Token == "" || c.UserID == "" {
		return fmt.Errorf("config: TOURDESK_TOKEN and TOURDESK_USER_ID must be set; run `tourctl login` first")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
