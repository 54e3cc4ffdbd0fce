package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	SessionTTL time.Duration // ログインセッションの有効期限

	UploadDir     string // 商品画像の保存先
	UploadBaseURL string // 保存した画像の配信パス

	CookieSecure bool // 本番はtrue
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getenv("UPLOAD_DIR", "static/uploads/products"),
		UploadBaseURL: getenv("UPLOAD_BASE_URL", "/static/uploads/products"),
		CookieSecure:  getenv("COOKIE_SECURE", "false") == "true",
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	//セッション有効期限（時間単位、デフォルト1時間）
	hours, err := atoiDefault("SESSION_TTL_HOURS", 1)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL = time.Duration(hours) * time.Hour

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
