package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// PresignedURLExpiration 生成画像の共有リンクの有効期限（7日間）。
	// オブジェクト自体の保持期間とは独立しています。
	PresignedURLExpiration = 7 * 24 * time.Hour

	DefaultRegion      = "us-east-1"
	DefaultModelID     = "stability.stable-diffusion-xl-v0"
	DefaultStylePreset = "photographic" // digital-art, cinematic なども指定可能

	// 画像生成の数値パラメータはデプロイ時固定であり、リクエストからは変更できません。
	DefaultCfgScale = 5
	DefaultSeed     = 5450
	DefaultSteps    = 70

	// DefaultHTTPTimeout 短縮URLサービスへの外部HTTP呼び出し用タイムアウト
	DefaultHTTPTimeout = 10 * time.Second
)

// defaultNegativePrompts は品質抑制のための固定ネガティブプロンプトです。
// 発話の内容とは無関係に、常にこの順序で重み -1.0 で付与されます。
var defaultNegativePrompts = []string{
	"poorly rendered",
	"poor background details",
	"poorly drawn",
	"disfigured features",
}

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	Region      string
	Bucket      string // 生成画像を保存するバケット
	ModelID     string
	StylePreset string

	CfgScale int
	Seed     int
	Steps    int

	NegativePrompts []string

	PresignedURLExpiration time.Duration
	HTTPTimeout            time.Duration

	// TinyURLEndpoint 短縮URLサービスの作成API。空文字列の場合は短縮を行いません。
	TinyURLEndpoint string
}

// LoadConfig は環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() *Config {
	return &Config{
		Region:      getEnv("region", DefaultRegion),
		Bucket:      getEnv("bucket", ""),
		ModelID:     getEnv("model_id", DefaultModelID),
		StylePreset: getEnv("style_preset", DefaultStylePreset),

		CfgScale: getEnvInt("cfg_scale", DefaultCfgScale),
		Seed:     getEnvInt("seed", DefaultSeed),
		Steps:    getEnvInt("steps", DefaultSteps),

		NegativePrompts: defaultNegativePrompts,

		PresignedURLExpiration: PresignedURLExpiration,
		HTTPTimeout:            DefaultHTTPTimeout,

		TinyURLEndpoint: getEnv("tinyurl_endpoint", "https://tinyurl.com/api-create.php"),
	}
}

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
func ValidateEssentialConfig(cfg *Config) error {
	if cfg.Bucket == "" {
		return fmt.Errorf("configuration error: bucket is not set")
	}
	if cfg.ModelID == "" {
		return fmt.Errorf("configuration error: model_id is not set")
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("configuration error: steps must be positive, got %d", cfg.Steps)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
