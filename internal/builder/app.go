// Package builder は外部サービスとの接続を確立し、アプリケーションの
// 依存関係を組み立てます。クライアントは暗黙のグローバルではなく、
// ここで明示的に生成してパイプラインへ注入します。
package builder

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/lex-bedrock-image-bot/internal/bedrock"
	"github.com/shouni/lex-bedrock-image-bot/internal/bot"
	"github.com/shouni/lex-bedrock-image-bot/internal/config"
	"github.com/shouni/lex-bedrock-image-bot/internal/pipeline"
	"github.com/shouni/lex-bedrock-image-bot/internal/shortener"
	"github.com/shouni/lex-bedrock-image-bot/internal/storage"
)

// AppContext はアプリケーションの依存関係を保持します。
type AppContext struct {
	Config  *config.Config
	Handler *bot.Handler
}

// BuildAppContext は AWS クライアント群を初期化し、パイプラインと
// ハンドラーを組み立てます。
func BuildAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	// 1. AWS 基盤クライアントの初期化
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	runtimeClient := bedrockruntime.NewFromConfig(awsCfg)
	s3Client := s3.NewFromConfig(awsCfg)
	presignClient := s3.NewPresignClient(s3Client)

	// 2. コラボレーターの構築
	invoker, err := bedrock.NewInvoker(runtimeClient, cfg.ModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create model invoker: %w", err)
	}

	store, err := storage.NewArtifactStore(s3Client, presignClient, cfg.Bucket, cfg.PresignedURLExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact store: %w", err)
	}

	// 短縮URLサービスは任意: エンドポイント未設定なら短縮なしで動作する
	var linkShortener pipeline.LinkShortener
	if cfg.TinyURLEndpoint != "" {
		httpClient := httpkit.New(cfg.HTTPTimeout)
		tiny, err := shortener.NewTinyURL(httpClient, cfg.TinyURLEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to create link shortener: %w", err)
		}
		linkShortener = tiny
	}

	// 3. パイプラインとハンドラーの組み立て
	pipe, err := pipeline.New(invoker, store, linkShortener, cfg.NegativePrompts, cfg.StylePreset, bedrock.GenerationParams{
		CfgScale: cfg.CfgScale,
		Seed:     cfg.Seed,
		Steps:    cfg.Steps,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	handler, err := bot.NewHandler(pipe)
	if err != nil {
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	return &AppContext{Config: cfg, Handler: handler}, nil
}
