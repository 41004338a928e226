package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/shouni/lex-bedrock-image-bot/internal/builder"
	"github.com/shouni/lex-bedrock-image-bot/internal/config"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	if err := run(context.Background()); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// 1. 設定のロードとバリデーション
	cfg := config.LoadConfig()
	if err := config.ValidateEssentialConfig(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// 2. 依存関係の組み立て (呼び出しをまたいで再利用される)
	appCtx, err := builder.BuildAppContext(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build app context: %w", err)
	}

	slog.Info("🚀 Fulfillment handler starting...",
		"region", cfg.Region, "model_id", cfg.ModelID, "bucket", cfg.Bucket)

	// 3. Lambda ランタイムへハンドラーを登録する (この呼び出しはブロックする)
	lambda.Start(appCtx.Handler.Handle)
	return nil
}
