package pipeline

import (
	"context"

	"github.com/shouni/lex-bedrock-image-bot/internal/bedrock"
)

// ImageInvoker は画像生成モデルへの同期呼び出しを抽象化するインターフェースです。
type ImageInvoker interface {
	GenerateImage(ctx context.Context, req bedrock.GenerationRequest) ([]byte, error)
}

// ArtifactStore はアーティファクトの保存と共有リンク発行を抽象化するインターフェースです。
type ArtifactStore interface {
	Save(ctx context.Context, key string, data []byte) error
	PresignedURL(ctx context.Context, key string) (string, error)
}

// LinkShortener は共有リンクの短縮変換を抽象化するインターフェースです。
type LinkShortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}
