// Package pipeline は 1 回のフルフィルメント呼び出しにおける生成・配信
// トランザクション全体を実行します。制御フローは厳密に直列で、
// いずれかの段階の致命的エラーは即座に Failed な終端結果へ遷移します。
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/lex-bedrock-image-bot/internal/bedrock"
	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
	"github.com/shouni/lex-bedrock-image-bot/internal/storage"
)

// failureMessage は失敗時にユーザーへ返す汎用メッセージです。
// 診断情報はログにのみ記録され、この文面には含まれません。
const failureMessage = "Sorry, the image could not be generated this time. Please try again later."

// Pipeline は画像生成フルフィルメントのオーケストレーターです。
// すべての外部コラボレーターはコンストラクタで明示的に注入されます。
type Pipeline struct {
	invoker   ImageInvoker
	store     ArtifactStore
	shortener LinkShortener

	negativePrompts []string
	stylePreset     string
	params          bedrock.GenerationParams
}

// New は依存関係を注入して Pipeline を初期化します。
// shortener は nil を許容し、その場合はリンク短縮を行いません。
func New(invoker ImageInvoker, store ArtifactStore, shortener LinkShortener, negativePrompts []string, stylePreset string, params bedrock.GenerationParams) (*Pipeline, error) {
	if invoker == nil {
		return nil, fmt.Errorf("invoker (ImageInvoker) is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store (ArtifactStore) is required")
	}

	return &Pipeline{
		invoker:         invoker,
		store:           store,
		shortener:       shortener,
		negativePrompts: negativePrompts,
		stylePreset:     stylePreset,
		params:          params,
	}, nil
}

// Fulfill は発話を受け取り、生成・復号・永続化・リンク発行を 1 パスで実行して
// 終端結果を返します。致命的なエラーはすべてここで捕捉されて Failed な
// Outcome に変換され、呼び出し元へ伝播することはありません。
// sessionAttributes はコアでは解釈しないパススルー情報です。
func (p *Pipeline) Fulfill(ctx context.Context, utterance string, sessionAttributes map[string]string) domain.Outcome {
	slog.InfoContext(ctx, "フルフィルメントを開始します",
		"prompt_length", len(utterance), "session_attributes", len(sessionAttributes))

	// 1. 生成リクエストの組み立て (発話の無害化は行わない)
	req := bedrock.NewGenerationRequest(utterance, p.negativePrompts, p.stylePreset, p.params)

	// 2-3. モデル呼び出しと型付きデコード。この呼び出しが唯一のブロッキング段階で、
	// 失敗した場合は永続化を試みずに終了する
	imageBytes, err := p.invoker.GenerateImage(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "画像の生成に失敗しました", "error", err)
		return domain.Failed(failureMessage)
	}

	// 4. 衝突耐性のあるキーでアーティファクトを永続化
	key := storage.NewObjectKey()
	if err := p.store.Save(ctx, key, imageBytes); err != nil {
		slog.ErrorContext(ctx, "アーティファクトの保存に失敗しました", "key", key, "error", err)
		return domain.Failed(failureMessage)
	}

	// 5. 署名付きURLの発行。ここで失敗した場合もリンクは返さない
	shareURL, err := p.store.PresignedURL(ctx, key)
	if err != nil {
		slog.ErrorContext(ctx, "署名付きURLの発行に失敗しました", "key", key, "error", err)
		return domain.Failed(failureMessage)
	}

	// 短縮は非致命: 失敗した場合は元の署名付きURLにフォールバックする
	if p.shortener != nil {
		if short, err := p.shortener.Shorten(ctx, shareURL); err != nil {
			slog.WarnContext(ctx, "リンク短縮に失敗したため元のURLを使用します", "error", err)
		} else {
			shareURL = short
		}
	}

	slog.InfoContext(ctx, "フルフィルメントが完了しました", "key", key)

	// 6. 共有リンクを埋め込んだ成功メッセージを返す
	message := fmt.Sprintf(
		"An image has been generated and saved to the S3 bucket. It can be downloaded from the pre-signed URL %s", shareURL)
	return domain.Fulfilled(message)
}
