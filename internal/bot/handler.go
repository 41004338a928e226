// Package bot は Lambda エントリポイントに面したハンドラーです。
// アダプター → パイプライン → アダプターの直列フローを実行し、対話ランタイムには
// 常に整形済みのレスポンスエンベロープを返します (トランスポートエラーは返しません)。
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
	"github.com/shouni/lex-bedrock-image-bot/internal/lexrt"
)

// malformedMessage は発話を取り出せなかった場合のユーザー向けメッセージです。
const malformedMessage = "Sorry, I could not understand your request. Please tell me what image to generate."

// Fulfiller はフルフィルメントパイプラインを抽象化するインターフェースです。
type Fulfiller interface {
	Fulfill(ctx context.Context, utterance string, sessionAttributes map[string]string) domain.Outcome
}

// Handler は対話ランタイムからのフルフィルメントイベントを処理します。
type Handler struct {
	fulfiller Fulfiller
}

// NewHandler は依存関係を注入して Handler を初期化します。
func NewHandler(fulfiller Fulfiller) (*Handler, error) {
	if fulfiller == nil {
		return nil, fmt.Errorf("fulfiller is required")
	}
	return &Handler{fulfiller: fulfiller}, nil
}

// Handle は 1 回のフルフィルメント呼び出しを処理します。
// 会話を途切れさせないため、エラー戻り値は常に nil であり、
// あらゆる失敗は Failed 状態のレスポンスエンベロープとして返されます。
func (h *Handler) Handle(ctx context.Context, ev lexrt.Event) (lexrt.Response, error) {
	slog.InfoContext(ctx, "フルフィルメントイベントを受信しました",
		"session_id", ev.SessionID, "intent", ev.SessionState.Intent.Name)

	sessionAttributes := lexrt.ExtractSessionAttributes(ev)

	utterance, err := lexrt.ExtractPrompt(ev)
	if err != nil {
		slog.WarnContext(ctx, "不正なリクエストを受信しました", "session_id", ev.SessionID, "error", err)
		return lexrt.BuildTerminalResponse(ev, sessionAttributes, domain.Failed(malformedMessage)), nil
	}

	outcome := h.fulfiller.Fulfill(ctx, utterance, sessionAttributes)

	return lexrt.BuildTerminalResponse(ev, sessionAttributes, outcome), nil
}
