package lexrt

import (
	"fmt"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
)

// ExtractPrompt は発話をそのまま生成プロンプトとして取り出します。
// 発話が存在しない場合は domain.ErrMalformedRequest を返します。
func ExtractPrompt(ev Event) (string, error) {
	if ev.InputTranscript == "" {
		return "", fmt.Errorf("%w: inputTranscript is empty", domain.ErrMalformedRequest)
	}
	return ev.InputTranscript, nil
}

// ExtractSessionAttributes はセッション属性のパススルーマップを返します。
// 属性が存在しない場合は空のマップを返し、失敗することはありません。
func ExtractSessionAttributes(ev Event) map[string]string {
	if ev.SessionState.SessionAttributes == nil {
		return map[string]string{}
	}
	return ev.SessionState.SessionAttributes
}

// BuildTerminalResponse はパイプラインの終端結果を対話ランタイムの
// レスポンスエンベロープへ変換します。インテントの状態を Outcome に合わせて
// 設定し、単一の PlainText メッセージと、セッション属性・セッションID・
// リクエスト属性をそのままエコーバックします。決定的で副作用を持ちません。
func BuildTerminalResponse(ev Event, sessionAttributes map[string]string, outcome domain.Outcome) Response {
	intent := ev.SessionState.Intent
	intent.State = string(outcome.State)

	return Response{
		SessionState: SessionState{
			SessionAttributes: sessionAttributes,
			DialogAction:      &DialogAction{Type: DialogActionClose},
			Intent:            intent,
		},
		Messages: []Message{
			{ContentType: ContentTypePlainText, Content: outcome.Message},
		},
		SessionID:         ev.SessionID,
		RequestAttributes: ev.RequestAttributes,
	}
}
