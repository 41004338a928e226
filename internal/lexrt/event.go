// Package lexrt は Amazon Lex V2 のフルフィルメント契約 (イベントとレスポンスの
// エンベロープ) を定義し、パイプラインとの橋渡しを行うアダプターを提供します。
package lexrt

import "encoding/json"

// Event は対話ランタイムから渡されるフルフィルメントリクエストです。
// コアが解釈するのは InputTranscript と sessionAttributes のみで、
// それ以外のフィールドは不変のままレスポンスへエコーバックされます。
type Event struct {
	SessionState      SessionState      `json:"sessionState"`
	InputTranscript   string            `json:"inputTranscript"`
	SessionID         string            `json:"sessionId"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
	InvocationSource  string            `json:"invocationSource,omitempty"`
}

// SessionState はセッション属性とインテントの状態を保持します。
type SessionState struct {
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	Intent            Intent            `json:"intent"`
	DialogAction      *DialogAction     `json:"dialogAction,omitempty"`
}

// Intent はフルフィルメントを起動したインテント/スロットのコンテキストです。
// Slots はコアでは解釈しないため生の JSON のまま保持します。
type Intent struct {
	Name  string                     `json:"name"`
	Slots map[string]json.RawMessage `json:"slots,omitempty"`
	State string                     `json:"state,omitempty"`
}

// DialogAction は対話ランタイムへの次アクション指示です。
type DialogAction struct {
	Type string `json:"type"`
}

// Message は対話ランタイムへ返す単一のメッセージです。
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Response は対話ランタイムへ返すレスポンスエンベロープです。
// RequestAttributes は入力に存在しなかった場合 null として返されます。
type Response struct {
	SessionState      SessionState      `json:"sessionState"`
	Messages          []Message         `json:"messages"`
	SessionID         string            `json:"sessionId"`
	RequestAttributes map[string]string `json:"requestAttributes"`
}

const (
	// ContentTypePlainText はプレーンテキストメッセージのコンテンツタイプです。
	ContentTypePlainText = "PlainText"
	// DialogActionClose は対話を終端させるアクションタイプです。
	DialogActionClose = "Close"
)
