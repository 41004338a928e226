package domain

import "errors"

// 致命的なエラーはすべてパイプライン境界で捕捉され、Failed な Outcome に
// 変換されます。対話ランタイムへ未処理のまま伝播することはありません。
var (
	// ErrMalformedRequest は入力エンベロープに発話が含まれていない場合のエラーです。
	ErrMalformedRequest = errors.New("malformed request: utterance is missing")
	// ErrModelInvocation はモデルエンドポイントの呼び出し失敗を表します。リトライは行いません。
	ErrModelInvocation = errors.New("model invocation failed")
	// ErrDecode はモデル応答に有効な画像アーティファクトが含まれていない場合のエラーです。
	ErrDecode = errors.New("failed to decode model response")
	// ErrPersistence はストレージへのアップロード、または署名付きURL発行の失敗を表します。
	ErrPersistence = errors.New("artifact persistence failed")
	// ErrLinkShortening は短縮URLサービスの失敗を表します。これのみ非致命で、
	// 元の署名付きURLへのフォールバックが行われます。
	ErrLinkShortening = errors.New("link shortening failed")
)
