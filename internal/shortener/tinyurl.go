// Package shortener は共有リンクの短縮変換を提供します。
// 短縮の失敗は呼び出し全体を失敗させず、元のURLへのフォールバックを前提とします。
package shortener

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
)

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// TinyURL は TinyURL の作成APIを利用したリンク短縮クライアントです。
// 作成APIは短縮後のURLをプレーンテキストのボディとして返します。
type TinyURL struct {
	httpClient HTTPClient
	endpoint   string
}

// NewTinyURL は依存関係を注入して TinyURL を初期化します。
func NewTinyURL(httpClient HTTPClient, endpoint string) (*TinyURL, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	return &TinyURL{httpClient: httpClient, endpoint: endpoint}, nil
}

// Shorten は長いURLを短縮URLに変換します。
// 失敗はすべて domain.ErrLinkShortening として返され、呼び出し側が
// 元のURLへフォールバックするかどうかを決定します。
func (t *TinyURL) Shorten(ctx context.Context, longURL string) (string, error) {
	reqURL := fmt.Sprintf("%s?url=%s", t.endpoint, url.QueryEscape(longURL))

	body, err := t.httpClient.FetchBytes(ctx, reqURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrLinkShortening, err)
	}

	short := strings.TrimSpace(string(body))
	if !strings.HasPrefix(short, "http://") && !strings.HasPrefix(short, "https://") {
		return "", fmt.Errorf("%w: unexpected response body: %q", domain.ErrLinkShortening, short)
	}

	return short, nil
}
