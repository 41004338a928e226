package bedrock

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
	"github.com/shouni/lex-bedrock-image-bot/internal/imgutil"
)

// Artifact はモデルが生成した 1 枚の画像レコードです。
// 画像本体は転送安全なテキストエンコーディング (base64) で格納されています。
type Artifact struct {
	Base64       string `json:"base64"`
	Seed         int64  `json:"seed"`
	FinishReason string `json:"finishReason"`
}

// GenerationResponse はモデルエンドポイントからの応答ボディです。
type GenerationResponse struct {
	Result    string     `json:"result,omitempty"`
	Artifacts []Artifact `json:"artifacts"`
}

// DecodeFirstImage は応答ボディを型付きでデコードし、最初のアーティファクトの
// 画像ペイロードを生バイト列へ復号します。構造の欠落・空のアーティファクト列・
// 画像として不正なペイロードはいずれも domain.ErrDecode として扱われ、
// 代替アーティファクトへのフォールバックは行いません。
func DecodeFirstImage(body []byte) ([]byte, error) {
	var resp GenerationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid response body: %v", domain.ErrDecode, err)
	}

	if len(resp.Artifacts) == 0 {
		return nil, fmt.Errorf("%w: response contains no artifacts", domain.ErrDecode)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Artifacts[0].Base64)
	if err != nil {
		return nil, fmt.Errorf("%w: artifact payload is not valid base64: %v", domain.ErrDecode, err)
	}

	if _, err := imgutil.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("%w: artifact payload is not a valid image: %v", domain.ErrDecode, err)
	}

	return data, nil
}
