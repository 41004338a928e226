package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
)

const contentTypeJSON = "application/json"

// RuntimeAPI は Bedrock Runtime クライアントのうち、このコンポーネントが
// 利用する操作だけを抽象化したインターフェースです。
type RuntimeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Invoker は単一のモデルエンドポイントに対する同期呼び出しを担当します。
type Invoker struct {
	api     RuntimeAPI
	modelID string
}

// NewInvoker は依存関係を注入して Invoker を初期化します。
func NewInvoker(api RuntimeAPI, modelID string) (*Invoker, error) {
	if api == nil {
		return nil, fmt.Errorf("api (RuntimeAPI) is required")
	}
	if modelID == "" {
		return nil, fmt.Errorf("modelID is required")
	}
	return &Invoker{api: api, modelID: modelID}, nil
}

// GenerateImage は生成リクエストをモデルへ同期送信し、最初のアーティファクトの
// 生画像バイト列を返します。呼び出しは 1 回のみで、自動リトライは行いません。
// 転送・サービス障害は domain.ErrModelInvocation、応答の構造不備は
// domain.ErrDecode として返されます。
func (i *Invoker) GenerateImage(ctx context.Context, req GenerationRequest) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", domain.ErrModelInvocation, err)
	}

	out, err := i.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(i.modelID),
		Body:        body,
		Accept:      aws.String(contentTypeJSON),
		ContentType: aws.String(contentTypeJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: model %s: %v", domain.ErrModelInvocation, i.modelID, err)
	}

	return DecodeFirstImage(out.Body)
}
