// Package bedrock は Amazon Bedrock の画像生成モデル (Stable Diffusion XL 系)
// へのリクエスト組み立て・呼び出し・応答の型付きデコードを担当します。
package bedrock

// TextPrompt は重み付きのテキストプロンプトです。
// 正のプロンプトは重み 1.0、ネガティブプロンプトは重み -1.0 を持ちます。
type TextPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// GenerationParams はデプロイ時に固定される数値生成パラメータです。
// リクエストごとのユーザー入力からは決して変更されません。
type GenerationParams struct {
	CfgScale int
	Seed     int
	Steps    int
}

// GenerationRequest はモデルエンドポイントへ送信するリクエストボディです。
type GenerationRequest struct {
	TextPrompts []TextPrompt `json:"text_prompts"`
	CfgScale    int          `json:"cfg_scale"`
	Seed        int          `json:"seed"`
	Steps       int          `json:"steps"`
	StylePreset string       `json:"style_preset,omitempty"`
}

// NewGenerationRequest は発話を唯一の正プロンプト (重み 1.0) として、
// 固定のネガティブプロンプト列 (各重み -1.0) とデプロイ設定の
// スタイル・数値パラメータを組み合わせます。発話の検証や無害化は行いません。
func NewGenerationRequest(prompt string, negativePrompts []string, stylePreset string, params GenerationParams) GenerationRequest {
	prompts := make([]TextPrompt, 0, len(negativePrompts)+1)
	prompts = append(prompts, TextPrompt{Text: prompt, Weight: 1.0})
	for _, neg := range negativePrompts {
		prompts = append(prompts, TextPrompt{Text: neg, Weight: -1.0})
	}

	return GenerationRequest{
		TextPrompts: prompts,
		CfgScale:    params.CfgScale,
		Seed:        params.Seed,
		Steps:       params.Steps,
		StylePreset: stylePreset,
	}
}
