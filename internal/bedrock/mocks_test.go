package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// --- Mocks ---

type mockRuntimeAPI struct {
	invokeFunc func(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
	lastInput  *bedrockruntime.InvokeModelInput
	called     bool
}

func (m *mockRuntimeAPI) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	m.called = true
	m.lastInput = params
	if m.invokeFunc != nil {
		return m.invokeFunc(ctx, params, optFns...)
	}
	return &bedrockruntime.InvokeModelOutput{}, nil
}
