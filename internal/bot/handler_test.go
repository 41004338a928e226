package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
	"github.com/shouni/lex-bedrock-image-bot/internal/lexrt"
)

type mockFulfiller struct {
	outcome       domain.Outcome
	lastUtterance string
	lastAttrs     map[string]string
	called        bool
}

func (m *mockFulfiller) Fulfill(ctx context.Context, utterance string, sessionAttributes map[string]string) domain.Outcome {
	m.called = true
	m.lastUtterance = utterance
	m.lastAttrs = sessionAttributes
	return m.outcome
}

func testEvent() lexrt.Event {
	return lexrt.Event{
		SessionState: lexrt.SessionState{
			SessionAttributes: map[string]string{"k": "v"},
			Intent:            lexrt.Intent{Name: "GenerateImageIntent"},
		},
		InputTranscript: "Generate an image of a red bicycle",
		SessionID:       "session-1",
	}
}

func TestNewHandler(t *testing.T) {
	t.Run("nilチェック: fulfiller がない場合はエラーを返す", func(t *testing.T) {
		_, err := NewHandler(nil)
		require.Error(t, err)
	})
}

func TestHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("発話と属性がパイプラインに渡り、結果がエンベロープになる", func(t *testing.T) {
		f := &mockFulfiller{outcome: domain.Fulfilled("done: https://example.com/img.png")}
		h, err := NewHandler(f)
		require.NoError(t, err)

		resp, err := h.Handle(ctx, testEvent())
		require.NoError(t, err)

		assert.Equal(t, "Generate an image of a red bicycle", f.lastUtterance)
		assert.Equal(t, map[string]string{"k": "v"}, f.lastAttrs)
		assert.Equal(t, "Fulfilled", resp.SessionState.Intent.State)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "done: https://example.com/img.png", resp.Messages[0].Content)
	})

	t.Run("発話がない場合もエラーではなく Failed エンベロープを返す", func(t *testing.T) {
		f := &mockFulfiller{}
		h, err := NewHandler(f)
		require.NoError(t, err)

		ev := testEvent()
		ev.InputTranscript = ""

		resp, err := h.Handle(ctx, ev)
		require.NoError(t, err, "the dialog runtime must never see a transport error")

		assert.False(t, f.called, "pipeline should not run for malformed requests")
		assert.Equal(t, "Failed", resp.SessionState.Intent.State)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, lexrt.ContentTypePlainText, resp.Messages[0].ContentType)
	})

	t.Run("パイプラインが Failed を返した場合もエンベロープは整形済み", func(t *testing.T) {
		f := &mockFulfiller{outcome: domain.Failed("sorry")}
		h, err := NewHandler(f)
		require.NoError(t, err)

		resp, err := h.Handle(ctx, testEvent())
		require.NoError(t, err)

		assert.Equal(t, "Failed", resp.SessionState.Intent.State)
		assert.Equal(t, "session-1", resp.SessionID)
	})
}
