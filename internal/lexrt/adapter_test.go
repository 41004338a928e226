package lexrt

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
)

func testEvent() Event {
	return Event{
		SessionState: SessionState{
			SessionAttributes: map[string]string{"userTier": "gold"},
			Intent: Intent{
				Name:  "GenerateImageIntent",
				State: "ReadyForFulfillment",
			},
		},
		InputTranscript:   "Generate an image of a red bicycle",
		SessionID:         "session-123",
		RequestAttributes: map[string]string{"channel": "web"},
	}
}

func TestExtractPrompt(t *testing.T) {
	t.Run("発話をそのまま返す", func(t *testing.T) {
		prompt, err := ExtractPrompt(testEvent())
		require.NoError(t, err)
		assert.Equal(t, "Generate an image of a red bicycle", prompt)
	})

	t.Run("発話が空の場合は MalformedRequest エラー", func(t *testing.T) {
		ev := testEvent()
		ev.InputTranscript = ""

		_, err := ExtractPrompt(ev)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMalformedRequest))
	})
}

func TestExtractSessionAttributes(t *testing.T) {
	t.Run("属性マップをそのまま返す", func(t *testing.T) {
		attrs := ExtractSessionAttributes(testEvent())
		assert.Equal(t, map[string]string{"userTier": "gold"}, attrs)
	})

	t.Run("属性がない場合は空マップを返す", func(t *testing.T) {
		ev := testEvent()
		ev.SessionState.SessionAttributes = nil

		attrs := ExtractSessionAttributes(ev)
		require.NotNil(t, attrs)
		assert.Empty(t, attrs)
	})
}

func TestBuildTerminalResponse(t *testing.T) {
	t.Run("成功時はインテント状態が Fulfilled になる", func(t *testing.T) {
		ev := testEvent()
		attrs := ExtractSessionAttributes(ev)
		outcome := domain.Fulfilled("here is your image: https://example.com/x.png")

		resp := BuildTerminalResponse(ev, attrs, outcome)

		assert.Equal(t, "Fulfilled", resp.SessionState.Intent.State)
		assert.Equal(t, "GenerateImageIntent", resp.SessionState.Intent.Name)
		require.NotNil(t, resp.SessionState.DialogAction)
		assert.Equal(t, DialogActionClose, resp.SessionState.DialogAction.Type)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, ContentTypePlainText, resp.Messages[0].ContentType)
		assert.Equal(t, outcome.Message, resp.Messages[0].Content)
		assert.Equal(t, "session-123", resp.SessionID)
		assert.Equal(t, attrs, resp.SessionState.SessionAttributes)
		assert.Equal(t, map[string]string{"channel": "web"}, resp.RequestAttributes)
	})

	t.Run("失敗時はインテント状態が Failed になる", func(t *testing.T) {
		ev := testEvent()
		resp := BuildTerminalResponse(ev, nil, domain.Failed("sorry"))

		assert.Equal(t, "Failed", resp.SessionState.Intent.State)
	})

	t.Run("リクエスト属性がない場合は null としてシリアライズされる", func(t *testing.T) {
		ev := testEvent()
		ev.RequestAttributes = nil

		resp := BuildTerminalResponse(ev, nil, domain.Failed("sorry"))
		data, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"requestAttributes":null`)
	})

	t.Run("元のイベントを変更しない", func(t *testing.T) {
		ev := testEvent()
		_ = BuildTerminalResponse(ev, nil, domain.Fulfilled("ok"))

		assert.Equal(t, "ReadyForFulfillment", ev.SessionState.Intent.State)
	})
}
