package pipeline

import (
	"context"

	"github.com/shouni/lex-bedrock-image-bot/internal/bedrock"
)

// --- Mocks ---

type mockInvoker struct {
	generateFunc func(ctx context.Context, req bedrock.GenerationRequest) ([]byte, error)
	lastRequest  bedrock.GenerationRequest
	called       bool
}

func (m *mockInvoker) GenerateImage(ctx context.Context, req bedrock.GenerationRequest) ([]byte, error) {
	m.called = true
	m.lastRequest = req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return []byte("fake-image"), nil
}

type mockStore struct {
	saveErr    error
	presignErr error

	savedKey   string
	savedData  []byte
	saveCalled bool

	presignedKey  string
	presignCalled bool
}

func (m *mockStore) Save(ctx context.Context, key string, data []byte) error {
	m.saveCalled = true
	m.savedKey = key
	m.savedData = data
	return m.saveErr
}

func (m *mockStore) PresignedURL(ctx context.Context, key string) (string, error) {
	m.presignCalled = true
	m.presignedKey = key
	if m.presignErr != nil {
		return "", m.presignErr
	}
	return "https://bucket.s3.amazonaws.com/" + key + "?X-Amz-Signature=abc", nil
}

type mockShortener struct {
	short  string
	err    error
	called bool
}

func (m *mockShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	m.called = true
	if m.err != nil {
		return "", m.err
	}
	return m.short, nil
}
