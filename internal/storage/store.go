// Package storage は生成画像の S3 への永続化と、時間制限付き署名付きURLの
// 発行を担当します。コアパスで使用するストレージ操作は put-object と
// presign-get の 2 つのみです (delete / list は行いません)。
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/shouni/lex-bedrock-image-bot/internal/domain"
)

const (
	// objectKeyPrefix はオブジェクトキーの固定プレフィックスです。
	objectKeyPrefix = "generatedImage"
	objectKeyExt    = ".png"

	contentTypePNG = "image/png"
)

// PutObjectAPI は S3 クライアントのうちアップロードに必要な操作のみを抽象化します。
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PresignGetAPI は署名付き GET URL の発行操作のみを抽象化します。
type PresignGetAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ArtifactStore は単一バケットに対するアーティファクト保存と共有リンク発行を行います。
type ArtifactStore struct {
	put     PutObjectAPI
	presign PresignGetAPI
	bucket  string
	expiry  time.Duration
}

// NewArtifactStore は依存関係を注入して ArtifactStore を初期化します。
func NewArtifactStore(put PutObjectAPI, presign PresignGetAPI, bucket string, expiry time.Duration) (*ArtifactStore, error) {
	if put == nil {
		return nil, fmt.Errorf("put (PutObjectAPI) is required")
	}
	if presign == nil {
		return nil, fmt.Errorf("presign (PresignGetAPI) is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("expiry must be positive")
	}
	return &ArtifactStore{put: put, presign: presign, bucket: bucket, expiry: expiry}, nil
}

// NewObjectKey は衝突耐性のあるオブジェクトキーを生成します。
// 固定プレフィックスに高エントロピーな UUID サフィックスを組み合わせるため、
// 並行する呼び出し同士が互いを上書きすることはありません。
func NewObjectKey() string {
	return fmt.Sprintf("%s_%s%s", objectKeyPrefix, uuid.NewString(), objectKeyExt)
}

// Save は生バイト列を設定済みバケットへ指定キーでアップロードします。
// 失敗 (権限・接続・クォータ) は domain.ErrPersistence として致命的に扱われ、
// リトライや部分成功の状態は存在しません。
func (s *ArtifactStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.put.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypePNG),
	})
	if err != nil {
		return fmt.Errorf("%w: upload to bucket %s failed: %v", domain.ErrPersistence, s.bucket, err)
	}
	return nil
}

// PresignedURL は保存済みオブジェクトに対する読み取り専用・時間制限付きの
// 署名付きURLを発行します。有効期限はオブジェクト自体の保持期間とは独立です。
func (s *ArtifactStore) PresignedURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("%w: presign for key %s failed: %v", domain.ErrPersistence, key, err)
	}
	return req.URL, nil
}
