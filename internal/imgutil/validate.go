package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ValidateImage はバイト列が有効な画像データであることを検証し、
// 検出されたフォーマット名（"png" 等）を返します。
// image.Decode がサポートするフォーマットに対応しています。
func ValidateImage(data []byte) (string, error) {
	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return format, nil
}
