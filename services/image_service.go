package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveBase64Image writes a base64 payload (raw or data-URI) under
// uploads/<subdir> and returns the relative path stored on the record,
// e.g. "receipts/1712345678.png". The extension follows the data-URI mime
// type; raw payloads without one are saved as jpg.
func SaveBase64Image(b64 string, subdir string) (string, error) {
	ext := imageExt(b64)
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join("uploads", subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

func imageExt(b64 string) string {
	if !strings.HasPrefix(b64, "data:") {
		return ".jpg"
	}
	mime := b64[len("data:"):]
	if end := strings.IndexAny(mime, ";,"); end >= 0 {
		mime = mime[:end]
	}
	switch mime {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
