package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"ticketee/internal/model"

	"github.com/google/uuid"
)

// ObjectStore 活動媒體檔案的物件儲存
type ObjectStore interface {
	// 上傳：回傳可公開存取的 URL
	Upload(ctx context.Context, key string, asset model.MediaAsset) (string, error)
	// 刪除：依 Upload 回傳的 URL 刪除物件
	Delete(ctx context.Context, url string) error
}

// ObjectKey 產生 "<event id>/<position>-<file name>"，position 避免同名檔案互相覆蓋
func ObjectKey(eventID uuid.UUID, position int, name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	return fmt.Sprintf("%s/%d-%s", eventID, position, base)
}
