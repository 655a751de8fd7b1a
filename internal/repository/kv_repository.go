package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// カート永続化に使う単純なキー/値ストアの約束。
// 値はシリアライズ済みテキスト。キーが無いときは ErrNotFound を返す。
type KVRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
