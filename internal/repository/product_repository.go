package repository

import (
	"context"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	Categoria string
	Q         string
	Limit     int
}

// 商品カタログの取得だけを約束。書き込みはこのアプリからは行わない。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.ProductRecord, error)
	FindByID(ctx context.Context, id string) (model.ProductRecord, error)
}
