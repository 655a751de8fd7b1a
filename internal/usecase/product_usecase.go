package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

// ProductUsecase は公開カタログの業務ロジックです。
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ListProductsInput struct {
	Categoria string
	Q         string
	Limit     int
}

type ProductListOutput struct {
	Items []model.ProductRecord `json:"items"`
	Total int                   `json:"total"`
}

// ListProducts はカテゴリ絞り込み＋部分一致検索つきの一覧。
// カテゴリは大文字小文字を区別しない（画面側の挙動に合わせる）。
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Limit < 0 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Categoria: in.Categoria,
		Q:         in.Q,
		Limit:     in.Limit,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

// GetProductDetail はIDで1件取得。
func (u *ProductUsecase) GetProductDetail(ctx context.Context, id string) (model.ProductRecord, error) {
	if strings.TrimSpace(id) == "" {
		return model.ProductRecord{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.ProductRecord{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.ProductRecord{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	return p, nil
}
