package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

// OutfitUsecase は提案コーデの一覧と「コーデごとカートに入れる」を担当します。
type OutfitUsecase struct {
	outfitRepo repo.OutfitRepository
	cart       *CartStore
}

func NewOutfitUsecase(outfitRepo repo.OutfitRepository, cart *CartStore) *OutfitUsecase {
	return &OutfitUsecase{outfitRepo: outfitRepo, cart: cart}
}

type OutfitListOutput struct {
	Items []model.Outfit `json:"items"`
	Total int            `json:"total"`
}

// ListOutfits はカテゴリ絞り込みつき一覧。
// "Trending"（または未指定）は全件を返す。
func (u *OutfitUsecase) ListOutfits(ctx context.Context, categoria string) (OutfitListOutput, error) {
	outfits, err := u.outfitRepo.List(ctx)
	if err != nil {
		return OutfitListOutput{}, NewHTTPError(http.StatusInternalServerError, "outfit error")
	}

	if categoria == "" || strings.EqualFold(categoria, "Trending") {
		return OutfitListOutput{Items: outfits, Total: len(outfits)}, nil
	}

	filtered := make([]model.Outfit, 0, len(outfits))
	for _, o := range outfits {
		if strings.EqualFold(o.Category, categoria) {
			filtered = append(filtered, o)
		}
	}

	return OutfitListOutput{Items: filtered, Total: len(filtered)}, nil
}

// AddOutfitToCart はコーデの構成商品を1点ずつカートへ追加する。
func (u *OutfitUsecase) AddOutfitToCart(ctx context.Context, outfitID string) (model.CartState, error) {
	if strings.TrimSpace(outfitID) == "" {
		return model.CartState{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	outfit, err := u.outfitRepo.FindByID(ctx, outfitID)
	if err == repo.ErrNotFound {
		return model.CartState{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.CartState{}, NewHTTPError(http.StatusInternalServerError, "outfit error")
	}

	for _, it := range outfit.Items {
		u.cart.AddToCart(model.ProductRecord{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Image: it.Image,
		}, 1, "", "")
	}

	return u.cart.State(), nil
}
