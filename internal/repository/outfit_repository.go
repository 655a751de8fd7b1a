package repository

import (
	"context"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
)

// 提案コーデの取得だけを約束。
type OutfitRepository interface {
	List(ctx context.Context) ([]model.Outfit, error)
	FindByID(ctx context.Context, id string) (model.Outfit, error)
}
