package repository

import (
	"context"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

// OutfitMemoryRepository は提案コーデのインメモリ実装。
// コーデはまだサーバー管理していないので固定データを返す。
type OutfitMemoryRepository struct {
	outfits []model.Outfit
}

func NewOutfitMemoryRepository() *OutfitMemoryRepository {
	return &OutfitMemoryRepository{outfits: defaultOutfits()}
}

func (r *OutfitMemoryRepository) List(ctx context.Context) ([]model.Outfit, error) {
	out := make([]model.Outfit, len(r.outfits))
	copy(out, r.outfits)
	return out, nil
}

func (r *OutfitMemoryRepository) FindByID(ctx context.Context, id string) (model.Outfit, error) {
	for _, o := range r.outfits {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Outfit{}, repo.ErrNotFound
}

func defaultOutfits() []model.Outfit {
	return []model.Outfit{
		{
			ID:      "1",
			Name:    "Look Casual Perfecto",
			Creator: "Ana M.",
			Likes:   142,
			Items: []model.OutfitItem{
				{ID: "item1", Name: "Sudadera Relaxed", Price: 45.99, Image: "Sudadera Relaxed-fix.png"},
				{ID: "item2", Name: "Jogger Blanco", Price: 35.99, Image: "jogger blanco.png"},
			},
			TotalPrice: 81.98,
			Category:   "Casual",
			MainImage:  "Sudadera Relaxed-fix.png",
		},
		{
			ID:      "2",
			Name:    "Deportivo Urbano",
			Creator: "Carlos R.",
			Likes:   89,
			Items: []model.OutfitItem{
				{ID: "item3", Name: "Jogger Blanco", Price: 35.99, Image: "jogger blanco.png"},
				{ID: "item4", Name: "Sudadera Sport", Price: 52.99, Image: "Sudadera Relaxed-fix.png"},
			},
			TotalPrice: 88.98,
			Category:   "Deportivo",
			MainImage:  "jogger blanco.png",
		},
		{
			ID:      "3",
			Name:    "Estilo Minimalista",
			Creator: "María L.",
			Likes:   203,
			Items: []model.OutfitItem{
				{ID: "item5", Name: "Sudadera Básica", Price: 39.99, Image: "Sudadera Relaxed-fix.png"},
			},
			TotalPrice: 39.99,
			Category:   "Trending",
			MainImage:  "Sudadera Relaxed-fix.png",
		},
	}
}
