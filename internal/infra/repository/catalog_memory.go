package repository

import (
	"context"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

// CatalogMemoryRepository はFirestore未設定の開発環境用のサンプルカタログ。
// 絞り込みの挙動はFirestore実装と同じ判定を使う。
type CatalogMemoryRepository struct {
	products []model.ProductRecord
}

func NewCatalogMemoryRepository() *CatalogMemoryRepository {
	return &CatalogMemoryRepository{products: sampleProducts()}
}

func (r *CatalogMemoryRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.ProductRecord, error) {
	out := []model.ProductRecord{}
	for _, p := range r.products {
		if !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

func (r *CatalogMemoryRepository) FindByID(ctx context.Context, id string) (model.ProductRecord, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.ProductRecord{}, repo.ErrNotFound
}

func sampleProducts() []model.ProductRecord {
	return []model.ProductRecord{
		{
			ID:                 "1",
			Nombre:             "Sudadera Relaxed Fit",
			Precio:             45.99,
			Img:                "Sudadera Relaxed-fix.png",
			Categoria:          "Sudaderas",
			Descripcion:        "Sudadera de corte relajado perfecta para el día a día.",
			Material:           "Algodón 100% orgánico",
			ColoresDisponibles: []string{"Negro", "Gris", "Blanco", "Azul marino"},
			TallasDisponibles:  []string{"XS", "S", "M", "L", "XL"},
			Disponible:         true,
			Rating:             4.5,
		},
		{
			ID:                 "2",
			Nombre:             "Jogger Blanco Premium",
			Precio:             35.99,
			Img:                "jogger blanco.png",
			Categoria:          "Pantalones",
			Descripcion:        "Jogger de estilo moderno con ajuste cómodo.",
			Material:           "Mezcla de algodón y poliéster (80/20)",
			ColoresDisponibles: []string{"Blanco", "Negro", "Gris", "Azul"},
			TallasDisponibles:  []string{"S", "M", "L", "XL"},
			Disponible:         true,
			Rating:             4.3,
		},
		{
			ID:                 "3",
			Nombre:             "Hoodie Urban Style",
			Precio:             52.99,
			Img:                "Sudadera Relaxed-fix.png",
			Categoria:          "Sudaderas",
			Descripcion:        "Hoodie con diseño urbano contemporáneo.",
			Material:           "Algodón orgánico con forro interior de felpa",
			ColoresDisponibles: []string{"Gris", "Negro", "Blanco", "Verde militar"},
			TallasDisponibles:  []string{"XS", "S", "M", "L", "XL", "XXL"},
			Disponible:         true,
			Rating:             4.7,
		},
		{
			ID:                 "4",
			Nombre:             "Camiseta Básica Premium",
			Precio:             24.99,
			Img:                "jogger blanco.png",
			Categoria:          "Camisetas",
			Descripcion:        "Camiseta esencial de algodón suave.",
			Material:           "Algodón peinado",
			ColoresDisponibles: []string{"Blanco", "Negro", "Gris"},
			TallasDisponibles:  []string{"S", "M", "L", "XL"},
			Disponible:         true,
			Rating:             4.2,
		},
	}
}
