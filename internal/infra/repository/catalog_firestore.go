package repository

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

// CatalogFirestoreRepository はFirestoreの商品コレクションを読む。
// ドキュメントのフィールド名は2系統（Nombre/precio/img と name/price/image）が
// 混在しているため、両対応で読み取ってそのままレコードに詰める。
type CatalogFirestoreRepository struct {
	fs  *firestore.Client
	col string
}

func NewCatalogFirestoreRepository(fs *firestore.Client, col string) *CatalogFirestoreRepository {
	if col == "" {
		col = "productos"
	}
	return &CatalogFirestoreRepository{fs: fs, col: col}
}

func (r *CatalogFirestoreRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.ProductRecord, error) {
	iter := r.fs.Collection(r.col).Documents(ctx)
	defer iter.Stop()

	out := []model.ProductRecord{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		p := decodeProduct(snap.Ref.ID, snap.Data())
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

func (r *CatalogFirestoreRepository) FindByID(ctx context.Context, id string) (model.ProductRecord, error) {
	snap, err := r.fs.Collection(r.col).Doc(id).Get(ctx)
	if snap != nil && !snap.Exists() {
		return model.ProductRecord{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductRecord{}, err
	}

	return decodeProduct(snap.Ref.ID, snap.Data()), nil
}

// カテゴリは完全一致（大小無視）、qは名前・説明の部分一致（大小無視）。
func matchesQuery(p model.ProductRecord, q repo.ProductListQuery) bool {
	if q.Categoria != "" && !strings.EqualFold(p.Categoria, q.Categoria) {
		return false
	}

	if q.Q != "" {
		needle := strings.ToLower(q.Q)
		name := strings.ToLower(p.Snapshot().Name)
		desc := strings.ToLower(p.Descripcion)
		if !strings.Contains(name, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}

	return true
}

func decodeProduct(id string, m map[string]any) model.ProductRecord {
	return model.ProductRecord{
		ID:                 id,
		Nombre:             pickString(m, "Nombre"),
		Precio:             pickFloat(m, "precio"),
		Img:                pickString(m, "img"),
		Name:               pickString(m, "name"),
		Price:              pickFloat(m, "price"),
		Image:              pickString(m, "image"),
		Categoria:          pickString(m, "categoria", "Categoria"),
		Descripcion:        pickString(m, "descripcion", "Descripcion"),
		Material:           pickString(m, "material"),
		ColoresDisponibles: pickStrings(m, "coloresDisponibles"),
		TallasDisponibles:  pickStrings(m, "tallasDisponibles"),
		Disponible:         pickBool(m, "disponible"),
		Rating:             pickFloat(m, "rating"),
	}
}

func pickString(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

func pickFloat(m map[string]any, keys ...string) float64 {
	if m == nil {
		return 0
	}
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch x := v.(type) {
		case float64:
			return x
		case int64:
			return float64(x)
		case int:
			return float64(x)
		case string:
			var f float64
			if _, err := fmt.Sscanf(strings.TrimSpace(x), "%g", &f); err == nil {
				return f
			}
		}
	}
	return 0
}

func pickBool(m map[string]any, keys ...string) bool {
	if m == nil {
		return false
	}
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

func pickStrings(m map[string]any, keys ...string) []string {
	if m == nil {
		return nil
	}
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		rows, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(rows))
		for _, row := range rows {
			if s, ok := row.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
