package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

func TestKVMemoryRepository(t *testing.T) {
	r := NewKVMemoryRepository()
	ctx := context.Background()

	_, err := r.Get(ctx, "@cart")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, r.Set(ctx, "@cart", "[]"))

	got, err := r.Get(ctx, "@cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	require.NoError(t, r.Set(ctx, "@cart", `[{"id":"1_default_default"}]`))

	got, err = r.Get(ctx, "@cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1_default_default"}]`, got)
}

func TestOutfitMemoryRepository_List(t *testing.T) {
	r := NewOutfitMemoryRepository()

	got, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Look Casual Perfecto", got[0].Name)

	// 返ったスライスを書き換えても内部状態は変わらない
	got[0].Name = "mutated"
	again, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Look Casual Perfecto", again[0].Name)
}

func TestOutfitMemoryRepository_FindByID(t *testing.T) {
	r := NewOutfitMemoryRepository()

	o, err := r.FindByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Deportivo Urbano", o.Name)
	assert.Len(t, o.Items, 2)

	_, err = r.FindByID(context.Background(), "999")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
