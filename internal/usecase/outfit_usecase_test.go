package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	infraRepo "github.com/RamiSparda/AppMovilApp/internal/infra/repository"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

type OutfitRepoMock struct{ mock.Mock }

func (m *OutfitRepoMock) List(ctx context.Context) ([]model.Outfit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Outfit), args.Error(1)
}

func (m *OutfitRepoMock) FindByID(ctx context.Context, id string) (model.Outfit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Outfit), args.Error(1)
}

func sampleOutfits() []model.Outfit {
	return []model.Outfit{
		{ID: "1", Name: "Look Casual", Category: "Casual"},
		{ID: "2", Name: "Deportivo Urbano", Category: "Deportivo"},
		{ID: "3", Name: "Minimalista", Category: "Trending"},
	}
}

func TestListOutfits_TrendingReturnsAll(t *testing.T) {
	outfitRepo := new(OutfitRepoMock)
	uc := NewOutfitUsecase(outfitRepo, nil)

	outfitRepo.On("List", mock.Anything).Return(sampleOutfits(), nil)

	for _, categoria := range []string{"", "Trending", "trending"} {
		out, err := uc.ListOutfits(context.Background(), categoria)
		require.NoError(t, err)
		assert.Equal(t, 3, out.Total)
	}
}

func TestListOutfits_FilterByCategory(t *testing.T) {
	outfitRepo := new(OutfitRepoMock)
	uc := NewOutfitUsecase(outfitRepo, nil)

	outfitRepo.On("List", mock.Anything).Return(sampleOutfits(), nil)

	out, err := uc.ListOutfits(context.Background(), "casual")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Look Casual", out.Items[0].Name)
}

func TestAddOutfitToCart(t *testing.T) {
	outfitRepo := new(OutfitRepoMock)
	cart := NewCartStore(infraRepo.NewKVMemoryRepository())
	defer cart.Close()

	uc := NewOutfitUsecase(outfitRepo, cart)

	outfitRepo.On("FindByID", mock.Anything, "1").Return(model.Outfit{
		ID:   "1",
		Name: "Look Casual",
		Items: []model.OutfitItem{
			{ID: "item1", Name: "Sudadera Relaxed", Price: 45.99, Image: "sudadera.png"},
			{ID: "item2", Name: "Jogger Blanco", Price: 35.99, Image: "jogger.png"},
		},
	}, nil)

	st, err := uc.AddOutfitToCart(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, st.Lines, 2)
	assert.Equal(t, "item1_default_default", st.Lines[0].LineID)
	assert.Equal(t, "Sudadera Relaxed", st.Lines[0].Name)
	assert.Equal(t, int64(1), st.Lines[0].Quantity)
	assert.Equal(t, model.VariantUnspecified, st.Lines[0].SelectedColor)
	assert.Equal(t, int64(2), st.TotalItems)
	assert.InDelta(t, 81.98, st.TotalPrice, 1e-9)
}

func TestAddOutfitToCart_Twice_AccumulatesQuantities(t *testing.T) {
	outfitRepo := new(OutfitRepoMock)
	cart := NewCartStore(infraRepo.NewKVMemoryRepository())
	defer cart.Close()

	uc := NewOutfitUsecase(outfitRepo, cart)

	outfitRepo.On("FindByID", mock.Anything, "3").Return(model.Outfit{
		ID:    "3",
		Items: []model.OutfitItem{{ID: "item5", Name: "Sudadera Básica", Price: 39.99}},
	}, nil)

	_, err := uc.AddOutfitToCart(context.Background(), "3")
	require.NoError(t, err)
	st, err := uc.AddOutfitToCart(context.Background(), "3")
	require.NoError(t, err)

	require.Len(t, st.Lines, 1)
	assert.Equal(t, int64(2), st.Lines[0].Quantity)
}

func TestAddOutfitToCart_NotFound(t *testing.T) {
	outfitRepo := new(OutfitRepoMock)
	uc := NewOutfitUsecase(outfitRepo, nil)

	outfitRepo.On("FindByID", mock.Anything, "999").
		Return(model.Outfit{}, repo.ErrNotFound)

	_, err := uc.AddOutfitToCart(context.Background(), "999")
	httpErr, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Status)
}

func TestAddOutfitToCart_EmptyID(t *testing.T) {
	uc := NewOutfitUsecase(new(OutfitRepoMock), nil)

	_, err := uc.AddOutfitToCart(context.Background(), "")
	httpErr, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Status)
}
