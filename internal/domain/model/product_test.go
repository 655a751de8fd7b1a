package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductRecord_Snapshot_PrefersPrimarySchema(t *testing.T) {
	p := ProductRecord{
		ID:     "1",
		Nombre: "Sudadera Relaxed Fit",
		Precio: 45.99,
		Img:    "sudadera.png",
		Name:   "ignored",
		Price:  1.23,
		Image:  "ignored.png",
	}

	s := p.Snapshot()
	assert.Equal(t, "1", s.ProductID)
	assert.Equal(t, "Sudadera Relaxed Fit", s.Name)
	assert.InDelta(t, 45.99, s.UnitPrice, 1e-9)
	assert.Equal(t, "sudadera.png", s.ImageRef)
}

func TestProductRecord_Snapshot_FallsBackToSecondarySchema(t *testing.T) {
	p := ProductRecord{
		ID:    "2",
		Name:  "Jogger Blanco",
		Price: 35.99,
		Image: "jogger.png",
	}

	s := p.Snapshot()
	assert.Equal(t, "Jogger Blanco", s.Name)
	assert.InDelta(t, 35.99, s.UnitPrice, 1e-9)
	assert.Equal(t, "jogger.png", s.ImageRef)
}

func TestProductRecord_Snapshot_MixedSchemas(t *testing.T) {
	// フィールドごとに別系統でもよい
	p := ProductRecord{
		ID:     "3",
		Nombre: "Hoodie",
		Price:  52.99,
		Image:  "hoodie.png",
	}

	s := p.Snapshot()
	assert.Equal(t, "Hoodie", s.Name)
	assert.InDelta(t, 52.99, s.UnitPrice, 1e-9)
	assert.Equal(t, "hoodie.png", s.ImageRef)
}

func TestDeriveLineID(t *testing.T) {
	assert.Equal(t, "1_Negro_M", DeriveLineID("1", "Negro", "M"))
	assert.Equal(t, "1_default_default", DeriveLineID("1", "", ""))
	assert.Equal(t, "1_Negro_default", DeriveLineID("1", "Negro", ""))
	assert.Equal(t, "1_default_M", DeriveLineID("1", "", "M"))
}

func TestDeriveTotals(t *testing.T) {
	st := DeriveTotals([]CartLine{
		{LineID: "a", UnitPrice: 10, Quantity: 2},
		{LineID: "b", UnitPrice: 5.5, Quantity: 3},
	})

	assert.Equal(t, int64(5), st.TotalItems)
	assert.InDelta(t, 36.5, st.TotalPrice, 1e-9)
}

func TestDeriveTotals_NilLines(t *testing.T) {
	st := DeriveTotals(nil)

	assert.NotNil(t, st.Lines)
	assert.Empty(t, st.Lines)
	assert.Equal(t, int64(0), st.TotalItems)
	assert.InDelta(t, 0, st.TotalPrice, 1e-9)
}
