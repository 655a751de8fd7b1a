package model

// CartState はカート全体。合計は常に Lines から導出し、独立に持ち回らない。
type CartState struct {
	Lines      []CartLine `json:"items"`
	TotalItems int64      `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

// EmptyCartState は初期状態（明細なし・合計ゼロ）。
func EmptyCartState() CartState {
	return CartState{Lines: []CartLine{}}
}

// DeriveTotals は lines から合計を計算し直した CartState を返す。
// 遷移のたびにここを通すことで合計のズレを防ぐ。
func DeriveTotals(lines []CartLine) CartState {
	if lines == nil {
		lines = []CartLine{}
	}

	var totalItems int64
	var totalPrice float64
	for _, l := range lines {
		totalItems += l.Quantity
		totalPrice += l.UnitPrice * float64(l.Quantity)
	}

	return CartState{
		Lines:      lines,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}
