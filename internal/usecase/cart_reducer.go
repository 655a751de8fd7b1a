package usecase

import (
	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
)

// reducerのアクション種別
type CartActionKind string

const (
	CartActionAddItem        CartActionKind = "ADD_ITEM"
	CartActionRemoveItem     CartActionKind = "REMOVE_ITEM"
	CartActionUpdateQuantity CartActionKind = "UPDATE_QUANTITY"
	CartActionClearCart      CartActionKind = "CLEAR_CART"
	CartActionLoadCart       CartActionKind = "LOAD_CART"
)

// CartAction は1回の状態遷移の入力。種別ごとに使うフィールドが異なる。
type CartAction struct {
	Kind CartActionKind

	// ADD_ITEM
	Product       model.ProductSnapshot
	Quantity      int64
	SelectedColor string
	SelectedSize  string

	// REMOVE_ITEM / UPDATE_QUANTITY
	LineID string

	// LOAD_CART
	Lines []model.CartLine
}

// ReduceCart は純粋なreducer。副作用もI/Oも持たず、前状態とアクションから次状態だけを返す。
// 未知の種別は状態をそのまま返す（エラーにしない方針）。
func ReduceCart(state model.CartState, action CartAction) model.CartState {
	switch action.Kind {
	case CartActionAddItem:
		return reduceAddItem(state, action)

	case CartActionRemoveItem:
		return reduceRemoveItem(state, action.LineID)

	case CartActionUpdateQuantity:
		// 0以下は削除として扱う（1へ丸めない）
		if action.Quantity <= 0 {
			return reduceRemoveItem(state, action.LineID)
		}
		return reduceUpdateQuantity(state, action.LineID, action.Quantity)

	case CartActionClearCart:
		return model.EmptyCartState()

	case CartActionLoadCart:
		// nilは空として扱う
		return model.DeriveTotals(action.Lines)

	default:
		return state
	}
}

// 同一の商品+バリエーションは数量加算、なければ末尾に追加。
// 加算のときスナップショット項目（名前・価格・画像）は更新しない。
func reduceAddItem(state model.CartState, a CartAction) model.CartState {
	qty := a.Quantity
	if qty <= 0 {
		qty = 1
	}

	lineID := model.DeriveLineID(a.Product.ProductID, a.SelectedColor, a.SelectedSize)

	for i, l := range state.Lines {
		if l.LineID == lineID {
			next := make([]model.CartLine, len(state.Lines))
			copy(next, state.Lines)
			next[i].Quantity += qty
			return model.DeriveTotals(next)
		}
	}

	color := a.SelectedColor
	if color == "" {
		color = model.VariantUnspecified
	}
	size := a.SelectedSize
	if size == "" {
		size = model.VariantUnspecified
	}

	next := make([]model.CartLine, len(state.Lines), len(state.Lines)+1)
	copy(next, state.Lines)
	next = append(next, model.CartLine{
		LineID:        lineID,
		ProductID:     a.Product.ProductID,
		Name:          a.Product.Name,
		UnitPrice:     a.Product.UnitPrice,
		ImageRef:      a.Product.ImageRef,
		Quantity:      qty,
		SelectedColor: color,
		SelectedSize:  size,
	})
	return model.DeriveTotals(next)
}

// 一致する明細IDだけを除外。無ければ内容は変わらない。
func reduceRemoveItem(state model.CartState, lineID string) model.CartState {
	next := make([]model.CartLine, 0, len(state.Lines))
	for _, l := range state.Lines {
		if l.LineID != lineID {
			next = append(next, l)
		}
	}
	return model.DeriveTotals(next)
}

// 数量の絶対値セット（加算ではない）。
func reduceUpdateQuantity(state model.CartState, lineID string, qty int64) model.CartState {
	next := make([]model.CartLine, len(state.Lines))
	copy(next, state.Lines)
	for i := range next {
		if next[i].LineID == lineID {
			next[i].Quantity = qty
		}
	}
	return model.DeriveTotals(next)
}
