package model

// 色・サイズ未指定のときに明細へ保存する表示用センチネル
const VariantUnspecified = "Sin especificar"

// 明細ID導出用のセンチネル（表示用とは別で固定）
const variantDefault = "default"

// CartLine はカートの1明細。
// Name/UnitPrice/ImageRef は追加時点の商品スナップショットで、以後の商品変更には追随しない。
type CartLine struct {
	LineID        string  `json:"id"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"price"`
	ImageRef      string  `json:"image"`
	Quantity      int64   `json:"quantity"`
	SelectedColor string  `json:"selectedColor"`
	SelectedSize  string  `json:"selectedSize"`
}

// DeriveLineID は (productId, color, size) から明細IDを決める純関数。
// 同じ商品+バリエーションの追加は必ず同じ明細に集約される。
func DeriveLineID(productID, color, size string) string {
	if color == "" {
		color = variantDefault
	}
	if size == "" {
		size = variantDefault
	}
	return productID + "_" + color + "_" + size
}
