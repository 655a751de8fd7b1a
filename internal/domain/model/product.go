package model

// ProductRecord は外部カタログの生レコード。
// フィールド名の系統が2つ（Nombre/precio/img と name/price/image）混在しているため、
// 呼び出し側で正規化させず、Snapshot() で1つの形に揃えてから使う。
type ProductRecord struct {
	ID string `json:"id"`

	// 主系統
	Nombre string  `json:"Nombre,omitempty"`
	Precio float64 `json:"precio,omitempty"`
	Img    string  `json:"img,omitempty"`

	// 副系統
	Name  string  `json:"name,omitempty"`
	Price float64 `json:"price,omitempty"`
	Image string  `json:"image,omitempty"`

	Categoria          string   `json:"categoria,omitempty"`
	Descripcion        string   `json:"descripcion,omitempty"`
	Material           string   `json:"material,omitempty"`
	ColoresDisponibles []string `json:"coloresDisponibles,omitempty"`
	TallasDisponibles  []string `json:"tallasDisponibles,omitempty"`
	Disponible         bool     `json:"disponible"`
	Rating             float64  `json:"rating,omitempty"`
}

// ProductSnapshot は正規化済みの内部形。reducerにはこの形だけを渡す。
type ProductSnapshot struct {
	ProductID string
	Name      string
	UnitPrice float64
	ImageRef  string
}

// Snapshot は主系統を優先して正規化する。
// 主系統が空（ゼロ値）のフィールドだけ副系統で埋める。
func (p ProductRecord) Snapshot() ProductSnapshot {
	name := p.Nombre
	if name == "" {
		name = p.Name
	}

	price := p.Precio
	if price == 0 {
		price = p.Price
	}

	img := p.Img
	if img == "" {
		img = p.Image
	}

	return ProductSnapshot{
		ProductID: p.ID,
		Name:      name,
		UnitPrice: price,
		ImageRef:  img,
	}
}
