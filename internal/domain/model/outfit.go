package model

// OutfitItem はコーデに含まれる1点。
type OutfitItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Outfit は提案コーデ。TotalPrice は Items の合計をそのまま持つ。
type Outfit struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Creator    string       `json:"creator"`
	Likes      int          `json:"likes"`
	Items      []OutfitItem `json:"items"`
	TotalPrice float64      `json:"totalPrice"`
	Category   string       `json:"category"`
	MainImage  string       `json:"mainImage"`
}
