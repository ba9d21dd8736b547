package model

// Product belongs to exactly one tenant. Slug embeds the store-assigned id
// as its tail and is recomputed whenever the title changes.
type Product struct {
	ID            string    `json:"id" bson:"-"`
	Slug          string    `json:"slug" bson:"slug"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Category      string    `json:"category" bson:"category"`
	Image         string    `json:"image" bson:"image"`
	Type          string    `json:"type" bson:"type"` // normal | featured | hidden | unavailable
	Price         float64   `json:"price" bson:"price"`
	OriginalPrice float64   `json:"originalPrice" bson:"originalPrice"`
	PromoText     string    `json:"promoText" bson:"promoText"`
	Mqo           int64     `json:"mqo" bson:"mqo"`             // minimum order quantity
	NumPiezas     int64     `json:"numPiezas" bson:"numPiezas"` // units per pack
	Visibility    bool      `json:"visibility" bson:"visibility"`
	Options       []Variant `json:"options" bson:"options"`
	CreatedAt     int64     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64     `json:"updatedAt" bson:"updatedAt"`
}

// Variant is a named option group on a product ("Color", "Talla").
// Count limits how many sub-options a shopper can pick.
type Variant struct {
	ID       string          `json:"id" bson:"id"`
	Title    string          `json:"title" bson:"title"`
	Count    int64           `json:"count" bson:"count"`
	Required bool            `json:"required" bson:"required"`
	Options  []VariantOption `json:"options" bson:"options"`
}

type VariantOption struct {
	ID    string  `json:"id" bson:"id"`
	Title string  `json:"title" bson:"title"`
	Price float64 `json:"price" bson:"price"`
}
