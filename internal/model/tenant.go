package model

// Tenant is the canonical storefront shape of a merchant account.
// Every field is always present after fetch-casting — screens can render it
// without nil checks. Timestamps are whole seconds.
type Tenant struct {
	ID            string       `json:"id" bson:"-"`
	Slug          string       `json:"slug" bson:"slug"`
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description" bson:"description"`
	Category      string       `json:"category" bson:"category"`
	Phone         string       `json:"phone" bson:"phone"`
	PhonePersonal string       `json:"phonePersonal" bson:"phonePersonal"`
	Color         string       `json:"color" bson:"color"`
	Country       string       `json:"country" bson:"country"`
	Layout        string       `json:"layout" bson:"layout"` // portrait | landscape
	Highlight     string       `json:"highlight" bson:"highlight"`
	Hook          string       `json:"hook" bson:"hook"`
	Pixel         string       `json:"pixel" bson:"pixel"`
	GA            string       `json:"ga" bson:"ga"`
	Instagram     string       `json:"instagram" bson:"instagram"`
	Facebook      string       `json:"facebook" bson:"facebook"`
	Twitter       string       `json:"twitter" bson:"twitter"`
	Keywords      string       `json:"keywords" bson:"keywords"`
	Banner        string       `json:"banner" bson:"banner"`
	Logo          string       `json:"logo" bson:"logo"`
	Message       string       `json:"message" bson:"message"`
	FeaturedText  string       `json:"featuredText" bson:"featuredText"`
	PromoText     string       `json:"promoText" bson:"promoText"`
	Place         string       `json:"place" bson:"place"`
	PlaceURL      string       `json:"placeUrl" bson:"placeUrl"`
	FakeVisitors  int64        `json:"fakeVisitors" bson:"fakeVisitors"`
	ShowMqo       bool         `json:"showMqo" bson:"showMqo"`
	Sales1        string       `json:"sales1" bson:"sales1"`
	Sales2        string       `json:"sales2" bson:"sales2"`
	Sales3        string       `json:"sales3" bson:"sales3"`
	Sales4        string       `json:"sales4" bson:"sales4"`
	Sales5        string       `json:"sales5" bson:"sales5"`
	Sales6        string       `json:"sales6" bson:"sales6"`
	Sales7        string       `json:"sales7" bson:"sales7"`
	Sales8        string       `json:"sales8" bson:"sales8"`
	Sales9        string       `json:"sales9" bson:"sales9"`
	Sales10       string       `json:"sales10" bson:"sales10"`
	Location      Location     `json:"location" bson:"location"`
	Fields        []Field      `json:"fields" bson:"fields"`
	Flags         []string     `json:"flags" bson:"flags"`
	MercadoPago   *MercadoPago `json:"mercadopago" bson:"mercadopago"`
	Products      []Product    `json:"products" bson:"products"`
	CreatedAt     int64        `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64        `json:"updatedAt" bson:"updatedAt"`
}

// SalesPhone resolves a sales-contact key ("sales1".."sales10") to its phone
// number, falling back to the tenant's primary phone.
func (t Tenant) SalesPhone(key string) string {
	phones := map[string]string{
		"sales1": t.Sales1, "sales2": t.Sales2, "sales3": t.Sales3,
		"sales4": t.Sales4, "sales5": t.Sales5, "sales6": t.Sales6,
		"sales7": t.Sales7, "sales8": t.Sales8, "sales9": t.Sales9,
		"sales10": t.Sales10,
	}
	if phone, ok := phones[key]; ok && phone != "" {
		return phone
	}
	return t.Phone
}

// Location is an optional street address with numeric coordinates.
type Location struct {
	Address     string      `json:"address" bson:"address"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Field is a custom checkout form field configured by the tenant.
// Type discriminates the variant: "text" has no options, "radio" carries them.
type Field struct {
	ID       string        `json:"id" bson:"id"`
	Title    string        `json:"title" bson:"title"`
	Type     string        `json:"type" bson:"type"` // text | radio
	Note     string        `json:"note" bson:"note"`
	Required bool          `json:"required" bson:"required"`
	Options  []FieldOption `json:"options,omitempty" bson:"options,omitempty"`
}

type FieldOption struct {
	ID    string `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
	Note  string `json:"note" bson:"note"`
}

// MercadoPago holds the payment-integration credentials. The whole value is
// nullable; it is never mutated through the generic tenant update path.
type MercadoPago struct {
	Token      string `json:"token" bson:"token"`
	Refresh    string `json:"refresh" bson:"refresh"`
	Expiration int64  `json:"expiration" bson:"expiration"`
}
