package schema

import (
	"time"

	"github.com/xupateste/ctlg-tros/internal/model"
)

// Defaults is the immutable default tenant shape. It is injected into the
// schema instead of living as a package singleton so tests and alternate
// deployments can supply their own.
type Defaults struct {
	Color       string
	Country     string
	Description string
	Keywords    string
	Layout      string
	Phone       string
	Title       string
	Location    model.Location
	Flags       []string
}

// ProductionDefaults mirrors the shape new stores are provisioned with.
func ProductionDefaults() Defaults {
	return Defaults{
		Color:       "teal",
		Country:     "PE",
		Description: "Haz tu pedido por WhatsApp",
		Keywords:    "tienda, online, whatsapp, delivery, pedidos",
		Layout:      "portrait",
		Phone:       "",
		Title:       "Mi tienda",
		Location:    model.Location{},
		Flags:       []string{},
	}
}

// TenantSchema casts raw tenant documents for the three lifecycle stages.
type TenantSchema struct {
	defaults Defaults
	products *ProductSchema
	now      func() int64
}

func NewTenantSchema(defaults Defaults) *TenantSchema {
	return &TenantSchema{
		defaults: defaults,
		products: NewProductSchema(),
		now:      func() int64 { return time.Now().Unix() },
	}
}

// WithClock replaces the timestamp source. Used by tests and backfills that
// need deterministic createdAt/updatedAt defaults.
func (s *TenantSchema) WithClock(now func() int64) *TenantSchema {
	s.now = now
	return s
}

// tenantStringKeys are the free-text fields that coerce 1:1 on every stage.
var tenantStringKeys = []string{
	"slug", "title", "description", "category", "phone", "phonePersonal",
	"color", "country", "layout", "highlight", "hook", "pixel", "ga",
	"instagram", "facebook", "twitter", "keywords", "banner", "logo",
	"message", "featuredText", "promoText", "place", "placeUrl",
	"sales1", "sales2", "sales3", "sales4", "sales5",
	"sales6", "sales7", "sales8", "sales9", "sales10",
}

// Fetch casts a raw persisted tenant (possibly empty) into the full client
// shape. Every declared field is present; re-applying Fetch to its own output
// changes nothing.
func (s *TenantSchema) Fetch(raw map[string]any) model.Tenant {
	if raw == nil {
		raw = map[string]any{}
	}
	now := s.now()
	t := model.Tenant{
		ID:            stringOr(raw, "id", ""),
		Slug:          stringOr(raw, "slug", ""),
		Title:         stringOr(raw, "title", ""),
		Description:   stringOr(raw, "description", ""),
		Category:      stringOr(raw, "category", ""),
		Phone:         stringOr(raw, "phone", s.defaults.Phone),
		PhonePersonal: stringOr(raw, "phonePersonal", ""),
		Color:         stringOr(raw, "color", s.defaults.Color),
		Country:       stringOr(raw, "country", s.defaults.Country),
		Layout:        stringOr(raw, "layout", s.defaults.Layout),
		Highlight:     stringOr(raw, "highlight", ""),
		Hook:          stringOr(raw, "hook", ""),
		Pixel:         stringOr(raw, "pixel", ""),
		GA:            stringOr(raw, "ga", ""),
		Instagram:     stringOr(raw, "instagram", ""),
		Facebook:      stringOr(raw, "facebook", ""),
		Twitter:       stringOr(raw, "twitter", ""),
		Keywords:      stringOr(raw, "keywords", ""),
		Banner:        stringOr(raw, "banner", ""),
		Logo:          stringOr(raw, "logo", ""),
		Message:       stringOr(raw, "message", ""),
		FeaturedText:  stringOr(raw, "featuredText", ""),
		PromoText:     stringOr(raw, "promoText", ""),
		Place:         stringOr(raw, "place", ""),
		PlaceURL:      stringOr(raw, "placeUrl", ""),
		FakeVisitors:  intOr(raw, "fakeVisitors", 0),
		ShowMqo:       boolOr(raw, "showMqo", false),
		Sales1:        stringOr(raw, "sales1", ""),
		Sales2:        stringOr(raw, "sales2", ""),
		Sales3:        stringOr(raw, "sales3", ""),
		Sales4:        stringOr(raw, "sales4", ""),
		Sales5:        stringOr(raw, "sales5", ""),
		Sales6:        stringOr(raw, "sales6", ""),
		Sales7:        stringOr(raw, "sales7", ""),
		Sales8:        stringOr(raw, "sales8", ""),
		Sales9:        stringOr(raw, "sales9", ""),
		Sales10:       stringOr(raw, "sales10", ""),
		Location:      castLocation(raw["location"], s.defaults.Location),
		Fields:        castFields(raw["fields"]),
		Flags:         castFlags(raw["flags"], s.defaults.Flags),
		MercadoPago:   castMercadoPago(raw["mercadopago"]),
		Products:      []model.Product{},
		CreatedAt:     intOr(raw, "createdAt", now),
		UpdatedAt:     intOr(raw, "updatedAt", now),
	}
	if items, ok := asRecordSlice(raw["products"]); ok {
		products := make([]model.Product, 0, len(items))
		for _, item := range items {
			products = append(products, s.products.Fetch(item))
		}
		t.Products = products
	}
	return t
}

// Create casts an intake payload into the document persisted for a brand-new
// tenant. Omitted fields of the documented default set are filled in;
// createdAt/updatedAt default to now but caller-supplied values survive.
// Unknown input keys never reach the output.
func (s *TenantSchema) Create(raw map[string]any) map[string]any {
	now := s.now()
	doc := map[string]any{
		"color":       s.defaults.Color,
		"country":     s.defaults.Country,
		"description": s.defaults.Description,
		"keywords":    s.defaults.Keywords,
		"layout":      s.defaults.Layout,
		"phone":       s.defaults.Phone,
		"title":       s.defaults.Title,
		"location":    locationDoc(s.defaults.Location),
		"flags":       append([]string{}, s.defaults.Flags...),
		"mercadopago": nil,
		"products":    []any{},
		"createdAt":   now,
		"updatedAt":   now,
	}
	for _, key := range tenantStringKeys {
		putString(doc, raw, key)
	}
	putInt(doc, raw, "fakeVisitors")
	putBool(doc, raw, "showMqo")
	putInt(doc, raw, "createdAt")
	putInt(doc, raw, "updatedAt")
	if v, ok := raw["location"]; ok {
		doc["location"] = locationDoc(castLocation(v, s.defaults.Location))
	}
	if v, ok := raw["fields"]; ok {
		doc["fields"] = fieldsDoc(castFields(v))
	}
	if v, ok := raw["flags"]; ok {
		doc["flags"] = castFlags(v, s.defaults.Flags)
	}
	return doc
}

// Update casts a partial tenant payload into a sparse patch: only the fields
// present in the input are returned, coerced. The payment credentials object
// is stripped outright — it has its own operation.
// createdAt is likewise never patchable; only Create sets it, and slug is
// excluded because it mirrors the document key the record is stored under.
func (s *TenantSchema) Update(raw map[string]any) map[string]any {
	patch := map[string]any{}
	for _, key := range tenantStringKeys {
		if key == "slug" {
			continue
		}
		putString(patch, raw, key)
	}
	putInt(patch, raw, "fakeVisitors")
	putBool(patch, raw, "showMqo")
	putInt(patch, raw, "updatedAt")
	if v, ok := raw["location"]; ok {
		patch["location"] = locationDoc(castLocation(v, model.Location{}))
	}
	if v, ok := raw["fields"]; ok {
		patch["fields"] = fieldsDoc(castFields(v))
	}
	if v, ok := raw["flags"]; ok {
		patch["flags"] = castFlags(v, nil)
	}
	return patch
}

// MercadoPago casts the dedicated payment-credentials patch. The object as a
// whole may be null; when present every member is defaulted.
func (s *TenantSchema) MercadoPago(raw map[string]any) map[string]any {
	v, ok := raw["mercadopago"]
	if !ok || v == nil {
		return map[string]any{"mercadopago": nil}
	}
	mp := castMercadoPago(v)
	if mp == nil {
		return map[string]any{"mercadopago": nil}
	}
	return map[string]any{"mercadopago": map[string]any{
		"token":      mp.Token,
		"refresh":    mp.Refresh,
		"expiration": mp.Expiration,
	}}
}

// IsValid reports whether a raw record round-trips through fetch coercion.
// Coercion is total, so any raw document is acceptable; validity failure is a
// boolean outcome reserved for inputs that are not documents at all.
func (s *TenantSchema) IsValid(raw map[string]any) bool {
	return raw != nil
}

func castLocation(v any, fallback model.Location) model.Location {
	raw, ok := asRecord(v)
	if !ok {
		return fallback
	}
	loc := model.Location{Address: stringOr(raw, "address", "")}
	if coords, ok := asRecord(raw["coordinates"]); ok {
		loc.Coordinates.Lat = numberOr(coords, "lat", 0)
		loc.Coordinates.Lng = numberOr(coords, "lng", 0)
	}
	return loc
}

func castFields(v any) []model.Field {
	items, ok := asRecordSlice(v)
	if !ok {
		return []model.Field{}
	}
	fields := make([]model.Field, 0, len(items))
	for _, item := range items {
		f := model.Field{
			ID:       stringOr(item, "id", ""),
			Title:    stringOr(item, "title", ""),
			Type:     stringOr(item, "type", "text"),
			Note:     stringOr(item, "note", ""),
			Required: boolOr(item, "required", false),
		}
		if f.Type == "radio" {
			options, _ := asRecordSlice(item["options"])
			f.Options = make([]model.FieldOption, 0, len(options))
			for _, opt := range options {
				f.Options = append(f.Options, model.FieldOption{
					ID:    stringOr(opt, "id", ""),
					Title: stringOr(opt, "title", ""),
					Note:  stringOr(opt, "note", ""),
				})
			}
		}
		fields = append(fields, f)
	}
	return fields
}

func castFlags(v any, fallback []string) []string {
	if flags, ok := asStringSlice(v); ok {
		return flags
	}
	if fallback == nil {
		return []string{}
	}
	return append([]string{}, fallback...)
}

func castMercadoPago(v any) *model.MercadoPago {
	raw, ok := asRecord(v)
	if !ok {
		return nil
	}
	return &model.MercadoPago{
		Token:      stringOr(raw, "token", ""),
		Refresh:    stringOr(raw, "refresh", ""),
		Expiration: intOr(raw, "expiration", 0),
	}
}

// locationDoc / fieldsDoc turn typed casts back into storable documents so
// create/update patches hold plain records rather than structs.
func locationDoc(loc model.Location) map[string]any {
	return map[string]any{
		"address": loc.Address,
		"coordinates": map[string]any{
			"lat": loc.Coordinates.Lat,
			"lng": loc.Coordinates.Lng,
		},
	}
}

func fieldsDoc(fields []model.Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		doc := map[string]any{
			"id":       f.ID,
			"title":    f.Title,
			"type":     f.Type,
			"note":     f.Note,
			"required": f.Required,
		}
		if f.Type == "radio" {
			options := make([]any, 0, len(f.Options))
			for _, opt := range f.Options {
				options = append(options, map[string]any{
					"id":    opt.ID,
					"title": opt.Title,
					"note":  opt.Note,
				})
			}
			doc["options"] = options
		}
		out = append(out, doc)
	}
	return out
}
