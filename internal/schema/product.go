package schema

import (
	"time"

	"github.com/xupateste/ctlg-tros/internal/model"
)

// ProductSchema casts raw product documents for the three lifecycle stages.
type ProductSchema struct {
	now func() int64
}

func NewProductSchema() *ProductSchema {
	return &ProductSchema{now: func() int64 { return time.Now().Unix() }}
}

// WithClock replaces the timestamp source.
func (s *ProductSchema) WithClock(now func() int64) *ProductSchema {
	s.now = now
	return s
}

// SlugFor derives the unique product slug from the payload's current title
// and the store-assigned id.
func (s *ProductSchema) SlugFor(raw map[string]any, id string) string {
	return DocumentSlug(stringOr(raw, "title", ""), id)
}

var productStringKeys = []string{
	"slug", "title", "description", "category", "image", "type", "promoText",
}

// Fetch casts a raw persisted product into the full shape the storefront
// renders. Never returns an undefined field.
func (s *ProductSchema) Fetch(raw map[string]any) model.Product {
	if raw == nil {
		raw = map[string]any{}
	}
	now := s.now()
	return model.Product{
		ID:            stringOr(raw, "id", ""),
		Slug:          stringOr(raw, "slug", ""),
		Title:         stringOr(raw, "title", ""),
		Description:   stringOr(raw, "description", ""),
		Category:      stringOr(raw, "category", ""),
		Image:         stringOr(raw, "image", ""),
		Type:          stringOr(raw, "type", "normal"),
		Price:         numberOr(raw, "price", 0),
		OriginalPrice: numberOr(raw, "originalPrice", 0),
		PromoText:     stringOr(raw, "promoText", ""),
		Mqo:           intOr(raw, "mqo", 1),
		NumPiezas:     intOr(raw, "numPiezas", 1),
		Visibility:    boolOr(raw, "visibility", true),
		Options:       castVariants(raw["options"]),
		CreatedAt:     intOr(raw, "createdAt", now),
		UpdatedAt:     intOr(raw, "updatedAt", now),
	}
}

// Create casts the payload persisted for a new product. The caller is
// expected to have filled id and slug already — slug derivation needs the
// store-assigned id, which is allocated before the write.
func (s *ProductSchema) Create(raw map[string]any) map[string]any {
	now := s.now()
	doc := map[string]any{
		"type":          "normal",
		"price":         float64(0),
		"originalPrice": float64(0),
		"mqo":           int64(1),
		"numPiezas":     int64(1),
		"visibility":    true,
		"options":       []any{},
		"createdAt":     now,
		"updatedAt":     now,
	}
	for _, key := range productStringKeys {
		putString(doc, raw, key)
	}
	putString(doc, raw, "id")
	putNumber(doc, raw, "price")
	putNumber(doc, raw, "originalPrice")
	putInt(doc, raw, "mqo")
	putInt(doc, raw, "numPiezas")
	putBool(doc, raw, "visibility")
	putInt(doc, raw, "createdAt")
	putInt(doc, raw, "updatedAt")
	if v, ok := raw["options"]; ok {
		doc["options"] = variantsDoc(castVariants(v))
	}
	return doc
}

// Update casts a partial product payload into a sparse patch.
func (s *ProductSchema) Update(raw map[string]any) map[string]any {
	patch := map[string]any{}
	for _, key := range productStringKeys {
		putString(patch, raw, key)
	}
	putNumber(patch, raw, "price")
	putNumber(patch, raw, "originalPrice")
	putInt(patch, raw, "mqo")
	putInt(patch, raw, "numPiezas")
	putBool(patch, raw, "visibility")
	putInt(patch, raw, "updatedAt")
	if v, ok := raw["options"]; ok {
		patch["options"] = variantsDoc(castVariants(v))
	}
	return patch
}

func castVariants(v any) []model.Variant {
	items, ok := asRecordSlice(v)
	if !ok {
		return []model.Variant{}
	}
	variants := make([]model.Variant, 0, len(items))
	for _, item := range items {
		variant := model.Variant{
			ID:       stringOr(item, "id", ""),
			Title:    stringOr(item, "title", ""),
			Count:    intOr(item, "count", 0),
			Required: boolOr(item, "required", false),
			Options:  []model.VariantOption{},
		}
		options, _ := asRecordSlice(item["options"])
		for _, opt := range options {
			variant.Options = append(variant.Options, model.VariantOption{
				ID:    stringOr(opt, "id", ""),
				Title: stringOr(opt, "title", ""),
				Price: numberOr(opt, "price", 0),
			})
		}
		variants = append(variants, variant)
	}
	return variants
}

func variantsDoc(variants []model.Variant) []any {
	out := make([]any, 0, len(variants))
	for _, v := range variants {
		options := make([]any, 0, len(v.Options))
		for _, opt := range v.Options {
			options = append(options, map[string]any{
				"id":    opt.ID,
				"title": opt.Title,
				"price": opt.Price,
			})
		}
		out = append(out, map[string]any{
			"id":       v.ID,
			"title":    v.Title,
			"count":    v.Count,
			"required": v.Required,
			"options":  options,
		})
	}
	return out
}
