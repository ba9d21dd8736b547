// cmd/seedstore/main.go — Crea/actualiza la tienda de demo con su catálogo.
// Uso: go run cmd/seedstore/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/xupateste/ctlg-tros/internal/infra"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

func main() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	database := os.Getenv("MONGO_DB")
	if database == "" {
		database = "ctlgtros"
	}

	db, err := infra.NewMongo(uri, database)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	st := store.NewMongo(db)

	ctx := context.Background()
	tenants := repository.NewTenantRepository(st, schema.NewTenantSchema(schema.ProductionDefaults()))
	products := repository.NewProductRepository(st, schema.NewProductSchema())

	slug := "demo"
	tenant, err := tenants.Get(ctx, slug)
	if err == nil {
		fmt.Printf("tienda '%s' ya existe, solo se recarga el catálogo\n", tenant.Slug)
	} else {
		tenant, err = tenants.Create(ctx, "demo@ctlg-tros.com", "1234", map[string]any{
			"slug":        slug,
			"title":       "Ferretería Los Amigos",
			"description": "Haz tu pedido por WhatsApp",
			"phone":       "51999888777",
			"country":     "PE",
		})
		if err != nil {
			log.Fatalf("tenant create error: %v", err)
		}
	}

	catalog := []map[string]any{
		{"title": "Martillo de uña 16oz", "price": 25.5, "category": "Herramientas"},
		{"title": "Cinta métrica 5m", "price": 12, "category": "Herramientas"},
		{"title": "Pintura látex blanco 1gal", "price": 48.9, "category": "Pinturas", "mqo": 2},
	}
	for _, raw := range catalog {
		product, err := products.Create(ctx, tenant.Slug, raw)
		if err != nil {
			log.Fatalf("product create error: %v", err)
		}
		fmt.Printf("  producto '%s' → %s\n", product.Title, product.Slug)
	}

	fmt.Printf("✅ Tienda '%s' lista con password '1234'\n", tenant.Slug)
}
