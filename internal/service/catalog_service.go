package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/xupateste/ctlg-tros/internal/dto"
	"github.com/xupateste/ctlg-tros/internal/model"
	"github.com/xupateste/ctlg-tros/internal/repository"
)

const storefrontTTL = 5 * time.Minute

// CatalogService serves the public storefront and the owner-facing product
// operations. Reads go through a Redis cache keyed by tenant slug; every
// catalog mutation drops the cached entry.
type CatalogService interface {
	Storefront(ctx context.Context, slug string) (dto.StorefrontResponse, error)
	Products(ctx context.Context, tenant string) ([]model.Product, error)
	CreateProduct(ctx context.Context, tenant string, raw map[string]any) (model.Product, error)
	UpdateProduct(ctx context.Context, tenant, id string, raw map[string]any) (map[string]any, error)
	RemoveProduct(ctx context.Context, tenant, id string) (string, error)
	UpsertProducts(ctx context.Context, tenant string, items []map[string]any) ([]model.Product, error)
}

type catalogService struct {
	tenants  repository.TenantRepository
	products repository.ProductRepository
	rdb      *redis.Client
}

func NewCatalogService(tenants repository.TenantRepository, products repository.ProductRepository, rdb *redis.Client) CatalogService {
	return &catalogService{tenants: tenants, products: products, rdb: rdb}
}

func storefrontKey(slug string) string {
	return fmt.Sprintf("storefront:%s", slug)
}

// Storefront returns the tenant profile together with its full catalog.
// Cache misses fall through to the store; cache errors are logged and the
// request is served from the store anyway.
func (s *catalogService) Storefront(ctx context.Context, slug string) (dto.StorefrontResponse, error) {
	key := storefrontKey(slug)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var resp dto.StorefrontResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
			log.Warn().Str("tenant", slug).Msg("discarding corrupt storefront cache entry")
		}
	}

	tenant, err := s.tenants.Get(ctx, slug)
	if err != nil {
		return dto.StorefrontResponse{}, err
	}
	products, err := s.products.List(ctx, slug)
	if err != nil {
		return dto.StorefrontResponse{}, err
	}

	resp := dto.StorefrontResponse{Tenant: tenant, Products: products}
	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, data, storefrontTTL).Err(); err != nil {
				log.Warn().Err(err).Str("tenant", slug).Msg("failed to cache storefront")
			}
		}
	}
	return resp, nil
}

func (s *catalogService) Products(ctx context.Context, tenant string) ([]model.Product, error) {
	return s.products.List(ctx, tenant)
}

func (s *catalogService) CreateProduct(ctx context.Context, tenant string, raw map[string]any) (model.Product, error) {
	product, err := s.products.Create(ctx, tenant, raw)
	if err != nil {
		return model.Product{}, err
	}
	s.invalidate(ctx, tenant)
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, tenant, id string, raw map[string]any) (map[string]any, error) {
	patch, err := s.products.Update(ctx, tenant, id, raw)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenant)
	return patch, nil
}

func (s *catalogService) RemoveProduct(ctx context.Context, tenant, id string) (string, error) {
	removed, err := s.products.Remove(ctx, tenant, id)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx, tenant)
	return removed, nil
}

func (s *catalogService) UpsertProducts(ctx context.Context, tenant string, items []map[string]any) ([]model.Product, error) {
	products, err := s.products.Upsert(ctx, tenant, items)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenant)
	return products, nil
}

func (s *catalogService) invalidate(ctx context.Context, tenant string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, storefrontKey(tenant)).Err(); err != nil {
		log.Warn().Err(err).Str("tenant", tenant).Msg("failed to invalidate storefront cache")
	}
}
