package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xupateste/ctlg-tros/internal/config"
	"github.com/xupateste/ctlg-tros/internal/handler"
	"github.com/xupateste/ctlg-tros/internal/middleware"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/service"
	"github.com/xupateste/ctlg-tros/internal/store"
	"github.com/xupateste/ctlg-tros/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store/Redis
// db is nil when the in-memory store driver is active (tests, local dev).
func New(cfg *config.Config, st store.Store, db *mongo.Database, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Schemas ──────────────────────────────────────────────────────────────
	tenantSchema := schema.NewTenantSchema(schema.ProductionDefaults())
	productSchema := schema.NewProductSchema()
	contactSchema := schema.NewContactSchema()

	// ── Repositories ─────────────────────────────────────────────────────────
	tenantRepo := repository.NewTenantRepository(st, tenantSchema)
	productRepo := repository.NewProductRepository(st, productSchema)
	contactRepo := repository.NewContactRepository(st, contactSchema)
	orderRepo := repository.NewOrderRepository(st)

	// ── Services ─────────────────────────────────────────────────────────────
	tenantSvc := service.NewTenantService(tenantRepo, dispatcher, cfg)
	catalogSvc := service.NewCatalogService(tenantRepo, productRepo, rdb)
	checkoutSvc := service.NewCheckoutService(tenantRepo, orderRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	tenantsH := handler.NewTenantsHandler(tenantSvc, tenantRepo)
	productsH := handler.NewProductsHandler(catalogSvc)
	contactsH := handler.NewContactsHandler(contactRepo, dispatcher)
	ordersH := handler.NewOrdersHandler(orderRepo)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		// Signup — throttled separately from the general limiter
		api.POST("/tenant", middleware.IntakeRateLimiter(), tenantsH.Intake)
		api.GET("/tenants", tenantsH.List)

		t := api.Group("/:tenant")
		{
			// Public storefront surface
			t.GET("", productsH.Storefront)
			t.GET("/products", productsH.List)
			t.POST("/checkout", checkoutH.Checkout)
			t.POST("/contact", contactsH.Touch)

			// Owner dashboard surface
			t.GET("/profile", tenantsH.Get)
			t.PUT("/profile", tenantsH.Update)
			t.PUT("/mercadopago", tenantsH.UpdateMercadoPago)
			t.DELETE("/profile", tenantsH.Remove)

			t.POST("/products", productsH.Create)
			t.POST("/products/batch", productsH.Upsert)
			t.PUT("/products/:id", productsH.Update)
			t.DELETE("/products/:id", productsH.Remove)

			t.GET("/contacts", contactsH.List)
			t.POST("/contacts", contactsH.Create)
			t.PUT("/contacts/:id", contactsH.Update)
			t.DELETE("/contacts/:id", contactsH.Remove)

			t.GET("/orders", ordersH.List)
			t.PUT("/orders/:id", ordersH.Update)
			t.DELETE("/orders/:id", ordersH.Remove)
		}
	}

	return r
}
