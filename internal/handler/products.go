package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xupateste/ctlg-tros/internal/apierror"
	"github.com/xupateste/ctlg-tros/internal/service"
	"github.com/xupateste/ctlg-tros/internal/store"
)

type ProductsHandler struct{ svc service.CatalogService }

func NewProductsHandler(svc service.CatalogService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Storefront is the public endpoint a generated store renders from.
func (h *ProductsHandler) Storefront(c *gin.Context) {
	resp, err := h.svc.Storefront(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Tienda no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar la tienda"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.svc.Products(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	product, err := h.svc.CreateProduct(c.Request.Context(), c.Param("tenant"), raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	patch, err := h.svc.UpdateProduct(c.Request.Context(), c.Param("tenant"), c.Param("id"), raw)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, patch)
}

func (h *ProductsHandler) Remove(c *gin.Context) {
	id, err := h.svc.RemoveProduct(c.Request.Context(), c.Param("tenant"), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": id})
}

// Upsert bulk-imports products: items with an id are patched, the rest are
// created. All writes land in one atomic batch.
func (h *ProductsHandler) Upsert(c *gin.Context) {
	var items []map[string]any
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("La lista de productos no puede estar vacía"))
		return
	}
	products, err := h.svc.UpsertProducts(c.Request.Context(), c.Param("tenant"), items)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, products)
}
