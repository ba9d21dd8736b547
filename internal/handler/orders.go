package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xupateste/ctlg-tros/internal/apierror"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/store"
)

type OrdersHandler struct{ orders repository.OrderRepository }

func NewOrdersHandler(orders repository.OrderRepository) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

func (h *OrdersHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Update patches an order verbatim. Owners use it to flip the moderation
// flags (checked, deleted) from their dashboard.
func (h *OrdersHandler) Update(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	patch, err := h.orders.Update(c.Request.Context(), c.Param("tenant"), c.Param("id"), raw)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, patch)
}

func (h *OrdersHandler) Remove(c *gin.Context) {
	id, err := h.orders.Remove(c.Request.Context(), c.Param("tenant"), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": id})
}
