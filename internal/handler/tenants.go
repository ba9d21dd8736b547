package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xupateste/ctlg-tros/internal/apierror"
	"github.com/xupateste/ctlg-tros/internal/dto"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/service"
	"github.com/xupateste/ctlg-tros/internal/store"
)

type TenantsHandler struct {
	svc     service.TenantService
	tenants repository.TenantRepository
}

func NewTenantsHandler(svc service.TenantService, tenants repository.TenantRepository) *TenantsHandler {
	return &TenantsHandler{svc: svc, tenants: tenants}
}

// Intake provisions a new store. The signup form consumes plain-text error
// bodies, so unlike the rest of the API this endpoint does not use the JSON
// error envelope.
func (h *TenantsHandler) Intake(c *gin.Context) {
	var req dto.TenantIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "JSON invalido")
		return
	}
	if req.Email == "" || req.Password == "" || req.StoreName == "" {
		c.String(http.StatusUnprocessableEntity, "email, password y storeName son requeridos")
		return
	}
	if _, err := h.svc.Intake(c.Request.Context(), req); err != nil {
		c.String(http.StatusBadRequest, "Fallo la creación de la tienda")
		return
	}
	c.JSON(http.StatusOK, dto.TenantIntakeResponse{Success: true})
}

func (h *TenantsHandler) List(c *gin.Context) {
	tenants, err := h.tenants.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tiendas"))
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (h *TenantsHandler) Get(c *gin.Context) {
	tenant, err := h.tenants.Get(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Tienda no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener la tienda"))
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *TenantsHandler) Update(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	patch, err := h.tenants.Update(c.Request.Context(), c.Param("tenant"), raw)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Tienda no encontrada"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, patch)
}

func (h *TenantsHandler) UpdateMercadoPago(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	if err := h.tenants.UpdateMercadoPago(c.Request.Context(), c.Param("tenant"), raw); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Tienda no encontrada"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *TenantsHandler) Remove(c *gin.Context) {
	slug, err := h.tenants.Remove(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Tienda no encontrada"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": slug})
}
