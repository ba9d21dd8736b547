package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/xupateste/ctlg-tros/internal/apierror"
	"github.com/xupateste/ctlg-tros/internal/dto"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/service"
	"github.com/xupateste/ctlg-tros/internal/store"
	"github.com/xupateste/ctlg-tros/internal/worker"
)

type ContactsHandler struct {
	contacts   repository.ContactRepository
	dispatcher service.Enqueuer
}

func NewContactsHandler(contacts repository.ContactRepository, dispatcher service.Enqueuer) *ContactsHandler {
	return &ContactsHandler{contacts: contacts, dispatcher: dispatcher}
}

func (h *ContactsHandler) List(c *gin.Context) {
	contacts, err := h.contacts.List(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar contactos"))
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactsHandler) Create(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	contact, err := h.contacts.Create(c.Request.Context(), c.Param("tenant"), raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactsHandler) Update(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	patch, err := h.contacts.Update(c.Request.Context(), c.Param("tenant"), c.Param("id"), raw)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Contacto no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, patch)
}

func (h *ContactsHandler) Remove(c *gin.Context) {
	id, err := h.contacts.Remove(c.Request.Context(), c.Param("tenant"), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Contacto no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": id})
}

// Touch records a shopper interaction. Reconciliation runs in the worker
// pool, so the response only acknowledges that the touch was queued.
func (h *ContactsHandler) Touch(c *gin.Context) {
	var req dto.ContactTouchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	payload := worker.ContactTouchPayload{Tenant: c.Param("tenant"), Touch: req.Touch()}
	if err := h.dispatcher.EnqueueContactTouch(c.Request.Context(), payload); err != nil {
		log.Error().Err(err).Str("tenant", c.Param("tenant")).Msg("failed to enqueue contact touch")
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo registrar la visita"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true})
}
