package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/xupateste/ctlg-tros/internal/config"
	"github.com/xupateste/ctlg-tros/internal/dto"
	"github.com/xupateste/ctlg-tros/internal/model"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/worker"
)

// TenantService owns store signup.
type TenantService interface {
	Intake(ctx context.Context, req dto.TenantIntakeRequest) (model.Tenant, error)
}

type tenantService struct {
	tenants    repository.TenantRepository
	dispatcher Enqueuer
	cfg        *config.Config
}

func NewTenantService(tenants repository.TenantRepository, dispatcher Enqueuer, cfg *config.Config) TenantService {
	return &tenantService{tenants: tenants, dispatcher: dispatcher, cfg: cfg}
}

// Intake provisions a new store from the signup form and queues the welcome
// mail. Only the known signup fields reach the coercion schema, so any extra
// input is stripped before it can touch the document.
func (s *tenantService) Intake(ctx context.Context, req dto.TenantIntakeRequest) (model.Tenant, error) {
	raw := map[string]any{
		"slug":          schema.Slugify(req.StoreName),
		"title":         req.BusinessName,
		"phone":         req.StorePhone,
		"phonePersonal": req.PersonalPhone,
		"country":       req.Country,
	}

	tenant, err := s.tenants.Create(ctx, req.Email, req.Password, raw)
	if err != nil {
		return model.Tenant{}, err
	}

	welcome := worker.EmailJobPayload{
		ToEmail: req.Email,
		Subject: "Tu tienda está lista",
		Body: fmt.Sprintf(
			"Hola %s,\n\nTu tienda ya está disponible en https://%s/%s\n\nComparte el enlace con tus clientes y recibe pedidos por WhatsApp.",
			tenant.Title, s.cfg.Domain, tenant.Slug,
		),
	}
	if err := s.dispatcher.EnqueueEmail(ctx, welcome); err != nil {
		// Signup already succeeded; a lost welcome mail is not worth failing it.
		log.Error().Err(err).Str("tenant", tenant.Slug).Msg("failed to enqueue welcome email")
	}

	return tenant, nil
}
