package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/xupateste/ctlg-tros/internal/dto"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/worker"
)

// defaultOrderMessage is used when the tenant has not customized its
// WhatsApp template. {{productos}} and {{total}} are the substitution slots.
const defaultOrderMessage = "¡Hola! Quiero hacer un pedido:\n\n{{productos}}\nTotal: {{total}}"

// CheckoutService turns a shopper's cart into a persisted order and the
// WhatsApp deep link that opens the conversation with the store.
type CheckoutService interface {
	Checkout(ctx context.Context, tenant string, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
}

type checkoutService struct {
	tenants    repository.TenantRepository
	orders     repository.OrderRepository
	dispatcher Enqueuer
}

func NewCheckoutService(tenants repository.TenantRepository, orders repository.OrderRepository, dispatcher Enqueuer) CheckoutService {
	return &checkoutService{tenants: tenants, orders: orders, dispatcher: dispatcher}
}

// Checkout persists the order, queues the contact touch and returns the
// wa.me link. The order is stored before the link is built so a shopper who
// never sends the message still shows up in the owner's order list.
func (s *checkoutService) Checkout(ctx context.Context, slug string, req dto.CheckoutRequest) (dto.CheckoutResponse, error) {
	tenant, err := s.tenants.Get(ctx, slug)
	if err != nil {
		return dto.CheckoutResponse{}, err
	}

	total := decimal.Zero
	for _, item := range req.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Count)))
	}

	order, err := s.orders.Intake(ctx, slug, orderDoc(req, total))
	if err != nil {
		return dto.CheckoutResponse{}, err
	}
	orderID, _ := order["id"].(string)

	touch := worker.ContactTouchPayload{
		Tenant: slug,
		Touch: map[string]any{
			"phone":       req.Phone,
			"name":        req.Name,
			"description": req.Note,
			"sales":       req.Sales,
		},
	}
	if err := s.dispatcher.EnqueueContactTouch(ctx, touch); err != nil {
		// The order is already saved; losing the touch only skips a visit count.
		log.Error().Err(err).Str("tenant", slug).Msg("failed to enqueue contact touch")
	}

	message := tenant.Message
	if strings.TrimSpace(message) == "" {
		message = defaultOrderMessage
	}
	message = strings.ReplaceAll(message, "{{productos}}", itemLines(req.Items))
	message = strings.ReplaceAll(message, "{{total}}", total.StringFixed(2))
	if req.Note != "" {
		message += "\n" + req.Note
	}

	link := fmt.Sprintf("https://wa.me/%s?text=%s",
		tenant.SalesPhone(req.Sales), url.QueryEscape(message))

	return dto.CheckoutResponse{OrderID: orderID, Link: link, Total: total}, nil
}

func itemLines(items []dto.CheckoutItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("• %d x %s", item.Count, item.Title))
		if item.Options != "" {
			b.WriteString(" (" + item.Options + ")")
		}
		b.WriteString(" - " + item.Price.Mul(decimal.NewFromInt(item.Count)).StringFixed(2))
		b.WriteString("\n")
	}
	return b.String()
}

func orderDoc(req dto.CheckoutRequest, total decimal.Decimal) map[string]any {
	items := make([]any, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, map[string]any{
			"id":      item.ID,
			"title":   item.Title,
			"price":   item.Price.InexactFloat64(),
			"count":   item.Count,
			"options": item.Options,
		})
	}
	fields := make([]any, 0, len(req.Fields))
	for _, f := range req.Fields {
		fields = append(fields, map[string]any{"title": f.Title, "value": f.Value})
	}
	return map[string]any{
		"phone":  req.Phone,
		"name":   req.Name,
		"note":   req.Note,
		"sales":  req.Sales,
		"items":  items,
		"fields": fields,
		"total":  total.InexactFloat64(),
	}
}
