package checkout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"iphones-store/internal/catalog"
	"iphones-store/internal/config"
	"iphones-store/internal/logger"
	"iphones-store/internal/order"
)

// Result tells the handler where to send the customer after a
// successful submission.
type Result struct {
	// RedirectURL is either the messaging deep link or the local
	// confirmation path, depending on the fulfillment mode.
	RedirectURL string
	// External marks a redirect that leaves the store.
	External bool
	// OrderID is set only for backend fulfillment.
	OrderID int
}

type Service interface {
	Submit(ctx context.Context, p *catalog.Product, d Draft) (*Result, error)
}

type service struct {
	orders         order.Service
	whatsAppNumber string
	mode           string
}

func NewService(orders order.Service, cfg *config.Config) Service {
	return &service{
		orders:         orders,
		whatsAppNumber: cfg.WhatsAppNumber,
		mode:           cfg.FulfillmentMode,
	}
}

// Submit validates the draft and runs the configured fulfillment flow.
// An invalid draft returns before any side effect.
func (s *service) Submit(ctx context.Context, p *catalog.Product, d Draft) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitCheckout"),
		zap.Int("iphone_id", p.ID),
	)

	if s.mode == config.FulfillmentBackend {
		id, err := s.orders.Create(ctx, BuildOrderInput(p, d))
		if err != nil {
			return nil, err
		}
		log.Info("checkout fulfilled via backend order", zap.Int("order_id", id))
		return &Result{
			RedirectURL: fmt.Sprintf("/order-confirmation?orderId=%d", id),
			OrderID:     id,
		}, nil
	}

	link := WhatsAppLink(s.whatsAppNumber, ComposeMessage(p, d))
	log.Info("checkout fulfilled via messaging redirect")
	return &Result{RedirectURL: link, External: true}, nil
}
