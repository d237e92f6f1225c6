package payment

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

// MercadoPago implements Provider over Checkout Pro: a preference is
// created per booking and the client pays at its init point URL.
type MercadoPago struct {
	preferences preference.Client
	payments    mppayment.Client
	baseURL     string
}

func NewMercadoPago(accessToken, publicBaseURL string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		preferences: preference.NewClient(cfg),
		payments:    mppayment.NewClient(cfg),
		baseURL:     publicBaseURL,
	}, nil
}

func (p *MercadoPago) InitCheckout(
	ctx context.Context,
	b *models.Booking,
	svc *models.Service,
) (*Checkout, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         strconv.FormatUint(uint64(svc.ID), 10),
				Title:      svc.Name,
				Quantity:   1,
				UnitPrice:  b.PriceAtBooking,
				CurrencyID: b.Currency,
			},
		},
		ExternalReference: b.PaymentRef,
		NotificationURL:   p.baseURL + "/api/webhooks/payment",
		BackURLs: &preference.BackURLsRequest{
			Success: fmt.Sprintf("%s/bookings/%s/return", p.baseURL, b.PaymentRef),
			Pending: fmt.Sprintf("%s/bookings/%s/return", p.baseURL, b.PaymentRef),
			Failure: fmt.Sprintf("%s/bookings/%s/return", p.baseURL, b.PaymentRef),
		},
	}

	resource, err := p.preferences.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &Checkout{
		SessionID: resource.ID,
		URL:       resource.InitPoint,
	}, nil
}

func (p *MercadoPago) GetPayment(
	ctx context.Context,
	paymentID string,
) (*Info, error) {

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment id %q", paymentID)
	}

	resource, err := p.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &Info{
		ExternalReference: resource.ExternalReference,
		Status:            normalizeStatus(resource.Status),
	}, nil
}

// Mercado Pago payment statuses:
// https://www.mercadopago.com/developers/en/docs/checkout-pro/additional-content/status
func normalizeStatus(s string) string {
	switch s {
	case "approved":
		return StatusApproved
	case "rejected":
		return StatusRejected
	case "cancelled":
		return StatusCancelled
	case "expired":
		return StatusExpired
	case "refunded", "charged_back":
		return StatusRefunded
	default:
		return StatusPending
	}
}

var _ Provider = (*MercadoPago)(nil)
