// Package gateway builds the payment-gateway redirect URLs issued after a
// successful order-create. The two gateways take different query contracts.
package gateway

import (
	"fmt"
	"net/url"
	"strings"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/config"

	"github.com/google/uuid"
)

type RedirectBuilder struct {
	epayBase    string
	linepayBase string
}

func NewRedirectBuilder(cfg config.GatewayConfig) *RedirectBuilder {
	return &RedirectBuilder{
		epayBase:    cfg.EpayBaseURL,
		linepayBase: cfg.LinepayBaseURL,
	}
}

// Build returns the redirect URL for the order's payment method.
// epay wants amount + a url-encoded "name×qty" item list + orderId;
// linepay wants amount + orderId only.
func (b *RedirectBuilder) Build(method order.PaymentMethod, amountCents int64, orderID uuid.UUID, lines []order.DraftLine) (string, error) {
	switch method {
	case order.PaymentEpay:
		return b.epay(amountCents, orderID, lines), nil
	case order.PaymentLinepay:
		return b.linepay(amountCents, orderID), nil
	default:
		return "", fmt.Errorf("unsupported payment method: %s", method)
	}
}

func (b *RedirectBuilder) epay(amountCents int64, orderID uuid.UUID, lines []order.DraftLine) string {
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = fmt.Sprintf("%s×%d", l.Name, l.Quantity)
	}

	q := url.Values{}
	q.Set("amount", fmt.Sprintf("%d", amountCents))
	q.Set("items", strings.Join(names, ","))
	q.Set("orderId", orderID.String())
	return b.epayBase + "?" + q.Encode()
}

func (b *RedirectBuilder) linepay(amountCents int64, orderID uuid.UUID) string {
	q := url.Values{}
	q.Set("amount", fmt.Sprintf("%d", amountCents))
	q.Set("orderId", orderID.String())
	return b.linepayBase + "?" + q.Encode()
}
