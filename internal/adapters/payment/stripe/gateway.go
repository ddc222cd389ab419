// Package stripe implements the payment gateway on Stripe Checkout.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway talks to Stripe with one API client.
type Gateway struct {
	api *client.API
}

// NewGateway builds a gateway authenticated with secretKey.
func NewGateway(secretKey string) *Gateway {
	return &Gateway{api: client.New(secretKey, nil)}
}

var _ gateways.PaymentGateway = (*Gateway)(nil)

func (g *Gateway) CreateCheckoutSession(ctx context.Context, in gateways.CheckoutSessionInput) (*gateways.CheckoutSession, error) {
	params := buildCheckoutParams(in)
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, mapError(err)
	}
	return toCheckoutSession(session), nil
}

func (g *Gateway) GetCheckoutSession(ctx context.Context, sessionID string) (*gateways.CheckoutSession, error) {
	params := &stripeapi.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, mapError(err)
	}
	return toCheckoutSession(session), nil
}

// buildCheckoutParams describes a one-off payment for a single line item.
func buildCheckoutParams(in gateways.CheckoutSessionInput) *stripeapi.CheckoutSessionParams {
	params := &stripeapi.CheckoutSessionParams{
		Mode: stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripeapi.String(in.Currency),
					UnitAmount: stripeapi.Int64(in.UnitAmount),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripeapi.String(in.PackageName),
					},
				},
				Quantity: stripeapi.Int64(1),
			},
		},
		CustomerEmail: stripeapi.String(in.CustomerEmail),
		SuccessURL:    stripeapi.String(in.SuccessURL),
		CancelURL:     stripeapi.String(in.CancelURL),
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}

func toCheckoutSession(s *stripeapi.CheckoutSession) *gateways.CheckoutSession {
	out := &gateways.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out
}

// mapError keeps Stripe's rejection of our input apart from outages.
func mapError(err error) error {
	var stripeErr *stripeapi.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Type == stripeapi.ErrorTypeInvalidRequest {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, stripeErr.Msg)
		}
	}
	return fmt.Errorf("%w: %v", apperrors.ErrGateway, err)
}
