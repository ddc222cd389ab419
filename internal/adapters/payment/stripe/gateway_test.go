package stripe

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCheckoutParams(t *testing.T) {
	params := buildCheckoutParams(gateways.CheckoutSessionInput{
		PackageName:   "Standard",
		EmployeeLimit: 10,
		CustomerEmail: "hr@acme.com",
		UnitAmount:    800,
		Currency:      "usd",
		SuccessURL:    "https://app.example.com/ok",
		CancelURL:     "https://app.example.com/no",
		Metadata:      map[string]string{"employeeLimit": "10", "name": "Standard"},
	})

	assert.Equal(t, "payment", *params.Mode)
	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(1), *item.Quantity)
	assert.Equal(t, int64(800), *item.PriceData.UnitAmount)
	assert.Equal(t, "usd", *item.PriceData.Currency)
	assert.Equal(t, "Standard", *item.PriceData.ProductData.Name)
	assert.Equal(t, "hr@acme.com", *params.CustomerEmail)
	assert.Equal(t, "https://app.example.com/ok", *params.SuccessURL)
	assert.Equal(t, "https://app.example.com/no", *params.CancelURL)
	assert.Equal(t, "10", params.Metadata["employeeLimit"])
	assert.Equal(t, "Standard", params.Metadata["name"])
}

func TestToCheckoutSession(t *testing.T) {
	session := toCheckoutSession(&stripeapi.CheckoutSession{
		ID:              "cs_1",
		PaymentStatus:   stripeapi.CheckoutSessionPaymentStatusPaid,
		CustomerDetails: &stripeapi.CheckoutSessionCustomerDetails{Email: "hr@acme.com"},
		PaymentIntent:   &stripeapi.PaymentIntent{ID: "pi_1"},
		AmountTotal:     800,
		Currency:        stripeapi.CurrencyUSD,
	})

	assert.Equal(t, "paid", session.PaymentStatus)
	assert.Equal(t, "hr@acme.com", session.CustomerEmail)
	assert.Equal(t, "pi_1", session.PaymentIntentID)
	assert.Equal(t, "usd", session.Currency)
	assert.NotNil(t, session.Metadata)
}

func TestMapError(t *testing.T) {
	notFound := &stripeapi.Error{HTTPStatusCode: http.StatusNotFound, Msg: "No such checkout.session"}
	assert.ErrorIs(t, mapError(notFound), apperrors.ErrValidation)

	invalid := &stripeapi.Error{HTTPStatusCode: http.StatusBadRequest, Type: stripeapi.ErrorTypeInvalidRequest}
	assert.ErrorIs(t, mapError(invalid), apperrors.ErrValidation)

	outage := &stripeapi.Error{HTTPStatusCode: http.StatusServiceUnavailable, Type: stripeapi.ErrorTypeAPI}
	assert.ErrorIs(t, mapError(outage), apperrors.ErrGateway)

	assert.ErrorIs(t, mapError(errors.New("dial tcp: timeout")), apperrors.ErrGateway)
}
