package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles checkout and reconciliation.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	limits         listLimiter
}

func registerPaymentRoutes(verified gin.IRoutes, hr gin.IRoutes, paymentService portssvc.PaymentSvcFacade, limits listLimiter) {
	h := &paymentHandler{paymentService: paymentService, limits: limits}
	verified.POST("/create-checkout-session", h.createCheckoutSession)
	verified.PATCH("/package-payment-successful", h.reconcilePayment)
	hr.GET("/payment-history/:email", h.paymentHistory)
}

// createCheckoutSession godoc
// @Summary Start a package purchase
// @Description Opens a hosted checkout for the named catalog package and returns its URL.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   checkout body dto.CreateCheckoutSessionRequest true "Package to buy"
// @Success 200 {object} dto.CheckoutSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown package"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /create-checkout-session [post]
func (h *paymentHandler) createCheckoutSession(c *gin.Context) {
	var req dto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	url, err := h.paymentService.CreateCheckoutSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutSessionResponse{URL: url})
}

// reconcilePayment godoc
// @Summary Reconcile a completed checkout
// @Description Records the payment and credits the purchased seats exactly once per transaction.
// @Tags payments
// @Produce  json
// @Param   session_id query string true "Checkout session ID"
// @Success 200 {object} dto.ReconcilePaymentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /package-payment-successful [patch]
func (h *paymentHandler) reconcilePayment(c *gin.Context) {
	result, err := h.paymentService.ReconcilePayment(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReconcilePaymentResponse(result))
}

// paymentHistory godoc
// @Summary List an employer's payments
// @Description Payments of the calling HR, newest first.
// @Tags payments
// @Produce  json
// @Param   email path string true "HR email (must be the caller)"
// @Param   limit query int false "Maximum number of payments"
// @Success 200 {array} domain.Payment
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal Server Error"
// @Security BearerAuth
// @Router /payment-history/{email} [get]
func (h *paymentHandler) paymentHistory(c *gin.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}
	email := c.Param("email")
	if !requireSelf(c, caller, email) {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), email, h.limits.options(params))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
