package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/tadreeb/tadreeb-api/internal/checkout"
	"github.com/tadreeb/tadreeb-api/internal/constants"
	"github.com/tadreeb/tadreeb-api/internal/payment"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// CheckoutHandler drives the registration and payment steps
type CheckoutHandler struct {
	common *CommonServices
}

// NewCheckoutHandler creates a new CheckoutHandler instance
func NewCheckoutHandler(common *CommonServices) *CheckoutHandler {
	return &CheckoutHandler{common: common}
}

// CreateRegistrationRequest confirms a cohort selection
type CreateRegistrationRequest struct {
	ProgramSlug string    `json:"program_slug" binding:"required"`
	CohortID    uuid.UUID `json:"cohort_id" binding:"required"`
	PromoCode   string    `json:"promo_code"`
}

// RegistrationResponse returns the backend registration together with
// its authoritative price and the payment methods that can collect it
type RegistrationResponse struct {
	Registration   types.Registration `json:"registration"`
	FinalPrice     decimal.Decimal    `json:"final_price"`
	Currency       string             `json:"currency"`
	PaymentMethods []payment.Method   `json:"payment_methods"`
	Quote          *types.PriceQuote  `json:"quote,omitempty"`
}

// CreatePaymentRequest opens a payment on a confirmed registration
type CreatePaymentRequest struct {
	RegistrationID uuid.UUID       `json:"registration_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency"`
	Method         payment.Method  `json:"method" binding:"required"`
}

// PaymentResponse carries the provider handle the UI needs next:
// a publishable key for the card widget or a redirect URL for BNPL
type PaymentResponse struct {
	Intent    *types.PaymentIntent `json:"intent,omitempty"`
	Confirmed bool                 `json:"confirmed"`
}

// CreateRegistration walks the checkout flow for one request: select
// the cohort (availability re-checked from a fresh snapshot), apply the
// promo code for display, then confirm against the backend. The price
// returned is the backend's, not the advisory quote.
func (h *CheckoutHandler) CreateRegistration(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid registration request", err)
		return
	}

	ctx := c.Request.Context()
	session := sessionFromContext(c)

	program, err := h.common.api.GetProgramBySlug(ctx, req.ProgramSlug)
	if err != nil {
		sendFlowError(c, checkout.Classify(err, session))
		return
	}

	cohorts, err := h.common.api.ListCohorts(ctx, program.ID)
	if err != nil {
		sendFlowError(c, checkout.Classify(err, session))
		return
	}

	var selected *types.Cohort
	for i := range cohorts {
		if cohorts[i].ID == req.CohortID {
			selected = &cohorts[i]
			break
		}
	}
	if selected == nil {
		sendError(c, http.StatusNotFound, "Cohort not found for this program", nil)
		return
	}

	flow := checkout.NewFlow(h.common.api, session, *program)

	if err := flow.SelectCohort(*selected); err != nil {
		h.sendCheckoutError(c, err)
		return
	}

	if req.PromoCode != "" {
		if _, err := flow.ApplyPromo(ctx, req.PromoCode); err != nil {
			h.sendCheckoutError(c, err)
			return
		}
	}

	registration, err := flow.Confirm(ctx)
	if err != nil {
		h.sendCheckoutError(c, err)
		return
	}

	currency := registration.Currency
	if currency == "" {
		currency = constants.CurrencySAR
	}

	sendSuccess(c, http.StatusCreated, RegistrationResponse{
		Registration:   *registration,
		FinalPrice:     registration.FinalPrice,
		Currency:       currency,
		PaymentMethods: payment.EligibleMethods(registration.FinalPrice),
		Quote:          flow.Quote(),
	})
}

// CreatePayment opens payment collection for a confirmed registration
func (h *CheckoutHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment request", err)
		return
	}

	session := sessionFromContext(c)
	currency := req.Currency
	if currency == "" {
		currency = constants.CurrencySAR
	}

	flow := checkout.ResumeFlow(h.common.api, session, types.Registration{
		ID:         req.RegistrationID,
		FinalPrice: req.Amount,
		Currency:   currency,
	})

	intent, err := flow.Pay(c.Request.Context(), req.Method)
	if err != nil {
		h.sendCheckoutError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, PaymentResponse{
		Intent:    intent,
		Confirmed: flow.State() == checkout.StateConfirmed,
	})
}

// ListEnrollments returns the learner's enrollments
func (h *CheckoutHandler) ListEnrollments(c *gin.Context) {
	session := sessionFromContext(c)

	enrollments, err := h.common.api.ListEnrollments(c.Request.Context(), session)
	if err != nil {
		sendFlowError(c, checkout.Classify(err, session))
		return
	}

	sendList(c, enrollments)
}

// sendCheckoutError routes orchestrator errors through the taxonomy
// mapping; anything else is a plumbing failure.
func (h *CheckoutHandler) sendCheckoutError(c *gin.Context, err error) {
	var flowErr *checkout.FlowError
	if errors.As(err, &flowErr) {
		sendFlowError(c, flowErr)
		return
	}
	sendError(c, http.StatusInternalServerError, "Internal server error", err)
}
