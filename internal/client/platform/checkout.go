package platform

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	httpClient "github.com/tadreeb/tadreeb-api/internal/client/http"
	"github.com/tadreeb/tadreeb-api/internal/payment"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// CreateRegistrationRequest registers the learner on a cohort. PromoCode
// is forwarded verbatim; the backend re-validates it server-side.
type CreateRegistrationRequest struct {
	CohortID  uuid.UUID `json:"cohort_id"`
	PromoCode *string   `json:"promo_code,omitempty"`
}

// CreatePaymentRequest opens a payment on a registration
type CreatePaymentRequest struct {
	RegistrationID uuid.UUID       `json:"registration_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Method         payment.Method  `json:"method"`
}

type enrollmentListResponse struct {
	Data []types.Enrollment `json:"data"`
}

// CreateRegistration submits a registration on the learner's behalf
func (c *PlatformClient) CreateRegistration(ctx context.Context, session types.Session, req CreateRegistrationRequest) (*types.Registration, error) {
	options := append(c.apiKeyOptions(), httpClient.WithBearerToken(session.Token))

	resp, err := c.httpClient.Post(ctx, "registrations", req, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}

	var registration types.Registration
	if err := c.httpClient.ProcessJSONResponse(resp, &registration); err != nil {
		return nil, fmt.Errorf("failed to process registration response: %w", err)
	}

	return &registration, nil
}

// CreatePayment opens a payment for a registration and returns the
// provider handle (card publishable key or BNPL redirect URL)
func (c *PlatformClient) CreatePayment(ctx context.Context, session types.Session, req CreatePaymentRequest) (*types.PaymentIntent, error) {
	options := append(c.apiKeyOptions(), httpClient.WithBearerToken(session.Token))

	resp, err := c.httpClient.Post(ctx, "payments", req, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}

	var intent types.PaymentIntent
	if err := c.httpClient.ProcessJSONResponse(resp, &intent); err != nil {
		return nil, fmt.Errorf("failed to process payment response: %w", err)
	}

	return &intent, nil
}

// ListEnrollments returns the learner's enrollments with attendance and
// certificate state
func (c *PlatformClient) ListEnrollments(ctx context.Context, session types.Session) ([]types.Enrollment, error) {
	options := append(c.apiKeyOptions(), httpClient.WithBearerToken(session.Token))

	resp, err := c.httpClient.Get(ctx, "enrollments", options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}

	var listResponse enrollmentListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process enrollment list response: %w", err)
	}

	return listResponse.Data, nil
}
