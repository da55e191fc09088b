package platform

import (
	"context"

	"github.com/google/uuid"

	"github.com/tadreeb/tadreeb-api/internal/types"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/platform_mock.go -package=mocks

// API is the surface of the training-platform backend used by the
// storefront. It exists so the checkout orchestrator and handlers can
// be tested against a mock.
type API interface {
	// ListPrograms returns the published program catalog.
	ListPrograms(ctx context.Context) ([]types.Program, error)

	// GetProgramBySlug returns one program with its list price.
	GetProgramBySlug(ctx context.Context, slug string) (*types.Program, error)

	// ListCohorts returns the cohorts of a program with capacity,
	// enrolled-count and date snapshots.
	ListCohorts(ctx context.Context, programID uuid.UUID) ([]types.Cohort, error)

	// GetPromoCode fetches a promo code record for client-side
	// evaluation. A missing code returns (nil, nil).
	GetPromoCode(ctx context.Context, code string) (*types.PromoCode, error)

	// ValidatePromoCode asks the backend for its authoritative quote.
	ValidatePromoCode(ctx context.Context, req ValidatePromoCodeRequest) (*types.PriceQuote, error)

	// CreateRegistration registers the learner on a cohort; the backend
	// re-validates any promo code and returns the authoritative final
	// price.
	CreateRegistration(ctx context.Context, session types.Session, req CreateRegistrationRequest) (*types.Registration, error)

	// CreatePayment opens a payment for a registration and returns the
	// provider handle (publishable key or BNPL redirect URL).
	CreatePayment(ctx context.Context, session types.Session, req CreatePaymentRequest) (*types.PaymentIntent, error)

	// ListEnrollments returns the learner's enrollments.
	ListEnrollments(ctx context.Context, session types.Session) ([]types.Enrollment, error)
}

var _ API = (*PlatformClient)(nil)
