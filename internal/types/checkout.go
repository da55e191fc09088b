package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Registration is created by the platform backend when a learner
// confirms a cohort. FinalPrice is the backend's authoritative figure
// after server-side promo re-validation and may differ from the
// client-side quote.
type Registration struct {
	ID         uuid.UUID       `json:"id"`
	CohortID   uuid.UUID       `json:"cohort_id"`
	Status     string          `json:"status"`
	PromoCode  *string         `json:"promo_code,omitempty"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PaymentIntent is the backend's handle for collecting payment on a
// registration. Exactly one of PublishableKey (card) or RedirectURL
// (BNPL hosted checkout) is set.
type PaymentIntent struct {
	ID             uuid.UUID       `json:"id"`
	RegistrationID uuid.UUID       `json:"registration_id"`
	Provider       string          `json:"provider"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	PublishableKey string          `json:"publishable_key,omitempty"`
	RedirectURL    string          `json:"redirect_url,omitempty"`
	Status         string          `json:"status"`
}

// Enrollment is a learner's confirmed place in a cohort, as reported by
// the platform backend for the "my courses" view.
type Enrollment struct {
	ID             uuid.UUID  `json:"id"`
	CohortID       uuid.UUID  `json:"cohort_id"`
	ProgramTitle   string     `json:"program_title"`
	Status         string     `json:"status"`
	AttendanceRate *int32     `json:"attendance_rate,omitempty"`
	CertificateURL *string    `json:"certificate_url,omitempty"`
	EnrolledAt     time.Time  `json:"enrolled_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
