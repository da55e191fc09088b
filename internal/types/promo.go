package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoCode is the discount record as stored by the platform backend.
// UsedCount is incremented only by the backend on successful redemption;
// this service reads and evaluates, never mutates.
type PromoCode struct {
	ID          uuid.UUID        `json:"id"`
	Code        string           `json:"code"`
	Type        string           `json:"type"`
	Value       decimal.Decimal  `json:"value"`
	MaxUses     *int32           `json:"max_uses,omitempty"`
	UsedCount   int32            `json:"used_count"`
	MinPurchase *decimal.Decimal `json:"min_purchase,omitempty"`
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`
	ValidFrom   *time.Time       `json:"valid_from,omitempty"`
	ValidUntil  *time.Time       `json:"valid_until,omitempty"`
	IsActive    bool             `json:"is_active"`
	ProgramID   *uuid.UUID       `json:"program_id,omitempty"`
}

// PriceQuote is the outcome of evaluating a promo code against a
// purchase. It is computed fresh on every evaluation and never stored.
// On any rejection FinalPrice equals OriginalPrice and DiscountAmount
// is zero.
type PriceQuote struct {
	OriginalPrice  decimal.Decimal `json:"original_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	IsValid        bool            `json:"is_valid"`
	Error          string          `json:"error,omitempty"`
}
