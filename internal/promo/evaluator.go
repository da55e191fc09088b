package promo

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tadreeb/tadreeb-api/internal/constants"
	"github.com/tadreeb/tadreeb-api/internal/money"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// Rejection reasons, in the order the checks run. The order is part of
// the contract: the first failing check decides the message the learner
// sees.
const (
	ReasonNotFound     = "promo code not found"
	ReasonInactive     = "promo code is inactive"
	ReasonNotYetValid  = "promo code is not yet valid"
	ReasonExpired      = "promo code has expired"
	ReasonUsageLimit   = "promo code usage limit reached"
	ReasonWrongProgram = "promo code is not applicable to this program"
	ReasonBelowMinimum = "purchase amount is below the code minimum"
	ReasonUnknownType  = "promo code has an unknown discount type"
)

// NormalizeCode canonicalizes user input for lookup. Codes are stored
// upper-case and matched case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Evaluate decides whether a promo code applies to a purchase and
// computes the resulting discount. It is pure: no I/O, no mutation, and
// the same inputs always yield the same quote. The result is advisory;
// the platform backend re-validates at registration time and its figure
// wins.
//
// A nil code means the lookup failed upstream and yields the
// "not found" rejection.
func Evaluate(code *types.PromoCode, purchaseAmount decimal.Decimal, programID uuid.UUID, now time.Time) types.PriceQuote {
	if code == nil {
		return reject(purchaseAmount, ReasonNotFound)
	}
	if !code.IsActive {
		return reject(purchaseAmount, ReasonInactive)
	}
	if code.ValidFrom != nil && now.Before(*code.ValidFrom) {
		return reject(purchaseAmount, ReasonNotYetValid)
	}
	if code.ValidUntil != nil && now.After(*code.ValidUntil) {
		return reject(purchaseAmount, ReasonExpired)
	}
	if code.MaxUses != nil && code.UsedCount >= *code.MaxUses {
		return reject(purchaseAmount, ReasonUsageLimit)
	}
	if code.ProgramID != nil && *code.ProgramID != programID {
		return reject(purchaseAmount, ReasonWrongProgram)
	}
	if code.MinPurchase != nil && purchaseAmount.LessThan(*code.MinPurchase) {
		return reject(purchaseAmount, ReasonBelowMinimum)
	}

	var discount decimal.Decimal
	switch code.Type {
	case constants.PromoTypePercentage:
		discount = money.PercentageOf(purchaseAmount, code.Value)
		if code.MaxDiscount != nil && discount.GreaterThan(*code.MaxDiscount) {
			discount = *code.MaxDiscount
		}
	case constants.PromoTypeFixedAmount:
		// A fixed discount can never exceed the amount being paid.
		discount = code.Value
		if discount.GreaterThan(purchaseAmount) {
			discount = purchaseAmount
		}
	default:
		return reject(purchaseAmount, ReasonUnknownType)
	}

	return types.PriceQuote{
		OriginalPrice:  purchaseAmount,
		DiscountAmount: money.Round2(discount),
		FinalPrice:     money.ClampNonNegative(money.Round2(purchaseAmount.Sub(discount))),
		IsValid:        true,
	}
}

// reject returns a quote that leaves the purchase amount untouched.
func reject(purchaseAmount decimal.Decimal, reason string) types.PriceQuote {
	return types.PriceQuote{
		OriginalPrice:  purchaseAmount,
		DiscountAmount: decimal.Zero,
		FinalPrice:     purchaseAmount,
		IsValid:        false,
		Error:          reason,
	}
}
