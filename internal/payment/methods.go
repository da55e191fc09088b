package payment

import (
	"github.com/shopspring/decimal"
)

// Method identifies a way to pay for a registration.
type Method string

const (
	// MethodCard is card payment through the hosted card gateway.
	MethodCard Method = "CARD"
	// MethodTabby is Tabby buy-now-pay-later.
	MethodTabby Method = "TABBY"
	// MethodTamara is Tamara buy-now-pay-later.
	MethodTamara Method = "TAMARA"
)

// BNPL providers only accept orders inside their amount windows. The
// limits are the providers' published SAR order bounds; the actual wire
// protocols stay behind the platform backend.
var (
	tabbyMaxOrder  = decimal.NewFromInt(5000)
	tamaraMinOrder = decimal.NewFromInt(100)
	tamaraMaxOrder = decimal.NewFromInt(10000)
)

// EligibleMethods returns the payment methods that can collect the
// given amount, card first. Zero and negative amounts are payable by no
// method (a fully discounted registration is confirmed without a
// payment step).
func EligibleMethods(amount decimal.Decimal) []Method {
	if !amount.IsPositive() {
		return nil
	}

	methods := []Method{MethodCard}
	if amount.LessThanOrEqual(tabbyMaxOrder) {
		methods = append(methods, MethodTabby)
	}
	if amount.GreaterThanOrEqual(tamaraMinOrder) && amount.LessThanOrEqual(tamaraMaxOrder) {
		methods = append(methods, MethodTamara)
	}
	return methods
}

// IsBNPL reports whether the method is a buy-now-pay-later provider
// with a hosted redirect checkout.
func IsBNPL(m Method) bool {
	return m == MethodTabby || m == MethodTamara
}
