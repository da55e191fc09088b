package checkout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tadreeb/tadreeb-api/internal/client/platform"
	"github.com/tadreeb/tadreeb-api/internal/cohort"
	"github.com/tadreeb/tadreeb-api/internal/logger"
	"github.com/tadreeb/tadreeb-api/internal/payment"
	"github.com/tadreeb/tadreeb-api/internal/promo"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// State names the steps of the registration flow.
type State string

const (
	// StateSelectCohort is the initial step: pick a cohort and
	// optionally apply a promo code.
	StateSelectCohort State = "SELECT_COHORT"
	// StateAwaitingPayment means the registration exists on the backend
	// and payment has not completed.
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	// StateConfirmed is terminal: payment completed (or nothing was
	// owed).
	StateConfirmed State = "CONFIRMED"
)

// Flow drives one learner's checkout for one program. All durable state
// lives on the platform backend; the flow only holds the selection the
// learner has made so far. Calls are issued one at a time: a second
// mutating call while one is outstanding is rejected so double submits
// cannot happen.
type Flow struct {
	api     platform.API
	session types.Session
	program types.Program
	now     func() time.Time

	mu        sync.Mutex
	inFlight  bool
	state     State
	selection *types.Cohort
	promoCode *string
	quote     *types.PriceQuote
	reg       *types.Registration
}

// NewFlow starts a checkout flow for a program on behalf of a session.
func NewFlow(api platform.API, session types.Session, program types.Program) *Flow {
	return &Flow{
		api:     api,
		session: session,
		program: program,
		now:     time.Now,
		state:   StateSelectCohort,
	}
}

// ResumeFlow reconstructs a flow that is awaiting payment on an
// existing registration, for callers that confirmed in an earlier
// request.
func ResumeFlow(api platform.API, session types.Session, reg types.Registration) *Flow {
	return &Flow{
		api:     api,
		session: session,
		now:     time.Now,
		state:   StateAwaitingPayment,
		reg:     &reg,
	}
}

// State returns the current step of the flow.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Quote returns the latest advisory quote, or nil when no promo code is
// applied.
func (f *Flow) Quote() *types.PriceQuote {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quote
}

// Registration returns the backend registration once Confirm succeeded.
func (f *Flow) Registration() *types.Registration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reg
}

// SelectCohort records the learner's cohort choice. Cohorts whose
// resolved availability is not AVAILABLE are rejected locally, without
// a network call.
func (f *Flow) SelectCohort(c types.Cohort) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSelectCohort {
		return newFlowError(KindValidation, "cohort can no longer be changed")
	}

	resolution := cohort.Resolve(c, f.now())
	if !cohort.Selectable(resolution.Availability) {
		return newFlowError(KindAvailability, "this cohort is not open for registration")
	}

	f.selection = &c
	return nil
}

// ApplyPromo evaluates a promo code against the program price for
// display. The resulting quote is advisory: the backend re-validates at
// Confirm time and its figure wins.
func (f *Flow) ApplyPromo(ctx context.Context, code string) (types.PriceQuote, error) {
	if err := f.begin(StateSelectCohort, "promo codes can only be applied before confirming"); err != nil {
		return types.PriceQuote{}, err
	}
	defer f.end()

	normalized := promo.NormalizeCode(code)
	record, err := f.api.GetPromoCode(ctx, normalized)
	if err != nil {
		return types.PriceQuote{}, Classify(err, f.session)
	}

	quote := promo.Evaluate(record, f.program.Price, f.program.ID, f.now())

	f.mu.Lock()
	f.quote = &quote
	if quote.IsValid {
		f.promoCode = &normalized
	} else {
		f.promoCode = nil
	}
	f.mu.Unlock()

	return quote, nil
}

// ClearPromo removes any applied code and its quote.
func (f *Flow) ClearPromo() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promoCode = nil
	f.quote = nil
}

// Confirm submits the registration. On success the flow moves to
// AWAITING_PAYMENT and the backend's final price replaces the advisory
// quote. On failure the flow stays in SELECT_COHORT and can be
// resubmitted.
func (f *Flow) Confirm(ctx context.Context) (*types.Registration, error) {
	if err := f.begin(StateSelectCohort, "registration has already been confirmed"); err != nil {
		return nil, err
	}
	defer f.end()

	f.mu.Lock()
	selection := f.selection
	promoCode := f.promoCode
	f.mu.Unlock()

	if selection == nil {
		return nil, newFlowError(KindValidation, "select a cohort before confirming")
	}
	if !f.session.Authenticated() {
		return nil, &FlowError{
			Kind:     KindAuth,
			Message:  "log in to register",
			LoginURL: LoginRedirect(f.session),
		}
	}

	reg, err := f.api.CreateRegistration(ctx, f.session, platform.CreateRegistrationRequest{
		CohortID:  selection.ID,
		PromoCode: promoCode,
	})
	if err != nil {
		return nil, Classify(err, f.session)
	}

	f.mu.Lock()
	f.reg = reg
	f.state = StateAwaitingPayment
	f.mu.Unlock()

	logger.Info("registration confirmed",
		zap.String("registration_id", reg.ID.String()),
		zap.String("cohort_id", reg.CohortID.String()),
		zap.String("final_price", reg.FinalPrice.String()))

	return reg, nil
}

// Pay opens a payment for the confirmed registration using the chosen
// method. The amount is the backend's authoritative final price, never
// the client-side quote. A fully discounted registration owes nothing
// and is confirmed immediately.
func (f *Flow) Pay(ctx context.Context, method payment.Method) (*types.PaymentIntent, error) {
	if err := f.begin(StateAwaitingPayment, "no registration awaiting payment"); err != nil {
		return nil, err
	}
	defer f.end()

	f.mu.Lock()
	reg := f.reg
	f.mu.Unlock()

	if !reg.FinalPrice.IsPositive() {
		f.mu.Lock()
		f.state = StateConfirmed
		f.mu.Unlock()
		return nil, nil
	}

	eligible := false
	for _, m := range payment.EligibleMethods(reg.FinalPrice) {
		if m == method {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, newFlowError(KindValidation, "payment method not available for this amount")
	}

	intent, err := f.api.CreatePayment(ctx, f.session, platform.CreatePaymentRequest{
		RegistrationID: reg.ID,
		Amount:         reg.FinalPrice,
		Currency:       reg.Currency,
		Method:         method,
	})
	if err != nil {
		return nil, Classify(err, f.session)
	}

	return intent, nil
}

// CompletePayment moves the flow to CONFIRMED after the payment
// callback or BNPL redirect-back reports success.
func (f *Flow) CompletePayment() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingPayment {
		return newFlowError(KindValidation, "no payment in progress")
	}
	f.state = StateConfirmed
	return nil
}

// begin guards a mutating call: the flow must be in the given state and
// no other call may be outstanding.
func (f *Flow) begin(required State, wrongStateMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != required {
		return newFlowError(KindValidation, wrongStateMsg)
	}
	if f.inFlight {
		return newFlowError(KindValidation, "a request is already in progress")
	}
	f.inFlight = true
	return nil
}

func (f *Flow) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}
