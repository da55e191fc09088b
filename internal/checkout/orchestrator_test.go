package checkout_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tadreeb/tadreeb-api/internal/checkout"
	httpClient "github.com/tadreeb/tadreeb-api/internal/client/http"
	"github.com/tadreeb/tadreeb-api/internal/client/platform"
	"github.com/tadreeb/tadreeb-api/internal/constants"
	"github.com/tadreeb/tadreeb-api/internal/logger"
	"github.com/tadreeb/tadreeb-api/internal/mocks"
	"github.com/tadreeb/tadreeb-api/internal/payment"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

var (
	programID = uuid.MustParse("7e4f3c7e-5b2a-4f1e-9d8c-1a2b3c4d5e6f")
	cohortID  = uuid.MustParse("b1e2d3c4-a5f6-4710-8899-aabbccddeeff")
	session   = types.Session{Token: "learner-token", ReturnURL: "/programs/data-analytics"}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func testProgram() types.Program {
	return types.Program{
		ID:       programID,
		Slug:     "data-analytics",
		Title:    "Data Analytics Essentials",
		Price:    dec("2500"),
		Currency: constants.CurrencySAR,
	}
}

func availableCohort() types.Cohort {
	now := time.Now()
	return types.Cohort{
		ID:                    cohortID,
		ProgramID:             programID,
		Name:                  "Spring Cohort",
		Capacity:              30,
		EnrolledCount:         10,
		RegistrationStartDate: timePtr(now.Add(-24 * time.Hour)),
		RegistrationEndDate:   timePtr(now.Add(24 * time.Hour)),
		StartDate:             now.Add(7 * 24 * time.Hour),
		EndDate:               now.Add(30 * 24 * time.Hour),
	}
}

func activePromo() *types.PromoCode {
	return &types.PromoCode{
		ID:       uuid.New(),
		Code:     "SEU20",
		Type:     constants.PromoTypePercentage,
		Value:    dec("20"),
		IsActive: true,
	}
}

func newFlow(t *testing.T) (*checkout.Flow, *mocks.MockAPI) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	return checkout.NewFlow(api, session, testProgram()), api
}

func TestSelectCohort_RejectsFullWithoutNetworkCall(t *testing.T) {
	flow, _ := newFlow(t) // no expectations: any API call would fail the test

	full := availableCohort()
	full.EnrolledCount = full.Capacity

	err := flow.SelectCohort(full)

	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindAvailability, flowErr.Kind)
	assert.Equal(t, checkout.StateSelectCohort, flow.State())
}

func TestSelectCohort_RejectsComingSoon(t *testing.T) {
	flow, _ := newFlow(t)

	notYet := availableCohort()
	notYet.RegistrationStartDate = timePtr(time.Now().Add(48 * time.Hour))

	err := flow.SelectCohort(notYet)

	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindAvailability, flowErr.Kind)
}

func TestSelectCohort_AcceptsAvailable(t *testing.T) {
	flow, _ := newFlow(t)

	assert.NoError(t, flow.SelectCohort(availableCohort()))
}

func TestApplyPromo_ValidCode(t *testing.T) {
	flow, api := newFlow(t)

	api.EXPECT().GetPromoCode(gomock.Any(), "SEU20").Return(activePromo(), nil)

	quote, err := flow.ApplyPromo(context.Background(), "seu20")

	require.NoError(t, err)
	assert.True(t, quote.IsValid)
	assert.Equal(t, "500.00", quote.DiscountAmount.StringFixed(2))
	assert.Equal(t, "2000.00", quote.FinalPrice.StringFixed(2))
	require.NotNil(t, flow.Quote())
}

func TestApplyPromo_UnknownCodeIsNotAttached(t *testing.T) {
	flow, api := newFlow(t)

	api.EXPECT().GetPromoCode(gomock.Any(), "NOPE").Return(nil, nil)
	api.EXPECT().
		CreateRegistration(gomock.Any(), session, platform.CreateRegistrationRequest{
			CohortID:  cohortID,
			PromoCode: nil, // rejected code must not ride along
		}).
		Return(&types.Registration{
			ID:         uuid.New(),
			CohortID:   cohortID,
			FinalPrice: dec("2500"),
			Currency:   constants.CurrencySAR,
		}, nil)

	require.NoError(t, flow.SelectCohort(availableCohort()))

	quote, err := flow.ApplyPromo(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, quote.IsValid)

	_, err = flow.Confirm(context.Background())
	require.NoError(t, err)
}

func TestConfirm_MovesToAwaitingPaymentWithServerPrice(t *testing.T) {
	flow, api := newFlow(t)

	api.EXPECT().GetPromoCode(gomock.Any(), "SEU20").Return(activePromo(), nil)
	// The backend applies a different discount than the advisory quote;
	// its figure is the one the flow reports.
	api.EXPECT().
		CreateRegistration(gomock.Any(), session, platform.CreateRegistrationRequest{
			CohortID:  cohortID,
			PromoCode: strPtr("SEU20"),
		}).
		Return(&types.Registration{
			ID:         uuid.New(),
			CohortID:   cohortID,
			Status:     "PENDING_PAYMENT",
			FinalPrice: dec("2100.00"),
			Currency:   constants.CurrencySAR,
		}, nil)

	require.NoError(t, flow.SelectCohort(availableCohort()))
	_, err := flow.ApplyPromo(context.Background(), "SEU20")
	require.NoError(t, err)

	reg, err := flow.Confirm(context.Background())

	require.NoError(t, err)
	assert.Equal(t, checkout.StateAwaitingPayment, flow.State())
	assert.Equal(t, "2100.00", reg.FinalPrice.StringFixed(2))
}

func TestConfirm_WithoutCohort(t *testing.T) {
	flow, _ := newFlow(t)

	_, err := flow.Confirm(context.Background())

	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindValidation, flowErr.Kind)
}

func TestConfirm_UnauthenticatedSessionSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	flow := checkout.NewFlow(api, types.Session{ReturnURL: "/programs/data-analytics"}, testProgram())

	require.NoError(t, flow.SelectCohort(availableCohort()))

	_, err := flow.Confirm(context.Background())

	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindAuth, flowErr.Kind)
	assert.Equal(t, "/login?return_url=%2Fprograms%2Fdata-analytics", flowErr.LoginURL)
}

func TestConfirm_ExpiredSessionMapsToAuth(t *testing.T) {
	flow, api := newFlow(t)

	api.EXPECT().
		CreateRegistration(gomock.Any(), session, gomock.Any()).
		Return(nil, errors.Wrap(&httpClient.HTTPError{StatusCode: 401, Status: "401 Unauthorized"}, "failed to create registration"))

	require.NoError(t, flow.SelectCohort(availableCohort()))

	_, err := flow.Confirm(context.Background())

	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindAuth, flowErr.Kind)
	assert.NotEmpty(t, flowErr.LoginURL)
	// The flow stays where it was; nothing is lost by logging in again.
	assert.Equal(t, checkout.StateSelectCohort, flow.State())
}

func TestConfirm_BackendFailureIsRetryable(t *testing.T) {
	flow, api := newFlow(t)

	gomock.InOrder(
		api.EXPECT().
			CreateRegistration(gomock.Any(), session, gomock.Any()).
			Return(nil, errors.Wrap(&httpClient.HTTPError{StatusCode: 503, Status: "503 Service Unavailable"}, "failed to create registration")),
		api.EXPECT().
			CreateRegistration(gomock.Any(), session, gomock.Any()).
			Return(&types.Registration{ID: uuid.New(), CohortID: cohortID, FinalPrice: dec("2500"), Currency: constants.CurrencySAR}, nil),
	)

	require.NoError(t, flow.SelectCohort(availableCohort()))

	_, err := flow.Confirm(context.Background())
	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindBackend, flowErr.Kind)
	assert.Equal(t, checkout.StateSelectCohort, flow.State())

	// Resubmitting from the same state succeeds.
	_, err = flow.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, checkout.StateAwaitingPayment, flow.State())
}

func TestPay_UsesAuthoritativeAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	reg := types.Registration{
		ID:         uuid.New(),
		CohortID:   cohortID,
		FinalPrice: dec("2000.00"),
		Currency:   constants.CurrencySAR,
	}
	flow := checkout.ResumeFlow(api, session, reg)

	api.EXPECT().
		CreatePayment(gomock.Any(), session, platform.CreatePaymentRequest{
			RegistrationID: reg.ID,
			Amount:         reg.FinalPrice,
			Currency:       constants.CurrencySAR,
			Method:         payment.MethodTabby,
		}).
		Return(&types.PaymentIntent{
			ID:             uuid.New(),
			RegistrationID: reg.ID,
			Provider:       "tabby",
			RedirectURL:    "https://checkout.example/session",
		}, nil)

	intent, err := flow.Pay(context.Background(), payment.MethodTabby)

	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.Equal(t, "https://checkout.example/session", intent.RedirectURL)
	assert.Equal(t, checkout.StateAwaitingPayment, flow.State())
}

func TestPay_RejectsIneligibleMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	reg := types.Registration{ID: uuid.New(), FinalPrice: dec("12000"), Currency: constants.CurrencySAR}
	flow := checkout.ResumeFlow(api, session, reg)

	_, err := flow.Pay(context.Background(), payment.MethodTabby)

	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindValidation, flowErr.Kind)
}

func TestPay_ZeroBalanceConfirmsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	reg := types.Registration{ID: uuid.New(), FinalPrice: dec("0"), Currency: constants.CurrencySAR}
	flow := checkout.ResumeFlow(api, session, reg)

	intent, err := flow.Pay(context.Background(), payment.MethodCard)

	require.NoError(t, err)
	assert.Nil(t, intent)
	assert.Equal(t, checkout.StateConfirmed, flow.State())
}

func TestCompletePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	reg := types.Registration{ID: uuid.New(), FinalPrice: dec("2000"), Currency: constants.CurrencySAR}
	flow := checkout.ResumeFlow(api, session, reg)

	require.NoError(t, flow.CompletePayment())
	assert.Equal(t, checkout.StateConfirmed, flow.State())

	err := flow.CompletePayment()
	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindValidation, flowErr.Kind)
}

func TestApplyPromo_AfterConfirmRejected(t *testing.T) {
	flow, api := newFlow(t)

	api.EXPECT().
		CreateRegistration(gomock.Any(), session, gomock.Any()).
		Return(&types.Registration{ID: uuid.New(), CohortID: cohortID, FinalPrice: dec("2500"), Currency: constants.CurrencySAR}, nil)

	require.NoError(t, flow.SelectCohort(availableCohort()))
	_, err := flow.Confirm(context.Background())
	require.NoError(t, err)

	_, err = flow.ApplyPromo(context.Background(), "SEU20")

	var flowErr *checkout.FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, checkout.KindValidation, flowErr.Kind)
}
