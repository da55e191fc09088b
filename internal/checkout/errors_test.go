package checkout_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tadreeb/tadreeb-api/internal/checkout"
	httpClient "github.com/tadreeb/tadreeb-api/internal/client/http"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

func TestClassify(t *testing.T) {
	authed := types.Session{Token: "tok", ReturnURL: "/programs/cyber-security"}

	tests := []struct {
		name             string
		err              error
		expectedKind     checkout.Kind
		expectedMessage  string
		expectedLoginURL string
	}{
		{
			name:             "401 maps to auth with login redirect",
			err:              &httpClient.HTTPError{StatusCode: 401, Status: "401 Unauthorized"},
			expectedKind:     checkout.KindAuth,
			expectedMessage:  "session expired, please log in again",
			expectedLoginURL: "/login?return_url=%2Fprograms%2Fcyber-security",
		},
		{
			name:            "409 maps to availability with upstream message",
			err:             &httpClient.HTTPError{StatusCode: 409, Status: "409 Conflict", Body: `{"error":"cohort is full"}`},
			expectedKind:    checkout.KindAvailability,
			expectedMessage: "cohort is full",
		},
		{
			name:            "422 maps to validation",
			err:             &httpClient.HTTPError{StatusCode: 422, Status: "422 Unprocessable Entity", Body: `{"message":"promo code expired"}`},
			expectedKind:    checkout.KindValidation,
			expectedMessage: "promo code expired",
		},
		{
			name:            "404 maps to validation",
			err:             &httpClient.HTTPError{StatusCode: 404, Status: "404 Not Found"},
			expectedKind:    checkout.KindValidation,
			expectedMessage: "the request could not be completed, please try again",
		},
		{
			name:            "500 maps to backend",
			err:             &httpClient.HTTPError{StatusCode: 500, Status: "500 Internal Server Error", Body: "<html>nginx</html>"},
			expectedKind:    checkout.KindBackend,
			expectedMessage: "the request could not be completed, please try again",
		},
		{
			name:            "wrapped transport error still classifies by status",
			err:             errors.Wrap(&httpClient.HTTPError{StatusCode: 503, Status: "503 Service Unavailable"}, "failed to create payment"),
			expectedKind:    checkout.KindBackend,
			expectedMessage: "the request could not be completed, please try again",
		},
		{
			name:            "non-HTTP error is a backend failure",
			err:             errors.New("dial tcp: connection refused"),
			expectedKind:    checkout.KindBackend,
			expectedMessage: "platform request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flowErr := checkout.Classify(tt.err, authed)

			assert.Equal(t, tt.expectedKind, flowErr.Kind)
			assert.Equal(t, tt.expectedMessage, flowErr.Message)
			assert.Equal(t, tt.expectedLoginURL, flowErr.LoginURL)
			assert.ErrorIs(t, flowErr, tt.err)
		})
	}
}

func TestLoginRedirect(t *testing.T) {
	assert.Equal(t, "/login", checkout.LoginRedirect(types.Session{}))
	assert.Equal(t,
		"/login?return_url=%2Fprograms%2Fdata-analytics%3Fcohort%3Dspring",
		checkout.LoginRedirect(types.Session{ReturnURL: "/programs/data-analytics?cohort=spring"}))
}
