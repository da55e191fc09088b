package checkout

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	httpClient "github.com/tadreeb/tadreeb-api/internal/client/http"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// Kind buckets every failure the checkout flow can surface. The UI maps
// each kind to a distinct recovery: fix input, pick another cohort, log
// in again, or retry.
type Kind string

const (
	// KindValidation means the learner's input was rejected for a named
	// reason and can be corrected.
	KindValidation Kind = "VALIDATION"
	// KindAvailability means the chosen cohort is full or closed.
	KindAvailability Kind = "AVAILABILITY"
	// KindAuth means the session is missing or expired; the learner is
	// redirected to login, not shown an inline error.
	KindAuth Kind = "AUTH"
	// KindBackend is a network or 5xx failure; retryable in place.
	KindBackend Kind = "BACKEND"
)

// FlowError is the single error type the orchestrator returns. The
// current state is always retained on failure so the learner can retry
// or correct and resubmit.
type FlowError struct {
	Kind     Kind
	Message  string
	LoginURL string
	cause    error
}

func (e *FlowError) Error() string {
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.cause
}

// newFlowError wraps a message without an upstream cause
func newFlowError(kind Kind, message string) *FlowError {
	return &FlowError{Kind: kind, Message: message}
}

// Classify maps a platform-client failure into the taxonomy. Upstream
// error messages are surfaced verbatim when the backend provided one.
func Classify(err error, session types.Session) *FlowError {
	var httpErr *httpClient.HTTPError
	if !errors.As(err, &httpErr) {
		return &FlowError{Kind: KindBackend, Message: "platform request failed", cause: err}
	}

	message := upstreamMessage(httpErr)

	switch httpErr.StatusCode {
	case http.StatusUnauthorized:
		return &FlowError{
			Kind:     KindAuth,
			Message:  "session expired, please log in again",
			LoginURL: LoginRedirect(session),
			cause:    err,
		}
	case http.StatusConflict:
		return &FlowError{Kind: KindAvailability, Message: message, cause: err}
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return &FlowError{Kind: KindValidation, Message: message, cause: err}
	default:
		return &FlowError{Kind: KindBackend, Message: message, cause: err}
	}
}

// upstreamMessage extracts the backend's error message from a response
// body shaped like {"error": "..."} or {"message": "..."}, falling back
// to a generic retry prompt.
func upstreamMessage(httpErr *httpClient.HTTPError) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(httpErr.Body), &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "the request could not be completed, please try again"
}

// LoginRedirect builds the login URL that brings the learner back to
// where the flow was interrupted.
func LoginRedirect(session types.Session) string {
	if session.ReturnURL == "" {
		return "/login"
	}
	return "/login?return_url=" + url.QueryEscape(session.ReturnURL)
}
