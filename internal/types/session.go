package types

// Session carries the learner's authentication for calls that act on
// their behalf. It is passed explicitly into the client and orchestrator
// rather than read from any global storage.
type Session struct {
	// Token is the bearer token issued by the platform backend at login.
	Token string `json:"token"`
	// ReturnURL is where the login flow should send the learner back
	// after re-authentication.
	ReturnURL string `json:"return_url,omitempty"`
}

// Authenticated reports whether the session carries a token. The token
// may still be expired; the backend is the authority and a 401 at call
// time triggers the login redirect.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
