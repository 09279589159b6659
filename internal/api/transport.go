package api

import "net/http"

// bearerTransport attaches the current session token to every outgoing
// request. The token is read fresh per request, so a login or logout
// between requests takes effect immediately; a logout racing an in-flight
// request lets that request finish with the old token, which the server
// handles.
type bearerTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	r := req.Clone(req.Context())
	if tok := t.tokens.Token(); tok != "" {
		r.Header.Set("Authorization", "Bearer "+tok)
	}
	return t.next.RoundTrip(r)
}
