package api

import (
	"context"
	"net/http"

	"github.com/fundscope/fundscope-cli/internal/common"
)

// TokenSource supplies the current bearer token. The credential store
// satisfies this; tests use stubs.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// bearerTransport injects the Authorization header on every request,
// reading the token at call time rather than capturing it once. A request
// made after login therefore always carries the fresh token.
type bearerTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.Token(req.Context())
	if err == nil && token != "" {
		// Clone per RoundTripper contract: the original request is shared.
		req = req.Clone(req.Context())
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}
	return t.next.RoundTrip(req)
}
