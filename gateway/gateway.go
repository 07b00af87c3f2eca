package gateway

import (
	"context"
	"encoding/json"
	"net/url"
)

// Request is one HTTP-shaped exchange call. Query travels in the URL, Body is
// JSON-encoded for POSTs.
type Request struct {
	Path   string
	Method string
	Query  url.Values
	Body   any
}

// Gateway signs and sends a request and returns the envelope's data payload.
// Business rejections come back as *models.OrderRejected, wire failures as
// *models.TransportError. Implementations must not retry: a failed call's
// fate is the caller's to reason about.
type Gateway interface {
	Call(ctx context.Context, req Request) (json.RawMessage, error)
}
