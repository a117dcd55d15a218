package checker

import "errors"

var (
	// ErrUpstreamTimeout means the completion API did not answer within the
	// configured budget. Surfaced as a gateway timeout.
	ErrUpstreamTimeout = errors.New("upstream completion timed out")

	// ErrUnparsableReply means neither the strict parse nor the keyword
	// fallback could extract any signal from the model's reply.
	ErrUnparsableReply = errors.New("could not interpret model reply")
)

// UpstreamError wraps a transport, auth or rate-limit failure from the
// completion provider. The wrapped error carries the provider detail for
// logging; Error() stays sanitized so it can be returned to callers.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "upstream completion API failure"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
