package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorCategory classifies vendor failures into the four user-presentable
// buckets. Adapters map vendor-specific errors onto these; nothing escapes
// the adapter boundary as a raw error.
type ErrorCategory int

const (
	ErrorAuthentication ErrorCategory = iota
	ErrorRateLimit
	ErrorServer
	ErrorNetwork
	ErrorInvalidResponse
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrorAuthentication:
		return "authentication"
	case ErrorRateLimit:
		return "rate-limit"
	case ErrorServer:
		return "server"
	case ErrorNetwork:
		return "network"
	case ErrorInvalidResponse:
		return "invalid-response"
	default:
		return "unknown"
	}
}

// Describe renders a category as a user-presentable message for a vendor.
func (c ErrorCategory) Describe(vendor string, detail error) string {
	var msg string
	switch c {
	case ErrorAuthentication:
		msg = fmt.Sprintf("%s authentication failed: check the configured API key", vendor)
	case ErrorRateLimit:
		msg = fmt.Sprintf("%s rate limit exceeded: try again shortly", vendor)
	case ErrorServer:
		msg = fmt.Sprintf("%s service error: the vendor reported an internal failure", vendor)
	case ErrorNetwork:
		msg = fmt.Sprintf("%s is unreachable: check network connectivity", vendor)
	case ErrorInvalidResponse:
		msg = fmt.Sprintf("%s returned an unusable response", vendor)
	default:
		msg = fmt.Sprintf("%s request failed", vendor)
	}
	if detail != nil {
		msg = fmt.Sprintf("%s (%v)", msg, detail)
	}
	return msg
}

// CategorizeStatus maps an HTTP status code to an error category.
func CategorizeStatus(status int) ErrorCategory {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrorAuthentication
	case status == http.StatusTooManyRequests:
		return ErrorRateLimit
	case status >= 500:
		return ErrorServer
	default:
		return ErrorInvalidResponse
	}
}

// IsNetworkError reports whether err looks like a transport-level failure
// rather than a vendor response.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// BlankKeyFailure is the shared pre-network rejection for empty keys.
func BlankKeyFailure(vendor string) Result {
	return Failure(fmt.Sprintf("%s API key is blank: configure a key before enabling this provider", vendor))
}
