package amazon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/jadehome/seller-console/internal/marketplace"
)

// ErrNotListed reports that a SKU has no listing in a marketplace. It is a
// normal outcome, not a failure.
var ErrNotListed = errors.New("sku not listed")

// TokenAcquisitionError is returned when the refresh-token exchange fails.
// StatusCode is zero when no HTTP response was received.
type TokenAcquisitionError struct {
	Marketplace marketplace.Code
	Scope       Scope
	StatusCode  int
	Body        string
	Err         error
}

func (e *TokenAcquisitionError) Error() string {
	msg := fmt.Sprintf("token acquisition failed for %s (%s scope", e.Marketplace, e.Scope)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(", status %d", e.StatusCode)
	}
	msg += ")"
	if e.Body != "" {
		msg += ": " + e.Body
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TokenAcquisitionError) Unwrap() error { return e.Err }

// transient reports whether the exchange is worth one more attempt.
func (e *TokenAcquisitionError) transient() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// ProviderRequestError is a non-2xx response from SP-API or the Ads API.
type ProviderRequestError struct {
	Marketplace marketplace.Code
	Operation   string
	StatusCode  int
	Code        string
	Message     string
	Body        string
}

func (e *ProviderRequestError) Error() string {
	msg := fmt.Sprintf("%s %s: provider returned status %d", e.Operation, e.Marketplace, e.StatusCode)
	switch {
	case e.Code != "" && e.Message != "":
		msg += fmt.Sprintf(": %s: %s", e.Code, e.Message)
	case e.Message != "":
		msg += ": " + e.Message
	case e.Code != "":
		msg += ": " + e.Code
	}
	return msg
}

// authFailure reports whether the provider rejected the access token.
func (e *ProviderRequestError) authFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// TimeoutError is returned when a provider call exceeds its deadline.
type TimeoutError struct {
	Marketplace marketplace.Code
	Operation   string
	Err         error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s %s: request timed out: %v", e.Operation, e.Marketplace, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// HTTPStatus maps an error from this package to the HTTP status a route
// should answer with.
func HTTPStatus(err error) int {
	var (
		provErr *ProviderRequestError
		tokErr  *TokenAcquisitionError
		cfgErr  *marketplace.ConfigurationError
		timeout *TimeoutError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotListed):
		return http.StatusNotFound
	case errors.Is(err, marketplace.ErrUnknownMarketplace), errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrDailyLimitReached):
		return http.StatusTooManyRequests
	case errors.As(err, &provErr):
		if provErr.StatusCode >= 400 {
			return provErr.StatusCode
		}
	case errors.As(err, &tokErr):
		if tokErr.StatusCode >= 400 {
			return tokErr.StatusCode
		}
	}
	return http.StatusInternalServerError
}

// IsTokenError reports whether err stems from a failed token exchange.
func IsTokenError(err error) bool {
	var tokErr *TokenAcquisitionError
	return errors.As(err, &tokErr)
}
