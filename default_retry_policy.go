package people

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition used by [Client]. It
// retries on HTTP 429 (rate limit) and 5xx server errors, and on transient
// connection errors. It does not retry on context cancellation, deadline
// exceeded, or DNS resolution failures.
//
// POST and DELETE requests are only retried on 429. After a connection error
// or a 5xx the server may already have created or deleted the record, and a
// retry would create a duplicate or report a spurious not-found.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		// Don't retry on context cancellation or deadline exceeded
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		// Don't retry on DNS resolution errors
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		// Retry on other connection errors
		return !mutating(r)
	}

	if r == nil {
		return false
	}

	if r.StatusCode() == http.StatusTooManyRequests {
		return true
	}

	if r.StatusCode() >= 500 {
		return !mutating(r)
	}

	return false
}

// mutating reports whether r belongs to a request that changes the collection.
// resty hands the response to retry conditions even when the request failed.
func mutating(r *resty.Response) bool {
	if r == nil || r.Request == nil {
		return false
	}

	switch r.Request.Method {
	case http.MethodPost, http.MethodDelete:
		return true
	}

	return false
}
