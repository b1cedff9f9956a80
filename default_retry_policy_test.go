package people

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"testing"

	"github.com/go-resty/resty/v2"
)

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	response := func(method string, status int) *resty.Response {
		return &resty.Response{
			Request:     &resty.Request{Method: method},
			RawResponse: &http.Response{StatusCode: status},
		}
	}

	tests := []struct {
		name     string
		resp     *resty.Response
		err      error
		expected bool
	}{
		{"canceled", nil, context.Canceled, false},
		{"deadline", nil, fmt.Errorf("get: %w", context.DeadlineExceeded), false},
		{"dns", nil, &net.DNSError{Err: "no such host", Name: "people.invalid"}, false},
		{"connection refused", nil, errors.New("connection refused"), true},
		{"GET connection reset", response(http.MethodGet, 0), syscall.ECONNRESET, true},
		{"POST connection reset", response(http.MethodPost, 0), syscall.ECONNRESET, false},
		{"POST EOF", response(http.MethodPost, 0), fmt.Errorf("post: %w", io.EOF), false},
		{"DELETE EOF", response(http.MethodDelete, 0), io.EOF, false},
		{"GET 200", response(http.MethodGet, 200), nil, false},
		{"GET 404", response(http.MethodGet, 404), nil, false},
		{"GET 429", response(http.MethodGet, 429), nil, true},
		{"GET 500", response(http.MethodGet, 500), nil, true},
		{"DELETE 503", response(http.MethodDelete, 503), nil, false},
		{"DELETE 429", response(http.MethodDelete, 429), nil, true},
		{"POST 429", response(http.MethodPost, 429), nil, true},
		{"POST 500", response(http.MethodPost, 500), nil, false},
		{"POST 400", response(http.MethodPost, 400), nil, false},
		{"nil response", nil, nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DefaultRetryPolicy(tt.resp, tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
