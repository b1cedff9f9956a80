package people

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

const (
	maxRetryCount       = 100
	minRetryWaitTime    = 100 * time.Millisecond
	maxRetryWaitTime    = time.Minute
	maxRetryMaxWaitTime = 5 * time.Minute
)

type Option func(*Options)

type Options struct {
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	timeout          time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
	httpClient       *http.Client
	transport        Transport
	fs               afero.Fs
}

func newClientOptions() *Options {
	return &Options{
		retryCount:       3,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		timeout:          30 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		fs: afero.NewOsFs(),
	}
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= minRetryWaitTime {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= minRetryWaitTime {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

// WithTimeout sets the per-request timeout of the default transport. Zero
// disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithHTTPClient makes the default transport use the given *http.Client,
// e.g. for custom TLS or proxy settings.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithTransport replaces the default resty transport. Retry, timeout, header
// and logger options only apply to the default transport.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithFileSystem sets the filesystem [Client.AddFromFile] reads from.
func WithFileSystem(fs afero.Fs) Option {
	return func(o *Options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

func (o *Options) Validate() error {
	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > maxRetryCount {
		return fmt.Errorf("retryCount must not exceed %d", maxRetryCount)
	}

	if o.retryWaitTime < minRetryWaitTime {
		return fmt.Errorf("retryWaitTime must be at least %v", minRetryWaitTime)
	}

	if o.retryWaitTime > maxRetryWaitTime {
		return fmt.Errorf("retryWaitTime must not exceed %v", maxRetryWaitTime)
	}

	if o.retryMaxWaitTime < minRetryWaitTime {
		return fmt.Errorf("retryMaxWaitTime must be at least %v", minRetryWaitTime)
	}

	if o.retryMaxWaitTime > maxRetryMaxWaitTime {
		return fmt.Errorf("retryMaxWaitTime must not exceed %v", maxRetryMaxWaitTime)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)", o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	if o.fs == nil {
		return errors.New("fs must not be nil")
	}

	return nil
}
