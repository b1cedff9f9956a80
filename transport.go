package people

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// Transport issues a single HTTP request and returns the raw response. The
// default implementation is built on resty and configured from [Options];
// supply another one with [WithTransport].
//
// Implementations return an error only when no response was received. A
// response with any status code is returned as is.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request describes one call to the remote resource.
type Request struct {
	Method  string
	URL     string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// Response is the raw result of a [Request].
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type restyTransport struct {
	client *resty.Client
}

func newRestyTransport(opts *Options) *restyTransport {
	var c *resty.Client
	if opts.httpClient != nil {
		c = resty.NewWithClient(opts.httpClient)
	} else {
		c = resty.New()
	}

	c.SetRetryCount(opts.retryCount).
		SetRetryWaitTime(opts.retryWaitTime).
		SetRetryMaxWaitTime(opts.retryMaxWaitTime).
		AddRetryCondition(opts.retryPolicy).
		SetHeaders(opts.requestHeaders).
		SetLogger(opts.requestLogger)

	if opts.timeout > 0 {
		c.SetTimeout(opts.timeout)
	}

	return &restyTransport{client: c}
}

func (t *restyTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	r := t.client.R().SetContext(ctx)

	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}

	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}

	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
