package people

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Client talks to a single people collection endpoint. Create it with [New];
// it holds no state besides its configuration and can be reused for any
// number of calls.
type Client struct {
	baseURL   string
	authToken string
	options   *Options
	transport Transport
	mu        sync.Mutex
	connected bool
}

// New creates a client for the collection at baseURL. Single records are
// addressed as baseURL + id, so baseURL normally ends with a slash, e.g.
// "http://localhost:3000/people/". New performs no I/O and no validation; see
// [Client.Connect].
func New(baseURL, authToken string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		options:   options,
	}
}

// Connect validates the options and prepares the transport. It is called
// implicitly by every operation, so calling it up front is only useful to
// surface configuration errors early. Subsequent calls are no-ops.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return newError(KindInvalidArgument, "Connect", "people client is nil")
	}

	if err := ctx.Err(); err != nil {
		return wrapError(KindTransport, "Connect", "context done", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	if c.baseURL == "" {
		return newError(KindInvalidArgument, "Connect", "base URL must be set")
	}

	if err := c.options.Validate(); err != nil {
		return wrapError(KindInvalidArgument, "Connect", "invalid options", err)
	}

	if c.options.transport != nil {
		c.transport = c.options.transport
	} else {
		c.transport = newRestyTransport(c.options)
	}

	c.connected = true

	return nil
}

func (c *Client) logger() RequestLogger {
	return c.options.requestLogger
}

func (c *Client) recordURL(id ID) string {
	return c.baseURL + string(id)
}

// requireToken rejects mutating calls on a client built without a token, so
// no request goes out with an empty bearer credential.
func (c *Client) requireToken(op string) error {
	if strings.TrimSpace(c.authToken) == "" {
		return newError(KindInvalidArgument, op, "auth token must be set for create and delete")
	}
	return nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.authToken}
}

// do sends req through the transport. A non-2xx status is not an error here;
// callers map status codes to error kinds themselves.
func (c *Client) do(ctx context.Context, op string, req *Request) (*Response, error) {
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	c.logger().Debugf("%s: %s %s %s", op, req.Method, req.URL, req.Query.Encode())

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, wrapError(KindTransport, op, fmt.Sprintf("%s %s failed", req.Method, req.URL), err)
	}

	return resp, nil
}

func (c *Client) getList(ctx context.Context, op string, query url.Values) ([]Person, error) {
	resp, err := c.do(ctx, op, &Request{Method: http.MethodGet, URL: c.baseURL, Query: query})
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, unexpectedStatus(op, resp)
	}

	return decode[[]Person](op, resp)
}

func decode[T any](op string, resp *Response) (T, error) {
	var v T

	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return v, wrapError(KindProtocol, op, "failed to decode response body", err)
	}

	return v, nil
}

func unexpectedStatus(op string, resp *Response) error {
	return statusError(KindUnknown, op, "Unknown error: "+errorMessage(resp.Body), resp.StatusCode)
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw body.
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return "(empty error body)"
	}

	var payload struct {
		Error json.RawMessage `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Error) > 0 {
		var s string
		if err := json.Unmarshal(payload.Error, &s); err == nil {
			if s != "" {
				return s
			}
		} else if string(payload.Error) != "null" {
			return string(payload.Error)
		}
	}

	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}

	return "(empty error body)"
}

func requireID(op string, id ID) error {
	if strings.TrimSpace(string(id)) == "" {
		return newError(KindInvalidArgument, op, "person id must be set")
	}
	return nil
}

var errNilClient = errors.New("people client is nil")

func (c *Client) check(op string) error {
	if c == nil {
		return wrapError(KindInvalidArgument, op, "client not usable", errNilClient)
	}
	return nil
}
