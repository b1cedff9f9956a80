// Package people provides an HTTP client for a "people" REST collection
// (json-server style: /people/ with _limit/_page pagination and an
// X-Total-Count header).
//
// The client wraps [github.com/go-resty/resty/v2] with automatic retries and
// pluggable logging, and translates every response into either a decoded
// value or a typed [*Error].
//
// # Basic Usage
//
//	c := people.New("http://localhost:3000/people/", token,
//	    people.WithRetryCount(5),
//	)
//
//	all, err := c.GetAllPaginated(ctx, 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := c.PersonByID(ctx, "22")
//	if errors.Is(err, people.ErrNotFound) {
//	    // no such record
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called, which
// every operation does on first use.
//
// # Pagination
//
// [Client.GetAllPaginated] requests the first page, reads the total from the
// X-Total-Count header and then fetches the remaining pages sequentially, so
// the result keeps server order.
//
// # Errors
//
// Every failure is an [*Error] carrying a [Kind]. Use errors.Is with the
// sentinels ([ErrInvalidArgument], [ErrNotFound], [ErrCreation], [ErrUnknown],
// [ErrProtocol], [ErrFile], [ErrTransport]) or [IsKind] to branch on it.
// Invalid arguments are rejected before any request is sent.
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries on HTTP 429 (rate limit) and 5xx server
// errors, and on transient connection errors. POST and DELETE requests are
// only retried on 429, never after a 5xx or a dropped connection. Supply a custom function via [WithRetryPolicy] to override this
// behaviour.
//
// # Authentication
//
// Create and delete requests carry "Authorization: Bearer <token>" with the
// token passed to [New]. Reads are sent without credentials. Creating or
// deleting with an empty token fails with [ErrInvalidArgument] before any
// request is sent.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZapLogger]. The default
// [NoopLogger] discards all log output.
package people
