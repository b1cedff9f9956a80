package people

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	limitParam       = "_limit"
	pageParam        = "_page"
	totalCountHeader = "X-Total-Count"
)

// pageCursor tracks a paginated fetch. Page 1 is the request that reported
// the total, so the cursor starts there.
type pageCursor struct {
	limit        int
	totalRecords int
	pagesCount   int
	currentPage  int
}

func newPageCursor(limit, totalRecords int) *pageCursor {
	return &pageCursor{
		limit:        limit,
		totalRecords: totalRecords,
		pagesCount:   pagesCount(totalRecords, limit),
		currentPage:  1,
	}
}

// next advances to the following page and reports whether it exists.
func (p *pageCursor) next() (int, bool) {
	if p.currentPage >= p.pagesCount {
		return 0, false
	}
	p.currentPage++
	return p.currentPage, true
}

// pagesCount is ceil(total/limit) in integer arithmetic. limit must be
// positive.
func pagesCount(total, limit int) int {
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}

// GetAll returns the whole collection with a single unparameterized request,
// in server order.
func (c *Client) GetAll(ctx context.Context) ([]Person, error) {
	const op = "GetAll"

	if err := c.check(op); err != nil {
		return nil, err
	}

	return c.getList(ctx, op, nil)
}

// GetAllPaginated returns the whole collection, fetched limit records at a
// time. The first request reports the total in the X-Total-Count header; the
// remaining pages are then fetched one after another and appended in page
// order.
func (c *Client) GetAllPaginated(ctx context.Context, limit int) ([]Person, error) {
	const op = "GetAllPaginated"

	if err := c.check(op); err != nil {
		return nil, err
	}

	if limit <= 0 {
		return nil, newError(KindInvalidArgument, op, "Limit has to be positive.")
	}

	resp, err := c.do(ctx, op, &Request{
		Method: http.MethodGet,
		URL:    c.baseURL,
		Query:  url.Values{limitParam: {strconv.Itoa(limit)}},
	})
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, unexpectedStatus(op, resp)
	}

	total, err := totalCount(op, resp)
	if err != nil {
		return nil, err
	}

	people, err := decode[[]Person](op, resp)
	if err != nil {
		return nil, err
	}

	cursor := newPageCursor(limit, total)

	c.logger().Debugf("%s: %d records in %d pages of %d", op, cursor.totalRecords, cursor.pagesCount, cursor.limit)

	for page, ok := cursor.next(); ok; page, ok = cursor.next() {
		chunk, err := c.getList(ctx, op, url.Values{
			limitParam: {strconv.Itoa(cursor.limit)},
			pageParam:  {strconv.Itoa(page)},
		})
		if err != nil {
			return nil, err
		}

		people = append(people, chunk...)
	}

	return people, nil
}

func totalCount(op string, resp *Response) (int, error) {
	raw := strings.TrimSpace(resp.Header.Get(totalCountHeader))
	if raw == "" {
		return 0, newError(KindProtocol, op, fmt.Sprintf("response is missing the %s header", totalCountHeader))
	}

	total, err := strconv.Atoi(raw)
	if err != nil {
		return 0, wrapError(KindProtocol, op, fmt.Sprintf("invalid %s header %q", totalCountHeader, raw), err)
	}

	if total < 0 {
		return 0, newError(KindProtocol, op, fmt.Sprintf("invalid %s header %q", totalCountHeader, raw))
	}

	return total, nil
}
