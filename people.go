package people

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/afero"
)

const ipAddressLikeParam = "ip_address_like"

// PersonByID fetches a single record.
func (c *Client) PersonByID(ctx context.Context, id ID) (Person, error) {
	const op = "PersonByID"

	if err := c.check(op); err != nil {
		return Person{}, err
	}

	if err := requireID(op, id); err != nil {
		return Person{}, err
	}

	resp, err := c.do(ctx, op, &Request{Method: http.MethodGet, URL: c.recordURL(id)})
	if err != nil {
		return Person{}, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Person{}, statusError(KindNotFound, op, "User with given id not found", resp.StatusCode)
	case !resp.IsSuccess():
		return Person{}, unexpectedStatus(op, resp)
	}

	return decode[Person](op, resp)
}

// Query returns the records matching every criterion exactly. Filtering is
// done by the server. Unknown field names are rejected before any request is
// sent.
func (c *Client) Query(ctx context.Context, criteria QueryCriteria) ([]Person, error) {
	const op = "Query"

	if err := c.check(op); err != nil {
		return nil, err
	}

	if err := criteria.Validate(); err != nil {
		return nil, wrapError(KindInvalidArgument, op, "invalid criteria", err)
	}

	query := url.Values{}
	for k, v := range criteria {
		query.Set(k, v)
	}

	return c.getList(ctx, op, query)
}

// PeopleByPartialIP returns the records whose IP address starts with prefix.
// The prefix is sent as a "^prefix" pattern and matched by the server.
func (c *Client) PeopleByPartialIP(ctx context.Context, prefix string) ([]Person, error) {
	const op = "PeopleByPartialIP"

	if err := c.check(op); err != nil {
		return nil, err
	}

	return c.getList(ctx, op, url.Values{ipAddressLikeParam: {"^" + prefix}})
}

// AddPerson creates a record and returns it as stored by the server,
// including its new id.
func (c *Client) AddPerson(ctx context.Context, p NewPerson) (Person, error) {
	const op = "AddPerson"

	if err := c.check(op); err != nil {
		return Person{}, err
	}

	if err := c.requireToken(op); err != nil {
		return Person{}, err
	}

	return c.create(ctx, op, p)
}

func (c *Client) create(ctx context.Context, op string, p NewPerson) (Person, error) {
	resp, err := c.do(ctx, op, &Request{
		Method:  http.MethodPost,
		URL:     c.baseURL,
		Body:    p,
		Headers: c.authHeaders(),
	})
	if err != nil {
		return Person{}, err
	}

	if resp.StatusCode != http.StatusCreated {
		return Person{}, statusError(KindCreation, op, errorMessage(resp.Body), resp.StatusCode)
	}

	return decode[Person](op, resp)
}

// DeleteByID deletes a record and returns the server's response body decoded
// as a record. Servers that answer with an empty object yield a zero Person.
func (c *Client) DeleteByID(ctx context.Context, id ID) (Person, error) {
	const op = "DeleteByID"

	if err := c.check(op); err != nil {
		return Person{}, err
	}

	if err := requireID(op, id); err != nil {
		return Person{}, err
	}

	if err := c.requireToken(op); err != nil {
		return Person{}, err
	}

	return c.delete(ctx, op, id, "User with given id not found")
}

func (c *Client) delete(ctx context.Context, op string, id ID, notFound string) (Person, error) {
	resp, err := c.do(ctx, op, &Request{
		Method:  http.MethodDelete,
		URL:     c.recordURL(id),
		Headers: c.authHeaders(),
	})
	if err != nil {
		return Person{}, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Person{}, statusError(KindNotFound, op, notFound, resp.StatusCode)
	case !resp.IsSuccess():
		return Person{}, unexpectedStatus(op, resp)
	}

	if len(resp.Body) == 0 {
		return Person{}, nil
	}

	return decode[Person](op, resp)
}

// DeleteByName deletes every record whose first name equals firstName and
// returns those records together with their count.
//
// Matches are found by fetching the whole collection and deleted one at a
// time by id. The first failed delete stops the run; the records deleted so
// far are returned with the error.
func (c *Client) DeleteByName(ctx context.Context, firstName string) ([]Person, int, error) {
	const op = "DeleteByName"

	if err := c.check(op); err != nil {
		return nil, 0, err
	}

	if firstName == "" {
		return nil, 0, newError(KindInvalidArgument, op, "first name must be set")
	}

	if err := c.requireToken(op); err != nil {
		return nil, 0, err
	}

	all, err := c.getList(ctx, op, nil)
	if err != nil {
		return nil, 0, err
	}

	var matches []Person
	for _, p := range all {
		if p.FirstName == firstName {
			matches = append(matches, p)
		}
	}

	c.logger().Debugf("%s: %d records named %q", op, len(matches), firstName)

	deleted := make([]Person, 0, len(matches))
	for _, p := range matches {
		if p.ID == "" {
			return deleted, len(deleted), newError(KindProtocol, op, "record without id in collection")
		}

		if _, err := c.delete(ctx, op, p.ID, "User with given name not found"); err != nil {
			return deleted, len(deleted), err
		}

		deleted = append(deleted, p)
	}

	return deleted, len(deleted), nil
}

// AddFromFile creates one record per element of the JSON array stored at
// path. Ids present in the file are ignored; a null element makes the whole
// file invalid and nothing is sent. The first element the server
// does not accept stops the import; the records created so far are returned
// with the error.
func (c *Client) AddFromFile(ctx context.Context, path string) ([]Person, error) {
	const op = "AddFromFile"

	if err := c.check(op); err != nil {
		return nil, err
	}

	if err := c.requireToken(op); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(c.options.fs, path)
	if err != nil {
		return nil, wrapError(KindFile, op, fmt.Sprintf("cannot read %s", path), err)
	}

	var entries []*NewPerson
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, wrapError(KindFile, op, fmt.Sprintf("cannot parse %s", path), err)
	}

	for i, entry := range entries {
		if entry == nil {
			return nil, newError(KindFile, op, fmt.Sprintf("cannot parse %s: entry %d is null", path, i))
		}
	}

	c.logger().Debugf("%s: importing %d records from %s", op, len(entries), path)

	created := make([]Person, 0, len(entries))
	for i, entry := range entries {
		p, err := c.create(ctx, op, *entry)
		if err != nil {
			if IsKind(err, KindCreation) {
				c.logger().Warnf("%s: record %d of %s rejected: %v", op, i, path, err)
			}
			return created, err
		}

		created = append(created, p)
	}

	return created, nil
}
