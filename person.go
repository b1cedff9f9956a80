package people

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field names recognized by the remote resource for filtering.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldIPAddress = "ip_address"
)

var queryFields = []any{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldIPAddress}

// ID is a server-assigned record identifier. The server may send it as a JSON
// string or a JSON number; both decode into the same opaque string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}

	*id = ID(n.String())

	return nil
}

func (id ID) String() string {
	return string(id)
}

// Person is a record as returned by the server.
type Person struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IPAddress string `json:"ip_address"`
}

// NewPerson holds the editable attributes of a record to be created. It has no
// id field: ids are assigned by the server.
type NewPerson struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IPAddress string `json:"ip_address"`
}

// Editable returns the editable attributes of p.
func (p Person) Editable() NewPerson {
	return NewPerson{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		IPAddress: p.IPAddress,
	}
}

// QueryCriteria maps recognized field names to exact match values.
type QueryCriteria map[string]string

// Validate returns an error naming the first unrecognized key, in sorted key
// order.
func (c QueryCriteria) Validate() error {
	for _, key := range c.sortedKeys() {
		if err := validation.Validate(key, validation.Required, validation.In(queryFields...)); err != nil {
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func (c QueryCriteria) sortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c QueryCriteria) String() string {
	parts := make([]string, 0, len(c))
	for _, k := range c.sortedKeys() {
		parts = append(parts, k+"="+c[k])
	}
	return strings.Join(parts, "&")
}
