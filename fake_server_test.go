package people

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeServer is a minimal json-server lookalike serving /people/.
type fakeServer struct {
	mu       sync.Mutex
	people   []Person
	nextID   int
	requests []string
	auth     []string
}

func newFakeServer(t *testing.T, people []Person) (*fakeServer, string) {
	t.Helper()

	f := &fakeServer{people: append([]Person(nil), people...), nextID: len(people) + 1}
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)

	return f, server.URL + "/people/"
}

func seedPeople(n int) []Person {
	people := make([]Person, n)
	for i := range people {
		people[i] = Person{
			ID:        ID(strconv.Itoa(i + 1)),
			FirstName: fmt.Sprintf("First%d", i+1),
			LastName:  fmt.Sprintf("Last%d", i+1),
			Email:     fmt.Sprintf("person%d@example.com", i+1),
			Phone:     fmt.Sprintf("+48 500 000 %03d", i+1),
			IPAddress: fmt.Sprintf("10.0.%d.%d", i/256, i%256),
		}
	}
	return people
}

func (f *fakeServer) requestLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeServer) authHeaders() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.auth...)
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r.Method+" "+r.URL.RequestURI())
	if r.Method == http.MethodPost || r.Method == http.MethodDelete {
		f.auth = append(f.auth, r.Header.Get("Authorization"))
	}

	w.Header().Set("Content-Type", "application/json")

	id := strings.TrimPrefix(r.URL.Path, "/people/")

	switch {
	case r.Method == http.MethodGet && id == "":
		f.list(w, r)
	case r.Method == http.MethodGet:
		for _, p := range f.people {
			if string(p.ID) == id {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{})
	case r.Method == http.MethodPost && id == "":
		var np NewPerson
		if err := json.NewDecoder(r.Body).Decode(&np); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		for _, p := range f.people {
			if p.Email == np.Email {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email taken"})
				return
			}
		}
		p := Person{
			ID:        ID(strconv.Itoa(f.nextID)),
			FirstName: np.FirstName,
			LastName:  np.LastName,
			Email:     np.Email,
			Phone:     np.Phone,
			IPAddress: np.IPAddress,
		}
		f.nextID++
		f.people = append(f.people, p)
		writeJSON(w, http.StatusCreated, p)
	case r.Method == http.MethodDelete && id != "":
		for i, p := range f.people {
			if string(p.ID) == id {
				f.people = append(f.people[:i], f.people[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (f *fakeServer) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	matches := make([]Person, 0, len(f.people))
	for _, p := range f.people {
		if prefix := q.Get("ip_address_like"); prefix != "" && !strings.HasPrefix(p.IPAddress, strings.TrimPrefix(prefix, "^")) {
			continue
		}
		if v := q.Get("first_name"); v != "" && p.FirstName != v {
			continue
		}
		if v := q.Get("last_name"); v != "" && p.LastName != v {
			continue
		}
		if v := q.Get("email"); v != "" && p.Email != v {
			continue
		}
		matches = append(matches, p)
	}

	rawLimit := q.Get("_limit")
	if rawLimit == "" {
		writeJSON(w, http.StatusOK, matches)
		return
	}

	limit, _ := strconv.Atoi(rawLimit)
	page := 1
	if rawPage := q.Get("_page"); rawPage != "" {
		page, _ = strconv.Atoi(rawPage)
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(len(matches)))
	writeJSON(w, http.StatusOK, matches[start:end])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// countingTransport is a Transport answering from a callback and recording
// every request it sees.
type countingTransport struct {
	mu       sync.Mutex
	requests []*Request
	respond  func(req *Request) (*Response, error)
}

func (t *countingTransport) Do(_ context.Context, req *Request) (*Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	if t.respond == nil {
		return &Response{StatusCode: http.StatusOK, Body: []byte("[]")}, nil
	}

	return t.respond(req)
}

func (t *countingTransport) calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}
