package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Backend is an in-memory stand-in for the content backend. Documents are
// kept per collection path ("courses", "courses/c1/programs",
// "about-us/statistics", ...) and every request is recorded.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	colls    map[string][]map[string]any
	requests []RecordedRequest
	failures map[string]failure
	nullData map[string]bool
	seq      int
}

// RecordedRequest is one call received by the Backend.
type RecordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// JSON decodes the recorded body into out.
func (r RecordedRequest) JSON(out any) error { return json.Unmarshal(r.Body, out) }

type failure struct {
	status  int
	message string
}

// NewBackend starts a Backend that is shut down when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		colls:    make(map[string][]map[string]any),
		failures: make(map[string]failure),
		nullData: make(map[string]bool),
	}
	r := chi.NewRouter()
	r.HandleFunc("/*", b.serve)
	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// Client returns a content client pointed at the Backend.
func (b *Backend) Client(t *testing.T) *cmsclient.Client {
	t.Helper()
	c, err := cmsclient.New(cmsclient.Config{BaseURL: b.Server.URL, Timeout: 5 * time.Second}, zap.NewNop())
	if err != nil {
		t.Fatalf("cmsclient.New: %v", err)
	}
	return c
}

// Seed stores docs under collection and returns their IDs. Docs without an
// _id get one.
func (b *Backend) Seed(t *testing.T, collection string, docs ...any) []string {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		m, err := toMap(d)
		if err != nil {
			t.Fatalf("seed %s: %v", collection, err)
		}
		if id, _ := m["_id"].(string); id == "" {
			m["_id"] = b.nextID()
		}
		b.colls[collection] = append(b.colls[collection], m)
		ids = append(ids, m["_id"].(string))
	}
	return ids
}

// Doc decodes the stored document into out and reports whether it exists.
func (b *Backend) Doc(t *testing.T, collection, id string, out any) bool {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	_, doc := b.find(collection, id)
	if doc == nil {
		return false
	}
	raw, _ := json.Marshal(doc)
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode %s/%s: %v", collection, id, err)
	}
	return true
}

// Count returns the number of documents in collection.
func (b *Backend) Count(collection string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.colls[collection])
}

// Requests returns a copy of every recorded request.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

// LastRequest returns the most recent request with the given method.
func (b *Backend) LastRequest(method string) (RecordedRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		if b.requests[i].Method == method {
			return b.requests[i], true
		}
	}
	return RecordedRequest{}, false
}

// Fail makes every request matching method and path answer with status and
// a {success:false} envelope carrying message.
func (b *Backend) Fail(method, path string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, message: message}
}

// NullData makes requests matching method and path take effect as usual
// but answer {success:true, data:null}.
func (b *Backend) NullData(method, path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nullData[method+" "+path] = true
}

func (b *Backend) nextID() string {
	b.seq++
	return fmt.Sprintf("id%04d", b.seq)
}

func (b *Backend) find(collection, id string) (int, map[string]any) {
	for i, d := range b.colls[collection] {
		if d["_id"] == id {
			return i, d
		}
	}
	return -1, nil
}

// split maps a request path to (collection, id). /about-us/<family> counts
// as one collection segment.
func split(path string) (collection, id string) {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) >= 2 && segs[0] == "about-us" {
		segs = append([]string{segs[0] + "/" + segs[1]}, segs[2:]...)
	}
	if len(segs)%2 == 0 {
		return strings.Join(segs[:len(segs)-1], "/"), segs[len(segs)-1]
	}
	return strings.Join(segs, "/"), ""
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, RecordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})

	if f, ok := b.failures[r.Method+" "+r.URL.Path]; ok {
		reply(w, f.status, map[string]any{"success": false, "message": f.message})
		return
	}

	if b.nullData[r.Method+" "+r.URL.Path] {
		rec := httptest.NewRecorder()
		b.route(rec, r, body)
		if rec.Code >= http.StatusBadRequest {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.Code)
			_, _ = w.Write(rec.Body.Bytes())
			return
		}
		ok(w, rec.Code, nil)
		return
	}
	b.route(w, r, body)
}

// route performs the request against the in-memory collections. The caller
// holds b.mu.
func (b *Backend) route(w http.ResponseWriter, r *http.Request, body []byte) {
	path := strings.Trim(r.URL.Path, "/")

	// PUT .../applicants/{id}/status
	if r.Method == http.MethodPut && strings.HasSuffix(path, "/status") {
		b.update(w, strings.TrimSuffix(path, "/status"), body)
		return
	}

	coll, id := split(path)
	switch {
	case r.Method == http.MethodGet && id == "":
		docs := b.colls[coll]
		if docs == nil {
			docs = []map[string]any{}
		}
		ok(w, http.StatusOK, docs)
	case r.Method == http.MethodGet:
		if _, doc := b.find(coll, id); doc != nil {
			ok(w, http.StatusOK, doc)
			return
		}
		notFound(w)
	case r.Method == http.MethodPost && id == "":
		b.create(w, coll, body)
	case r.Method == http.MethodPut && id != "":
		b.update(w, r.URL.Path, body)
	case r.Method == http.MethodDelete && id != "":
		i, doc := b.find(coll, id)
		if doc == nil {
			notFound(w)
			return
		}
		b.colls[coll] = append(b.colls[coll][:i:i], b.colls[coll][i+1:]...)
		ok(w, http.StatusOK, nil)
	default:
		reply(w, http.StatusMethodNotAllowed, map[string]any{"success": false, "message": "method not allowed"})
	}
}

func (b *Backend) create(w http.ResponseWriter, coll string, body []byte) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		reply(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid JSON"})
		return
	}
	// about-us content is upserted by type
	if coll == "about-us/content" {
		for _, d := range b.colls[coll] {
			if d["type"] == doc["type"] {
				for k, v := range doc {
					if k != "_id" {
						d[k] = v
					}
				}
				ok(w, http.StatusOK, d)
				return
			}
		}
	}
	if id, _ := doc["_id"].(string); id == "" {
		doc["_id"] = b.nextID()
	}
	b.colls[coll] = append(b.colls[coll], doc)
	ok(w, http.StatusCreated, doc)
}

// update merges the top-level fields of body into the document at path.
func (b *Backend) update(w http.ResponseWriter, path string, body []byte) {
	coll, id := split(path)
	_, doc := b.find(coll, id)
	if doc == nil {
		notFound(w)
		return
	}
	var patch map[string]any
	if err := json.Unmarshal(body, &patch); err != nil {
		reply(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid JSON"})
		return
	}
	for k, v := range patch {
		if k != "_id" {
			doc[k] = v
		}
	}
	ok(w, http.StatusOK, doc)
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func ok(w http.ResponseWriter, status int, data any) {
	reply(w, status, map[string]any{"success": true, "data": data})
}

func notFound(w http.ResponseWriter) {
	reply(w, http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
