package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/dropwatch/internal/client/notify"
	"github.com/dmitrijs2005/dropwatch/internal/client/session"
	"github.com/dmitrijs2005/dropwatch/internal/client/storage"
	"github.com/dmitrijs2005/dropwatch/internal/logging"
)

// recordingSink remembers what a page would have shown.
type recordingSink struct {
	mu         sync.Mutex
	loading    int
	maxLoading int
	shown      int
	errors     []string
	successes  []string
}

var _ notify.Sink = (*recordingSink)(nil)

func (s *recordingSink) ShowLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading++
	s.shown++
	s.maxLoading = max(s.maxLoading, s.loading)
}

func (s *recordingSink) HideLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
}

func (s *recordingSink) ShowError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, msg)
}

func (s *recordingSink) ShowSuccess(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes = append(s.successes, msg)
}

func (s *recordingSink) ClearError()                   {}
func (s *recordingSink) ShowToast(string, notify.Kind) {}

func (s *recordingSink) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

func (s *recordingSink) Errors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.errors...)
}

type fixture struct {
	srv     *httptest.Server
	client  *Client
	sink    *recordingSink
	session *session.Session
}

func newFixture(t *testing.T, h http.Handler, opts ...Option) *fixture {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	sink := &recordingSink{}
	sess := session.New(storage.NewMemoryBackend(), logging.Nop())
	opts = append([]Option{WithHTTPClient(srv.Client()), WithSink(sink)}, opts...)

	return &fixture{
		srv:     srv,
		client:  New(srv.URL+"/api", sess, opts...),
		sink:    sink,
		session: sess,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
