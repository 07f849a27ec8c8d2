package amadeus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tripscout/pkg/logger"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeAmadeus serves the token endpoint and whatever API routes a test adds.
type fakeAmadeus struct {
	server     *httptest.Server
	mux        *http.ServeMux
	tokenCalls atomic.Int32
	tokenGate  atomic.Pointer[chan struct{}]
	lastQuery  atomic.Value
	lastAuth   atomic.Value
}

func newFakeAmadeus(t *testing.T) *fakeAmadeus {
	t.Helper()
	f := &fakeAmadeus{mux: http.NewServeMux()}
	f.mux.HandleFunc("POST "+tokenPath, func(w http.ResponseWriter, r *http.Request) {
		n := f.tokenCalls.Add(1)
		if gate := f.tokenGate.Load(); gate != nil {
			<-*gate
		}
		_ = r.ParseForm()
		if r.PostForm.Get("grant_type") != "client_credentials" || r.PostForm.Get("client_id") != "id" || r.PostForm.Get("client_secret") != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": fmt.Sprintf("token-%d", n),
			"token_type":   "Bearer",
			"expires_in":   1799,
		})
	})
	f.server = httptest.NewServer(f.mux)
	t.Cleanup(f.server.Close)
	return f
}

// holdTokens makes the token endpoint wait until the returned func is called.
func (f *fakeAmadeus) holdTokens() (release func()) {
	gate := make(chan struct{})
	f.tokenGate.Store(&gate)
	return func() { close(gate) }
}

// handle registers a GET route that records the request and replies with body.
func (f *fakeAmadeus) handle(path string, status int, body any) {
	f.mux.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
		f.lastQuery.Store(r.URL.Query())
		f.lastAuth.Store(r.Header.Get("Authorization"))
		writeJSON(w, status, body)
	})
}

func (f *fakeAmadeus) client(caps Capabilities, opts ...TokenOption) *Client {
	return NewClient(f.server.Client(), Config{
		BaseURL:      f.server.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		Capabilities: caps,
	}, logger.Nop{}, opts...)
}

func (f *fakeAmadeus) query() url.Values {
	v, _ := f.lastQuery.Load().(url.Values)
	return v
}

func (f *fakeAmadeus) auth() string {
	v, _ := f.lastAuth.Load().(string)
	return v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
