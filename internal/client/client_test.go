package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sgzs6721/lessonctl/internal/credentials"
	"github.com/sgzs6721/lessonctl/internal/session"
	"github.com/sgzs6721/lessonctl/internal/shared/logger"
	"github.com/sgzs6721/lessonctl/pkg/api"
)

var testLog = logger.New("error", "text")

// countingStore counts Clear calls on top of the in-memory store.
type countingStore struct {
	*credentials.MemStore
	clears int
}

func (s *countingStore) Clear() error {
	s.clears++
	return s.MemStore.Clear()
}

func newTestClient(serverURL string, creds credentials.Store, opts ...Option) *Client {
	opts = append([]Option{WithLogger(testLog)}, opts...)
	return New(serverURL, creds, opts...)
}

func TestClient_Do_SuccessCodes(t *testing.T) {
	for _, code := range []int{0, 200} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"code":    code,
				"data":    map[string]any{"id": 1},
				"message": "ok",
			})
		}))

		c := newTestClient(server.URL, credentials.NewMemStore())
		env, err := c.Do(context.Background(), "GET", "/campus/detail", nil, nil)

		if err != nil {
			t.Fatalf("code %d: expected no error, got %v", code, err)
		}
		if env.Code != code {
			t.Errorf("expected envelope code %d, got %d", code, env.Code)
		}
		if env.Message != "ok" {
			t.Errorf("expected message ok, got %s", env.Message)
		}
		server.Close()
	}
}

func TestClient_Do_BusinessFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code":    4001,
			"data":    nil,
			"message": "校区不存在",
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL, credentials.NewMemStore())
	_, err := c.Campuses().Get(context.Background(), 99)

	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Code != 4001 {
		t.Errorf("expected code 4001, got %d", apiErr.Code)
	}
	if apiErr.Message != "校区不存在" {
		t.Errorf("expected server message, got %s", apiErr.Message)
	}
}

func TestClient_AuthHeader(t *testing.T) {
	t.Run("token injected on normal path", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": nil, "message": "ok"})
		}))
		defer server.Close()

		creds := credentials.NewMemStore()
		creds.SetToken("tok-123")
		c := newTestClient(server.URL, creds)

		if _, err := c.Do(context.Background(), "GET", "/student/list", nil, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotAuth != "tok-123" {
			t.Errorf("expected Authorization tok-123, got %q", gotAuth)
		}
	})

	t.Run("allowlisted paths never carry a token", func(t *testing.T) {
		for _, path := range []string{"/auth/login", "/auth/register"} {
			var gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": nil, "message": "ok"})
			}))

			creds := credentials.NewMemStore()
			creds.SetToken("tok-123")
			c := newTestClient(server.URL, creds)

			if _, err := c.Do(context.Background(), "POST", path, nil, nil); err != nil {
				t.Fatalf("%s: expected no error, got %v", path, err)
			}
			if gotAuth != "" {
				t.Errorf("%s: expected no Authorization header, got %q", path, gotAuth)
			}
			server.Close()
		}
	})

	t.Run("missing token does not short-circuit", func(t *testing.T) {
		var sawRequest bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawRequest = true
			if r.Header.Get("Authorization") != "" {
				t.Errorf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
			}
			json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": nil, "message": "ok"})
		}))
		defer server.Close()

		c := newTestClient(server.URL, credentials.NewMemStore())
		if _, err := c.Do(context.Background(), "GET", "/student/list", nil, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !sawRequest {
			t.Error("expected the call to reach the server")
		}
	})
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"message": "登录已过期"})
	}))
	defer server.Close()

	creds := &countingStore{MemStore: credentials.NewMemStore()}
	creds.SetToken("tok-123")
	creds.SetUser(&api.UserInfo{ID: 7, Phone: "13800000000"})

	bus := session.New(testLog)
	var expiredReason string
	bus.OnExpired(func(reason string) { expiredReason = reason })

	c := newTestClient(server.URL, creds, WithSessionBus(bus))
	_, err := c.Do(context.Background(), "GET", "/student/list", nil, nil)

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Code != 401 {
		t.Errorf("expected code 401, got %d", apiErr.Code)
	}
	if !apiErr.IsUnauthorized() {
		t.Error("expected IsUnauthorized")
	}
	if creds.clears != 1 {
		t.Errorf("expected exactly one Clear, got %d", creds.clears)
	}
	if creds.Token() != "" {
		t.Error("expected token to be cleared")
	}
	if creds.User() != nil {
		t.Error("expected cached user to be cleared")
	}
	// The event is published synchronously before the error returns.
	if expiredReason != "登录已过期" {
		t.Errorf("expected expiry reason from server, got %q", expiredReason)
	}
}

func TestClient_HTTPFailure_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := newTestClient(server.URL, credentials.NewMemStore())
	_, err := c.Do(context.Background(), "GET", "/student/list", nil, nil)

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Code != 502 {
		t.Errorf("expected code 502, got %d", apiErr.Code)
	}
	if apiErr.Message != "request failed: 502" {
		t.Errorf("unexpected fallback message: %s", apiErr.Message)
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	c := newTestClient(server.URL, credentials.NewMemStore(), WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, err := c.Do(context.Background(), "GET", "/student/list", nil, nil)

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Code != api.CodeTimeout {
		t.Errorf("expected code %d, got %d", api.CodeTimeout, apiErr.Code)
	}
	if !apiErr.IsTimeout() {
		t.Error("expected IsTimeout")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("timeout took too long: %s", elapsed)
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	// Port 1 is never listening.
	c := newTestClient("http://127.0.0.1:1", credentials.NewMemStore())
	_, err := c.Do(context.Background(), "GET", "/student/list", nil, nil)

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Code != api.CodeNetwork {
		t.Errorf("expected code %d, got %d", api.CodeNetwork, apiErr.Code)
	}
}

func TestClient_ParentCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	c := newTestClient(server.URL, credentials.NewMemStore())
	_, err := c.Do(ctx, "GET", "/student/list", nil, nil)

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	// Caller cancellation is not the client timeout.
	if apiErr.Code != api.CodeNetwork {
		t.Errorf("expected code %d, got %d", api.CodeNetwork, apiErr.Code)
	}
}
