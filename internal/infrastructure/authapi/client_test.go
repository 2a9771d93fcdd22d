package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/financeassistant/authform/internal/core/domain"
)

var demoCreds = domain.Credentials{Mail: domain.DemoEmail, Password: domain.DemoPassword}

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) record(path string) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r.URL.Path)
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if creds["mail"] != demoCreds.Mail || creds["password"] != demoCreds.Password {
			t.Errorf("unexpected request body: %+v", creds)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClient_Login_Success(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":{"_id":"u1","mail":"demo@gmail.com"}}`)
	c := NewClient(srv.URL+"/", nil, zerolog.Nop())

	res := c.Authenticate(context.Background(), domain.ModeSignIn, demoCreds)
	if !res.OK() {
		t.Fatalf("expected success, got failure %q", res.FailureMessage())
	}
	if res.Identity() != (domain.IdentityRecord{ID: "u1", Email: "demo@gmail.com"}) {
		t.Fatalf("unexpected identity: %+v", res.Identity())
	}
	if paths := rec.snapshot(); len(paths) != 1 || paths[0] != LoginPath {
		t.Fatalf("expected one call to %s, got %v", LoginPath, paths)
	}
}

func TestClient_Register_Success(t *testing.T) {
	srv, rec := newServer(t, http.StatusCreated, `{"data":{"_id":"u2","mail":"demo@gmail.com"},"token":"t"}`)
	c := NewClient(srv.URL, nil, zerolog.Nop())

	res := c.Authenticate(context.Background(), domain.ModeSignUp, demoCreds)
	if !res.OK() || res.Identity().ID != "u2" {
		t.Fatalf("unexpected result: ok=%v msg=%q", res.OK(), res.FailureMessage())
	}
	if paths := rec.snapshot(); len(paths) != 1 || paths[0] != RegisterPath {
		t.Fatalf("expected one call to %s, got %v", RegisterPath, paths)
	}
}

func TestClient_Rejection(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	c := NewClient(srv.URL, nil, zerolog.Nop())

	res := c.Authenticate(context.Background(), domain.ModeSignIn, demoCreds)
	if res.OK() {
		t.Fatalf("expected failure")
	}
	if res.FailureMessage() != "Invalid credentials" {
		t.Fatalf("unexpected message %q", res.FailureMessage())
	}
}

func TestClient_RejectionWithoutMessage(t *testing.T) {
	for _, body := range []string{`{}`, `not json`, ``} {
		srv, _ := newServer(t, http.StatusInternalServerError, body)
		c := NewClient(srv.URL, nil, zerolog.Nop())

		res := c.Authenticate(context.Background(), domain.ModeSignIn, demoCreds)
		if res.OK() || res.FailureMessage() != domain.MsgGenericFailure {
			t.Fatalf("body %q: expected generic failure, got %q", body, res.FailureMessage())
		}
	}
}

func TestClient_GarbledSuccessBody(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `<html>`)
	c := NewClient(srv.URL, nil, zerolog.Nop())

	res := c.Authenticate(context.Background(), domain.ModeSignIn, demoCreds)
	if res.OK() || !strings.HasPrefix(res.FailureMessage(), "decode response") {
		t.Fatalf("expected decode failure, got %q", res.FailureMessage())
	}
}

func TestClient_SuccessWithoutData(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"ok":true}`)
	c := NewClient(srv.URL, nil, zerolog.Nop())

	res := c.Authenticate(context.Background(), domain.ModeSignIn, demoCreds)
	if res.OK() || res.FailureMessage() != msgMissingUserData {
		t.Fatalf("expected missing data failure, got %q", res.FailureMessage())
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil, zerolog.Nop())
	res := c.Authenticate(context.Background(), domain.ModeSignIn, demoCreds)
	if res.OK() || res.FailureMessage() == "" || res.FailureMessage() == domain.MsgGenericFailure {
		t.Fatalf("expected transport error text, got %q", res.FailureMessage())
	}
}

func TestClient_Endpoint(t *testing.T) {
	c := NewClient("https://api.example.com//", nil, zerolog.Nop())
	if got := c.Endpoint(domain.ModeSignIn); got != "https://api.example.com/api/user/login" {
		t.Fatalf("unexpected login endpoint %s", got)
	}
	if got := c.Endpoint(domain.ModeSignUp); got != "https://api.example.com/api/user/register" {
		t.Fatalf("unexpected register endpoint %s", got)
	}
}
