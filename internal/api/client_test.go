package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fixedToken is a TokenSource returning a constant value.
type fixedToken string

func (t fixedToken) Token() string { return string(t) }

// TestBearerHeaderAttached verifies every request carries the current
// token, injected by the transport rather than by call sites.
func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, fixedToken("tok-1"))
	if err := client.Get(context.Background(), "/projects", &struct{}{}); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want \"Bearer tok-1\"", gotAuth)
	}
}

// TestNoBearerHeaderWhenLoggedOut verifies an empty token means no
// Authorization header at all, not an empty one.
func TestNoBearerHeaderWhenLoggedOut(t *testing.T) {
	var present bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, fixedToken(""))
	if err := client.Get(context.Background(), "/projects", &struct{}{}); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if present {
		t.Error("Authorization header sent for logged-out client")
	}
}

// TestPostNilBodySendsEmptyObject verifies a nil body posts "{}", the
// shape mutation endpoints without payloads expect.
func TestPostNilBodySendsEmptyObject(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, fixedToken("tok"))
	var out struct {
		Message string `json:"message"`
	}
	if err := client.Post(context.Background(), "/things/1/accept", nil, &out); err != nil {
		t.Fatalf("Post: %v", err)
	}

	if gotBody != "{}" {
		t.Errorf("body = %q, want \"{}\"", gotBody)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if out.Message != "ok" {
		t.Errorf("decoded message = %q, want \"ok\"", out.Message)
	}
}

// TestGetHasNoBody verifies GETs carry neither body nor Content-Type.
func TestGetHasNoBody(t *testing.T) {
	var gotContentType string
	var gotLen int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotLen = r.ContentLength
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, fixedToken("tok"))
	if err := client.Get(context.Background(), "/projects", &struct{}{}); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotContentType != "" {
		t.Errorf("GET Content-Type = %q, want empty", gotContentType)
	}
	if gotLen > 0 {
		t.Errorf("GET ContentLength = %d, want 0", gotLen)
	}
}

// TestErrorResponseDecoded verifies a non-2xx status becomes an *Error
// carrying the server's own message from the {"error": ...} body.
func TestErrorResponseDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"email already registered"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, fixedToken(""))
	err := client.Post(context.Background(), "/register", map[string]string{"email": "a@b.co"}, nil)
	if err == nil {
		t.Fatal("expected error for 409 response")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", apiErr.Status)
	}
	if apiErr.Message != "email already registered" {
		t.Errorf("Message = %q, want server's error text", apiErr.Message)
	}
}

// TestErrorResponseWithoutBody verifies a non-2xx with an empty or
// non-JSON body still yields a useful error.
func TestErrorResponseWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, fixedToken(""))
	err := client.Get(context.Background(), "/projects", &struct{}{})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", apiErr.Status)
	}
	if apiErr.Error() == "" {
		t.Error("Error() should never be empty")
	}
}

// TestBaseURLTrailingSlash verifies the base URL is normalized so paths
// never double the slash.
func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", fixedToken(""))
	if err := client.Get(context.Background(), "/projects", &struct{}{}); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotPath != "/projects" {
		t.Errorf("request path = %q, want \"/projects\"", gotPath)
	}
}

// TestTransportDoesNotMutateRequest verifies the transport clones before
// setting headers, as RoundTrippers must.
func TestTransportDoesNotMutateRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}

	transport := &bearerTransport{tokens: fixedToken("tok"), next: http.DefaultTransport}
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	resp.Body.Close()

	if req.Header.Get("Authorization") != "" {
		t.Error("original request was mutated by the transport")
	}
}
