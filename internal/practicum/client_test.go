package practicum

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	logx "hwbot/pkg/logx"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(ClientConfig{Endpoint: url, Token: "secret"}, logx.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestClientFetch(t *testing.T) {
	var gotAuth, gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		_, _ = w.Write([]byte(`{"homeworks":[],"current_date":1234}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Fetch(context.Background(), 42)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotAuth != "OAuth secret" {
		t.Fatalf("expected OAuth header, got %q", gotAuth)
	}
	if gotFrom != "42" {
		t.Fatalf("expected from_date=42, got %q", gotFrom)
	}

	_, cursor, err := CheckResponse(resp)
	if err != nil {
		t.Fatalf("CheckResponse: %v", err)
	}
	if cursor != 1234 {
		t.Fatalf("expected cursor 1234, got %d", cursor)
	}
}

func TestClientFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Fetch(context.Background(), 0)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", reqErr.Status)
	}
}

func TestClientFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse everything from here on

	c := newTestClient(t, srv.URL)
	_, err := c.Fetch(context.Background(), 0)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != 0 {
		t.Fatalf("expected no HTTP status on transport failure, got %d", reqErr.Status)
	}
}

func TestClientFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks": [`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Fetch(context.Background(), 0)
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient(ClientConfig{Endpoint: "http://example"}, logx.Nop()); err == nil {
		t.Fatal("expected error for empty token")
	}
}
