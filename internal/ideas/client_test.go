package ideas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientGenerateWrappedIdeas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/generate-ideas" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type: %q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-1" {
			t.Errorf("unexpected request id: %q", got)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		if payload["industry"] != "Healthcare" || payload["technology_focus"] != "AI" {
			t.Errorf("unexpected payload: %#v", payload)
		}
		if len(payload) != 2 {
			t.Errorf("payload should only carry two fields, got %#v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ideas":[{"tagline":"T"}]}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL + "/generate-ideas", HTTPClient: server.Client()})
	got, err := client.Generate(context.Background(), "req-1", Request{Industry: "Healthcare", TechnologyFocus: "AI"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 idea, got %d", len(got))
	}
	if tagline, ok := got[0].Field(FieldTagline); !ok || tagline != "T" {
		t.Fatalf("unexpected tagline: %q (ok=%v)", tagline, ok)
	}
}

func TestClientGenerateStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL, HTTPClient: server.Client()})
	_, err := client.Generate(context.Background(), "", Request{Industry: "x", TechnologyFocus: "y"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T (%v)", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", statusErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("message should mention status code: %q", err.Error())
	}
	if statusErr.Body != "boom" {
		t.Fatalf("unexpected body: %q", statusErr.Body)
	}
}

func TestClientGenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := New(Config{Endpoint: endpoint, HTTPClient: &http.Client{Timeout: time.Second}})
	_, err := client.Generate(context.Background(), "", Request{})
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T (%v)", err, err)
	}
	if err.Error() != transportErr.Err.Error() {
		t.Fatalf("transport error should surface the underlying message, got %q", err.Error())
	}
}

func TestClientGenerateShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL, HTTPClient: server.Client()})
	_, err := client.Generate(context.Background(), "", Request{})
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected *ShapeError, got %T (%v)", err, err)
	}
	if !strings.Contains(err.Error(), "unknown error") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestClientGenerateHonorsContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := New(Config{Endpoint: server.URL, HTTPClient: server.Client()})
	_, err := client.Generate(ctx, "", Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewDefaultsEndpoint(t *testing.T) {
	client := New(Config{})
	if client.Endpoint() != DefaultEndpoint {
		t.Fatalf("expected default endpoint, got %s", client.Endpoint())
	}
}

func TestPickHTTPClientHonorsCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 42 * time.Second}
	if got := pickHTTPClient(custom); got != custom {
		t.Fatalf("expected custom client to be returned")
	}
	if got := pickHTTPClient(nil); got.Timeout <= DefaultTimeout {
		t.Fatalf("fallback timeout %s should exceed %s", got.Timeout, DefaultTimeout)
	}
}
