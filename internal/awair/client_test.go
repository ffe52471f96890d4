package awair

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/olly/awair-monitor/internal/infrastructure/config"
)

// newTestClient creates a Client bound to the test server.
func newTestClient(server *httptest.Server) *Client {
	c := NewClient(config.AwairConfig{
		APIKey:     "test-key",
		DeviceType: "awair-element",
		DeviceID:   "12345",
		BaseURL:    server.URL,
	})
	c.httpClient = server.Client()
	return c
}

func testWindow() (time.Time, time.Time) {
	upper := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)
	return upper.Add(-5 * time.Minute), upper
}

func TestFetch_RequestShape(t *testing.T) {
	var gotPath, gotAuth string
	gotParams := make(map[string]string)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				gotParams[key] = values[0]
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	lower, upper := testWindow()

	resp, err := client.Fetch(context.Background(), lower, upper)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(resp.Data))
	}

	wantPath := "/v1/users/self/devices/awair-element/12345/air-data/raw"
	if gotPath != wantPath {
		t.Errorf("path = %q, want %q", gotPath, wantPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-key")
	}
	if gotParams["from"] != "2024-01-01T00:00:00Z" {
		t.Errorf("from = %q, want %q", gotParams["from"], "2024-01-01T00:00:00Z")
	}
	if gotParams["to"] != "2024-01-01T00:05:00Z" {
		t.Errorf("to = %q, want %q", gotParams["to"], "2024-01-01T00:05:00Z")
	}
}

func TestFetch_DecodesPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"timestamp":"2024-01-01T00:00:00Z","score":80.0,` +
			`"sensors":[{"comp":"temp","value":21.5},{"comp":"humid","value":45.2}],` +
			`"indices":[{"comp":"co2","value":450.0}]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	lower, upper := testWindow()

	resp, err := client.Fetch(context.Background(), lower, upper)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	if len(resp.Data[0].Sensors) != 2 {
		t.Errorf("len(Sensors) = %d, want 2", len(resp.Data[0].Sensors))
	}
	if resp.Data[0].Sensors[0].Comp != SensorTemperature {
		t.Errorf("Sensors[0].Comp = %v, want temp", resp.Data[0].Sensors[0].Comp)
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad token"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	lower, upper := testWindow()

	resp, err := client.Fetch(context.Background(), lower, upper)
	if err == nil {
		t.Fatal("Fetch() should fail on 401")
	}
	if resp != nil {
		t.Error("Fetch() returned a decoded response for a non-200 status")
	}

	var invalid *InvalidResponseError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidResponseError", err)
	}
	if invalid.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", invalid.StatusCode)
	}
	if len(invalid.Body) == 0 {
		t.Error("Body not captured for diagnostics")
	}
	if errors.Is(err, ErrDecode) {
		t.Error("non-200 response must not surface as a decode error")
	}
}

func TestFetch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": not json`))
	}))
	defer server.Close()

	client := newTestClient(server)
	lower, upper := testWindow()

	_, err := client.Fetch(context.Background(), lower, upper)
	if err == nil {
		t.Fatal("Fetch() should fail on malformed body")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestFetch_UnknownComp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"timestamp":"2024-01-01T00:00:00Z","score":80.0,` +
			`"sensors":[{"comp":"radon","value":3.0}],"indices":[]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	lower, upper := testWindow()

	_, err := client.Fetch(context.Background(), lower, upper)
	if err == nil {
		t.Fatal("Fetch() should fail on unknown comp")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed before use: connection refused.

	client := NewClient(config.AwairConfig{
		APIKey:     "test-key",
		DeviceType: "awair-element",
		DeviceID:   "12345",
		BaseURL:    server.URL,
	})

	lower, upper := testWindow()
	_, err := client.Fetch(context.Background(), lower, upper)
	if err == nil {
		t.Fatal("Fetch() should fail when the server is unreachable")
	}
	if !errors.Is(err, ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
}
