package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HassanA01/AskAneeq/internal/analytics"
	"github.com/HassanA01/AskAneeq/internal/api"
	"github.com/HassanA01/AskAneeq/internal/profile"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := analytics.Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Insert(analytics.Event{Tool: "ask_about_aneeq"}); err != nil {
		t.Fatalf("seeding event: %v", err)
	}

	srv := httptest.NewServer(api.NewRouter(api.AppDeps{
		Store:      store,
		Profile:    profile.Data(),
		AdminToken: "test-token",
		Version:    "test",
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) *apiClient {
	return &apiClient{
		baseURL:    srv.URL,
		token:      "test-token",
		httpClient: srv.Client(),
	}
}

func TestStatusRequest(t *testing.T) {
	client := testClient(newTestServer(t))

	resp, err := client.get(context.Background(), "/health")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var health struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	if err := decodeJSON(resp, &health); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if health.Status != "ok" || health.Service != "ask-aneeq" {
		t.Fatalf("health = %+v", health)
	}
}

func TestAnalyticsSummaryRequest(t *testing.T) {
	client := testClient(newTestServer(t))

	resp, err := client.get(context.Background(), "/api/analytics/summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var summary struct {
		ToolCounts []analytics.ToolCount `json:"toolCounts"`
	}
	if err := decodeJSON(resp, &summary); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(summary.ToolCounts) != 1 || summary.ToolCounts[0].Tool != "ask_about_aneeq" {
		t.Fatalf("toolCounts = %+v", summary.ToolCounts)
	}
}

func TestAnalyticsEventsRequest(t *testing.T) {
	client := testClient(newTestServer(t))

	resp, err := client.get(context.Background(), "/api/analytics/events?limit=5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Events []analytics.Event `json:"events"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(body.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(body.Events))
	}
	if body.Events[0].Timestamp.IsZero() {
		t.Fatal("event timestamp not decoded")
	}
}

func TestAnalyticsRequestRejectedWithoutToken(t *testing.T) {
	client := testClient(newTestServer(t))
	client.token = ""

	resp, err := client.get(context.Background(), "/api/analytics/summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}
