package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HassanA01/AskAneeq/internal/analytics"
)

func openTestStore(t *testing.T) *analytics.Store {
	t.Helper()

	s, err := analytics.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return s
}

func seedEvents(t *testing.T, s *analytics.Store, tools ...string) {
	t.Helper()

	for _, tool := range tools {
		if err := s.Insert(analytics.Event{Tool: tool}); err != nil {
			t.Fatalf("insert event: %v", err)
		}
	}
}

func adminGet(t *testing.T, h http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdminNoTokenConfigured(t *testing.T) {
	h := NewAdminHandler(AdminDeps{Store: openTestStore(t)})

	rec := adminGet(t, h, "/summary", "anything")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestAdminRejectsBadToken(t *testing.T) {
	h := NewAdminHandler(AdminDeps{Store: openTestStore(t), Token: "s3cret"})

	for _, token := range []string{"", "wrong", "s3cret "} {
		rec := adminGet(t, h, "/summary", token)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: status = %d, want %d", token, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestAdminSummary(t *testing.T) {
	s := openTestStore(t)
	seedEvents(t, s, "ask_about_aneeq", "ask_about_aneeq", "get_resume")

	h := NewAdminHandler(AdminDeps{Store: s, Token: "s3cret"})
	rec := adminGet(t, h, "/summary", "s3cret")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var body struct {
		ToolCounts     []analytics.ToolCount     `json:"toolCounts"`
		CategoryCounts []analytics.CategoryCount `json:"categoryCounts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.ToolCounts) != 2 {
		t.Fatalf("tool counts = %d, want 2", len(body.ToolCounts))
	}
	if body.ToolCounts[0].Tool != "ask_about_aneeq" || body.ToolCounts[0].Count != 2 {
		t.Fatalf("top tool = %+v, want ask_about_aneeq x2", body.ToolCounts[0])
	}
	if body.CategoryCounts == nil {
		t.Fatal("categoryCounts missing from response")
	}
}

func TestAdminEventsLimit(t *testing.T) {
	s := openTestStore(t)
	seedEvents(t, s, "a", "b", "c", "d")

	h := NewAdminHandler(AdminDeps{Store: s, Token: "s3cret"})

	cases := []struct {
		path string
		want int
	}{
		{"/events?limit=2", 2},
		{"/events", 4},
		{"/events?limit=0", 4},
		{"/events?limit=-3", 4},
		{"/events?limit=nope", 4},
	}
	for _, tc := range cases {
		rec := adminGet(t, h, tc.path, "s3cret")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d", tc.path, rec.Code, http.StatusOK)
		}
		var body struct {
			Events []analytics.Event `json:"events"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode response: %v", tc.path, err)
		}
		if len(body.Events) != tc.want {
			t.Fatalf("%s: events = %d, want %d", tc.path, len(body.Events), tc.want)
		}
	}
}
