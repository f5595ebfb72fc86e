package api

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HassanA01/AskAneeq/internal/profile"
	"github.com/HassanA01/AskAneeq/internal/view"
)

// --- helpers ---

func newTestMCPDeps(t *testing.T) MCPDeps {
	t.Helper()
	return MCPDeps{
		Store:   openTestStore(t),
		Profile: profile.Data(),
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func toolEnvelope(t *testing.T, result *mcp.CallToolResult) view.Envelope {
	t.Helper()
	env, ok := result.StructuredContent.(view.Envelope)
	if !ok {
		t.Fatalf("expected view.Envelope structured content, got %T", result.StructuredContent)
	}
	return env
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// --- tests ---

func TestMCPTool_AskAbout_Overview(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpAskAbout(deps)

	result, err := handler(context.Background(), makeCallToolRequest("ask_about_aneeq", map[string]interface{}{
		"category": "overview",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}

	if text := toolText(t, result); !strings.Contains(text, deps.Profile.Overview.Name) {
		t.Fatalf("overview text missing name: %s", text)
	}
	env := toolEnvelope(t, result)
	if env.View != view.NameOverview {
		t.Fatalf("view = %q, want %q", env.View, view.NameOverview)
	}
}

func TestMCPTool_AskAbout_CurrentRole(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpAskAbout(deps)

	result, err := handler(context.Background(), makeCallToolRequest("ask_about_aneeq", map[string]interface{}{
		"category": "current-role",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	if env.View != view.NameExperience {
		t.Fatalf("view = %q, want %q", env.View, view.NameExperience)
	}
	entries, ok := env.Data.(view.Experience)
	if !ok {
		t.Fatalf("expected experience payload, got %T", env.Data)
	}
	if len(entries) != 1 || !entries[0].Current {
		t.Fatalf("expected a single current entry, got %+v", entries)
	}
	if env.FocusID != entries[0].ID {
		t.Fatalf("focusId = %q, want %q", env.FocusID, entries[0].ID)
	}
	if text := toolText(t, result); !strings.Contains(text, entries[0].Company) {
		t.Fatalf("text missing company: %s", text)
	}
}

func TestMCPTool_AskAbout_MissingCategory(t *testing.T) {
	handler := mcpAskAbout(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("ask_about_aneeq", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for missing category")
	}
}

func TestMCPTool_GetResume_DefaultSummary(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpGetResume(deps)

	result, err := handler(context.Background(), makeCallToolRequest("get_resume", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	if env.View != view.NameResume {
		t.Fatalf("view = %q, want %q", env.View, view.NameResume)
	}
	if env.Format != "summary" {
		t.Fatalf("format = %q, want summary", env.Format)
	}
	resume, ok := env.Data.(view.Resume)
	if !ok {
		t.Fatalf("expected resume payload, got %T", env.Data)
	}
	for _, p := range resume.Projects {
		if !p.Featured {
			t.Fatalf("resume includes non-featured project %s", p.Name)
		}
	}
	if text := toolText(t, result); !strings.Contains(text, "Executive summary") {
		t.Fatalf("summary text = %s", text)
	}
}

func TestMCPTool_GetResume_Full(t *testing.T) {
	handler := mcpGetResume(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("get_resume", map[string]interface{}{
		"format": "full",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text := toolText(t, result); !strings.Contains(text, "Complete resume") {
		t.Fatalf("full text = %s", text)
	}
	if env := toolEnvelope(t, result); env.Format != "full" {
		t.Fatalf("format = %q, want full", env.Format)
	}
}

func TestMCPTool_SearchProjects_ByQuery(t *testing.T) {
	handler := mcpSearchProjects(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("search_projects", map[string]interface{}{
		"query": "mailflow",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	projects, ok := env.Data.(view.Projects)
	if !ok {
		t.Fatalf("expected projects payload, got %T", env.Data)
	}
	if len(projects) != 1 || projects[0].Name != "MailflowAI" {
		t.Fatalf("projects = %+v, want just MailflowAI", projects)
	}
	if env.SearchQuery != "mailflow" {
		t.Fatalf("searchQuery = %q", env.SearchQuery)
	}
	if text := toolText(t, result); !strings.Contains(text, "Found 1 project matching") {
		t.Fatalf("text = %s", text)
	}
}

func TestMCPTool_SearchProjects_ByTechnology(t *testing.T) {
	handler := mcpSearchProjects(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("search_projects", map[string]interface{}{
		"technology": "timescaledb",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	projects := env.Data.(view.Projects)
	if len(projects) != 1 || projects[0].ID != "iot-monitoring" {
		t.Fatalf("projects = %+v, want iot-monitoring", projects)
	}
	if env.TechnologyFilter != "timescaledb" {
		t.Fatalf("technologyFilter = %q", env.TechnologyFilter)
	}
}

func TestMCPTool_SearchProjects_NoFilters(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpSearchProjects(deps)

	result, err := handler(context.Background(), makeCallToolRequest("search_projects", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	projects := env.Data.(view.Projects)
	if len(projects) != len(deps.Profile.Projects) {
		t.Fatalf("projects = %d, want all %d", len(projects), len(deps.Profile.Projects))
	}
}

func TestMCPTool_CompareSkills(t *testing.T) {
	handler := mcpCompareSkills(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("compare_skills", map[string]interface{}{
		"skills": []string{"python", "COBOL"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	matches, ok := env.Data.(view.SkillComparison)
	if !ok {
		t.Fatalf("expected skill comparison payload, got %T", env.Data)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(matches))
	}
	if matches[0].Name != "Python" || matches[0].Proficiency != string(profile.Expert) {
		t.Fatalf("python match = %+v", matches[0])
	}
	if matches[1].Proficiency != profile.NotFound || matches[1].Category != nil {
		t.Fatalf("unknown skill match = %+v", matches[1])
	}
	text := toolText(t, result)
	if !strings.Contains(text, "Python: expert (Languages)") || !strings.Contains(text, "COBOL: not in skill set") {
		t.Fatalf("text = %s", text)
	}
}

func TestMCPTool_CompareSkills_TooMany(t *testing.T) {
	handler := mcpCompareSkills(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("compare_skills", map[string]interface{}{
		"skills": []string{"a", "b", "c", "d", "e"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for more than 4 skills")
	}
}

func TestMCPTool_AskAnything_TopResult(t *testing.T) {
	handler := mcpAskAnything(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("ask_anything", map[string]interface{}{
		"query": "dayforce",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", toolText(t, result))
	}

	env := toolEnvelope(t, result)
	if env.View != view.NameExperience {
		t.Fatalf("view = %q, want %q", env.View, view.NameExperience)
	}
	if env.SearchQuery != "dayforce" {
		t.Fatalf("searchQuery = %q", env.SearchQuery)
	}
	text := toolText(t, result)
	if !strings.Contains(text, "matched: company") {
		t.Fatalf("text = %s", text)
	}
}

func TestMCPTool_AskAnything_NoMatchFallsBackToOverview(t *testing.T) {
	handler := mcpAskAnything(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("ask_anything", map[string]interface{}{
		"query": "zzqx",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	if env.View != view.NameOverview {
		t.Fatalf("view = %q, want %q", env.View, view.NameOverview)
	}
	if text := toolText(t, result); !strings.Contains(text, "couldn't find specific information") {
		t.Fatalf("text = %s", text)
	}
}

func TestMCPTool_GetRecommendations(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpGetRecommendations(deps)

	result, err := handler(context.Background(), makeCallToolRequest("get_recommendations", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := toolEnvelope(t, result)
	recs := env.Data.(view.Recommendations)
	if len(recs) != len(deps.Profile.Recommendations) {
		t.Fatalf("recs = %d, want all %d", len(recs), len(deps.Profile.Recommendations))
	}

	result, err = handler(context.Background(), makeCallToolRequest("get_recommendations", map[string]interface{}{
		"limit": 1,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recs = toolEnvelope(t, result).Data.(view.Recommendations)
	if len(recs) != 1 {
		t.Fatalf("recs = %d, want 1", len(recs))
	}
	if text := toolText(t, result); !strings.HasPrefix(text, "1 recommendation from") {
		t.Fatalf("text = %s", text)
	}
}

func TestMCPTool_GetRecommendations_RejectsOutOfRangeLimit(t *testing.T) {
	handler := mcpGetRecommendations(newTestMCPDeps(t))

	for _, limit := range []int{0, -1, 11} {
		result, err := handler(context.Background(), makeCallToolRequest("get_recommendations", map[string]interface{}{
			"limit": limit,
		}))
		if err != nil {
			t.Fatalf("limit %d: unexpected error: %v", limit, err)
		}
		if !result.IsError {
			t.Fatalf("limit %d: expected tool error", limit)
		}
	}
}

func TestMCPTool_GetAvailability(t *testing.T) {
	deps := newTestMCPDeps(t)
	deps.BookingURL = "https://calendly.com/aneeq/30min"
	handler := mcpGetAvailability(deps)

	result, err := handler(context.Background(), makeCallToolRequest("get_availability", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := toolEnvelope(t, result)
	avail, ok := env.Data.(view.Availability)
	if !ok {
		t.Fatalf("expected availability payload, got %T", env.Data)
	}
	if avail.BookingURL != deps.BookingURL {
		t.Fatalf("bookingUrl = %q", avail.BookingURL)
	}
	if text := toolText(t, result); !strings.Contains(text, deps.BookingURL) {
		t.Fatalf("text = %s", text)
	}
}

func TestMCPTool_GetAvailability_FallsBackToPortfolio(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpGetAvailability(deps)

	result, err := handler(context.Background(), makeCallToolRequest("get_availability", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	avail := toolEnvelope(t, result).Data.(view.Availability)
	if avail.BookingURL != deps.Profile.Contact.Portfolio {
		t.Fatalf("bookingUrl = %q, want portfolio fallback", avail.BookingURL)
	}
}

func TestMCPTool_TrackAnalytics(t *testing.T) {
	deps := newTestMCPDeps(t)
	handler := mcpTrackAnalytics(deps)

	result, err := handler(context.Background(), makeCallToolRequest("track_analytics", map[string]interface{}{
		"tool":  "ask_about_aneeq",
		"query": "what does he do",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text := toolText(t, result); text != "Query logged." {
		t.Fatalf("text = %q", text)
	}
	if logged := toolEnvelope(t, result).Data.(view.Analytics); !logged.Logged {
		t.Fatal("expected logged=true")
	}

	events, err := deps.Store.RecentEvents(10)
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Tool != "ask_about_aneeq" || events[0].Query == nil || *events[0].Query != "what does he do" {
		t.Fatalf("event = %+v", events[0])
	}
	if events[0].Category != nil {
		t.Fatalf("category should be null, got %v", *events[0].Category)
	}
}

func TestMCPTool_TrackAnalytics_MissingTool(t *testing.T) {
	handler := mcpTrackAnalytics(newTestMCPDeps(t))

	result, err := handler(context.Background(), makeCallToolRequest("track_analytics", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for missing tool name")
	}
}
