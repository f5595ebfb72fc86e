package api

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/HassanA01/AskAneeq/internal/analytics"
	"github.com/HassanA01/AskAneeq/internal/profile"
	"github.com/HassanA01/AskAneeq/internal/search"
	"github.com/HassanA01/AskAneeq/internal/view"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Store      *analytics.Store
	Profile    *profile.Record
	BookingURL string // scheduling link; falls back to the portfolio URL
	Log        *slog.Logger
}

func (d MCPDeps) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}

// NewMCPServer creates an MCP server with all profile tools registered.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"ask-aneeq",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("AskAneeq — answers questions about Aneeq Hassan's professional background: experience, projects, skills, education, and contact details."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask_about_aneeq",
			mcp.WithDescription("Get information about Aneeq Hassan - his experience, projects, skills, education, or contact info. Use the category parameter to specify what information you want."),
			mcp.WithTitleAnnotation("Ask About Aneeq Hassan"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithString("category",
				mcp.Description("The category of information to retrieve about Aneeq"),
				mcp.Required(),
				mcp.Enum("overview", "experience", "projects", "skills", "education", "contact", "hobbies", "current-role"),
			),
		),
		mcpAskAbout(deps),
	)

	s.AddTool(
		mcp.NewTool("get_resume",
			mcp.WithDescription("Retrieve Aneeq Hassan's resume in full or summary format, showing his complete professional profile."),
			mcp.WithTitleAnnotation("Get Aneeq's Resume"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithString("format",
				mcp.Description("Full resume or executive summary"),
				mcp.Enum("full", "summary"),
			),
		),
		mcpGetResume(deps),
	)

	s.AddTool(
		mcp.NewTool("search_projects",
			mcp.WithDescription("Search through Aneeq Hassan's projects by keyword or technology. Returns matching projects with details."),
			mcp.WithTitleAnnotation("Search Aneeq's Projects"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithString("query", mcp.Description("Search term to filter projects")),
			mcp.WithString("technology", mcp.Description("Filter by specific technology")),
		),
		mcpSearchProjects(deps),
	)

	s.AddTool(
		mcp.NewTool("compare_skills",
			mcp.WithDescription("Look up Aneeq Hassan's proficiency in specific skills and compare them side by side."),
			mcp.WithTitleAnnotation("Compare Aneeq's Skills"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithArray("skills",
				mcp.Description("1-4 skill names to look up (e.g. ['Python', 'Go', 'TypeScript'])"),
				mcp.Required(),
			),
		),
		mcpCompareSkills(deps),
	)

	s.AddTool(
		mcp.NewTool("ask_anything",
			mcp.WithDescription("Free-form question about Aneeq Hassan. Searches the whole profile and returns the most relevant section."),
			mcp.WithTitleAnnotation("Ask Anything About Aneeq"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithString("query", mcp.Description("Any question about Aneeq Hassan"), mcp.Required()),
		),
		mcpAskAnything(deps),
	)

	s.AddTool(
		mcp.NewTool("get_recommendations",
			mcp.WithDescription("Professional recommendations from colleagues and managers who have worked with Aneeq Hassan."),
			mcp.WithTitleAnnotation("Get Recommendations"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithNumber("limit", mcp.Description("Max number of recommendations to return (default: all)")),
		),
		mcpGetRecommendations(deps),
	)

	s.AddTool(
		mcp.NewTool("get_availability",
			mcp.WithDescription("Get the link to schedule time with Aneeq Hassan."),
			mcp.WithTitleAnnotation("Get Availability"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
		),
		mcpGetAvailability(deps),
	)

	s.AddTool(
		mcp.NewTool("track_analytics",
			mcp.WithDescription("Log which tool was used and what was asked, for usage analytics."),
			mcp.WithTitleAnnotation("Track Analytics"),
			mcp.WithString("tool", mcp.Description("The tool that was called"), mcp.Required()),
			mcp.WithString("query", mcp.Description("The query or question asked")),
			mcp.WithString("category", mcp.Description("Category if applicable")),
		),
		mcpTrackAnalytics(deps),
	)

	return s
}

func mcpAskAbout(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category, err := req.RequireString("category")
		if err != nil {
			return toolError("category is required"), nil
		}

		rec := deps.Profile

		switch category {
		case "overview":
			text := fmt.Sprintf("%s is an %s with %d+ years of experience. %s",
				rec.Overview.Name, rec.Overview.Title, rec.Overview.YearsExperience, rec.Overview.Tagline)
			return toolResult(text, view.Wrap(view.Overview(rec.Overview))), nil

		case "current-role":
			cur, ok := rec.CurrentRole()
			if !ok {
				return toolResult("No current role found.", view.Wrap(view.Experience{})), nil
			}
			env := view.Wrap(view.Experience{cur})
			env.FocusID = cur.ID
			text := fmt.Sprintf("Currently working at %s as %s. %s", cur.Company, cur.Role, cur.Achievements[0])
			return toolResult(text, env), nil

		case "experience":
			companies := make([]string, 0, 3)
			for _, e := range rec.Experience[:min(3, len(rec.Experience))] {
				companies = append(companies, e.Company)
			}
			text := fmt.Sprintf("Aneeq has worked at %d companies including %s",
				len(rec.Experience), strings.Join(companies, ", "))
			return toolResult(text, view.Wrap(view.Experience(rec.Experience))), nil

		case "projects":
			names := make([]string, 0, len(rec.Projects))
			for _, p := range rec.FeaturedProjects() {
				names = append(names, p.Name)
			}
			text := "Featured projects: " + strings.Join(names, ", ")
			return toolResult(text, view.Wrap(view.Projects(rec.Projects))), nil

		case "skills":
			text := "Expert in " + strings.Join(rec.ExpertSkills(), ", ")
			return toolResult(text, view.Wrap(view.Skills(rec.Skills))), nil

		case "education":
			edu := rec.Education[0]
			text := fmt.Sprintf("%s in %s from %s", edu.Degree, edu.Field, edu.Institution)
			return toolResult(text, view.Wrap(view.Education(rec.Education))), nil

		case "contact":
			text := fmt.Sprintf("Email: %s, Portfolio: %s", rec.Contact.Email, rec.Contact.Portfolio)
			return toolResult(text, view.Wrap(view.Contact(rec.Contact))), nil

		case "hobbies":
			text := "Interests: " + strings.Join(rec.Hobbies, ", ")
			return toolResult(text, view.Wrap(view.Hobbies(rec.Hobbies))), nil

		default:
			return toolError(fmt.Sprintf("unknown category %q", category)), nil
		}
	}
}

func mcpGetResume(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := req.GetString("format", "summary")
		if format != "full" && format != "summary" {
			return toolError(fmt.Sprintf("format must be \"full\" or \"summary\", got %q", format)), nil
		}

		rec := deps.Profile
		featured := rec.FeaturedProjects()

		env := view.Wrap(view.Resume{
			Overview:   rec.Overview,
			Experience: rec.Experience,
			Projects:   featured,
			Skills:     rec.Skills,
			Education:  rec.Education,
			Contact:    rec.Contact,
		})
		env.Format = format

		var text string
		if format == "full" {
			text = fmt.Sprintf("Complete resume for %s, including %d positions and %d featured projects.",
				rec.Overview.Name, len(rec.Experience), len(featured))
		} else {
			text = fmt.Sprintf("Executive summary for %s: %s with %d+ years experience.",
				rec.Overview.Name, rec.Overview.Title, rec.Overview.YearsExperience)
		}
		return toolResult(text, env), nil
	}
}

func mcpSearchProjects(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		technology := req.GetString("technology", "")

		filtered := deps.Profile.Projects

		if query != "" {
			lower := strings.ToLower(query)
			kept := make([]profile.Project, 0, len(filtered))
			for _, p := range filtered {
				if strings.Contains(strings.ToLower(p.Name), lower) ||
					strings.Contains(strings.ToLower(p.Description), lower) {
					kept = append(kept, p)
				}
			}
			filtered = kept
		}

		if technology != "" {
			lower := strings.ToLower(technology)
			kept := make([]profile.Project, 0, len(filtered))
			for _, p := range filtered {
				for _, t := range p.TechStack {
					if strings.Contains(strings.ToLower(t), lower) {
						kept = append(kept, p)
						break
					}
				}
			}
			filtered = kept
		}

		env := view.Wrap(view.Projects(filtered))
		env.SearchQuery = query
		env.TechnologyFilter = technology

		text := fmt.Sprintf("Found %d project%s", len(filtered), plural(len(filtered)))
		if query != "" {
			text += fmt.Sprintf(" matching %q", query)
		}
		if technology != "" {
			text += " using " + technology
		}
		return toolResult(text, env), nil
	}
}

func mcpCompareSkills(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		skills := req.GetStringSlice("skills", nil)
		if len(skills) < 1 || len(skills) > 4 {
			return toolError("skills must contain between 1 and 4 names"), nil
		}

		matches := make([]profile.SkillMatch, len(skills))
		parts := make([]string, len(skills))
		for i, name := range skills {
			m := deps.Profile.MatchSkill(name)
			matches[i] = m
			if m.Proficiency == profile.NotFound {
				parts[i] = m.Name + ": not in skill set"
			} else {
				parts[i] = fmt.Sprintf("%s: %s (%s)", m.Name, m.Proficiency, *m.Category)
			}
		}

		return toolResult(strings.Join(parts, " | "), view.Wrap(view.SkillComparison(matches))), nil
	}
}

func mcpAskAnything(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return toolError("query is required"), nil
		}

		results := search.Search(query, deps.Profile)
		if len(results) == 0 {
			env := view.Wrap(view.Overview(deps.Profile.Overview))
			env.SearchQuery = query
			text := fmt.Sprintf("I couldn't find specific information about %q. Try asking about experience, projects, skills, education, or contact details.", query)
			return toolResult(text, env), nil
		}

		top := results[0]
		env := view.Wrap(top.Data)
		env.SearchQuery = query
		text := fmt.Sprintf("Found information about %q (matched: %s).", query, strings.Join(top.MatchedFields, ", "))
		return toolResult(text, env), nil
	}
}

func mcpGetRecommendations(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		recs := deps.Profile.Recommendations
		// An omitted limit returns everything; a supplied one must be 1-10,
		// so an explicit 0 is rejected rather than treated as absent.
		if _, supplied := req.GetArguments()["limit"]; supplied {
			limit := req.GetInt("limit", 0)
			if limit < 1 || limit > 10 {
				return toolError("limit must be between 1 and 10"), nil
			}
			if limit < len(recs) {
				recs = recs[:limit]
			}
		}

		text := fmt.Sprintf("%d recommendation%s from people who've worked with %s.",
			len(recs), plural(len(recs)), deps.Profile.Overview.Name)
		return toolResult(text, view.Wrap(view.Recommendations(recs))), nil
	}
}

func mcpGetAvailability(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bookingURL := deps.BookingURL
		if bookingURL == "" {
			bookingURL = deps.Profile.Contact.Portfolio
		}

		env := view.Wrap(view.Availability{
			BookingURL: bookingURL,
			Name:       deps.Profile.Overview.Name,
		})
		text := fmt.Sprintf("Schedule time with %s: %s", deps.Profile.Overview.Name, bookingURL)
		return toolResult(text, env), nil
	}
}

func mcpTrackAnalytics(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tool, err := req.RequireString("tool")
		if err != nil {
			return toolError("tool is required"), nil
		}

		query := req.GetString("query", "")
		category := req.GetString("category", "")

		log := deps.logger()
		log.Info("analytics event", "tool", tool, "query", query, "category", category)

		// Recording must never fail the conversation; a dropped event is
		// only a logging gap.
		event := analytics.Event{Tool: tool}
		if query != "" {
			event.Query = &query
		}
		if category != "" {
			event.Category = &category
		}
		if err := deps.Store.Insert(event); err != nil {
			log.Warn("recording analytics event failed", "error", err)
		}

		return toolResult("Query logged.", view.Wrap(view.Analytics{Logged: true})), nil
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func toolResult(text string, env view.Envelope) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
		StructuredContent: env,
	}
}

func toolError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
