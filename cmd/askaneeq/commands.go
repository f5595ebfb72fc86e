package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HassanA01/AskAneeq/internal/analytics"
)

// --- status ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the server is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(context.Background(), "/health")
		if err != nil {
			printError("askaneeq is not running")
			return err
		}

		var health struct {
			Status    string  `json:"status"`
			Service   string  `json:"service"`
			Version   string  `json:"version"`
			Uptime    float64 `json:"uptime"`
			Timestamp string  `json:"timestamp"`
		}
		if err := decodeJSON(resp, &health); err != nil {
			return err
		}

		printSuccess("askaneeq is running")
		printStatus("Version", "%s", health.Version)
		printStatus("Uptime", "%.0fs", health.Uptime)
		return nil
	},
}

// --- analytics ---

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Inspect recorded usage analytics (requires ADMIN_TOKEN)",
}

var analyticsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-tool and per-category usage counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(context.Background(), "/api/analytics/summary")
		if err != nil {
			return err
		}

		var summary struct {
			ToolCounts     []analytics.ToolCount     `json:"toolCounts"`
			CategoryCounts []analytics.CategoryCount `json:"categoryCounts"`
		}
		if err := decodeJSON(resp, &summary); err != nil {
			return err
		}

		if len(summary.ToolCounts) == 0 {
			printStatus("Tools", "no events recorded yet")
			return nil
		}
		for _, tc := range summary.ToolCounts {
			printStatus(tc.Tool, "%d", tc.Count)
		}
		for _, cc := range summary.CategoryCounts {
			printStatus(cc.Category, "%d", cc.Count)
		}
		return nil
	},
}

var analyticsEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the most recent analytics events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		path := "/api/analytics/events"
		if limit > 0 {
			path = fmt.Sprintf("%s?limit=%d", path, limit)
		}
		resp, err := client.get(context.Background(), path)
		if err != nil {
			return err
		}

		var body struct {
			Events []analytics.Event `json:"events"`
		}
		if err := decodeJSON(resp, &body); err != nil {
			return err
		}

		if len(body.Events) == 0 {
			printStatus("Events", "none recorded yet")
			return nil
		}
		for _, e := range body.Events {
			detail := ""
			if e.Query != nil {
				detail = *e.Query
			} else if e.Category != nil {
				detail = *e.Category
			}
			printStatus(e.Timestamp.Format("2006-01-02 15:04:05"), "%s %s", e.Tool, detail)
		}
		return nil
	},
}

func init() {
	analyticsEventsCmd.Flags().Int("limit", 0, "max events to list (default 50)")
	analyticsCmd.AddCommand(analyticsSummaryCmd)
	analyticsCmd.AddCommand(analyticsEventsCmd)
}
