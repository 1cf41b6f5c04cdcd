package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(courtsCmd)
	rootCmd.AddCommand(schedulesCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(metricsCmd)

	statsCmd.AddCommand(statsCourtsCmd)
	statsCmd.AddCommand(statsMonthlyCmd)

	playersCmd.Flags().String("skill", "", "Only players of this skill level (beginner, intermediate, advanced)")
	courtsCmd.Flags().Bool("active", false, "Only active courts")
	standingsCmd.Flags().Bool("post", false, "Post the standings to Slack")
	exportCmd.Flags().StringP("out", "o", "", "Write the CSV to this file instead of stdout")
	backupCmd.Flags().StringP("out", "o", "", "Write the backup to this file instead of stdout")

	addFilterFlags(schedulesCmd, false)
	for _, cmd := range []*cobra.Command{matchesCmd, statsCmd, statsCourtsCmd, statsMonthlyCmd, standingsCmd, exportCmd, shareCmd} {
		addFilterFlags(cmd, true)
	}
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/health", nil))
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the club",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if skill, _ := cmd.Flags().GetString("skill"); skill != "" {
			params.Set("skill", skill)
		}
		return performGetRequest(endpoint("/players", params))
	},
}

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List the courts",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if active, _ := cmd.Flags().GetBool("active"); active {
			params.Set("active", "true")
		}
		return performGetRequest(endpoint("/courts", params))
	},
}

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "List planned sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/schedules", filterParams(cmd)))
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/matches", filterParams(cmd)))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show match statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/stats", filterParams(cmd)))
	},
}

var statsCourtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "Show how much each court is played on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/stats/courts", filterParams(cmd)))
	},
}

var statsMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Show matches per month",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/stats/monthly", filterParams(cmd)))
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the player standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := endpoint("/stats/standings", filterParams(cmd))
		if post, _ := cmd.Flags().GetBool("post"); post {
			return performPostRequest(e)
		}
		return performGetRequest(e)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export matches as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		return download(endpoint("/export.csv", filterParams(cmd)), out)
	},
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Post a match summary to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest(endpoint("/share", filterParams(cmd)))
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Download every collection as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		return download(endpoint("/backup", nil), out)
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show the persistent activity counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/counters", nil))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(endpoint("/metrics", nil))
	},
}

// addFilterFlags registers the filter flags the server understands.
func addFilterFlags(cmd *cobra.Command, withCourt bool) {
	cmd.Flags().String("from", "", "Earliest date (YYYY-MM-DD or RFC3339)")
	cmd.Flags().String("to", "", "Latest date, inclusive (YYYY-MM-DD or RFC3339)")
	cmd.Flags().String("player", "", "Only entries involving this player id")
	cmd.Flags().String("status", "", "Only entries with this status")
	if withCourt {
		cmd.Flags().String("court", "", "Only matches on this court id")
	}
}

var filterQueryNames = map[string]string{
	"from":   "dateFrom",
	"to":     "dateTo",
	"player": "playerId",
	"court":  "courtId",
	"status": "status",
}

func filterParams(cmd *cobra.Command) url.Values {
	params := url.Values{}
	for flag, query := range filterQueryNames {
		if cmd.Flags().Lookup(flag) == nil {
			continue
		}
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			params.Set(query, v)
		}
	}
	return params
}

// endpoint joins host, path and params, adding the global dry-run and verbose switches.
func endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	if dryRun {
		params.Set("dry_run", "true")
	}
	if verbose {
		params.Set("verbose", "true")
	}
	u := host + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func performGetRequest(url string) error {
	fmt.Printf("Making request to %s\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func performPostRequest(url string) error {
	fmt.Printf("Making POST request to %s\n", url)
	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

// download streams the response body to out, or stdout when out is empty.
func download(url, out string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if out != "" {
		fmt.Printf("Saved to %s\n", out)
	}
	return nil
}
