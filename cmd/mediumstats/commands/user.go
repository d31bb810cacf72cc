package commands

import (
	"fmt"
	"time"

	"mediumstats/lib/scrapers/medium"
	"mediumstats/lib/unixtime"

	"github.com/spf13/cobra"
)

var userSummaryTable *bool

func init() {
	userSummaryTable = userSummaryCmd.Flags().Bool("table", false, "Render a table instead of JSON.")

	userCmd.AddCommand(userSummaryCmd)
	userCmd.AddCommand(userEventsCmd)
	userCmd.AddCommand(userArticlesCmd)
	userCmd.AddCommand(userReferrersCmd)
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Stats for a user account.",
}

func userGrabber() *medium.User {
	cfg := loadConfig()
	if cfg.Username == "" {
		fatal("missing username", fmt.Errorf("set username in mediumstats.json5 or MEDIUM_USERNAME in the environment"))
	}
	return medium.NewUser(cfg.credentials(), cfg.Username, clientOptions()...)
}

func parseRange(args []string) (time.Time, time.Time) {
	start, err := unixtime.ParseDate(args[0])
	if err != nil {
		fatal("invalid start", err)
	}
	stop, err := unixtime.ParseDate(args[1])
	if err != nil {
		fatal("invalid stop", err)
	}
	return start, stop
}

var userSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Lifetime stats per post.",
	Run: func(cmd *cobra.Command, args []string) {
		listing, err := userGrabber().SummaryStats(cmd.Context())
		if err != nil {
			fatal("failed to fetch summary stats", err)
		}
		if *userSummaryTable {
			printSummaryTable(listing)
			return
		}
		printJson(listing)
	},
}

var userEventsCmd = &cobra.Command{
	Use:   "events <start> <stop>",
	Short: "View/read-time buckets over a date range.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		start, stop := parseRange(args)
		events, err := userGrabber().Events(cmd.Context(), start, stop)
		if err != nil {
			fatal("failed to fetch events", err)
		}
		printJson(events)
	},
}

var userArticlesCmd = &cobra.Command{
	Use:   "articles <start> <stop>",
	Short: "Daily view/read charts for every post over a date range.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		start, stop := parseRange(args)
		data, err := medium.Articles(cmd.Context(), userGrabber(), start, stop)
		if err != nil {
			fatal("failed to fetch article stats", err)
		}
		printJson(data)
	},
}

var userReferrersCmd = &cobra.Command{
	Use:   "referrers",
	Short: "Referrer breakdown for every post.",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := medium.Referrers(cmd.Context(), userGrabber())
		if err != nil {
			fatal("failed to fetch referrer stats", err)
		}
		printJson(data)
	},
}
