package commands

import (
	"fmt"

	"mediumstats/lib/scrapers/medium"

	"github.com/spf13/cobra"
)

var publicationSummaryTable *bool

func init() {
	publicationSummaryTable = publicationSummaryCmd.Flags().Bool("table", false, "Render a table instead of JSON.")

	publicationCmd.AddCommand(publicationSummaryCmd)
	publicationCmd.AddCommand(publicationViewsCmd)
	publicationCmd.AddCommand(publicationVisitorsCmd)
	publicationCmd.AddCommand(publicationArticlesCmd)
	publicationCmd.AddCommand(publicationReferrersCmd)
}

var publicationCmd = &cobra.Command{
	Use:     "publication",
	Aliases: []string{"pub"},
	Short:   "Stats for a publication.",
}

func publicationGrabber(cmd *cobra.Command) *medium.Publication {
	cfg := loadConfig()
	if cfg.Publication == "" {
		fatal("missing publication slug", fmt.Errorf("set publication in mediumstats.json5 or MEDIUM_PUBLICATION_SLUG in the environment"))
	}
	pub, err := medium.NewPublication(cmd.Context(), cfg.credentials(), cfg.Publication, clientOptions()...)
	if err != nil {
		fatal("failed to resolve publication", err)
	}
	return pub
}

var publicationSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Lifetime summary view of all posts in the publication.",
	Run: func(cmd *cobra.Command, args []string) {
		listing, err := publicationGrabber(cmd).SummaryStats(cmd.Context())
		if err != nil {
			fatal("failed to fetch summary stats", err)
		}
		if *publicationSummaryTable {
			printSummaryTable(listing)
			return
		}
		printJson(listing)
	},
}

var publicationViewsCmd = &cobra.Command{
	Use:   "views <start> <stop>",
	Short: "View buckets over a date range.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		start, stop := parseRange(args)
		events, err := publicationGrabber(cmd).Events(cmd.Context(), start, stop, medium.EventViews)
		if err != nil {
			fatal("failed to fetch view events", err)
		}
		printJson(events)
	},
}

var publicationVisitorsCmd = &cobra.Command{
	Use:   "visitors <start> <stop>",
	Short: "Unique-visitor buckets over a date range.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		start, stop := parseRange(args)
		events, err := publicationGrabber(cmd).Events(cmd.Context(), start, stop, medium.EventVisitors)
		if err != nil {
			fatal("failed to fetch visitor events", err)
		}
		printJson(events)
	},
}

var publicationArticlesCmd = &cobra.Command{
	Use:   "articles <start> <stop>",
	Short: "Daily view/read charts for every post over a date range.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		start, stop := parseRange(args)
		data, err := medium.Articles(cmd.Context(), publicationGrabber(cmd), start, stop)
		if err != nil {
			fatal("failed to fetch article stats", err)
		}
		printJson(data)
	},
}

var publicationReferrersCmd = &cobra.Command{
	Use:   "referrers",
	Short: "Referrer breakdown for every post.",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := medium.Referrers(cmd.Context(), publicationGrabber(cmd))
		if err != nil {
			fatal("failed to fetch referrer stats", err)
		}
		printJson(data)
	},
}
