package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"mediumstats/lib/restyutil"
	"mediumstats/lib/scrapers/medium"
	"mediumstats/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	flagDebug     *bool
	flagDebugHttp *bool
	flagMaxPages  *int
)

var rootCmd = &cobra.Command{
	Use:   "mediumstats",
	Short: "mediumstats pulls view/read/referrer statistics for a Medium account via its session cookies.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*flagDebug)
	},
}

func init() {
	flagDebug = rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging.")
	flagDebugHttp = rootCmd.PersistentFlags().Bool("debug-http", false, "Dump request/response transcripts to .dev/resty/mediumstats.")
	flagMaxPages = rootCmd.PersistentFlags().Int("max-pages", 0, "Safety cap on listing pagination, 0 means unlimited.")

	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(publicationCmd)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func clientOptions() []medium.Option {
	var opts []medium.Option
	if *flagMaxPages > 0 {
		opts = append(opts, medium.WithMaxPages(*flagMaxPages))
	}
	if *flagDebugHttp {
		opts = append(opts, medium.WithInstrumentOutput(
			restyutil.NewFilesystemOutput(".dev/resty/mediumstats"),
		))
	}
	return opts
}
