package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"job-recommender/internal/analysis"
	"job-recommender/internal/jobs"
)

var searchCmd = &cobra.Command{
	Use:   "search <keywords>",
	Short: "Search job listings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var (
	searchLocation string
	searchCount    int
)

func init() {
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Job search location (defaults to JOBS_DEFAULT_LOCATION)")
	searchCmd.Flags().IntVarP(&searchCount, "count", "n", analysis.DefaultMaxResults, "Maximum number of jobs")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keywords := strings.Join(args, " ")
	if searchCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	res, err := newService().SearchJobs(cmd.Context(), jobs.Query{Keywords: keywords, Location: searchLocation, MaxResults: searchCount})
	if err != nil {
		return err
	}
	rec := analysis.Recommendation{Keywords: keywords, Listings: res.OrEmpty(), SearchErr: res.Err}
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), reportJSON(analysis.Report{Recommendation: rec}, true))
	}
	fmt.Fprint(cmd.OutOrStdout(), renderJobs(rec))
	return nil
}
