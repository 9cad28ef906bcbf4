package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Suggest job titles to search for from a resume summary",
	RunE:  runKeywords,
}

var (
	keywordsSummary     string
	keywordsSummaryFile string
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsSummary, "summary", "s", "", "Resume summary text")
	keywordsCmd.Flags().StringVarP(&keywordsSummaryFile, "summary-file", "f", "", "Path to a file containing the resume summary")
	keywordsCmd.MarkFlagsOneRequired("summary", "summary-file")
	keywordsCmd.MarkFlagsMutuallyExclusive("summary", "summary-file")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	summary := keywordsSummary
	if keywordsSummaryFile != "" {
		raw, err := os.ReadFile(keywordsSummaryFile)
		if err != nil {
			return fmt.Errorf("read summary: %w", err)
		}
		summary = string(raw)
	}
	if strings.TrimSpace(summary) == "" {
		return fmt.Errorf("summary is empty")
	}

	kw, err := newService().Keywords(cmd.Context(), summary)
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]string{"keywords": kw})
	}
	fmt.Fprintln(cmd.OutOrStdout(), kw)
	return nil
}
