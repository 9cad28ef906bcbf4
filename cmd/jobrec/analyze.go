package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"job-recommender/internal/analysis"
	"job-recommender/internal/jobs"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Summarize a resume and list skill gaps and a roadmap",
	Long:  "Extracts the text of a PDF, DOCX or plain text resume, then asks the LLM for a summary, skill gaps and a career roadmap. With --jobs it also derives search keywords and lists matching jobs.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeWithJobs bool
	analyzeLocation string
	analyzeCount    int
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeWithJobs, "jobs", false, "Also search for matching jobs")
	analyzeCmd.Flags().StringVarP(&analyzeLocation, "location", "l", "", "Job search location (defaults to JOBS_DEFAULT_LOCATION)")
	analyzeCmd.Flags().IntVarP(&analyzeCount, "count", "n", analysis.DefaultMaxResults, "Maximum number of jobs")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	up := analysis.Upload{FileName: filepath.Base(args[0]), Data: data}
	svc := newService()
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if !analyzeWithJobs {
		doc, err := svc.AnalyzeDocument(ctx, up)
		if err != nil {
			return err
		}
		if flagJSON {
			return writeJSON(out, reportJSON(analysis.Report{Document: doc}, false))
		}
		fmt.Fprint(out, renderAnalysis(doc.Result))
		return nil
	}

	report, err := svc.Run(ctx, up, jobs.Query{Location: analyzeLocation, MaxResults: analyzeCount})
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(out, reportJSON(report, true))
	}
	fmt.Fprint(out, renderAnalysis(report.Result))
	fmt.Fprint(out, renderJobs(report.Recommendation))
	return nil
}
