// Package main is the jobrec command line client for the analysis pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"job-recommender/internal/analysis"
	"job-recommender/internal/bootstrap"
	"job-recommender/internal/shared/config"
	"job-recommender/internal/shared/telemetry"
)

var rootCmd = &cobra.Command{
	Use:           "jobrec",
	Short:         "Resume analysis and job recommendations",
	Long:          "jobrec summarizes a resume, lists skill gaps and a career roadmap, and finds matching job listings.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagProvider string
	flagModel    string
	flagJSON     bool
	flagVerbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider: groq, openai or ollama (overrides LLM_PROVIDER)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "LLM model (overrides LLM_MODEL)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print machine-readable JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Write structured logs to stderr")
}

// newService builds the pipeline from the environment plus global flags.
func newService() *analysis.Service {
	cfg := config.Load()
	if flagProvider != "" {
		cfg.LLMProvider = flagProvider
	}
	if flagModel != "" {
		cfg.LLMModel = flagModel
	}
	level := "error"
	if flagVerbose {
		level = "debug"
	}
	telemetry.SetLogger(telemetry.New(os.Stderr, level))

	svc, _, _ := bootstrap.NewService(cfg)
	return svc
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
