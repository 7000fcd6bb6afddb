package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/spectrabench/internal/aggregator"
	"github.com/ppiankov/spectrabench/internal/config"
	"github.com/ppiankov/spectrabench/internal/loader"
	"github.com/ppiankov/spectrabench/internal/models"
	"github.com/ppiankov/spectrabench/internal/policy"
	"github.com/ppiankov/spectrabench/internal/reporter"
	"github.com/spf13/cobra"
)

const (
	ExitOK           = 0 // Success
	ExitPolicyFail   = 1 // Findings exceed a policy ceiling
	ExitInvalidInput = 2 // No input files, malformed JSON, or broken diagnostic
	ExitRuntimeError = 3 // I/O, permissions, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	verbose    bool
	debug      bool

	// Root command flags
	rootFormat     string
	rootOutput     string
	rootPretty     bool
	rootPolicyFile string
)

// buildVersion is injected by main via SetVersion.
var buildVersion = "dev"

// SetVersion records the build-time version string.
func SetVersion(v string) {
	buildVersion = v
}

// rootCmd represents the base command. The summary run is the root command
// itself: spectrabench <results_dir>.
var rootCmd = &cobra.Command{
	Use:   "spectrabench <results_dir>",
	Short: "Summarise spectralint benchmark results",
	Long: `spectrabench rolls a directory of per-repository spectralint result files
into a single summary: findings by rule, findings by severity, and coverage
percentages across the scanned repositories.

Each result file is one repository's scan output: a JSON document with a
"diagnostics" list. Empty files count as scanned repos with no findings.
Malformed files abort the run; a corrupted benchmark must never be
summarised as clean.

Quick start:
  spectrabench ./results
  spectrabench ./results --format json --output summary.json
  spectrabench browse ./results

A .spectrabench-policy.yaml with ceilings (max_findings, max_errors,
max_warnings, forbid_rules) turns the summary into a CI gate.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags if provided
		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
	RunE: runSummary,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(HandleError(err))
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/.spectrabench.yaml or ./spectrabench.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	// Root command flags
	rootCmd.Flags().StringVarP(&rootFormat, "format", "f", "",
		"output format: text, json, or both (default from config)")
	rootCmd.Flags().StringVarP(&rootOutput, "output", "o", "",
		"output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&rootPretty, "pretty", true,
		"indent JSON output")
	rootCmd.Flags().StringVar(&rootPolicyFile, "policy", "",
		"policy file with CI ceilings (default: search for .spectrabench-policy.yaml)")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spectrabench %s\n", buildVersion)
		fmt.Println("Benchmark rollup for spectralint scan results")
	},
}

func runSummary(cmd *cobra.Command, args []string) error {
	resultsDir := args[0]

	// Apply config defaults if flags not set
	if rootFormat == "" {
		rootFormat = cfg.Format
	}
	if !cmd.Flags().Changed("pretty") {
		rootPretty = cfg.Pretty
	}

	summary, err := summarise(resultsDir)
	if err != nil {
		logError("Failed to summarise %s: %v", resultsDir, err)
		return err
	}

	out := os.Stdout
	if rootOutput != "" {
		f, err := os.Create(rootOutput)
		if err != nil {
			logError("Failed to create output file: %v", err)
			return err
		}
		defer f.Close()
		out = f
	}

	switch rootFormat {
	case "text":
		if err := reporter.NewTextReporter(out).Generate(summary); err != nil {
			return err
		}
	case "json":
		if err := reporter.NewJSONReporter(out, rootPretty).Generate(summary); err != nil {
			return err
		}
	case "both":
		if err := reporter.NewTextReporter(out).Generate(summary); err != nil {
			return err
		}
		if err := reporter.NewJSONReporter(out, rootPretty).Generate(summary); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", rootFormat)
	}

	return checkPolicy(summary)
}

// summarise loads a results directory and folds every document into a
// finalized summary. Files are read exactly once; the per-rule repo counts
// come from the index the fold maintains, not a second pass over storage.
func summarise(resultsDir string) (*models.Summary, error) {
	docs, err := loader.Load(resultsDir)
	if err != nil {
		return nil, err
	}

	logVerbose("Loaded %d result file(s) from %s", len(docs), resultsDir)

	agg := aggregator.New()
	for _, doc := range docs {
		logDebug("Folding %s (%d diagnostics)", doc.Repo, len(doc.Diagnostics))
		if err := agg.Fold(doc); err != nil {
			return nil, err
		}
	}

	return agg.Summary(), nil
}

// checkPolicy evaluates the summary against the active policy, if any.
func checkPolicy(summary *models.Summary) error {
	path := rootPolicyFile
	if path == "" {
		path = cfg.PolicyFile
	}
	if path == "" {
		path = policy.FindPolicyFile()
	}
	if path == "" {
		return nil
	}

	pol, err := policy.LoadFromFile(path)
	if err != nil {
		logError("Failed to load policy: %v", err)
		return err
	}
	if pol == nil {
		logDebug("Policy file %s does not exist, skipping", path)
		return nil
	}

	logVerbose("Evaluating policy from %s", path)

	result := pol.Evaluate(summary)
	if result.Pass {
		return nil
	}

	for _, v := range result.Violations {
		logError("Policy violation [%s]: %s", v.Rule, v.Message)
	}
	return &PolicyFailError{Violations: result.Violations}
}

// HandleError determines the appropriate exit code for an error.
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	var policyErr *PolicyFailError
	if errors.As(err, &policyErr) {
		return ExitPolicyFail
	}

	var noFiles *loader.NoFilesError
	if errors.As(err, &noFiles) {
		return ExitInvalidInput
	}

	var badDiag *aggregator.InvalidDiagnosticError
	if errors.As(err, &badDiag) {
		return ExitInvalidInput
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ExitInvalidInput
	}

	return ExitRuntimeError
}

// PolicyFailError represents a failed policy check.
type PolicyFailError struct {
	Violations []policy.Violation
}

func (e *PolicyFailError) Error() string {
	rules := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		rules = append(rules, v.Rule)
	}
	return fmt.Sprintf("policy check failed (%d violation(s): %s)",
		len(e.Violations), strings.Join(rules, ", "))
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
