package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"trainset/internal/collector"
	"trainset/internal/dataset"
	"trainset/internal/extractor"
	"trainset/internal/generator"
	"trainset/internal/models"
	"trainset/internal/utils"
)

// Version info, set from main via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Output files, always written to the current working directory.
const (
	trainingFile   = "training_data.jsonl"
	validationFile = "validation_data.jsonl"
	metaFile       = "training_data_with_meta.jsonl"
)

var rootCmd = &cobra.Command{
	Use:   "trainset /path/to/codebase",
	Short: "Derive a fine-tuning corpus from a source tree",
	Long: "A CLI tool that walks a codebase, slices JavaScript/TypeScript/Java sources into\n" +
		"chat-format training examples, and writes train/validation JSONL files",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The message goes to stdout and the process exits 1, so that
		// wrappers capturing stdout see it regardless of their stderr setup.
		if msg, ok := validateRoot(args); !ok {
			fmt.Println(msg)
			os.Exit(1)
		}

		rootDir := args[0]
		mode, _ := cmd.Flags().GetString("extractor")
		seed, _ := cmd.Flags().GetInt64("seed")
		quiet, _ := cmd.Flags().GetBool("quiet")

		return runExtract(rootDir, mode, seed, quiet)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trainset %s (commit %s, built %s)\n", Version, GitCommit, BuildTime)
	},
}

func init() {
	rootCmd.Flags().String("extractor", extractor.ModeRegex,
		"Function extractor: regex (first-closing-brace heuristic) or treesitter (balanced AST slices)")
	rootCmd.Flags().Int64("seed", 0, "Shuffle seed for reproducible splits (0 = time-derived)")
	rootCmd.Flags().Bool("quiet", false, "Suppress the per-file progress bar")

	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// validateRoot checks the positional arguments before anything is written.
// ok=false means the run must not start; the returned message is printed to
// stdout as-is (two usage lines when the argument is missing).
func validateRoot(args []string) (string, bool) {
	if len(args) < 1 {
		return "Usage: trainset /path/to/codebase\n" +
			"       trainset .  # Current directory", false
	}
	if info, err := os.Stat(args[0]); err != nil || !info.IsDir() {
		return fmt.Sprintf("Error: %s is not a directory", args[0]), false
	}
	return "", true
}

// runExtract is the whole pipeline: collect files, generate examples,
// shuffle, split, write the three JSONL outputs and print the run summary.
func runExtract(rootDir, mode string, seed int64, quiet bool) error {
	ex, err := extractor.New(mode)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		absRoot = rootDir
	}
	fmt.Printf("Extracting code from: %s\n", absRoot)
	fmt.Printf("Looking for: %s\n", strings.Join(utils.AllowedExtensions(), ", "))
	fmt.Println()

	files, err := collector.Collect(rootDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", rootDir, err)
	}

	fmt.Printf("✓ Found %d code files\n", len(files))
	byLang := make(map[string]int)
	for _, f := range files {
		byLang[f.Language]++
	}
	for _, lang := range sortedKeys(byLang) {
		fmt.Printf("  %s: %d files\n", lang, byLang[lang])
	}
	fmt.Println()

	var bar *progressbar.ProgressBar
	if !quiet && len(files) > 0 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Generating examples"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}

	var examples []models.TrainingExample
	for _, f := range files {
		examples = append(examples, generator.ForFile(f, ex)...)
		if bar != nil {
			bar.Add(1)
		}
	}

	fmt.Printf("Generated %d training examples\n", len(examples))
	byType := make(map[string]int)
	needsCompletion := 0
	for _, e := range examples {
		byType[e.Meta.Type]++
		if e.Meta.NeedsCompletion {
			needsCompletion++
		}
	}
	for _, typ := range sortedKeys(byType) {
		fmt.Printf("  %s: %d examples\n", typ, byType[typ])
	}
	fmt.Println()

	if needsCompletion > 0 {
		fmt.Printf("Note: %d examples need manual completion or an LLM pass\n", needsCompletion)
		fmt.Println("      (marked with \"needs_completion\": true in _meta)")
		fmt.Println()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	shuffled := dataset.Shuffle(examples, rng)
	train, val := dataset.Split(shuffled)

	n, err := dataset.WriteStripped(trainingFile, train)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Saved %d training examples to %s\n", n, trainingFile)

	n, err = dataset.WriteStripped(validationFile, val)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Saved %d validation examples to %s\n", n, validationFile)

	n, err = dataset.WriteFull(metaFile, shuffled)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Saved %d examples with metadata to %s\n", n, metaFile)

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("1. Review %s\n", metaFile)
	fmt.Println("2. For needs_completion examples, add real explanations")
	fmt.Println("3. Run fine-tuning with MLX or Unsloth")
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
