package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	recipe2doc "github.com/alnah/go-recipe2doc"
	"github.com/alnah/go-recipe2doc/internal/config"
	"github.com/alnah/go-recipe2doc/internal/logger"
	"github.com/alnah/go-recipe2doc/internal/output"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadRecipe         = errors.New("failed to read recipe file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// defaultFormat mirrors the historical default converter.
const defaultFormat = "html"

// maxWorkers caps the conversion pool.
const maxWorkers = 32

// RecipeConverter is the interface the batch loop needs from the service.
type RecipeConverter interface {
	Convert(ctx context.Context, input recipe2doc.Input) (*recipe2doc.ConvertResult, error)
	Format() string
}

// Compile-time interface implementation check.
var _ RecipeConverter = (*recipe2doc.Service)(nil)

// DocumentWriter stores rendered documents; satisfied by output.Writer.
type DocumentWriter interface {
	Write(title, format string, data []byte, ext string) (string, error)
}

// FileToConvert represents a single recipe file to process.
type FileToConvert struct {
	InputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	env.Log.SetLevel(logger.LevelFor(flags.common.quiet, flags.common.verbose))

	// GOMAXPROCS respects container CPU quotas; the adjustment details only
	// matter in verbose runs.
	_, _ = maxprocs.Set(maxprocs.Logger(env.Log.Debugf))

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration; CLI flags win over config values.
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	format := cfg.Converter.Format
	if format == "" {
		format = defaultFormat
	}
	svc, err := recipe2doc.NewService(format)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no recipe files found in %s", inputPath)
	}

	writer, err := output.New(cfg.Output.DefaultDir)
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers, len(files))
	env.Log.Debug("starting conversion",
		"files", len(files), "format", svc.Format(), "workers", workers)

	export := newJSONExporter(cfg.JSON)
	results := convertBatch(ctx, svc, writer, files, workers, export)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.converter != "" {
		cfg.Converter.Format = flags.converter
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.jsonPath != "" {
		cfg.JSON.Path = flags.jsonPath
	}
	if flags.jsonAppend {
		cfg.JSON.Append = true
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveWorkers picks the pool size: explicit flag, else one per CPU, never
// more than the number of files.
func resolveWorkers(flagWorkers, fileCount int) int {
	n := flagWorkers
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	if n > fileCount {
		n = fileCount
	}
	if n < 1 {
		n = 1
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// discoverFiles finds all recipe files to convert. A directory is walked
// recursively; dotfiles are skipped, everything else is treated as a recipe.
func discoverFiles(inputPath string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []FileToConvert{{InputPath: inputPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		files = append(files, FileToConvert{InputPath: path})
		return nil
	})

	return files, err
}

// jsonExporter serializes the optional JSON export across workers. In
// overwrite mode the last record wins; in append mode records accumulate as
// separate blobs.
type jsonExporter struct {
	path   string
	append bool
	mu     sync.Mutex
}

// newJSONExporter returns nil when no export path is configured; a nil
// exporter is a no-op.
func newJSONExporter(cfg config.JSONConfig) *jsonExporter {
	if cfg.Path == "" {
		return nil
	}
	return &jsonExporter{path: cfg.Path, append: cfg.Append}
}

func (e *jsonExporter) export(rec *recipe2doc.Recipe) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return recipe2doc.ExportJSON(rec, e.path, e.append)
}

// convertBatch processes files concurrently on a fixed worker pool. Failures
// are isolated per file: one bad recipe never aborts the rest of the batch.
func convertBatch(ctx context.Context, svc RecipeConverter, writer DocumentWriter, files []FileToConvert, workers int, export *jsonExporter) []ConversionResult {
	if len(files) == 0 {
		return nil
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, writer, files[idx], export)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single recipe file and returns the result.
func convertFile(ctx context.Context, svc RecipeConverter, writer DocumentWriter, f FileToConvert, export *jsonExporter) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadRecipe, err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := svc.Convert(ctx, recipe2doc.Input{RecipeText: string(content)})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	path, err := writer.Write(res.Recipe.Title, svc.Format(), res.Output, res.Extension)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.OutputPath = path

	if err := export.export(res.Recipe); err != nil {
		result.Err = err
	}

	result.Duration = time.Since(start)
	return result
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		succeeded++
	}

	if verbose {
		fmt.Fprintln(env.Stdout, renderResultsTable(results))
	} else if !quiet {
		for _, r := range results {
			if r.Err == nil {
				fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
