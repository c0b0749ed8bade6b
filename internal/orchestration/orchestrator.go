// Package orchestration runs batches of polynomials through a Solver
// concurrently and reports on the outcome.
package orchestration

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/polyroots/internal/cli"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/parallel"
	"github.com/agbru/polyroots/internal/service"
	"github.com/agbru/polyroots/internal/ui"
	"github.com/agbru/polyroots/pkg/models"
)

// BatchJob is one polynomial read from a batch source.
type BatchJob struct {
	// Line is the 1-based line number in the source.
	Line int
	// Input is the raw coefficient text.
	Input string
}

// BatchResult is the outcome of one BatchJob.
type BatchResult struct {
	Line  int
	Input string
	// Solution is nil if an error occurred.
	Solution *service.Solution
	// Duration covers parsing and solving.
	Duration time.Duration
	Err      error
}

// ReadBatch reads one job per line. Blank lines and lines starting with '#'
// are skipped but still counted for line numbers.
func ReadBatch(r io.Reader) ([]BatchJob, error) {
	var jobs []BatchJob
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		jobs = append(jobs, BatchJob{Line: line, Input: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch line %d: %w", line+1, err)
	}
	return jobs, nil
}

// LoadBatch reads the jobs of a batch file.
func LoadBatch(path string) ([]BatchJob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()
	return ReadBatch(f)
}

// ExecuteBatch solves every job with at most workers concurrent solves and
// renders a progress display on progressOut. Results keep the job order.
//
// Parameters:
//   - ctx: Cancels the jobs that have not started yet.
//   - solver: The Solver used for every job.
//   - jobs: The polynomials to solve.
//   - workers: The concurrency limit; values below 1 mean one worker.
//   - progressOut: Where the spinner and bar are drawn (io.Discard to hide).
//
// Returns:
//   - []BatchResult: One result per job, in job order.
//   - error: nil if every job succeeded; otherwise a summary wrapping the
//     first failure observed.
func ExecuteBatch(ctx context.Context, solver service.Solver, jobs []BatchJob, workers int, progressOut io.Writer) ([]BatchResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]BatchResult, len(jobs))
	progressChan := make(chan cli.ProgressUpdate, len(jobs))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, len(jobs), progressOut)

	var failures parallel.ErrorCollector
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		i := i
		job := job
		g.Go(func() error {
			start := time.Now()
			sol, err := solveLine(ctx, solver, job.Input)
			results[i] = BatchResult{
				Line:     job.Line,
				Input:    job.Input,
				Solution: sol,
				Duration: time.Since(start),
				Err:      err,
			}
			failures.SetError(err)
			progressChan <- cli.ProgressUpdate{Index: i, Value: 1}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	if err := failures.Err(); err != nil {
		return results, fmt.Errorf("%d of %d polynomials failed: %w", failures.Count(), len(jobs), err)
	}
	return results, nil
}

func solveLine(ctx context.Context, solver service.Solver, input string) (*service.Solution, error) {
	coefficients, err := cli.ParseCoefficients(input)
	if err != nil {
		return nil, err
	}
	return solver.Solve(ctx, coefficients)
}

// FirstFailure returns the error of the earliest failed line, or nil.
func FirstFailure(results []BatchResult) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

// BuildReport converts batch results to their JSON document.
func BuildReport(results []BatchResult, precision int) models.BatchReport {
	report := models.BatchReport{Items: make([]models.BatchItem, 0, len(results))}
	for _, res := range results {
		item := models.BatchItem{Line: res.Line, Input: res.Input}
		if res.Err != nil {
			item.Error = res.Err.Error()
			report.Failed++
		} else {
			m := cli.ToModel(res.Solution, precision)
			item.Solution = &m
			report.Succeeded++
		}
		report.Items = append(report.Items, item)
	}
	return report
}

// AnalyzeBatchResults prints a summary table of the batch and returns the
// process exit code: success when every line was solved, otherwise the code
// of the earliest failure.
//
// Parameters:
//   - results: The batch results, in line order.
//   - precision: Decimals per root part.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeBatchResults(results []BatchResult, precision int, out io.Writer) int {
	if len(results) == 0 {
		fmt.Fprintf(out, "No polynomials to solve.\n")
		return apperrors.ExitSuccess
	}

	failed := 0
	fmt.Fprintf(out, "\n--- Batch Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sLine\tPolynomial\tStrategy\tRoots\tStatus%s\n", ui.ColorBold(), ui.ColorReset())

	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t%s❌ %v%s\n",
				res.Line, res.Input, ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		texts := make([]string, len(res.Solution.Roots))
		for i, r := range res.Solution.Roots {
			texts[i] = cli.FormatRoot(r, precision)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s%s%s\t%s\t%s✅ %s%s\n",
			res.Line, res.Solution.Polynomial,
			ui.ColorBlue(), res.Solution.Strategy.Name(), ui.ColorReset(),
			strings.Join(texts, ", "),
			ui.ColorGreen(), cli.FormatExecutionDuration(res.Duration), ui.ColorReset())
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if failed == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Success. %d polynomials solved.\n", len(results))
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d polynomials failed.\n", failed, len(results))
	return apperrors.HandleSolveError(FirstFailure(results), 0, out, cli.CLIColorProvider{})
}
