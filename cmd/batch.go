package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/rupeelogic"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type batchCmd struct {
	workers int
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "advise every request of a JSONL file" }
func (*batchCmd) Usage() string {
	return `rl batch [-w <workers>] [<requests.jsonl>...]

  Reads one JSON request per line, from the files or stdin, and writes one
  JSON result per line, in the same order:

    {"line": 1, "recommendation": {...}}
    {"line": 2, "error": "invalid age 12: must be between 18 and 80"}
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.workers, "w", 0, "Number of concurrent sessions, from the configuration if 0")
}

func (c *batchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, e, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer log.Sync()

	workers := cfg.Batch.Workers
	if c.workers > 0 {
		workers = c.workers
	}

	var readers []io.Reader
	for _, name := range f.Args() {
		fd, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer fd.Close()
		readers = append(readers, fd)
	}
	if len(readers) == 0 {
		readers = append(readers, os.Stdin)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	failed, err := runBatch(ctx, e, io.MultiReader(readers...), w, workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if failed > 0 {
		log.Warn("some requests failed", zap.Int("failed", failed))
	}
	return subcommands.ExitSuccess
}

// result is one line of the batch output.
type result struct {
	Line           int                        `json:"line"`
	Recommendation *rupeelogic.Recommendation `json:"recommendation,omitempty"`
	Error          string                     `json:"error,omitempty"`
}

// runBatch advises every request of r concurrently, each in its own session,
// and writes the results to w in input order. It returns the number of failed
// requests. Blank lines are skipped but still counted.
func runBatch(ctx context.Context, e *rupeelogic.Engine, r io.Reader, w io.Writer, workers int) (int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("reading requests: %w", err)
	}

	results := make([]result, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		results[i].Line = i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := advise(e, line)
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Recommendation = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	failed := 0
	enc := json.NewEncoder(w)
	for _, res := range results {
		if res.Recommendation == nil && res.Error == "" {
			continue
		}
		if res.Error != "" {
			failed++
		}
		if err := enc.Encode(res); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func advise(e *rupeelogic.Engine, line string) (*rupeelogic.Recommendation, error) {
	var req request
	dec := json.NewDecoder(strings.NewReader(line))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	p, g, err := req.parse()
	if err != nil {
		return nil, err
	}
	return e.Advise(p, g)
}
