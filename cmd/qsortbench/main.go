// Command qsortbench times the qsort engine against baseline sorts on
// generated integers or on lines read from standard input, and reports the
// number of comparisons each sort made.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs/v2"

	"github.com/histdb/qsort/bench"
	"github.com/histdb/qsort/gen"
)

const (
	maxInts  = 1 << 20
	maxLines = 1 << 20
)

type config struct {
	srand   bool
	strcmp  bool
	count   int
	pattern string
	runs    int
	sorters []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qsortbench: ")

	if err := newCommand().Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func newCommand() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:           "qsortbench [options]",
		Short:         "Compare sort implementations by time and comparison count",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.srand, "srand", false, "seed the integer generator randomly instead of with a fixed seed")
	flags.BoolVar(&cfg.strcmp, "strcmp", false, "sort lines read from standard input instead of integers")
	flags.IntVarP(&cfg.count, "count", "n", maxInts, "number of integers to generate")
	flags.StringVar(&cfg.pattern, "pattern", gen.PatternRandom.String(), "layout of the generated integers")
	flags.IntVar(&cfg.runs, "runs", 4, "timed runs per sorter")
	flags.StringSliceVar(&cfg.sorters, "sorters", nil, "sorters to run (default all)")

	return cmd
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	sorters, err := bench.Lookup(cfg.sorters)
	if err != nil {
		return err
	}

	var results []bench.Result
	if cfg.strcmp {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			log.Printf("reading input from stdin")
		}
		lines, err := gen.Lines(stdin, maxLines)
		if err != nil {
			return err
		}
		results, err = runAll(sorters, bench.StringInput(lines), cfg.runs)
		if err != nil {
			return err
		}
	} else {
		if cfg.count < 0 || cfg.count > maxInts {
			return errs.Errorf("count must be in [0, %d], got %d", maxInts, cfg.count)
		}
		pattern, err := gen.ParsePattern(cfg.pattern)
		if err != nil {
			return err
		}
		src := gen.Seeded(1)
		if cfg.srand {
			src = gen.Random()
		}
		results, err = runAll(sorters, bench.IntInput(gen.Ints(src, cfg.count, pattern)), cfg.runs)
		if err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "sorter\tn\ttime\tcompares\tswaps")
	for _, res := range results {
		fmt.Fprintln(tw, res.String())
	}
	return errs.Wrap(tw.Flush())
}

func runAll[E any](sorters []bench.Sorter, in bench.Input[E], runs int) ([]bench.Result, error) {
	results := make([]bench.Result, 0, len(sorters))
	for _, s := range sorters {
		res, err := bench.Run(s, in, runs)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
