package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/textdiv/codec"
	"github.com/katalvlaran/textdiv/distmat"
	"github.com/katalvlaran/textdiv/divseq"
	"github.com/katalvlaran/textdiv/matrix"
	"github.com/katalvlaran/textdiv/metric"
	"github.com/katalvlaran/textdiv/report"
)

func runDistances(args []string, stdout, stderr io.Writer) error {
	s, err := newSession("distances", args, stdout, stderr, nil)
	if err != nil {
		return err
	}
	m, err := s.metric()
	if err != nil {
		return err
	}
	c, err := s.load(s.fs.Args())
	if err != nil {
		return err
	}
	ctx, cancel := s.context()
	defer cancel()

	start := time.Now()
	dm, err := distmat.Compute(ctx, m, c.Contents(), s.buildOptions()...)
	if err != nil {
		return err
	}
	s.log.Info().
		Str("metric", m.Name()).
		Str("pairs", humanize.Comma(int64(c.Len()*(c.Len()-1)/2))).
		Dur("elapsed", time.Since(start)).
		Msg("distance matrix computed")

	return s.write(func(w io.Writer) error {
		if s.cfg.Format == "json" {
			return report.WriteMatrixJSON(w, m.Name(), c.Names(), dm)
		}
		return report.WriteMatrixCSV(w, c.Names(), dm)
	})
}

func runDivseq(args []string, stdout, stderr io.Writer) error {
	var matrixPath string
	s, err := newSession("divseq", args, stdout, stderr, func(fs *flag.FlagSet) {
		fs.StringVar(&matrixPath, "matrix", "", "read a saved matrix (.csv or .json) instead of computing one")
	})
	if err != nil {
		return err
	}
	strategy, err := divseq.ParseStrategy(s.cfg.Strategy)
	if err != nil {
		return err
	}

	var (
		names      []string
		dm         *matrix.Dense
		metricName string
	)
	if matrixPath != "" {
		if names, dm, metricName, err = readMatrix(matrixPath); err != nil {
			return err
		}
		s.log.Info().Str("matrix", matrixPath).Int("items", len(names)).Msg("matrix loaded")
	} else {
		m, err := s.metric()
		if err != nil {
			return err
		}
		c, err := s.load(s.fs.Args())
		if err != nil {
			return err
		}
		ctx, cancel := s.context()
		defer cancel()
		if dm, err = distmat.Compute(ctx, m, c.Contents(), s.buildOptions()...); err != nil {
			return err
		}
		names, metricName = c.Names(), m.Name()
	}

	res, err := divseq.Sequence(dm, strategy)
	if err != nil {
		return err
	}
	s.log.Info().Stringer("strategy", strategy).Int("items", len(res.Order)).Msg("sequence computed")

	return s.write(func(w io.Writer) error {
		if s.cfg.Format == "json" {
			return report.WriteSequenceJSON(w, metricName, names, res)
		}
		return report.WriteSequenceCSV(w, names, res)
	})
}

// readMatrix loads a matrix export, choosing the decoder by extension.
func readMatrix(path string) ([]string, *matrix.Dense, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, "", err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		doc, dm, err := report.ReadMatrixJSON(f)
		if err != nil {
			return nil, nil, "", err
		}
		return doc.Names, dm, doc.Metric, nil
	}
	names, dm, err := report.ReadMatrixCSV(f)

	return names, dm, "", err
}

func runPair(args []string, stdout, stderr io.Writer) error {
	s, err := newSession("pair", args, stdout, stderr, nil)
	if err != nil {
		return err
	}
	if s.fs.NArg() != 2 {
		return fmt.Errorf("%w: pair needs exactly two arguments, got %d", errUsage, s.fs.NArg())
	}
	m, err := s.metric()
	if err != nil {
		return err
	}
	a, b := s.fs.Arg(0), s.fs.Arg(1)
	if !s.flags.literal {
		if a, err = readText(a); err != nil {
			return err
		}
		if b, err = readText(b); err != nil {
			return err
		}
	}
	d, err := distmat.Pair(m, a, b)
	if err != nil {
		return err
	}

	return s.write(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\t%s\n", m.Name(), strconv.FormatFloat(d, 'g', -1, 64))
		return err
	})
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func runQuery(args []string, stdout, stderr io.Writer) error {
	var queryPath string
	s, err := newSession("query", args, stdout, stderr, func(fs *flag.FlagSet) {
		fs.StringVar(&queryPath, "q", "", "query file (required)")
	})
	if err != nil {
		return err
	}
	if queryPath == "" {
		return fmt.Errorf("%w: -q is required", errUsage)
	}
	query, err := readText(queryPath)
	if err != nil {
		return err
	}
	m, err := s.metric()
	if err != nil {
		return err
	}
	c, err := s.load(s.fs.Args())
	if err != nil {
		return err
	}
	ctx, cancel := s.context()
	defer cancel()

	scores, err := distmat.CompareOneToMany(ctx, m, query, c.Contents(), s.buildOptions()...)
	if err != nil {
		return err
	}
	nearest := distmat.Nearest(scores, s.cfg.Top)
	farthest := distmat.Farthest(scores, s.cfg.Top)

	return s.write(func(w io.Writer) error {
		if s.cfg.Format == "json" {
			return report.WriteQueryJSON(w, m.Name(), queryPath, c.Names(), scores, nearest, farthest)
		}
		if _, err := fmt.Fprintln(w, "# nearest"); err != nil {
			return err
		}
		if err := report.WriteQueryCSV(w, c.Names(), scores, nearest); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "\n# farthest"); err != nil {
			return err
		}
		return report.WriteQueryCSV(w, c.Names(), scores, farthest)
	})
}

func runMetrics(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("textdiv metrics", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg := metric.Default()
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tKIND\tPRECALC")
	for _, name := range reg.Names() {
		m, _, err := reg.Lookup(name, metric.DefaultOptions())
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\n", name, m.Kind(), metric.SupportsPrecalc(m))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "MODIFIERS\t%s\n", strings.Join(metric.Modifiers(), ", "))
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "CODEC\tMIN\tMAX\tDEFAULT")
	for _, name := range codec.Names() {
		r, err := codec.RangeOf(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, r.Min, r.Max, r.Default)
	}

	return tw.Flush()
}
