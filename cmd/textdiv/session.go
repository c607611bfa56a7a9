package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/textdiv/codec"
	"github.com/katalvlaran/textdiv/corpus"
	"github.com/katalvlaran/textdiv/distmat"
	"github.com/katalvlaran/textdiv/internal/config"
	"github.com/katalvlaran/textdiv/internal/logging"
	"github.com/katalvlaran/textdiv/metric"
	"github.com/rs/zerolog"
)

// errUsage marks bad command-line usage (exit code 2).
var errUsage = errors.New("usage error")

// flags shared by every computing subcommand. Only flags given explicitly
// override the loaded configuration.
type flags struct {
	configPath string
	metric     string
	level      int
	workers    int
	precalc    bool
	ext        string
	format     string
	output     string
	top        int
	strategy   string
	timeout    time.Duration
	logLevel   string
	logFormat  string
	literal    bool
}

func (f *flags) register(fs *flag.FlagSet) {
	def := config.Default()
	fs.StringVar(&f.configPath, "config", "", "YAML config file (default $"+config.PathEnvVar+" or ./textdiv.yaml)")
	fs.StringVar(&f.metric, "metric", def.Metric, "metric name, optionally <modifier>:<base>")
	fs.IntVar(&f.level, "level", def.Level, "compression level for ncd_* metrics (-1 = codec default)")
	fs.IntVar(&f.workers, "workers", def.Workers, "parallel workers (0 = one per CPU)")
	fs.BoolVar(&f.precalc, "precalc", def.Precalc, "precalculate per-item work when the metric supports it")
	fs.StringVar(&f.ext, "ext", "", "comma-separated extension filter for directories")
	fs.StringVar(&f.format, "format", def.Format, "output format: csv or json")
	fs.StringVar(&f.output, "o", "-", "output file (- = stdout)")
	fs.IntVar(&f.top, "top", def.Top, "rows per query section (0 = all)")
	fs.StringVar(&f.strategy, "strategy", def.Strategy, "diversity strategy: MaxiMin or MaxiMean")
	fs.DurationVar(&f.timeout, "timeout", def.Timeout, "abort the run after this long (0 = never)")
	fs.StringVar(&f.logLevel, "log-level", def.Log.Level, "log level")
	fs.StringVar(&f.logFormat, "log-format", def.Log.Format, "log format: console or json")
	fs.BoolVar(&f.literal, "text", false, "treat positional arguments as literal strings, not paths")
}

// overlay copies explicitly set flags onto cfg.
func (f *flags) overlay(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "metric":
			cfg.Metric = f.metric
		case "level":
			cfg.Level = f.level
		case "workers":
			cfg.Workers = f.workers
		case "precalc":
			cfg.Precalc = f.precalc
		case "ext":
			cfg.Extensions = strings.Split(f.ext, ",")
		case "format":
			cfg.Format = f.format
		case "top":
			cfg.Top = f.top
		case "strategy":
			cfg.Strategy = f.strategy
		case "timeout":
			cfg.Timeout = f.timeout
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "log-format":
			cfg.Log.Format = f.logFormat
		}
	})
}

// session is the per-invocation state shared by the subcommands.
type session struct {
	cfg    *config.Config
	log    zerolog.Logger
	fs     *flag.FlagSet
	flags  *flags
	stdout io.Writer
}

// newSession parses args, loads configuration and sets up logging.
// extra registers subcommand-specific flags.
func newSession(name string, args []string, stdout, stderr io.Writer, extra func(*flag.FlagSet)) (*session, error) {
	fs := flag.NewFlagSet("textdiv "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &flags{}
	f.register(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	f.overlay(fs, cfg)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Timestamp: true,
		Output:    stderr,
	})
	log := logging.Logger().With().Str("cmd", name).Logger()

	return &session{cfg: cfg, log: log, fs: fs, flags: f, stdout: stdout}, nil
}

// context returns the run context honouring the timeout and Ctrl-C.
func (s *session) context() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	if s.cfg.Timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)

	return ctx, func() { cancel(); stop() }
}

// metric builds the configured metric and logs name corrections and level
// clamping.
func (s *session) metric() (metric.Metric, error) {
	m, name, err := metric.Default().Lookup(s.cfg.Metric, metric.Options{Level: s.cfg.Level})
	if err != nil {
		return nil, err
	}
	if name != s.cfg.Metric {
		s.log.Warn().Str("requested", s.cfg.Metric).Str("resolved", name).Msg("metric name resolved")
	}
	if n, ok := m.(*metric.NCD); ok {
		c := n.Compressor()
		ev := s.log.Debug()
		if s.cfg.Level != codec.DefaultLevel && c.Level() != s.cfg.Level {
			ev = s.log.Info()
		}
		ev.Str("codec", c.Name()).Int("requested", s.cfg.Level).Int("level", c.Level()).Msg("compression level")
	}

	return m, nil
}

// buildOptions turns the configuration into distmat options.
func (s *session) buildOptions() []distmat.Option {
	return []distmat.Option{
		distmat.WithWorkers(s.cfg.Workers),
		distmat.WithPrecalc(s.cfg.Precalc),
		distmat.WithLogger(s.log),
		distmat.WithProgress(func(done, total int) {
			s.log.Debug().
				Str("done", humanize.Comma(int64(done))).
				Str("total", humanize.Comma(int64(total))).
				Msg("progress")
		}),
	}
}

// load reads the corpus from positional paths, or takes the arguments
// themselves as samples under -text.
func (s *session) load(args []string) (*corpus.Corpus, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no input files or directories", errUsage)
	}
	if s.flags.literal {
		return corpus.FromStrings(args...), nil
	}
	c, err := corpus.Load(args, s.cfg.Extensions)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Int("files", c.Len()).
		Str("size", humanize.Bytes(c.TotalBytes())).
		Msg("corpus loaded")

	return c, nil
}

// output opens the -o destination; the returned close is a no-op for stdout.
func (s *session) output() (io.Writer, func() error, error) {
	if s.flags.output == "" || s.flags.output == "-" {
		return s.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(s.flags.output)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// write runs fn against the output and reports the first error.
func (s *session) write(fn func(io.Writer) error) error {
	w, closeFn, err := s.output()
	if err != nil {
		return err
	}
	if err = fn(w); err != nil {
		_ = closeFn()
		return err
	}

	return closeFn()
}
