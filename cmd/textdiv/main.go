// Command textdiv compares text files with a pluggable distance metric and
// orders them by diversity.
//
//	textdiv distances [flags] <file|dir>...        write the distance matrix
//	textdiv divseq    [flags] <file|dir>...        write the diversity order
//	textdiv divseq    [flags] -matrix m.csv        order a saved matrix
//	textdiv pair      [flags] <a> <b>              print one distance
//	textdiv query     [flags] -q <file> <file|dir>...  nearest / farthest items
//	textdiv metrics                                list metrics and codecs
//
// With -text, positional arguments are the samples themselves, named by
// their index ("0", "1", ...).
//
// Exit codes: 0 success, 2 configuration error, 3 computation or I/O error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/katalvlaran/textdiv"
	"github.com/katalvlaran/textdiv/internal/logging"
)

const (
	exitOK      = 0
	exitConfig  = 2
	exitCompute = 3
)

type command struct {
	summary string
	run     func(args []string, stdout, stderr io.Writer) error
}

var commands = map[string]command{
	"distances": {"compute the pairwise distance matrix", runDistances},
	"divseq":    {"order items by greedy diversity (MaxiMin / MaxiMean)", runDivseq},
	"pair":      {"print the distance between two files or strings", runPair},
	"query":     {"rank items against one query file", runQuery},
	"metrics":   {"list metrics, modifiers and codec level ranges", runMetrics},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return exitConfig
		}
		return exitOK
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "textdiv: unknown command %q\n", args[0])
		usage(stderr)
		return exitConfig
	}
	start := time.Now()
	err := cmd.run(args[1:], stdout, stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(stderr, "textdiv %s: %v\n", args[0], err)
	}
	code := exitCode(err)
	logging.Logger().Debug().
		Str("cmd", args[0]).
		Int("exit", code).
		Dur("elapsed", time.Since(start)).
		Msg("command finished")

	return code
}

// exitCode maps the error taxonomy onto process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, textdiv.ErrConfiguration), errors.Is(err, errUsage):
		return exitConfig
	default:
		return exitCompute
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: textdiv <command> [flags] [args]")
	fmt.Fprintln(w)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'textdiv <command> -h' for the flags of a command.")
}
