/*
Concord prints a concordance of text files: every word together with its
number of occurrences and the lines it appears on.

Usage:

	concord [flags] [file ...]

Without file arguments concord reads standard input. Files ending in .html
or .htm are reduced to their text first.

Flags:

	--html           treat every input as HTML
	--top N          print the N most frequent words only
	--prefix P       print words starting with P only
	--min N          ignore words shorter than N characters
	--stop W,W,...   ignore the given words
	--lang TAG       sort words by the collation rules of a language, e.g. "de"
	--dot FILE       write the word tree in Graphviz DOT format to FILE
	--trace LEVEL    trace level: Error, Info or Debug
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/npillmayer/ordmap/concordance"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

type options struct {
	html      bool
	top       int
	prefix    string
	minLen    int
	stopWords []string
	lang      string
	dot       string
	trace     string
	files     []string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("concord", pflag.ContinueOnError)
	fs.BoolVar(&opts.html, "html", false, "treat every input as HTML")
	fs.IntVarP(&opts.top, "top", "n", 0, "print the N most frequent words only")
	fs.StringVarP(&opts.prefix, "prefix", "p", "", "print words starting with this prefix only")
	fs.IntVar(&opts.minLen, "min", 1, "ignore words shorter than this")
	fs.StringSliceVar(&opts.stopWords, "stop", nil, "comma separated list of words to ignore")
	fs.StringVar(&opts.lang, "lang", "", "collate words for a language (BCP 47 tag)")
	fs.StringVar(&opts.dot, "dot", "", "write the word tree in DOT format to this file")
	fs.StringVar(&opts.trace, "trace", "Error", "trace level [Error|Info|Debug]")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.top < 0 {
		return nil, fmt.Errorf("--top must not be negative")
	}
	opts.files = fs.Args()
	return opts, nil
}

func setupTracing(level string) {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	gtrace.CoreTracer = tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err != pflag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
	setupTracing(opts.trace)
	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "concord: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options, stdin io.Reader, stdout io.Writer) error {
	var xopts []concordance.Option
	if opts.minLen > 1 {
		xopts = append(xopts, concordance.WithMinLength(opts.minLen))
	}
	if len(opts.stopWords) > 0 {
		xopts = append(xopts, concordance.WithStopWords(opts.stopWords...))
	}
	if opts.lang != "" {
		tag, err := language.Parse(opts.lang)
		if err != nil {
			return errors.Wrapf(err, "invalid language %q", opts.lang)
		}
		xopts = append(xopts, concordance.WithCollation(tag))
	}
	x, err := concordance.New(xopts...)
	if err != nil {
		return err
	}
	if err := load(x, opts, stdin); err != nil {
		return err
	}
	if opts.dot != "" {
		if err := writeDot(x, opts.dot); err != nil {
			return err
		}
	}
	entries, err := selectEntries(x, opts)
	if err != nil {
		return err
	}
	return concordance.Report(stdout, entries, reportConfig(stdout))
}

func load(x *concordance.Index, opts *options, stdin io.Reader) error {
	loader := concordance.NewLoader(x, opts.html)
	defer loader.Close()
	progress, ok := loader.Subscribe(context.Background(), 8)
	if ok {
		go func() {
			for m := range progress {
				p := m.(concordance.Progress)
				gtrace.CoreTracer.Infof("loaded %s: %d words, %d tokens", p.Source, p.Words, p.Tokens)
			}
		}()
	}
	if len(opts.files) == 0 {
		return loader.Load("<stdin>", stdin)
	}
	return loader.LoadFiles(opts.files...)
}

func selectEntries(x *concordance.Index, opts *options) ([]*concordance.Entry, error) {
	entries := x.Entries()
	if opts.prefix != "" {
		entries = x.Prefix(opts.prefix)
	}
	if opts.top > 0 {
		return concordance.Top(entries, opts.top)
	}
	return slices.Collect(entries), nil
}

func writeDot(x *concordance.Index, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create DOT file")
	}
	if err := emitDot(x, f); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write DOT file %s", path)
	}
	return f.Close()
}

// emitDot writes the DOT graph of x to w. A failed write sticks with the
// buffer and surfaces at the final flush.
func emitDot(x *concordance.Index, w io.Writer) error {
	bw := bufio.NewWriter(w)
	x.WriteDot(bw)
	return bw.Flush()
}

func reportConfig(w io.Writer) concordance.ReportConfig {
	conf := concordance.ReportConfig{Width: 80, Context: uax11.ContextFromEnvironment()}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return conf
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 20 {
		conf.Width = width
	}
	bold := color.New(color.Bold, color.FgBlue)
	conf.Header = func(w io.Writer, s string) {
		bold.Fprintln(w, s)
	}
	return conf
}
