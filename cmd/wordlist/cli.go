package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Options holds CLI options for wordlist.
type Options struct {
	Decompress bool
	Scheme     string
	Strict     bool
	In         string
	Out        string
	Format     string
	LogLevel   string
}

// ParseFlags parses CLI flags from args and returns Options.
func ParseFlags(args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet("wordlist", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts Options
	fs.BoolVar(&opts.Decompress, "d", false, "decompress instead of compress")
	fs.StringVar(&opts.Scheme, "scheme", "Crack", "front-coding scheme: Crack|DAWG|Mike")
	fs.BoolVar(&opts.Strict, "strict", false, "require the scheme header when decompressing")
	fs.StringVar(&opts.In, "in", "", "input file (default stdin)")
	fs.StringVar(&opts.Out, "out", "", "output file (default stdout)")
	fs.StringVar(&opts.Format, "format", "text", "compressed format: text|json|xml|yaml|msgpack|bson")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	opts.Format = strings.ToLower(opts.Format)
	if opts.Format != "text" {
		if _, ok := codecs[opts.Format]; !ok {
			return Options{}, fmt.Errorf("unknown format %q", opts.Format)
		}
	}
	return opts, nil
}
