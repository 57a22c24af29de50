// Command wordlist front-codes sorted word lists.
//
//	wordlist -scheme DAWG -in words.txt -out words.fc
//	wordlist -d -scheme DAWG -in words.fc
//	wordlist -format json < words.txt > words.json
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

func main() {
	opts, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger := newLogger(opts.LogLevel, os.Stderr)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, opts, logger); err != nil {
		logger.Error("wordlist failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// execute opens the configured input and output and runs the conversion.
func execute(ctx context.Context, opts Options, logger *zap.Logger) error {
	var in io.Reader = os.Stdin
	if opts.In != "" {
		f, err := os.Open(opts.In)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	if opts.Out == "" {
		return run(ctx, opts, in, os.Stdout, logger)
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := run(ctx, opts, in, f, logger); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
