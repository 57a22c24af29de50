package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zoobzio/frontcode"
	fcbson "github.com/zoobzio/frontcode/bson"
	fcjson "github.com/zoobzio/frontcode/json"
	fcmsgpack "github.com/zoobzio/frontcode/msgpack"
	fcxml "github.com/zoobzio/frontcode/xml"
	fcyaml "github.com/zoobzio/frontcode/yaml"
)

// codecs maps archive format names to their codecs.
var codecs = map[string]func() frontcode.Codec{
	"json":    fcjson.New,
	"xml":     fcxml.New,
	"yaml":    fcyaml.New,
	"msgpack": fcmsgpack.New,
	"bson":    fcbson.New,
}

// run compresses or decompresses a word list from in to out.
func run(ctx context.Context, opts Options, in io.Reader, out io.Writer, logger *zap.Logger) error {
	var coderOpts []frontcode.Option
	if opts.Strict {
		coderOpts = append(coderOpts, frontcode.WithStrictHeader())
	}
	coder, err := frontcode.New(opts.Scheme, coderOpts...)
	if err != nil {
		return err
	}

	start := time.Now()
	mode := "compress"
	if opts.Decompress {
		mode = "decompress"
	}
	logger.Debug("starting",
		zap.String("mode", mode),
		zap.String("scheme", opts.Scheme),
		zap.String("format", opts.Format))

	var n int
	switch {
	case opts.Format == "text" && opts.Decompress:
		n, err = coder.DecodeStream(ctx, in, out)
	case opts.Format == "text":
		n, err = coder.EncodeStream(ctx, in, out)
	case opts.Decompress:
		n, err = unpackArchive(ctx, coder, codecs[opts.Format](), in, out)
	default:
		n, err = packArchive(ctx, coder, codecs[opts.Format](), in, out)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", mode, err)
	}

	logger.Info("done",
		zap.String("mode", mode),
		zap.String("scheme", opts.Scheme),
		zap.Int("words", n),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func packArchive(ctx context.Context, coder *frontcode.Coder, codec frontcode.Codec, in io.Reader, out io.Writer) (int, error) {
	words, err := readWords(in)
	if err != nil {
		return 0, err
	}
	data, err := coder.Pack(ctx, codec, words)
	if err != nil {
		return 0, err
	}
	if _, err := out.Write(data); err != nil {
		return 0, err
	}
	return len(words), nil
}

func unpackArchive(ctx context.Context, coder *frontcode.Coder, codec frontcode.Codec, in io.Reader, out io.Writer) (int, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return 0, err
	}
	words, err := coder.Unpack(ctx, codec, data)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(out)
	for i, w := range words {
		if _, err := bw.WriteString(w); err != nil {
			return i, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return i, err
		}
	}
	return len(words), bw.Flush()
}

// readWords reads one word per line, ignoring a trailing carriage return.
func readWords(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}
