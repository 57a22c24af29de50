package frontcode

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Coder binds a scheme and options and reports every operation through
// capitan signals. Coders are immutable and safe for concurrent use.
type Coder struct {
	scheme *Scheme
	opts   options
}

// New returns a Coder for the named scheme.
func New(scheme string, opts ...Option) (*Coder, error) {
	s, err := Lookup(scheme)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	if !IsValidChecksumAlgo(o.checksum) {
		return nil, fmt.Errorf("%w %q", ErrUnknownChecksum, o.checksum)
	}

	return &Coder{scheme: s, opts: o}, nil
}

// Scheme returns the scheme this Coder encodes with.
func (c *Coder) Scheme() *Scheme { return c.scheme }

// Encode front-codes words.
func (c *Coder) Encode(ctx context.Context, words []string) []string {
	start := time.Now()
	emitEncodeStart(ctx, c.scheme.name)

	lines := c.scheme.Encode(words)

	emitEncodeComplete(ctx, c.scheme.name, len(words),
		textSize(words), textSize(lines), time.Since(start), nil)
	return lines
}

// Decode expands lines back into words.
func (c *Coder) Decode(ctx context.Context, lines []string) ([]string, error) {
	start := time.Now()
	emitDecodeStart(ctx, c.scheme.name)

	words, err := c.scheme.Decode(lines, c.decodeOptions()...)

	emitDecodeComplete(ctx, c.scheme.name, len(words), time.Since(start), err)
	return words, err
}

// EncodeStream reads one word per line from src and writes encoded lines to dst.
func (c *Coder) EncodeStream(ctx context.Context, src io.Reader, dst io.Writer) (int, error) {
	start := time.Now()
	emitEncodeStart(ctx, c.scheme.name)

	in := &countingReader{r: src}
	out := &countingWriter{w: dst}
	n, err := EncodeStream(in, out, c.scheme)

	emitEncodeComplete(ctx, c.scheme.name, n, in.n, out.n, time.Since(start), err)
	return n, err
}

// DecodeStream reads encoded lines from src and writes one word per line to dst.
func (c *Coder) DecodeStream(ctx context.Context, src io.Reader, dst io.Writer) (int, error) {
	start := time.Now()
	emitDecodeStart(ctx, c.scheme.name)

	n, err := DecodeStream(src, dst, c.scheme, c.decodeOptions()...)

	emitDecodeComplete(ctx, c.scheme.name, n, time.Since(start), err)
	return n, err
}

func (c *Coder) decodeOptions() []Option {
	if c.opts.strictHeader {
		return []Option{WithStrictHeader()}
	}
	return nil
}

// textSize returns the byte size of lines written one per line.
func textSize(lines []string) int {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	return n
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
