package frontcode

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single word or encoded line read from a stream.
const maxLineSize = 1 << 20

// Writer front-codes words onto an underlying stream, one line per word.
// Call Flush when done; the header is written even for an empty list.
type Writer struct {
	bw     *bufio.Writer
	enc    encoder
	header bool
	count  int
	err    error
}

// NewWriter returns a Writer encoding with scheme s.
func NewWriter(w io.Writer, s *Scheme) *Writer {
	return &Writer{
		bw:  bufio.NewWriter(w),
		enc: encoder{scheme: s},
	}
}

func (w *Writer) writeHeader() {
	if w.header {
		return
	}
	w.header = true
	if h := w.enc.scheme.header; h != "" {
		w.writeLine(h)
	}
}

func (w *Writer) writeLine(line string) {
	if w.err != nil {
		return
	}
	if _, err := w.bw.WriteString(line); err != nil {
		w.err = err
		return
	}
	w.err = w.bw.WriteByte('\n')
}

// WriteWord encodes and writes one word.
// Errors are sticky: once a write fails every later call returns the same error.
func (w *Writer) WriteWord(word string) error {
	w.writeHeader()
	w.writeLine(w.enc.next(word))
	if w.err == nil {
		w.count++
	}
	return w.err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	w.writeHeader()
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.Flush()
	return w.err
}

// Count returns the number of words written.
func (w *Writer) Count() int { return w.count }

// Reader decodes front-coded lines from an underlying stream.
type Reader struct {
	sc  *bufio.Scanner
	dec decoder
	err error
}

// NewReader returns a Reader decoding with scheme s.
// WithStrictHeader is honoured; other options are ignored.
func NewReader(r io.Reader, s *Scheme, opts ...Option) *Reader {
	o := buildOptions(opts)
	return &Reader{
		sc:  newLineScanner(r),
		dec: decoder{scheme: s, strict: o.strictHeader},
	}
}

// Next returns the next decoded word, or io.EOF when the stream is exhausted.
// A trailing carriage return on each line is ignored.
func (r *Reader) Next() (string, error) {
	if r.err != nil {
		return "", r.err
	}

	for r.sc.Scan() {
		word, ok, err := r.dec.next(strings.TrimSuffix(r.sc.Text(), "\r"))
		if err != nil {
			r.err = err
			return "", err
		}
		if ok {
			return word, nil
		}
	}

	if err := r.sc.Err(); err != nil {
		r.err = err
		return "", err
	}
	if err := r.dec.finish(); err != nil {
		r.err = err
		return "", err
	}
	r.err = io.EOF
	return "", io.EOF
}

// EncodeStream reads one word per line from src and writes the encoded list
// to dst. It returns the number of words encoded.
func EncodeStream(src io.Reader, dst io.Writer, s *Scheme) (int, error) {
	sc := newLineScanner(src)
	w := NewWriter(dst, s)
	for sc.Scan() {
		if err := w.WriteWord(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return w.Count(), err
		}
	}
	if err := sc.Err(); err != nil {
		return w.Count(), err
	}
	return w.Count(), w.Flush()
}

// DecodeStream reads an encoded list from src and writes one word per line
// to dst. It returns the number of words decoded.
func DecodeStream(src io.Reader, dst io.Writer, s *Scheme, opts ...Option) (int, error) {
	r := NewReader(src, s, opts...)
	bw := bufio.NewWriter(dst)

	n := 0
	for {
		word, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		if _, err := bw.WriteString(word); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}
