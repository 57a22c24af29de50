package frontcode

import "unicode/utf8"

// Decode expands lines produced with the named scheme back into words.
func Decode(lines []string, scheme string, opts ...Option) ([]string, error) {
	s, err := Lookup(scheme)
	if err != nil {
		return nil, err
	}
	return s.Decode(lines, opts...)
}

// Decode expands front-coded lines back into words.
//
// If the scheme has a header, the first line is consumed as the header. By
// default its content is not checked; pass WithStrictHeader to require an
// exact match. Any malformed line aborts the pass with a *LineError.
func (s *Scheme) Decode(lines []string, opts ...Option) ([]string, error) {
	o := buildOptions(opts)
	dec := decoder{scheme: s, strict: o.strictHeader}

	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word, ok, err := dec.next(line)
		if err != nil {
			return nil, err
		}
		if ok {
			words = append(words, word)
		}
	}
	if err := dec.finish(); err != nil {
		return nil, err
	}
	return words, nil
}

// decoder carries the previous word across one decoding pass.
type decoder struct {
	scheme *Scheme
	strict bool
	prev   string
	line   int
}

// next consumes one line. ok is false when the line was the header.
func (d *decoder) next(text string) (word string, ok bool, err error) {
	d.line++

	if d.line == 1 && d.scheme.header != "" {
		if d.strict && text != d.scheme.header {
			return "", false, newLineError(ErrHeaderMismatch, d.scheme.name, d.line, text)
		}
		return "", false, nil
	}

	if text == "" {
		return "", false, newLineError(ErrEmptyLine, d.scheme.name, d.line, text)
	}

	r, width := utf8.DecodeRuneInString(text)
	n, known := d.scheme.inverse[r]
	if !known || (r == utf8.RuneError && width == 1) {
		return "", false, newLineError(ErrUnknownSymbol, d.scheme.name, d.line, text)
	}

	size, ok := prefixBytes(d.prev, n)
	if !ok {
		return "", false, newLineError(ErrPrefixTooShort, d.scheme.name, d.line, text)
	}

	d.prev = d.prev[:size] + text[width:]
	return d.prev, true, nil
}

// finish reports a header that never arrived when strict checking is on.
func (d *decoder) finish() error {
	if d.strict && d.line == 0 && d.scheme.header != "" {
		return newLineError(ErrHeaderMismatch, d.scheme.name, 1, "")
	}
	return nil
}

// prefixBytes returns the byte length of the first n code points of s.
func prefixBytes(s string, n int) (int, bool) {
	size := 0
	for i := 0; i < n; i++ {
		if size >= len(s) {
			return 0, false
		}
		_, w := utf8.DecodeRuneInString(s[size:])
		size += w
	}
	return size, true
}
