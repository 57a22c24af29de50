package frontcode

import (
	"strings"
	"unicode/utf8"
)

// Encode front-codes words with the named scheme.
// The only possible error is ErrUnknownScheme.
func Encode(words []string, scheme string) ([]string, error) {
	s, err := Lookup(scheme)
	if err != nil {
		return nil, err
	}
	return s.Encode(words), nil
}

// Encode front-codes words into lines.
//
// When the scheme has a header it is the first line. Each following line is
// the symbol for the prefix shared with the previous word plus the rest of
// the word. words is not modified.
func (s *Scheme) Encode(words []string) []string {
	lines := make([]string, 0, len(words)+1)
	if s.header != "" {
		lines = append(lines, s.header)
	}

	enc := encoder{scheme: s}
	for _, word := range words {
		lines = append(lines, enc.next(word))
	}
	return lines
}

// encoder carries the previous word across one encoding pass.
type encoder struct {
	scheme *Scheme
	prev   string
}

func (e *encoder) next(word string) string {
	n, size := sharedPrefix(e.prev, word, e.scheme.MaxShared())
	e.prev = word

	var b strings.Builder
	b.Grow(utf8.UTFMax + len(word) - size)
	b.WriteRune(e.scheme.alphabet[n])
	b.WriteString(word[size:])
	return b.String()
}

// sharedPrefix returns how many leading code points a and b share, at most
// limit, along with the byte length of that prefix.
func sharedPrefix(a, b string, limit int) (n, size int) {
	for n < limit && size < len(a) && size < len(b) {
		_, wa := utf8.DecodeRuneInString(a[size:])
		_, wb := utf8.DecodeRuneInString(b[size:])
		if wa != wb || a[size:size+wa] != b[size:size+wb] {
			break
		}
		size += wa
		n++
	}
	return n, size
}
