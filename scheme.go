package frontcode

import (
	"fmt"
	"strings"
)

// Scheme maps shared-prefix lengths to single-character symbols.
//
// alphabet[i] denotes a shared prefix of exactly i code points, so the longest
// prefix a scheme can express is len(alphabet)-1. Longer shared prefixes are
// capped; the surplus characters travel in the suffix instead.
//
// Schemes are immutable once built and safe for concurrent use.
type Scheme struct {
	name     string
	header   string
	alphabet []rune
	inverse  map[rune]int
}

// NewScheme validates and builds a scheme.
// An empty header means encoded output carries no header line.
func NewScheme(name, header, alphabet string) (*Scheme, error) {
	if name == "" {
		return nil, newSchemeError(ErrInvalidScheme, name, "empty name")
	}
	if strings.ContainsAny(header, "\r\n") {
		return nil, newSchemeError(ErrInvalidScheme, name, "header contains a line break")
	}

	symbols := []rune(alphabet)
	if len(symbols) == 0 {
		return nil, newSchemeError(ErrInvalidScheme, name, "empty alphabet")
	}

	inverse := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if r == '\n' || r == '\r' {
			return nil, newSchemeError(ErrInvalidScheme, name,
				fmt.Sprintf("line break symbol at index %d", i))
		}
		if prev, dup := inverse[r]; dup {
			return nil, newSchemeError(ErrInvalidScheme, name,
				fmt.Sprintf("symbol %q repeated at index %d and %d", r, prev, i))
		}
		inverse[r] = i
	}

	return &Scheme{
		name:     name,
		header:   header,
		alphabet: symbols,
		inverse:  inverse,
	}, nil
}

// Name returns the registry name.
func (s *Scheme) Name() string { return s.name }

// Header returns the header line, or "" when the scheme has none.
func (s *Scheme) Header() string { return s.header }

// Alphabet returns the ordered symbol set.
func (s *Scheme) Alphabet() string { return string(s.alphabet) }

// MaxShared returns the longest shared prefix a single symbol can record.
func (s *Scheme) MaxShared() int { return len(s.alphabet) - 1 }

// Symbol returns the symbol recording a shared prefix of n code points.
func (s *Scheme) Symbol(n int) (rune, bool) {
	if n < 0 || n >= len(s.alphabet) {
		return 0, false
	}
	return s.alphabet[n], true
}

// Count returns the shared prefix length recorded by symbol r.
func (s *Scheme) Count(r rune) (int, bool) {
	n, ok := s.inverse[r]
	return n, ok
}

// runeRange returns the code points lo..hi inclusive.
func runeRange(lo, hi rune) string {
	var b strings.Builder
	for r := lo; r <= hi; r++ {
		b.WriteRune(r)
	}
	return b.String()
}
