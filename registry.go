package frontcode

import (
	"context"
	"sort"
	"sync"
)

// Built-in scheme names.
const (
	SchemeCrack = "Crack"
	SchemeDAWG  = "DAWG"
	SchemeMike  = "Mike"
)

// xdawgHeader marks Crack and DAWG encoded lists.
const xdawgHeader = "#!xdawg"

var (
	schemes   = builtinSchemes()
	schemesMu sync.RWMutex
)

// builtinSchemes returns a fresh registry holding the preset schemes.
func builtinSchemes() map[string]*Scheme {
	return map[string]*Scheme{
		SchemeCrack: mustScheme(SchemeCrack, xdawgHeader, runeRange('0', 'z')),
		SchemeDAWG: mustScheme(SchemeDAWG, xdawgHeader,
			runeRange('0', '9')+runeRange('A', 'Z')+runeRange('a', 'z')),
		SchemeMike: mustScheme(SchemeMike, "", runeRange('@', 'z')),
	}
}

func mustScheme(name, header, alphabet string) *Scheme {
	s, err := NewScheme(name, header, alphabet)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the registered scheme with the given name.
// The returned scheme is shared and immutable.
func Lookup(name string) (*Scheme, error) {
	schemesMu.RLock()
	defer schemesMu.RUnlock()

	s, ok := schemes[name]
	if !ok {
		return nil, newSchemeError(ErrUnknownScheme, name, "")
	}
	return s, nil
}

// Register adds a scheme to the registry.
// Names are unique; registering an existing name fails with ErrSchemeExists.
func Register(s *Scheme) error {
	if s == nil {
		return newSchemeError(ErrInvalidScheme, "", "nil scheme")
	}

	schemesMu.Lock()
	if _, ok := schemes[s.name]; ok {
		schemesMu.Unlock()
		return newSchemeError(ErrSchemeExists, s.name, "")
	}
	schemes[s.name] = s
	schemesMu.Unlock()

	emitSchemeRegistered(context.Background(), s.name, len(s.alphabet))
	return nil
}

// Names returns the registered scheme names in sorted order.
func Names() []string {
	schemesMu.RLock()
	defer schemesMu.RUnlock()

	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResetSchemes drops custom registrations and restores the presets.
// This is primarily useful for test isolation.
func ResetSchemes() {
	schemesMu.Lock()
	defer schemesMu.Unlock()
	schemes = builtinSchemes()
}
