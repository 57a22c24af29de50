// Package testing provides test fixtures for frontcode.
package testing

import (
	"sort"
	"strings"
	"testing"
)

// SampleWords returns the short reference list used across tests.
func SampleWords() []string {
	return []string{"foo", "foot", "footle", "fubar", "fub", "grunt"}
}

// SampleCrackLines returns SampleWords encoded with the Crack scheme.
func SampleCrackLines() []string {
	return []string{"#!xdawg", "0foo", "3t", "4le", "1ubar", "3", "0grunt"}
}

// SortedWords returns n distinct sorted words with heavily shared prefixes.
func SortedWords(tb testing.TB, n int) []string {
	tb.Helper()

	stems := []string{"anti", "counter", "inter", "over", "super", "under"}
	roots := []string{"act", "balance", "charge", "state", "weight"}
	tails := []string{"", "ed", "ing", "ingly", "s"}

	words := make([]string, 0, n)
	for i := 0; len(words) < n; i++ {
		stem := stems[i%len(stems)]
		root := roots[(i/len(stems))%len(roots)]
		tail := tails[(i/(len(stems)*len(roots)))%len(tails)]
		suffix := strings.Repeat("x", i/(len(stems)*len(roots)*len(tails)))
		words = append(words, stem+root+tail+suffix)
	}
	sort.Strings(words)
	return words
}

// LongPrefixWords returns two adjacent words sharing a prefix of n characters.
func LongPrefixWords(n int) []string {
	prefix := strings.Repeat("a", n)
	return []string{prefix + "b", prefix + "c"}
}

// Dictionary is a processor fixture with a front-coded word list.
type Dictionary struct {
	Name  string   `json:"name" xml:"name" yaml:"name" msgpack:"name" bson:"name"`
	Words []string `json:"words" xml:"word" yaml:"words" msgpack:"words" bson:"words" store.compress:"DAWG" load.expand:"DAWG"`
}

// Clone implements Cloner[Dictionary].
func (d Dictionary) Clone() Dictionary { return d }
