package benchmarks

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/zoobzio/frontcode"
	"github.com/zoobzio/frontcode/json"
	"github.com/zoobzio/frontcode/msgpack"
	fctest "github.com/zoobzio/frontcode/testing"
)

func BenchmarkScheme_Encode(b *testing.B) {
	s, _ := frontcode.Lookup(frontcode.SchemeCrack)
	words := fctest.SortedWords(b, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Encode(words)
	}
}

func BenchmarkScheme_Decode(b *testing.B) {
	s, _ := frontcode.Lookup(frontcode.SchemeCrack)
	lines := s.Encode(fctest.SortedWords(b, 10000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Decode(lines)
	}
}

func BenchmarkEncodeStream(b *testing.B) {
	s, _ := frontcode.Lookup(frontcode.SchemeDAWG)
	input := strings.Join(fctest.SortedWords(b, 10000), "\n") + "\n"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frontcode.EncodeStream(strings.NewReader(input), io.Discard, s)
	}
}

func BenchmarkDecodeStream(b *testing.B) {
	s, _ := frontcode.Lookup(frontcode.SchemeDAWG)
	var encoded bytes.Buffer
	_, _ = frontcode.EncodeStream(strings.NewReader(strings.Join(fctest.SortedWords(b, 10000), "\n")), &encoded, s)
	data := encoded.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = frontcode.DecodeStream(bytes.NewReader(data), io.Discard, s)
	}
}

func BenchmarkCoder_Pack_JSON(b *testing.B) {
	coder, _ := frontcode.New(frontcode.SchemeCrack)
	words := fctest.SortedWords(b, 1000)
	codec := json.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coder.Pack(context.Background(), codec, words)
	}
}

func BenchmarkProcessor_Store_MessagePack(b *testing.B) {
	proc, _ := frontcode.NewProcessor[fctest.Dictionary](msgpack.New())
	dict := &fctest.Dictionary{Name: "en", Words: fctest.SortedWords(b, 1000)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Store(context.Background(), dict)
	}
}
