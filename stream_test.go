package frontcode

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	s, _ := Lookup(SchemeCrack)
	var buf bytes.Buffer

	w := NewWriter(&buf, s)
	for _, word := range []string{"foo", "foot", "footle", "fubar", "fub", "grunt"} {
		if err := w.WriteWord(word); err != nil {
			t.Fatalf("WriteWord() error: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	want := "#!xdawg\n0foo\n3t\n4le\n1ubar\n3\n0grunt\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if w.Count() != 6 {
		t.Errorf("Count() = %d, want 6", w.Count())
	}
}

func TestWriter_EmptyList(t *testing.T) {
	crack, _ := Lookup(SchemeCrack)
	var buf bytes.Buffer
	if err := NewWriter(&buf, crack).Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	if buf.String() != "#!xdawg\n" {
		t.Errorf("output = %q, want header only", buf.String())
	}

	mike, _ := Lookup(SchemeMike)
	buf.Reset()
	if err := NewWriter(&buf, mike).Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestWriter_HeaderWrittenOnce(t *testing.T) {
	s, _ := Lookup(SchemeDAWG)
	var buf bytes.Buffer

	w := NewWriter(&buf, s)
	_ = w.WriteWord("a")
	_ = w.Flush()
	_ = w.WriteWord("ab")
	_ = w.Flush()

	if got := strings.Count(buf.String(), "#!xdawg"); got != 1 {
		t.Errorf("header written %d times, want 1", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_StickyError(t *testing.T) {
	s, _ := Lookup(SchemeCrack)
	w := NewWriter(failingWriter{}, s)

	_ = w.WriteWord("foo")
	err := w.Flush()
	if err == nil {
		t.Fatal("Flush() should fail")
	}
	if err2 := w.WriteWord("bar"); err2 == nil {
		t.Error("WriteWord() after failure should return the error")
	}
}

func TestReader(t *testing.T) {
	s, _ := Lookup(SchemeCrack)
	r := NewReader(strings.NewReader("#!xdawg\r\n0foo\r\n3t\r\n4le\n"), s)

	var got []string
	for {
		word, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		got = append(got, word)
	}

	want := []string{"foo", "foot", "footle"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("words = %q, want %q", got, want)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() after end = %v, want io.EOF", err)
	}
}

func TestReader_Error(t *testing.T) {
	s, _ := Lookup(SchemeCrack)
	r := NewReader(strings.NewReader("#!xdawg\n0foo\n9zzz\n0bar\n"), s)

	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	_, err := r.Next()
	if !errors.Is(err, ErrPrefixTooShort) {
		t.Fatalf("Next() error = %v, want ErrPrefixTooShort", err)
	}
	if _, err := r.Next(); !errors.Is(err, ErrPrefixTooShort) {
		t.Errorf("Next() after failure = %v, want the same error", err)
	}
}

func TestReader_StrictHeader(t *testing.T) {
	s, _ := Lookup(SchemeCrack)

	r := NewReader(strings.NewReader("#!nope\n0foo\n"), s, WithStrictHeader())
	if _, err := r.Next(); !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("Next() error = %v, want ErrHeaderMismatch", err)
	}

	r = NewReader(strings.NewReader(""), s, WithStrictHeader())
	if _, err := r.Next(); !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("Next() on empty input = %v, want ErrHeaderMismatch", err)
	}
}

func TestStreamRoundTrip(t *testing.T) {
	words := []string{"able", "abler", "ablest", "ably", "zebra", "zebras"}

	for _, name := range []string{SchemeCrack, SchemeDAWG, SchemeMike} {
		t.Run(name, func(t *testing.T) {
			s, _ := Lookup(name)

			var encoded bytes.Buffer
			n, err := EncodeStream(strings.NewReader(strings.Join(words, "\r\n")), &encoded, s)
			if err != nil {
				t.Fatalf("EncodeStream() error: %v", err)
			}
			if n != len(words) {
				t.Errorf("EncodeStream() = %d, want %d", n, len(words))
			}

			lines := strings.Split(strings.TrimSuffix(encoded.String(), "\n"), "\n")
			if want := s.Encode(words); strings.Join(lines, "\n") != strings.Join(want, "\n") {
				t.Errorf("stream output = %q, want %q", lines, want)
			}

			var decoded bytes.Buffer
			n, err = DecodeStream(&encoded, &decoded, s)
			if err != nil {
				t.Fatalf("DecodeStream() error: %v", err)
			}
			if n != len(words) {
				t.Errorf("DecodeStream() = %d, want %d", n, len(words))
			}
			if decoded.String() != strings.Join(words, "\n")+"\n" {
				t.Errorf("decoded = %q", decoded.String())
			}
		})
	}
}

func TestDecodeStream_Error(t *testing.T) {
	s, _ := Lookup(SchemeMike)
	var out bytes.Buffer

	n, err := DecodeStream(strings.NewReader("@foo\n\n"), &out, s)
	if !errors.Is(err, ErrEmptyLine) {
		t.Errorf("DecodeStream() error = %v, want ErrEmptyLine", err)
	}
	if n != 1 {
		t.Errorf("DecodeStream() = %d, want 1", n)
	}
}
