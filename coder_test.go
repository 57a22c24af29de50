package frontcode

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	c, err := New(SchemeDAWG)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.Scheme().Name() != SchemeDAWG {
		t.Errorf("Scheme().Name() = %q, want %q", c.Scheme().Name(), SchemeDAWG)
	}
}

func TestNew_UnknownScheme(t *testing.T) {
	_, err := New("Nope")
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("New() error = %v, want ErrUnknownScheme", err)
	}
}

func TestNew_UnknownChecksum(t *testing.T) {
	_, err := New(SchemeCrack, WithChecksum("md5"))
	if !errors.Is(err, ErrUnknownChecksum) {
		t.Errorf("New() error = %v, want ErrUnknownChecksum", err)
	}
}

func TestCoder_EncodeDecode(t *testing.T) {
	c, _ := New(SchemeCrack)
	ctx := context.Background()
	words := []string{"foo", "foot", "footle", "fubar", "fub", "grunt"}

	lines := c.Encode(ctx, words)
	want := []string{"#!xdawg", "0foo", "3t", "4le", "1ubar", "3", "0grunt"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Encode() = %q, want %q", lines, want)
	}

	got, err := c.Decode(ctx, lines)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(got, words) {
		t.Errorf("Decode() = %q, want %q", got, words)
	}
}

func TestCoder_StrictHeader(t *testing.T) {
	lenient, _ := New(SchemeCrack)
	strict, _ := New(SchemeCrack, WithStrictHeader())
	lines := []string{"#!wrong", "0foo"}

	if _, err := lenient.Decode(context.Background(), lines); err != nil {
		t.Errorf("lenient Decode() error: %v", err)
	}
	if _, err := strict.Decode(context.Background(), lines); !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("strict Decode() error = %v, want ErrHeaderMismatch", err)
	}

	var out bytes.Buffer
	if _, err := strict.DecodeStream(context.Background(), strings.NewReader("#!wrong\n0foo\n"), &out); !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("strict DecodeStream() error = %v, want ErrHeaderMismatch", err)
	}
}

func TestCoder_Streams(t *testing.T) {
	c, _ := New(SchemeMike)
	ctx := context.Background()

	var encoded bytes.Buffer
	n, err := c.EncodeStream(ctx, strings.NewReader("foo\nfoot\nfootle\n"), &encoded)
	if err != nil {
		t.Fatalf("EncodeStream() error: %v", err)
	}
	if n != 3 {
		t.Errorf("EncodeStream() = %d, want 3", n)
	}
	if encoded.String() != "@foo\nCt\nDle\n" {
		t.Errorf("encoded = %q", encoded.String())
	}

	var decoded bytes.Buffer
	if _, err := c.DecodeStream(ctx, &encoded, &decoded); err != nil {
		t.Fatalf("DecodeStream() error: %v", err)
	}
	if decoded.String() != "foo\nfoot\nfootle\n" {
		t.Errorf("decoded = %q", decoded.String())
	}
}

func TestTextSize(t *testing.T) {
	if got := textSize([]string{"ab", "", "c"}); got != 6 {
		t.Errorf("textSize() = %d, want 6", got)
	}
}
