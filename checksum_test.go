package frontcode

import (
	"errors"
	"strings"
	"testing"
)

func TestChecksum_Format(t *testing.T) {
	tests := []struct {
		algo   ChecksumAlgo
		hexLen int
	}{
		{ChecksumBLAKE2b, 64},
		{ChecksumSHA256, 64},
		{ChecksumSHA512, 128},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			sum, err := Checksum(tt.algo, []string{"foo", "foot"})
			if err != nil {
				t.Fatalf("Checksum() error: %v", err)
			}
			prefix := string(tt.algo) + ":"
			if !strings.HasPrefix(sum, prefix) {
				t.Fatalf("Checksum() = %q, want prefix %q", sum, prefix)
			}
			if got := len(sum) - len(prefix); got != tt.hexLen {
				t.Errorf("digest length = %d, want %d", got, tt.hexLen)
			}
		})
	}
}

func TestChecksum_EmptyListSHA256(t *testing.T) {
	sum, err := Checksum(ChecksumSHA256, nil)
	if err != nil {
		t.Fatalf("Checksum() error: %v", err)
	}
	want := "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if sum != want {
		t.Errorf("Checksum() = %q, want %q", sum, want)
	}
}

func TestChecksum_WordBoundaries(t *testing.T) {
	a, _ := Checksum(ChecksumBLAKE2b, []string{"ab", "c"})
	b, _ := Checksum(ChecksumBLAKE2b, []string{"a", "bc"})
	if a == b {
		t.Error("Checksum() should distinguish word boundaries")
	}
}

func TestChecksum_Unknown(t *testing.T) {
	_, err := Checksum("md5", nil)
	if !errors.Is(err, ErrUnknownChecksum) {
		t.Errorf("Checksum() error = %v, want ErrUnknownChecksum", err)
	}
}

func TestVerifyChecksum(t *testing.T) {
	words := []string{"foo", "foot"}
	sum, _ := Checksum(ChecksumBLAKE2b, words)

	if err := VerifyChecksum(sum, words); err != nil {
		t.Errorf("VerifyChecksum() error: %v", err)
	}
	if err := VerifyChecksum("", words); err != nil {
		t.Errorf("VerifyChecksum(\"\") error: %v", err)
	}
	if err := VerifyChecksum(sum, []string{"foo", "feet"}); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("VerifyChecksum() error = %v, want ErrChecksumMismatch", err)
	}
	if err := VerifyChecksum("nocolon", words); !errors.Is(err, ErrUnknownChecksum) {
		t.Errorf("VerifyChecksum() error = %v, want ErrUnknownChecksum", err)
	}
}

func TestIsValidChecksumAlgo(t *testing.T) {
	for _, algo := range []ChecksumAlgo{ChecksumBLAKE2b, ChecksumSHA256, ChecksumSHA512} {
		if !IsValidChecksumAlgo(algo) {
			t.Errorf("IsValidChecksumAlgo(%q) = false", algo)
		}
	}
	if IsValidChecksumAlgo("crc32") {
		t.Error("IsValidChecksumAlgo(crc32) = true")
	}
}
