package frontcode

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Hasher fingerprints a word list.
type Hasher interface {
	// Sum returns the hex-encoded digest of words, each terminated by a newline.
	Sum(words []string) (string, error)
}

// digestHasher adapts a hash.Hash constructor to Hasher.
type digestHasher struct {
	newHash func() (hash.Hash, error)
}

func (h *digestHasher) Sum(words []string) (string, error) {
	d, err := h.newHash()
	if err != nil {
		return "", fmt.Errorf("checksum init failed: %w", err)
	}
	for _, w := range words {
		// hash.Hash writes never fail.
		_, _ = d.Write([]byte(w))
		_, _ = d.Write([]byte{'\n'})
	}
	return hex.EncodeToString(d.Sum(nil)), nil
}

// BLAKE2bHasher returns an unkeyed BLAKE2b-256 hasher.
func BLAKE2bHasher() Hasher {
	return &digestHasher{newHash: func() (hash.Hash, error) {
		return blake2b.New256(nil)
	}}
}

// SHA256Hasher returns a SHA-256 hasher.
func SHA256Hasher() Hasher {
	return &digestHasher{newHash: func() (hash.Hash, error) {
		return sha256.New(), nil
	}}
}

// SHA512Hasher returns a SHA-512 hasher.
func SHA512Hasher() Hasher {
	return &digestHasher{newHash: func() (hash.Hash, error) {
		return sha512.New(), nil
	}}
}

// builtinHashers returns the checksum registry.
func builtinHashers() map[ChecksumAlgo]Hasher {
	return map[ChecksumAlgo]Hasher{
		ChecksumBLAKE2b: BLAKE2bHasher(),
		ChecksumSHA256:  SHA256Hasher(),
		ChecksumSHA512:  SHA512Hasher(),
	}
}

var hashers = builtinHashers()

// Checksum returns the archive checksum of words in "<algo>:<hex>" form.
func Checksum(algo ChecksumAlgo, words []string) (string, error) {
	h, ok := hashers[algo]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownChecksum, algo)
	}
	sum, err := h.Sum(words)
	if err != nil {
		return "", err
	}
	return string(algo) + ":" + sum, nil
}

// VerifyChecksum recomputes the checksum of words and compares it with want.
// An empty want is accepted without verification.
func VerifyChecksum(want string, words []string) error {
	if want == "" {
		return nil
	}

	algo, _, ok := strings.Cut(want, ":")
	if !ok || !IsValidChecksumAlgo(ChecksumAlgo(algo)) {
		return fmt.Errorf("%w %q", ErrUnknownChecksum, algo)
	}

	got, err := Checksum(ChecksumAlgo(algo), words)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, got, want)
	}
	return nil
}
