package frontcode

// ChecksumAlgo represents a supported archive checksum algorithm.
type ChecksumAlgo string

const (
	// ChecksumBLAKE2b uses BLAKE2b-256. This is the default.
	ChecksumBLAKE2b ChecksumAlgo = "blake2b"

	// ChecksumSHA256 uses SHA-256.
	ChecksumSHA256 ChecksumAlgo = "sha256"

	// ChecksumSHA512 uses SHA-512.
	ChecksumSHA512 ChecksumAlgo = "sha512"
)

// validChecksumAlgos contains all supported checksum algorithms.
var validChecksumAlgos = map[ChecksumAlgo]bool{
	ChecksumBLAKE2b: true,
	ChecksumSHA256:  true,
	ChecksumSHA512:  true,
}

// IsValidChecksumAlgo returns true if the algorithm is a known checksum algorithm.
func IsValidChecksumAlgo(algo ChecksumAlgo) bool {
	return validChecksumAlgos[algo]
}
