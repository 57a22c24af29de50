package frontcode

// Option configures decoding and Coder behaviour.
type Option func(*options)

type options struct {
	strictHeader bool
	checksum     ChecksumAlgo
}

// WithStrictHeader makes decoding fail with ErrHeaderMismatch when the first
// line is missing or differs from the scheme header. Schemes without a
// header are unaffected.
func WithStrictHeader() Option {
	return func(o *options) {
		o.strictHeader = true
	}
}

// WithChecksum selects the checksum algorithm written into archives by Pack.
func WithChecksum(algo ChecksumAlgo) Option {
	return func(o *options) {
		o.checksum = algo
	}
}

func buildOptions(opts []Option) options {
	o := options{checksum: ChecksumBLAKE2b}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
