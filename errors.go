package frontcode

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownScheme indicates the requested scheme name is not registered.
	ErrUnknownScheme = errors.New("unknown scheme")

	// ErrInvalidScheme indicates a scheme failed its alphabet or header checks.
	ErrInvalidScheme = errors.New("invalid scheme")

	// ErrSchemeExists indicates a scheme with the same name is already registered.
	ErrSchemeExists = errors.New("scheme already registered")

	// ErrSchemeMismatch indicates an archive was written with a different scheme.
	ErrSchemeMismatch = errors.New("scheme mismatch")

	// ErrEmptyLine indicates an encoded line has no symbol to read.
	ErrEmptyLine = errors.New("empty line")

	// ErrUnknownSymbol indicates the first code point of a line is not in the alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrPrefixTooShort indicates a line claims more shared characters than
	// the previous word has.
	ErrPrefixTooShort = errors.New("prefix too short")

	// ErrHeaderMismatch indicates the first line differs from the scheme header.
	// Only returned when strict header checking is enabled.
	ErrHeaderMismatch = errors.New("header mismatch")

	// ErrChecksumMismatch indicates decoded words do not match the archive checksum or count.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownChecksum indicates an archive names an unsupported checksum algorithm.
	ErrUnknownChecksum = errors.New("unknown checksum algorithm")

	// ErrInvalidTag indicates a struct tag is attached to an unsupported field.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// SchemeError represents a registry or scheme construction error.
type SchemeError struct {
	Err    error  // Underlying sentinel error (ErrUnknownScheme, ErrInvalidScheme, ...)
	Scheme string // Scheme name involved
	Reason string // Optional detail
}

func (e *SchemeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q: %s", e.Err.Error(), e.Scheme, e.Reason)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Scheme)
}

func (e *SchemeError) Unwrap() error {
	return e.Err
}

// LineError represents a decode failure on a specific input line.
type LineError struct {
	Err    error  // Underlying sentinel error (ErrEmptyLine, ErrUnknownSymbol, ...)
	Scheme string // Scheme used for decoding
	Line   int    // 1-based line number, header included
	Text   string // Offending line
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s: line %d %q (scheme %s)", e.Err.Error(), e.Line, e.Text, e.Scheme)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with additional context about the field and scheme.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrUnknownScheme, ErrInvalidTag)
	Field  string // Field name that triggered the error
	Scheme string // Scheme named by the tag
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Scheme != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Scheme, e.Field)
	}
	if e.Scheme != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Scheme)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newSchemeError(sentinel error, scheme, reason string) error {
	return &SchemeError{
		Err:    sentinel,
		Scheme: scheme,
		Reason: reason,
	}
}

func newLineError(sentinel error, scheme string, line int, text string) error {
	return &LineError{
		Err:    sentinel,
		Scheme: scheme,
		Line:   line,
		Text:   text,
	}
}

// newConfigError creates a ConfigError for processor tag problems.
func newConfigError(sentinel error, scheme, field string) error {
	return &ConfigError{
		Err:    sentinel,
		Scheme: scheme,
		Field:  field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
