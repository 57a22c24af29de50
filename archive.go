package frontcode

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Archive is a self-describing envelope for a front-coded word list.
// Lines holds the encoded output exactly as Encode returns it, header included.
type Archive struct {
	Scheme   string   `json:"scheme" xml:"scheme,attr" yaml:"scheme" msgpack:"scheme" bson:"scheme"`
	Count    int      `json:"count" xml:"count,attr" yaml:"count" msgpack:"count" bson:"count"`
	Checksum string   `json:"checksum,omitempty" xml:"checksum,attr,omitempty" yaml:"checksum,omitempty" msgpack:"checksum,omitempty" bson:"checksum,omitempty"`
	Lines    []string `json:"lines" xml:"line" yaml:"lines" msgpack:"lines" bson:"lines"`
}

// Pack encodes words and marshals the resulting Archive with codec.
//
// The marshaled archive is read back, and Pack fails with ErrMarshal if the
// codec altered any line. JSON rewrites invalid UTF-8 and XML rewrites
// control characters.
func (c *Coder) Pack(ctx context.Context, codec Codec, words []string) ([]byte, error) {
	start := time.Now()

	var data []byte
	var retErr error
	defer func() {
		emitPackComplete(ctx, c.scheme.name, codec.ContentType(),
			len(words), len(data), time.Since(start), retErr)
	}()

	sum, err := Checksum(c.opts.checksum, words)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	archive := Archive{
		Scheme:   c.scheme.name,
		Count:    len(words),
		Checksum: sum,
		Lines:    c.scheme.Encode(words),
	}

	data, err = codec.Marshal(&archive)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	var check Archive
	if err := codec.Unmarshal(data, &check); err != nil {
		retErr = newCodecError(ErrMarshal, err)
		data = nil
		return nil, retErr
	}
	if !slices.Equal(check.Lines, archive.Lines) {
		retErr = newCodecError(ErrMarshal, errLinesAltered)
		data = nil
		return nil, retErr
	}
	return data, nil
}

var errLinesAltered = errors.New("codec does not preserve the encoded lines")

// Unpack unmarshals an Archive written with this Coder's scheme and returns
// the verified words.
func (c *Coder) Unpack(ctx context.Context, codec Codec, data []byte) ([]string, error) {
	return unpack(ctx, codec, data, c.scheme, c.decodeOptions())
}

// Unpack unmarshals an Archive and decodes it with the scheme it names.
func Unpack(ctx context.Context, codec Codec, data []byte, opts ...Option) ([]string, error) {
	return unpack(ctx, codec, data, nil, opts)
}

// unpack decodes an archive; a nil scheme is resolved from the archive itself.
func unpack(ctx context.Context, codec Codec, data []byte, scheme *Scheme, opts []Option) ([]string, error) {
	start := time.Now()

	var words []string
	var name string
	var retErr error
	defer func() {
		emitUnpackComplete(ctx, name, codec.ContentType(),
			len(words), len(data), time.Since(start), retErr)
	}()

	var archive Archive
	if err := codec.Unmarshal(data, &archive); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}
	name = archive.Scheme

	if scheme == nil {
		s, err := Lookup(archive.Scheme)
		if err != nil {
			retErr = err
			return nil, retErr
		}
		scheme = s
	} else if archive.Scheme != scheme.name {
		retErr = newSchemeError(ErrSchemeMismatch, archive.Scheme,
			fmt.Sprintf("expected %q", scheme.name))
		return nil, retErr
	}

	decoded, err := scheme.Decode(archive.Lines, opts...)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	if len(decoded) != archive.Count {
		retErr = fmt.Errorf("%w: decoded %d words, archive declares %d",
			ErrChecksumMismatch, len(decoded), archive.Count)
		return nil, retErr
	}
	if err := VerifyChecksum(archive.Checksum, decoded); err != nil {
		retErr = err
		return nil, retErr
	}

	words = decoded
	return words, nil
}
