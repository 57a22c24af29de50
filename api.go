// Package frontcode implements front-coding (incremental prefix compression)
// for sorted word lists.
//
// Each word is written as one line: a single symbol recording how many
// leading characters it shares with the previous word, followed by the rest
// of the word.
//
//	foo     0foo
//	foot    3t
//	footle  4le
//	fubar   1ubar
//
// # Schemes
//
// A Scheme maps shared-prefix lengths to symbols. Three presets are
// registered:
//
//   - Crack: header "#!xdawg", symbols '0'..'z'
//   - DAWG:  header "#!xdawg", symbols 0-9 A-Z a-z
//   - Mike:  no header, symbols '@'..'z'
//
// A prefix longer than the alphabet can express is capped; the extra
// characters move into the suffix, so round-trips stay exact.
//
// # Basic Usage
//
//	lines, _ := frontcode.Encode(words, frontcode.SchemeCrack)
//	words, err := frontcode.Decode(lines, frontcode.SchemeCrack)
//
// Coder adds capitan signals, streaming and archives:
//
//	c, _ := frontcode.New(frontcode.SchemeDAWG, frontcode.WithStrictHeader())
//	n, err := c.EncodeStream(ctx, in, out)
//	data, err := c.Pack(ctx, json.New(), words)
//
// # Struct Tags
//
// Processor front-codes []string fields declared with tags:
//
//	type Dictionary struct {
//	    Name  string   `json:"name"`
//	    Words []string `json:"words" store.compress:"DAWG" load.expand:"DAWG"`
//	}
//
// # Codec Providers
//
// Archives and processors marshal through a Codec. Implementations live in
// subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package frontcode

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
