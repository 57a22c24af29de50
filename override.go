package frontcode

// Override interfaces let a type replace reflection-based field processing.
// When a type implements one, the Processor calls it instead of walking the
// tagged fields.

// Compressible bypasses reflection for store.compress actions.
type Compressible interface {
	// Compress front-codes the receiver's word-list fields.
	// The receiver is a clone, so mutations are safe.
	Compress() error
}

// Expandable bypasses reflection for load.expand actions.
type Expandable interface {
	// Expand decodes the receiver's word-list fields.
	// Called on freshly unmarshaled data.
	Expand() error
}
