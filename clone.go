package frontcode

// Cloner allows types to provide copy logic.
// Implementing this interface is required for use with Processor.
//
// Store works on the clone, so the caller's value is never modified. The
// processor replaces tagged slices rather than writing into them, so a
// shallow copy is enough for types whose only reference fields are tagged:
//
//	func (d Dictionary) Clone() Dictionary { return d }
//
// Types with other pointers, slices or maps should copy them:
//
//	func (b Bundle) Clone() Bundle {
//	    meta := make(map[string]string, len(b.Meta))
//	    for k, v := range b.Meta {
//	        meta[k] = v
//	    }
//	    return Bundle{Words: b.Words, Meta: meta}
//	}
type Cloner[T any] interface {
	Clone() T
}
