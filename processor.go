package frontcode

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// Struct tags recognised by Processor. The value names a registered scheme.
const (
	TagCompress = "store.compress"
	TagExpand   = "load.expand"
)

func init() {
	sentinel.Tag(TagCompress)
	sentinel.Tag(TagExpand)
}

// Processor front-codes tagged []string fields on the way to storage and
// expands them on the way back.
//
//	type Dictionary struct {
//	    Words []string `json:"words" store.compress:"Crack" load.expand:"Crack"`
//	}
//
// Field plans are built once at construction. Processors are safe for
// concurrent use.
type Processor[T Cloner[T]] struct {
	codec Codec
	opts  []Option

	compressFields []fieldPlan
	expandFields   []fieldPlan

	typeName string
}

// fieldPlan describes how to reach and transform a single field.
type fieldPlan struct {
	index      []int   // reflect.Value.FieldByIndex access path
	name       string  // field name for error messages
	scheme     *Scheme // scheme named by the tag
	ptrIndices []int   // positions in index where a pointer is dereferenced
}

// NewProcessor creates a Processor for type T.
//
// Every scheme named in a tag must already be registered, and tags may only
// be attached to []string fields (or named types with that underlying type).
// WithStrictHeader applies to Load.
func NewProcessor[T Cloner[T]](codec Codec, opts ...Option) (*Processor[T], error) {
	spec := sentinel.Scan[T]()

	p := &Processor[T]{
		codec:    codec,
		opts:     opts,
		typeName: spec.TypeName,
	}
	if err := p.buildPlans(spec, nil, nil, ""); err != nil {
		return nil, err
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), p.typeName)
	return p, nil
}

// buildPlans walks fields recursively, descending into nested structs and
// pointers to structs.
func (p *Processor[T]) buildPlans(spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := p.buildPlans(*nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := p.buildPlans(*nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		compress, hasCompress := field.Tags[TagCompress]
		expand, hasExpand := field.Tags[TagExpand]
		if !hasCompress && !hasExpand {
			continue
		}

		rt := field.ReflectType
		if rt.Kind() != reflect.Slice || rt.Elem().Kind() != reflect.String {
			return newConfigError(ErrInvalidTag, "", fullName)
		}

		base := fieldPlan{
			index:      fullIndex,
			name:       fullName,
			ptrIndices: ptrIndices,
		}

		if hasCompress {
			plan, err := planFor(base, compress)
			if err != nil {
				return err
			}
			p.compressFields = append(p.compressFields, plan)
		}
		if hasExpand {
			plan, err := planFor(base, expand)
			if err != nil {
				return err
			}
			p.expandFields = append(p.expandFields, plan)
		}
	}
	return nil
}

func planFor(base fieldPlan, scheme string) (fieldPlan, error) {
	s, err := Lookup(scheme)
	if err != nil {
		return fieldPlan{}, newConfigError(ErrUnknownScheme, scheme, base.name)
	}
	base.scheme = s
	return base, nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseFrontcodeTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseFrontcodeTags extracts the processor tags from a struct tag.
func parseFrontcodeTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, key := range []string{TagCompress, TagExpand} {
		if val, ok := tag.Lookup(key); ok {
			tags[key] = val
		}
	}
	return tags
}

// Store front-codes tagged fields and marshals the result.
// obj is cloned first and never modified.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.compressFields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	if c, ok := any(&clone).(Compressible); ok {
		if err := c.Compress(); err != nil {
			retErr = fmt.Errorf("compress: %w", err)
			return nil, retErr
		}
	} else {
		p.applyCompress(&clone)
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Load unmarshals data and expands tagged fields.
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitLoadStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitLoadComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.expandFields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if e, ok := any(&obj).(Expandable); ok {
		if err := e.Expand(); err != nil {
			retErr = fmt.Errorf("expand: %w", err)
			return nil, retErr
		}
		return &obj, nil
	}

	if err := p.applyExpand(&obj); err != nil {
		retErr = err
		return nil, retErr
	}
	return &obj, nil
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// applyCompress encodes tagged fields in place. Nil slices are left nil.
func (p *Processor[T]) applyCompress(obj *T) {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.compressFields {
		field, ok := getField(rv, plan)
		if !ok || !field.CanSet() || field.IsNil() {
			continue
		}
		setStrings(field, plan.scheme.Encode(getStrings(field)))
	}
}

// applyExpand decodes tagged fields in place.
func (p *Processor[T]) applyExpand(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.expandFields {
		field, ok := getField(rv, plan)
		if !ok || !field.CanSet() || field.IsNil() {
			continue
		}

		words, err := plan.scheme.Decode(getStrings(field), p.opts...)
		if err != nil {
			return fmt.Errorf("expand field %s: %w", plan.name, err)
		}
		setStrings(field, words)
	}

	return nil
}

func getStrings(field reflect.Value) []string {
	out := make([]string, field.Len())
	for i := range out {
		out[i] = field.Index(i).String()
	}
	return out
}

// setStrings assigns vals to a field whose underlying type is []string.
func setStrings(field reflect.Value, vals []string) {
	field.Set(reflect.ValueOf(vals).Convert(field.Type()))
}

// getField navigates a field path, dereferencing pointers as needed.
func getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
