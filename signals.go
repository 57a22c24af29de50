package frontcode

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for frontcode events.
var (
	SignalSchemeRegistered = capitan.NewSignal("frontcode.scheme.registered", "Custom scheme added to the registry")
	SignalEncodeStart      = capitan.NewSignal("frontcode.encode.start", "Encode pass beginning")
	SignalEncodeComplete   = capitan.NewSignal("frontcode.encode.complete", "Encode pass finished")
	SignalDecodeStart      = capitan.NewSignal("frontcode.decode.start", "Decode pass beginning")
	SignalDecodeComplete   = capitan.NewSignal("frontcode.decode.complete", "Decode pass finished")
	SignalPackComplete     = capitan.NewSignal("frontcode.pack.complete", "Archive marshaled")
	SignalUnpackComplete   = capitan.NewSignal("frontcode.unpack.complete", "Archive unmarshaled and verified")
	SignalProcessorCreated = capitan.NewSignal("frontcode.processor.created", "Processor instantiated")
	SignalStoreStart       = capitan.NewSignal("frontcode.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("frontcode.store.complete", "Store operation finished")
	SignalLoadStart        = capitan.NewSignal("frontcode.load.start", "Load operation beginning")
	SignalLoadComplete     = capitan.NewSignal("frontcode.load.complete", "Load operation finished")
)

// Keys for typed event data.
var (
	KeyScheme       = capitan.NewStringKey("scheme")
	KeyContentType  = capitan.NewStringKey("content_type")
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeyAlphabetSize = capitan.NewIntKey("alphabet_size")
	KeyWords        = capitan.NewIntKey("words")
	KeyInputBytes   = capitan.NewIntKey("input_bytes")
	KeyOutputBytes  = capitan.NewIntKey("output_bytes")
	KeySize         = capitan.NewIntKey("size")
	KeyFieldCount   = capitan.NewIntKey("field_count")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
)

func emitSchemeRegistered(ctx context.Context, scheme string, alphabetSize int) {
	capitan.Emit(ctx, SignalSchemeRegistered,
		KeyScheme.Field(scheme),
		KeyAlphabetSize.Field(alphabetSize),
	)
}

func emitEncodeStart(ctx context.Context, scheme string) {
	capitan.Emit(ctx, SignalEncodeStart, KeyScheme.Field(scheme))
}

// emitEncodeComplete reports word count and the plain vs encoded byte sizes.
func emitEncodeComplete(ctx context.Context, scheme string, words, inBytes, outBytes int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyScheme.Field(scheme),
		KeyWords.Field(words),
		KeyInputBytes.Field(inBytes),
		KeyOutputBytes.Field(outBytes),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

func emitDecodeStart(ctx context.Context, scheme string) {
	capitan.Emit(ctx, SignalDecodeStart, KeyScheme.Field(scheme))
}

func emitDecodeComplete(ctx context.Context, scheme string, words int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyScheme.Field(scheme),
		KeyWords.Field(words),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

func emitPackComplete(ctx context.Context, scheme, contentType string, words, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyScheme.Field(scheme),
		KeyContentType.Field(contentType),
		KeyWords.Field(words),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalPackComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalPackComplete, fields...)
	}
}

func emitUnpackComplete(ctx context.Context, scheme, contentType string, words, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyScheme.Field(scheme),
		KeyContentType.Field(contentType),
		KeyWords.Field(words),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnpackComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnpackComplete, fields...)
	}
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreStart emits an event when store begins.
func emitStoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, fieldCount int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fieldCount),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

// emitLoadStart emits an event when load begins.
func emitLoadStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fieldCount int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fieldCount),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}
