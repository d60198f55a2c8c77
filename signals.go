package hypermedia

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for representer events.
var (
	SignalRepresenterCreated  = capitan.NewSignal("hypermedia.representer.created", "Representer instantiated")
	SignalSerializeStart      = capitan.NewSignal("hypermedia.serialize.start", "Serialize operation beginning")
	SignalSerializeComplete   = capitan.NewSignal("hypermedia.serialize.complete", "Serialize operation finished")
	SignalDeserializeStart    = capitan.NewSignal("hypermedia.deserialize.start", "Deserialize operation beginning")
	SignalDeserializeComplete = capitan.NewSignal("hypermedia.deserialize.complete", "Deserialize operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyLinkCount   = capitan.NewIntKey("link_count")
)

// emitRepresenterCreated emits an event when a representer is created.
func emitRepresenterCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalRepresenterCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSerializeStart emits an event when serialize begins.
func emitSerializeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSerializeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSerializeComplete emits an event when serialize finishes.
func emitSerializeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, links int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyLinkCount.Field(links),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSerializeComplete, fields...)
	}
}

// emitDeserializeStart emits an event when deserialize begins.
func emitDeserializeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalDeserializeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDeserializeComplete emits an event when deserialize finishes.
func emitDeserializeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDeserializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDeserializeComplete, fields...)
	}
}
