// Package codec bridges wire representations and validated domain values.
// A Codec decodes an encoded form into its domain type, optionally running
// a schema over the decoded value, and encodes it back.
package codec

import (
	"context"
	"time"

	jod "github.com/M1tsumi/Jod"
	"github.com/M1tsumi/Jod/i18n"
)

// Codec converts between an encoded form A and a domain value B. Decode
// reports failures through the same error algebra validation uses, so codec
// and schema violations aggregate uniformly.
type Codec[A, B any] interface {
	Decode(ctx context.Context, in A) (B, error)
	Encode(ctx context.Context, out B) (A, error)
}

// timeCodec parses and formats time.Time with a fixed layout, running an
// optional schema over the parsed value.
type timeCodec struct {
	layout string
	schema jod.Schema[time.Time]
}

func (c timeCodec) Decode(ctx context.Context, in string) (time.Time, error) {
	t, err := time.Parse(c.layout, in)
	if err != nil {
		return time.Time{}, jod.Errors{jod.NewError(jod.CodeInvalidFormat, i18n.T(jod.CodeInvalidFormat, nil), in)}
	}
	if c.schema == nil {
		return t, nil
	}
	r := c.schema.Validate(ctx, t)
	if !r.IsValid() {
		return time.Time{}, r.Errors()
	}
	v, _ := r.Value()
	return v, nil
}

func (c timeCodec) Encode(ctx context.Context, out time.Time) (string, error) {
	return out.Format(c.layout), nil
}

// DateTimeRFC3339 converts between RFC 3339 strings and instants. A nil
// schema skips post-parse validation.
func DateTimeRFC3339(schema jod.Schema[time.Time]) Codec[string, time.Time] {
	return timeCodec{layout: time.RFC3339, schema: schema}
}

// DateISO converts between "2006-01-02" strings and dates.
func DateISO(schema jod.Schema[time.Time]) Codec[string, time.Time] {
	return timeCodec{layout: "2006-01-02", schema: schema}
}

// ClockHMS converts between "15:04:05" strings and wall-clock times.
func ClockHMS(schema jod.Schema[time.Time]) Codec[string, time.Time] {
	return timeCodec{layout: "15:04:05", schema: schema}
}
