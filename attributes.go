package solidgate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attribute is a single named value of an [Attributes] payload.
type Attribute struct {
	Key   string
	Value any
}

// Attr builds an [Attribute].
func Attr(key string, value any) Attribute {
	return Attribute{Key: key, Value: value}
}

// Attributes is an operation payload whose JSON rendering keeps insertion
// order. Signatures are computed over that rendering, so the order in which
// attributes are added is part of the request.
//
// Values may be any JSON-encodable value, including nested Attributes.
// Go maps nested inside are rendered with sorted keys by encoding/json.
type Attributes []Attribute

// NewAttributes builds a payload from the given pairs. Later duplicates
// replace earlier values in place.
func NewAttributes(attrs ...Attribute) Attributes {
	var out Attributes
	for _, a := range attrs {
		out = out.Set(a.Key, a.Value)
	}
	return out
}

// Set returns a payload with key set to value. An existing key keeps its
// position. The receiver is not modified.
func (a Attributes) Set(key string, value any) Attributes {
	out := make(Attributes, len(a), len(a)+1)
	copy(out, a)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attribute{Key: key, Value: value})
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a) }

// Keys returns the attribute names in insertion order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}

// MarshalJSON renders the attributes as a JSON object in insertion order.
// A nil or empty payload renders as {}.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(attr.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := marshalNoEscape(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", attr.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
