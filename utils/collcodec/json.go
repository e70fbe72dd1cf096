// Package collcodec provides collections value codecs for plain Go state types.
package collcodec

import (
	"encoding/json"
	"fmt"
	"reflect"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec that stores T as canonical JSON.
// State types in this repository are plain structs rather than generated proto
// messages, so they are persisted through this codec instead of codec.CollValue.
func JSONValue[T any]() collcodec.ValueCodec[T] {
	return jsonValue[T]{}
}

type jsonValue[T any] struct{}

func (jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValue[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", typeName[T](), err)
	}
	return v, nil
}

func (j jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return j.Encode(value)
}

func (j jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return j.Decode(b)
}

func (j jsonValue[T]) Stringify(value T) string {
	bz, err := j.Encode(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (jsonValue[T]) ValueType() string {
	return "json/" + typeName[T]()
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return "any"
	}
	return t.String()
}
