// Package jsonutil provides shared utilities for JSON parsing patterns:
// envelope unwrapping, enum codecs, and error-wrapping helpers.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// Envelope is the standard response wrapper used by the platform API:
// every payload arrives under a top-level "data" key.
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// UnmarshalEnvelope unwraps a {"data": ...} envelope and unmarshals the
// inner payload into v. A missing or null data key is an error.
func UnmarshalEnvelope(data []byte, v interface{}, context string) error {
	var env Envelope
	if err := UnmarshalWithContext(data, &env, context); err != nil {
		return err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%s: empty data envelope", context)
	}
	return UnmarshalWithContext(env.Data, v, context)
}

// MaybeUnwrapEnvelope returns the inner payload if data parses as a
// {"data": ...} envelope, or data unchanged otherwise. Stream messages may
// arrive bare or wrapped; callers decode the result either way.
func MaybeUnwrapEnvelope(data []byte) []byte {
	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data
	}
	return data
}

// StringEnum is a constraint for enum types that have a String() method.
type StringEnum interface {
	String() string
}

// MarshalEnumJSON marshals an enum value to JSON by converting it to its
// string representation. Generic helper for implementing json.Marshaler.
func MarshalEnumJSON[T StringEnum](v T) ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalEnumJSON unmarshals an enum value from JSON by parsing the string
// representation. parseFunc converts a string to the enum value, or returns
// an error if the string is invalid.
func UnmarshalEnumJSON[T StringEnum](data []byte, parseFunc func(string) (T, error)) (T, error) {
	var zero T
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zero, err
	}
	return parseFunc(s)
}

// ParseEnumError creates a standardized error message for invalid enum
// string values.
func ParseEnumError(enumName, value string) error {
	return fmt.Errorf("unknown %s: %s", enumName, value)
}
