/************************************************************************************
 *
 * corde, A Lightweight Go library for Discord API
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2025 Marlow Dev
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package corde

import "bytes"

// Optional wraps a value with a presence flag, used for JSON fields
// that may be omitted entirely.
type Optional[T any] struct {
	Value T
	IsSet bool
}

// Some wraps v as present.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, IsSet: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPair builds an Optional from a (value, ok) pair, the shape
// returned by a map lookup.
func FromPair[T any](v T, ok bool) Optional[T] {
	return Optional[T]{Value: v, IsSet: ok}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.IsSet
}

// OrElse returns the value if set, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.IsSet {
		return o.Value
	}
	return fallback
}

// MarshalJSON emits the wrapped value, or "null" if unset so an
// explicit null round-trips as absence of the field is not implied —
// callers that need the three-way absent/null/present distinction use
// NullableString instead.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.IsSet {
		return []byte("null"), nil
	}
	return jsonMarshal(o.Value)
}

func (o *Optional[T]) UnmarshalJSON(buf []byte) error {
	if bytes.Equal(buf, []byte("null")) {
		o.IsSet = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := jsonUnmarshal(buf, &o.Value); err != nil {
		return err
	}
	o.IsSet = true
	return nil
}

// NullableString distinguishes three JSON states for a string field:
// the key absent from the document, the key present with value null,
// and the key present with a value. encoding/json cannot tell the
// first two apart with a plain *string because Unmarshal only runs
// for keys that are present, so Present/Null are both driven by the
// UnmarshalJSON call happening at all.
type NullableString struct {
	Value   string
	Null    bool // key was present and JSON null
	Present bool // key was present at all (Null or a real value)
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Null || !n.Present {
		return []byte("null"), nil
	}
	return jsonMarshal(n.Value)
}

func (n *NullableString) UnmarshalJSON(buf []byte) error {
	n.Present = true
	if bytes.Equal(buf, []byte("null")) {
		n.Null = true
		n.Value = ""
		return nil
	}
	n.Null = false
	return jsonUnmarshal(buf, &n.Value)
}
