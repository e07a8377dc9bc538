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

import "github.com/bytedance/sonic"

// jsonMarshal/jsonUnmarshal centralize the codec choice (sonic, the
// teacher's pick for the hot gateway-decode and REST-decode paths) so
// every model file goes through one place.
func jsonMarshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

func jsonUnmarshal(buf []byte, v any) error {
	return sonic.Unmarshal(buf, v)
}

// RawJSON holds a JSON value verbatim. Fields typed RawJSON are never
// interpreted by the library: they hold the opaque parts of the model
// (message interaction metadata, message nonces, component trees,
// command option values, and API error details) whose shape Discord
// may change without notice. A parse-then-serialize round trip preserves them exactly.
type RawJSON []byte

// MarshalJSON returns the stored bytes unmodified. An empty/nil
// RawJSON marshals as JSON null so an absent optional field doesn't
// corrupt the document.
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return []byte(r), nil
}

// UnmarshalJSON stores buf verbatim, including a literal "null".
func (r *RawJSON) UnmarshalJSON(buf []byte) error {
	*r = append((*r)[0:0], buf...)
	return nil
}

// IsNull reports whether the stored value is the JSON null literal or
// the field was never set.
func (r RawJSON) IsNull() bool {
	return len(r) == 0 || string(r) == "null"
}
