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

import "fmt"

// Kind is a closed taxonomy of error conditions produced by the REST
// engine, the Gateway engine, and the JSON model. It never grows at
// runtime; new conditions must be added here.
type Kind int

const (
	KindInvalidParam Kind = iota
	KindNullPointer
	KindOutOfMemory
	KindBufferTooSmall
	KindInvalidFormat
	KindParseError
	KindNetwork
	KindHTTP
	KindWebsocket
	KindJSON
	KindRateLimited
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindTimeout
	KindNotImplemented
	KindUnknown
	KindBadRequest
	KindNotModified
	KindMethodNotAllowed
	KindConflict
	KindUnavailable
	KindServerError
	KindInvalidState
	KindTryAgain
)

var kindNames = [...]string{
	"invalid_param", "null_pointer", "out_of_memory", "buffer_too_small",
	"invalid_format", "parse_error", "network", "http", "websocket",
	"json", "rate_limited", "unauthorized", "forbidden", "not_found",
	"timeout", "not_implemented", "unknown", "bad_request", "not_modified",
	"method_not_allowed", "conflict", "unavailable", "server_error",
	"invalid_state", "try_again",
}

// String returns the wire-stable lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Recoverable reports whether the REST/Gateway engines should retry an
// operation that failed with this kind.
func (k Kind) Recoverable() bool {
	switch k {
	case KindNetwork, KindTimeout, KindRateLimited, KindUnavailable, KindServerError, KindTryAgain:
		return true
	default:
		return false
	}
}

// StatusFromHTTP maps an HTTP status code to a Kind. It is a total
// function: every int has a mapping.
func StatusFromHTTP(code int) Kind {
	switch code {
	case 200, 201, 202, 204:
		return KindUnknown // caller treats 2xx as success; kept only for completeness of the mapping table
	case 304:
		return KindNotModified
	case 400:
		return KindBadRequest
	case 401:
		return KindUnauthorized
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	case 405:
		return KindMethodNotAllowed
	case 409:
		return KindConflict
	case 429:
		return KindRateLimited
	case 502, 503:
		return KindUnavailable
	}
	if code >= 500 {
		return KindServerError
	}
	return KindHTTP
}

// Error is the concrete error type returned throughout corde. It
// carries both the engine-assigned Kind and, when the server sent a
// structured error body, the richer Discord-provided code/message.
type Error struct {
	Kind       Kind
	HTTPStatus int
	Code       int    // Discord's own numeric error code, 0 if absent
	Message    string // Discord's own message, empty if absent
	Cause      error
}

func (e *Error) Error() string {
	if e.Message != "" {
		if e.Code != 0 {
			return fmt.Sprintf("%s (http %d, discord code %d): %s", e.Kind, e.HTTPStatus, e.Code, e.Message)
		}
		return fmt.Sprintf("%s (http %d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Recoverable reports whether the error's Kind is retryable.
func (e *Error) Recoverable() bool {
	return e.Kind.Recoverable()
}

// newError builds an *Error carrying only a Kind and an underlying cause.
func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// newHTTPError builds an *Error from a response status and a parsed body.
func newHTTPError(status int, body *APIErrorBody) *Error {
	e := &Error{Kind: StatusFromHTTP(status), HTTPStatus: status}
	if body != nil {
		e.Code = body.Code
		e.Message = body.Message
	}
	return e
}
