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

import (
	"errors"
	"testing"
)

func TestStatusFromHTTP(t *testing.T) {
	cases := map[int]Kind{
		200: KindUnknown,
		304: KindNotModified,
		400: KindBadRequest,
		401: KindUnauthorized,
		403: KindForbidden,
		404: KindNotFound,
		405: KindMethodNotAllowed,
		409: KindConflict,
		429: KindRateLimited,
		502: KindUnavailable,
		503: KindUnavailable,
		500: KindServerError,
		599: KindServerError,
		418: KindHTTP,
	}
	for status, want := range cases {
		if got := StatusFromHTTP(status); got != want {
			t.Errorf("StatusFromHTTP(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestKind_Recoverable(t *testing.T) {
	recoverable := []Kind{KindNetwork, KindTimeout, KindRateLimited, KindUnavailable, KindServerError, KindTryAgain}
	for _, k := range recoverable {
		if !k.Recoverable() {
			t.Errorf("%v.Recoverable() = false, want true", k)
		}
	}

	notRecoverable := []Kind{KindBadRequest, KindUnauthorized, KindForbidden, KindNotFound}
	for _, k := range notRecoverable {
		if k.Recoverable() {
			t.Errorf("%v.Recoverable() = true, want false", k)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newError(KindNetwork, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestError_MessageFormatting(t *testing.T) {
	withBody := newHTTPError(404, &APIErrorBody{Code: 10003, Message: "Unknown Channel"})
	if got := withBody.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}

	withoutBody := newHTTPError(500, nil)
	if withoutBody.Kind != KindServerError {
		t.Errorf("Kind = %v, want KindServerError", withoutBody.Kind)
	}
}
