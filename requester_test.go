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
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// fakeTransport replays a scripted sequence of responses, one per
// call, and records how many times Do was invoked.
type fakeTransport struct {
	responses []*http.Response
	calls     int32
}

func (f *fakeTransport) Do(req *http.Request) (*http.Response, error) {
	i := atomic.AddInt32(&f.calls, 1) - 1
	if int(i) >= len(f.responses) {
		return f.responses[len(f.responses)-1], nil
	}
	return f.responses[i], nil
}

func newFakeResponse(status int, headers map[string]string, body string) *http.Response {
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestRequester_RetriesExactlyOnceAfter429(t *testing.T) {
	transport := &fakeTransport{
		responses: []*http.Response{
			newFakeResponse(429, map[string]string{"Retry-After": "0.01"}, `{"message":"rate limited"}`),
			newFakeResponse(200, nil, `{}`),
		},
	}

	cfg := DefaultRequesterConfig()
	cfg.MaxRetries = 5
	r := newRequester(transport, "tok", nil, cfg)

	resp, err := r.do(context.Background(), http.MethodGet, "/users/@me", nil, requestOptions{})
	if err != nil {
		t.Fatalf("do() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if atomic.LoadInt32(&transport.calls) != 2 {
		t.Errorf("calls = %d, want exactly 2", transport.calls)
	}
}

func TestRequester_InvalidRequestCeiling(t *testing.T) {
	transport := &fakeTransport{
		responses: []*http.Response{
			newFakeResponse(401, nil, `{"message":"unauthorized"}`),
			newFakeResponse(401, nil, `{"message":"unauthorized"}`),
		},
	}

	cfg := DefaultRequesterConfig()
	cfg.MaxRetries = 1
	cfg.InvalidRequestLimit = 2
	cfg.InvalidRequestWindow = time.Minute
	r := newRequester(transport, "tok", nil, cfg)

	// First two calls are under the ceiling of 2 and are returned to the
	// caller as plain 401s (401 isn't retried), each reaching the transport.
	resp, err := r.do(context.Background(), http.MethodGet, "/users/@me", nil, requestOptions{})
	if err != nil {
		t.Fatalf("first do() error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 401 {
		t.Errorf("first call StatusCode = %d, want 401", resp.StatusCode)
	}

	resp, err = r.do(context.Background(), http.MethodGet, "/users/@me", nil, requestOptions{})
	if err != nil {
		t.Fatalf("second do() error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 401 {
		t.Errorf("second call StatusCode = %d, want 401", resp.StatusCode)
	}
	if calls := atomic.LoadInt32(&transport.calls); calls != 2 {
		t.Fatalf("calls after two requests = %d, want 2", calls)
	}

	// Third call must fail immediately with KindInvalidState, never
	// reaching the transport.
	_, err = r.do(context.Background(), http.MethodGet, "/users/@me", nil, requestOptions{})
	if err == nil {
		t.Fatal("expected error once invalid request ceiling is reached")
	}
	var cordeErr *Error
	if !errors.As(err, &cordeErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if cordeErr.Kind != KindInvalidState {
		t.Errorf("Kind = %v, want KindInvalidState", cordeErr.Kind)
	}
	if calls := atomic.LoadInt32(&transport.calls); calls != 2 {
		t.Errorf("calls after ceiling hit = %d, want still 2 (transport must not be touched)", calls)
	}
}

func TestRequester_SetsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	transport := &recordingTransport{
		onRequest: func(req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
		},
		response: newFakeResponse(200, nil, `{}`),
	}

	r := newRequester(transport, "secrettoken", nil, DefaultRequesterConfig())
	resp, err := r.do(context.Background(), http.MethodGet, "/users/@me", nil, requestOptions{})
	if err != nil {
		t.Fatalf("do() error: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bot secrettoken" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bot secrettoken")
	}
}

type recordingTransport struct {
	onRequest func(req *http.Request)
	response  *http.Response
}

func (r *recordingTransport) Do(req *http.Request) (*http.Response, error) {
	if r.onRequest != nil {
		r.onRequest(req)
	}
	return r.response, nil
}
