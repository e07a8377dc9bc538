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
	"net/url"
	"testing"
	"time"
)

func TestCanonicalURL(t *testing.T) {
	cases := map[string]string{
		"/users/@me": "https://discord.com/api/v10/users/@me",
		"users/@me":  "https://discord.com/api/v10/users/@me",
	}
	for in, want := range cases {
		got, err := CanonicalURL(in)
		if err != nil {
			t.Errorf("CanonicalURL(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("CanonicalURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalURL_RejectsWrongBase(t *testing.T) {
	rejected := []string{
		"https://example.com/api/v10",
		"https://discordapp.com/api/v10",
		"https://discord.com/api",
		"https://discord.com/api/v9",
	}
	for _, in := range rejected {
		if _, err := CanonicalURL(in); err == nil {
			t.Errorf("CanonicalURL(%q) error = nil, want invalid_param", in)
			continue
		} else if cordeErr, ok := err.(*Error); !ok || cordeErr.Kind != KindInvalidParam {
			t.Errorf("CanonicalURL(%q) err = %v, want KindInvalidParam", in, err)
		}
	}
}

func TestCanonicalRoute_CollapsesSnowflakesAndKeepsMajorParam(t *testing.T) {
	route, major := canonicalRoute("GET", "/channels/123456789012345678/messages/987654321098765432")
	wantRoute := "GET:/channels/:id/messages/:id"
	if route != wantRoute {
		t.Errorf("route = %q, want %q", route, wantRoute)
	}
	if major != "123456789012345678" {
		t.Errorf("major = %q, want the channel id", major)
	}
}

func TestCanonicalRoute_ReactionsCollapsed(t *testing.T) {
	route, _ := canonicalRoute("PUT", "/channels/123456789012345678/messages/987654321098765432/reactions/%F0%9F%91%8D/@me")
	wantRoute := "PUT:/channels/:id/messages/:id/reactions/:reaction"
	if route != wantRoute {
		t.Errorf("route = %q, want %q", route, wantRoute)
	}
}

func TestCanonicalRoute_InteractionCallbackIsGlobal(t *testing.T) {
	route, major := canonicalRoute("POST", "/interactions/123456789012345678/sometoken/callback")
	if route != "POST:/interactions/:id/:token/callback" {
		t.Errorf("route = %q, want the collapsed interaction callback route", route)
	}
	if major != "global" {
		t.Errorf("major = %q, want %q", major, "global")
	}
}

func TestValidateUserAgent(t *testing.T) {
	if !ValidateUserAgent("DiscordBot (https://example.com, 1.0)") {
		t.Error("expected well-formed user agent to validate")
	}
	if ValidateUserAgent("") {
		t.Error("expected empty user agent to fail validation")
	}
	if ValidateUserAgent("DiscordBot 1.0") {
		t.Error("expected user agent without parens to fail validation")
	}
}

func TestFormatUserAgent(t *testing.T) {
	got := FormatUserAgent("https://github.com/marlowdev/corde", "1.0")
	want := "DiscordBot (https://github.com/marlowdev/corde, 1.0)"
	if got != want {
		t.Errorf("FormatUserAgent() = %q, want %q", got, want)
	}
	if !ValidateUserAgent(got) {
		t.Error("FormatUserAgent() output does not pass ValidateUserAgent")
	}
}

func TestValidateContentType(t *testing.T) {
	if !ValidateContentType("application/json") {
		t.Error("application/json should be valid")
	}
	if !ValidateContentType("multipart/form-data; boundary=xyz") {
		t.Error("multipart/form-data should be valid")
	}
	if ValidateContentType("text/plain") {
		t.Error("text/plain should not be valid")
	}
}

func TestFormatAuthorization(t *testing.T) {
	if got := FormatAuthorization("abc"); got != "Bot abc" {
		t.Errorf("FormatAuthorization(%q) = %q, want %q", "abc", got, "Bot abc")
	}
	if got := FormatAuthorization("Bot abc"); got != "Bot abc" {
		t.Errorf("FormatAuthorization(%q) = %q, want unchanged", "Bot abc", got)
	}
	if got := FormatAuthorization("Bearer abc"); got != "Bearer abc" {
		t.Errorf("FormatAuthorization(%q) = %q, want unchanged", "Bearer abc", got)
	}
}

func TestAppendQueryBool(t *testing.T) {
	q := url.Values{}
	AppendQueryBool(q, "wait", true)
	AppendQueryBool(q, "pinned", false)

	if q.Get("wait") != "true" {
		t.Errorf(`q.Get("wait") = %q, want "true"`, q.Get("wait"))
	}
	if q.Get("pinned") != "false" {
		t.Errorf(`q.Get("pinned") = %q, want "false"`, q.Get("pinned"))
	}
}

func TestParseErrorBody(t *testing.T) {
	body := ParseErrorBody([]byte(`{"code":10003,"message":"Unknown Channel"}`))
	if body == nil {
		t.Fatal("ParseErrorBody() = nil, want parsed body")
	}
	if body.Code != 10003 || body.Message != "Unknown Channel" {
		t.Errorf("body = %+v, want code 10003 and matching message", body)
	}

	if ParseErrorBody([]byte("")) != nil {
		t.Error("ParseErrorBody(empty) should return nil")
	}
	if ParseErrorBody([]byte("<html>not json</html>")) != nil {
		t.Error("ParseErrorBody(invalid json) should return nil")
	}
}

func TestParseRateLimitHeaders(t *testing.T) {
	headers := map[string]string{
		"X-RateLimit-Bucket":      "abcd1234",
		"X-RateLimit-Limit":       "5",
		"X-RateLimit-Remaining":   "2",
		"X-RateLimit-Reset-After": "1.5",
		"X-RateLimit-Global":      "true",
		"X-RateLimit-Scope":       "shared",
	}
	got := ParseRateLimitHeaders(func(k string) string { return headers[k] })

	if got.Bucket != "abcd1234" || got.Limit != 5 || got.Remaining != 2 {
		t.Errorf("got = %+v, want bucket/limit/remaining to match headers", got)
	}
	if got.ResetAfter != 1500*time.Millisecond {
		t.Errorf("ResetAfter = %v, want 1.5s", got.ResetAfter)
	}
	if !got.Global {
		t.Error("Global = false, want true")
	}
	if got.Scope != "shared" {
		t.Errorf("Scope = %q, want %q", got.Scope, "shared")
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := ParseRetryAfter("2.5", 0); got != 2500*time.Millisecond {
		t.Errorf("ParseRetryAfter(header) = %v, want 2.5s", got)
	}
	if got := ParseRetryAfter("", 3); got != 3*time.Second {
		t.Errorf("ParseRetryAfter(body fallback) = %v, want 3s", got)
	}
}
