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
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	apiVersion  = "v10"
	baseAPIURL  = "https://discord.com/api/" + apiVersion
	headerRetryAfter   = "Retry-After"
	headerGlobal       = "X-RateLimit-Global"
	headerRemaining    = "X-RateLimit-Remaining"
	headerResetAfter   = "X-RateLimit-Reset-After"
	headerBucket       = "X-RateLimit-Bucket"
	headerScope        = "X-RateLimit-Scope"
)

var snowflakeInRoute = regexp.MustCompile(`\d{17,20}`)
var reactionSuffix = regexp.MustCompile(`/reactions/[^/?]+(/@me|/[^/?]+)?`)
var webhookToken = regexp.MustCompile(`^(/webhooks/:id)/[^/?]+$`)

// CanonicalURL joins the versioned Discord API base with endpoint,
// returning the fully qualified request URL. A relative endpoint
// ("/users/@me" or "users/@me") is always accepted. An endpoint that
// already looks like an absolute URL is only accepted when it is, or
// is rooted under, baseAPIURL itself — any other host, scheme, or API
// version fails with invalid_param rather than silently producing a
// request against the wrong Discord instance.
func CanonicalURL(endpoint string) (string, error) {
	if strings.Contains(endpoint, "://") {
		if endpoint == baseAPIURL || strings.HasPrefix(endpoint, baseAPIURL+"/") {
			return endpoint, nil
		}
		return "", newError(KindInvalidParam, fmt.Errorf("endpoint %q is not rooted at %s", endpoint, baseAPIURL))
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return baseAPIURL + endpoint, nil
}

// canonicalRoute reduces a concrete endpoint path to its rate-limit
// bucket key, substituting snowflake segments with ":id" while pinning
// channel_id/guild_id/webhook_id (the major parameter) and keeping the
// reaction emoji and webhook token segments collapsed, since Discord
// buckets those at the route level rather than per-value.
func canonicalRoute(method, endpoint string) (route string, majorParam string) {
	if strings.HasPrefix(endpoint, "/interactions/") && strings.HasSuffix(endpoint, "/callback") {
		return method + ":/interactions/:id/:token/callback", "global"
	}

	major := snowflakeInRoute.FindString(endpoint)
	base := snowflakeInRoute.ReplaceAllString(endpoint, ":id")
	base = reactionSuffix.ReplaceAllString(base, "/reactions/:reaction")
	base = webhookToken.ReplaceAllString(base, "$1/:token")

	if method == "DELETE" && strings.HasPrefix(base, "/channels/:id/messages/:id") {
		segs := strings.Split(endpoint, "/")
		if len(segs) > 0 {
			if id, err := ParseSnowflake(segs[len(segs)-1]); err == nil {
				if time.Since(id.Timestamp()) > 14*24*time.Hour {
					base += "/delete-old-message"
				}
			}
		}
	}
	return method + ":" + base, major
}

// ValidateUserAgent reports whether ua conforms to Discord's requested
// "DiscordBot (URL, version)" convention: ua must begin with
// "DiscordBot (", hold a ", "-separated URL and version before the
// closing parenthesis, and may continue only with a single space
// followed by further tokens.
func ValidateUserAgent(ua string) bool {
	rest, ok := strings.CutPrefix(ua, "DiscordBot (")
	if !ok {
		return false
	}
	end := strings.IndexByte(rest, ')')
	if end < 0 || !strings.Contains(rest[:end], ", ") {
		return false
	}
	extra := rest[end+1:]
	return extra == "" || (len(extra) > 1 && extra[0] == ' ')
}

// FormatUserAgent builds a conformant User-Agent header value.
func FormatUserAgent(repoURL, version string) string {
	return fmt.Sprintf("DiscordBot (%s, %s)", repoURL, version)
}

// ValidateContentType reports whether ct is one of the content types
// the REST engine is willing to send: JSON bodies (optionally with a
// charset parameter), multipart bodies carrying a boundary, and
// URL-encoded forms.
func ValidateContentType(ct string) bool {
	const multipartPrefix = "multipart/form-data; boundary="
	switch {
	case ct == "application/json", strings.HasPrefix(ct, "application/json; charset="):
		return true
	case ct == "application/x-www-form-urlencoded":
		return true
	}
	return strings.HasPrefix(ct, multipartPrefix) && len(ct) > len(multipartPrefix)
}

// FormatAuthorization builds the Authorization header value for a bot
// token. Discord rejects requests lacking the "Bot " prefix.
func FormatAuthorization(token string) string {
	if strings.HasPrefix(token, "Bot ") || strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bot " + token
}

// FormatBoolQuery renders a bool as the literal query-string tokens
// Discord expects ("true"/"false"), never Go's %v formatting.
func FormatBoolQuery(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// AppendQueryBool sets key=true/false on q using FormatBoolQuery.
func AppendQueryBool(q url.Values, key string, b bool) {
	q.Set(key, FormatBoolQuery(b))
}

// APIErrorBody is Discord's JSON error envelope, returned on non-2xx
// responses whose content type is application/json.
type APIErrorBody struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Errors  RawJSON `json:"errors,omitempty"`
}

// ParseErrorBody decodes a Discord error envelope. A body that is empty
// or isn't valid JSON yields nil rather than an error, since
// some failure paths (proxies, Cloudflare) return HTML.
func ParseErrorBody(buf []byte) *APIErrorBody {
	if len(buf) == 0 {
		return nil
	}
	var body APIErrorBody
	if err := jsonUnmarshal(buf, &body); err != nil {
		return nil
	}
	return &body
}

// RateLimitHeaders is the parsed form of Discord's X-RateLimit-* set.
type RateLimitHeaders struct {
	Bucket     string
	Limit      int
	Remaining  int
	ResetAfter time.Duration
	Global     bool
	Scope      string
}

// ParseRateLimitHeaders extracts rate-limit bookkeeping from a
// response header set. Missing/malformed numeric headers are left at
// their zero value rather than erroring, since a response with no
// rate-limit headers at all (most error paths) is valid input here.
func ParseRateLimitHeaders(get func(string) string) RateLimitHeaders {
	var h RateLimitHeaders
	h.Bucket = get(headerBucket)
	h.Scope = get(headerScope)
	h.Global = get(headerGlobal) == "true"
	if v := get("X-RateLimit-Limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			h.Limit = n
		}
	}
	if v := get(headerRemaining); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			h.Remaining = n
		}
	}
	if v := get(headerResetAfter); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			h.ResetAfter = time.Duration(f * float64(time.Second))
		}
	}
	return h
}

// ParseRetryAfter extracts the 429 Retry-After wait, preferring the
// header value over any retry_after field the JSON body may carry
// (body precedence differs across Discord's own gateway vs CDN edge,
// so the header is treated as authoritative when both are present).
func ParseRetryAfter(headerValue string, bodyRetryAfter float64) time.Duration {
	if headerValue != "" {
		if f, err := strconv.ParseFloat(headerValue, 64); err == nil {
			return time.Duration(f * float64(time.Second))
		}
	}
	return time.Duration(bodyRetryAfter * float64(time.Second))
}
