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
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Transport is the HTTP round-tripper the requester drives. It is
// satisfied by *http.Client but abstracted so tests can inject a fake
// that returns scripted responses without a real socket.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

var retryableStatus = map[int]struct{}{
	500: {}, 502: {}, 503: {}, 504: {},
}

const (
	defaultMaxRetries          = 5
	defaultInvalidRequestLimit = 10000
	defaultInvalidRequestWindow = 10 * time.Minute
)

// RequesterConfig holds the tunables a Client can override through its
// functional options.
type RequesterConfig struct {
	MaxRetries           int
	InvalidRequestLimit  int
	InvalidRequestWindow time.Duration
	UserAgent            string
}

func DefaultRequesterConfig() RequesterConfig {
	return RequesterConfig{
		MaxRetries:           defaultMaxRetries,
		InvalidRequestLimit:  defaultInvalidRequestLimit,
		InvalidRequestWindow: defaultInvalidRequestWindow,
		UserAgent:            FormatUserAgent("https://github.com/marlowdev/corde", "1.0"),
	}
}

// requester issues rate-limit-compliant HTTP requests against the
// Discord REST API: one routeBucket per canonical route and major
// parameter, one global
// bucket, and an invalid-request ceiling shared process-wide.
type requester struct {
	transport Transport
	token     string
	cfg       RequesterConfig
	logger    Logger

	buckets sync.Map // map[string]*routeBucket, keyed by route+major param
	queues  sync.Map // map[string]*sync.Mutex, keyed by route+major param
	global  globalBucket
	invalid *invalidRequestCounter
}

func newRequester(transport Transport, token string, logger Logger, cfg RequesterConfig) *requester {
	if transport == nil {
		transport = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				MaxIdleConns:          500,
				MaxIdleConnsPerHost:   100,
				MaxConnsPerHost:       200,
				IdleConnTimeout:       120 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: time.Second,
				ForceAttemptHTTP2:     true,
			},
		}
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &requester{
		transport: transport,
		token:     token,
		cfg:       cfg,
		logger:    logger,
		invalid:   newInvalidRequestCounter(cfg.InvalidRequestLimit, cfg.InvalidRequestWindow),
	}
}

// requestOptions carries the parts of a request that vary by call
// site: the body's content type, an audit-log reason, and whether the
// route needs the bot's Authorization header at all (a few endpoints,
// like OAuth token exchange, don't).
type requestOptions struct {
	contentType string
	skipAuth    bool
	auditReason string
}

// do sends method+endpoint with body, retrying on rate limits and
// transient server errors up to cfg.MaxRetries times. The caller owns
// closing the returned response body.
func (r *requester) do(ctx context.Context, method, endpoint string, body []byte, opts requestOptions) (*http.Response, error) {
	route, major := canonicalRoute(method, endpoint)
	queueKey := route + ":" + major

	queueAny, _ := r.queues.LoadOrStore(queueKey, &sync.Mutex{})
	queue := queueAny.(*sync.Mutex)

	bucketAny, _ := r.buckets.LoadOrStore(queueKey, &routeBucket{remaining: 1})
	bucket := bucketAny.(*routeBucket)

	queue.Lock()
	defer queue.Unlock()

	if over, resetIn := r.invalid.overLimit(); over {
		return nil, newError(KindInvalidState, fmt.Errorf("invalid request ceiling reached, resets in %v", resetIn))
	}

	var lastErr error
	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if wait := bucket.waitDuration(); wait > 0 {
			r.logger.Debug(fmt.Sprintf("bucket %s exhausted, waiting %v", route, wait))
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, err
			}
		}
		if wait := time.Until(r.global.get()); wait > 0 {
			r.logger.Debug(fmt.Sprintf("global rate limit active, waiting %v", wait))
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, err
			}
		}

		fullURL, err := CanonicalURL(endpoint)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(body))
		if err != nil {
			return nil, newError(KindInvalidParam, err)
		}
		if !opts.skipAuth {
			req.Header.Set("Authorization", FormatAuthorization(r.token))
		}
		req.Header.Set("User-Agent", r.cfg.UserAgent)
		req.Header.Set("Accept", "application/json")
		if opts.contentType != "" {
			req.Header.Set("Content-Type", opts.contentType)
		} else if len(body) > 0 {
			req.Header.Set("Content-Type", "application/json")
		}
		if opts.auditReason != "" {
			req.Header.Set("X-Audit-Log-Reason", opts.auditReason)
		}

		resp, err := r.transport.Do(req)
		if err != nil {
			lastErr = newError(KindNetwork, err)
			r.logger.Warn(fmt.Sprintf("request error %s %s: %v", method, endpoint, err))
			if sleepErr := sleepCtx(ctx, backoffDelay(attempt)); sleepErr != nil {
				return nil, sleepErr
			}
			continue
		}

		rl := ParseRateLimitHeaders(resp.Header.Get)
		bucket.update(rl)

		switch {
		case resp.StatusCode == 401, resp.StatusCode == 403, resp.StatusCode == 429:
			// The ceiling itself is enforced by the pre-flight check above,
			// on the next call; this response is still handed back to the
			// caller as whatever it actually was.
			r.invalid.record()
		default:
			r.invalid.reset()
		}

		if resp.StatusCode == 429 {
			resp.Body.Close()
			wait := ParseRetryAfter(resp.Header.Get(headerRetryAfter), 0)
			if wait <= 0 {
				wait = time.Second
			}
			if rl.Global {
				r.global.set(time.Now().Add(wait))
			}
			r.logger.Debug(fmt.Sprintf("429 on %s, retrying after %v", route, wait))
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, err
			}
			continue
		}

		if _, retry := retryableStatus[resp.StatusCode]; retry {
			resp.Body.Close()
			delay := backoffDelay(attempt)
			r.logger.Warn(fmt.Sprintf("retryable status %d for %s %s, retrying after %v", resp.StatusCode, method, endpoint, delay))
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		return resp, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, newError(KindTryAgain, fmt.Errorf("max retries (%d) exceeded for %s %s", r.cfg.MaxRetries, method, endpoint))
}

// backoffDelay returns an exponential backoff with a 100ms base,
// capped at 10s, for the given zero-based attempt number.
func backoffDelay(attempt int) time.Duration {
	d := 100 * time.Millisecond
	for i := 0; i < attempt; i++ {
		d *= 2
		if d > 10*time.Second {
			return 10 * time.Second
		}
	}
	return d
}

// sleepCtx sleeps for d, returning early with ctx.Err() if ctx is
// canceled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
