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

// gateway holds the Discord Gateway URL, the response of GET /gateway.
type gateway struct {
	URL string `json:"url"`
}

func (o *gateway) fillFromJSON(buf []byte) error {
	return jsonUnmarshal(buf, o)
}

// sessionStartLimit is the session start budget Discord hands back
// from GET /gateway/bot, used by the shard manager's identify
// rate limiter.
type sessionStartLimit struct {
	Total          int `json:"total"`
	Remaining      int `json:"remaining"`
	ResetAfter     int `json:"reset_after"`
	MaxConcurrency int `json:"max_concurrency"`
}

// gatewayBot is the response of GET /gateway/bot: the Gateway URL plus
// Discord's recommended shard count and identify budget.
type gatewayBot struct {
	URL               string            `json:"url"`
	Shards            int               `json:"shards"`
	SessionStartLimit sessionStartLimit `json:"session_start_limit"`
}

func (o *gatewayBot) fillFromJSON(buf []byte) error {
	return jsonUnmarshal(buf, o)
}
