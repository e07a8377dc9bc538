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

import "time"

// VoiceState represents a user's voice connection status within a guild.
//
// GuildID is absent from the gateway's own voice_states payloads within
// a guild create/update (where it is implied by the parent object) but
// is always populated here: guild.go backfills it onto every element
// after decode, and standalone VOICE_STATE_UPDATE dispatches carry it
// directly.
//
// Reference: https://discord.com/developers/docs/resources/voice#voice-state-object
type VoiceState struct {
	GuildID                 Snowflake           `json:"guild_id,omitempty"`
	ChannelID               Snowflake           `json:"channel_id,omitempty"`
	UserID                  Snowflake           `json:"user_id"`
	Member                  *Member             `json:"member,omitempty"`
	SessionID               string              `json:"session_id"`
	Deaf                    bool                `json:"deaf"`
	Mute                    bool                `json:"mute"`
	SelfDeaf                bool                `json:"self_deaf"`
	SelfMute                bool                `json:"self_mute"`
	SelfStream              bool                `json:"self_stream,omitempty"`
	SelfVideo               bool                `json:"self_video"`
	Suppress                bool                `json:"suppress"`
	RequestToSpeakTimestamp Optional[time.Time] `json:"request_to_speak_timestamp"`
}

// VoiceServerUpdate carries the voice server endpoint the bot should
// connect to after a Voice State Update places it in a channel.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#voice-server-update
type VoiceServerUpdate struct {
	Token    string    `json:"token"`
	GuildID  Snowflake `json:"guild_id"`
	Endpoint string    `json:"endpoint"`
}

// VoiceRegion describes one voice server region available to a guild.
//
// Reference: https://discord.com/developers/docs/resources/voice#voice-region-object
type VoiceRegion struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Optimal    bool   `json:"optimal"`
	Deprecated bool   `json:"deprecated"`
	Custom     bool   `json:"custom"`
}
