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

/*****************************
 *  Heartbeat (opcode 1)
 *****************************/

func buildHeartbeatOp(seq int64) ([]byte, error) {
	var d any
	if seq > 0 {
		d = seq
	}
	return jsonMarshal(gatewayOpFrame{Op: gatewayOpcodeHeartbeat, D: d})
}

/*****************************
 *  Identify (opcode 2)
 *****************************/

type identifyData struct {
	Token          string              `json:"token"`
	Properties     IdentifyProperties  `json:"properties"`
	Compress       bool                `json:"compress,omitempty"`
	LargeThreshold int                 `json:"large_threshold,omitempty"`
	Shard          [2]int              `json:"shard"`
	Presence       *PresenceUpdateData `json:"presence,omitempty"`
	Intents        GatewayIntent       `json:"intents"`
}

// buildIdentifyOp assembles an Identify payload. Per Gateway rules the
// payload-level compress flag and the transport-level zlib-stream
// query parameter are mutually exclusive; compress is only set here
// when the connection was NOT already opened with compress=zlib-stream.
func buildIdentifyOp(token string, shardID, totalShards int, intents GatewayIntent, props IdentifyProperties, transportCompressed bool, presence *PresenceUpdateData) ([]byte, error) {
	return jsonMarshal(gatewayOpFrame{
		Op: gatewayOpcodeIdentify,
		D: identifyData{
			Token:      token,
			Properties: props,
			Compress:   !transportCompressed,
			Shard:      [2]int{shardID, totalShards},
			Presence:   presence,
			Intents:    intents,
		},
	})
}

/*****************************
 *  Resume (opcode 6)
 *****************************/

type resumeData struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Seq       int64  `json:"seq"`
}

func buildResumeOp(token, sessionID string, seq int64) ([]byte, error) {
	return jsonMarshal(gatewayOpFrame{
		Op: gatewayOpcodeResume,
		D:  resumeData{Token: token, SessionID: sessionID, Seq: seq},
	})
}

/*****************************
 *  Presence Update (opcode 3)
 *****************************/

// PresenceStatus is the bot's online presence, validated before send
// since Discord silently ignores unrecognized values.
type PresenceStatus string

const (
	PresenceStatusOnline    PresenceStatus = "online"
	PresenceStatusDND       PresenceStatus = "dnd"
	PresenceStatusIdle      PresenceStatus = "idle"
	PresenceStatusInvisible PresenceStatus = "invisible"
	PresenceStatusOffline   PresenceStatus = "offline"
)

func (s PresenceStatus) valid() bool {
	switch s {
	case PresenceStatusOnline, PresenceStatusDND, PresenceStatusIdle, PresenceStatusInvisible, PresenceStatusOffline:
		return true
	}
	return false
}

// ActivityType is the type tag of an Activity in a presence update.
type ActivityType int

const (
	ActivityTypeGame      ActivityType = 0
	ActivityTypeStreaming ActivityType = 1
	ActivityTypeListening ActivityType = 2
	ActivityTypeWatching  ActivityType = 3
	ActivityTypeCustom    ActivityType = 4
	ActivityTypeCompeting ActivityType = 5
)

// Activity describes a single activity within a presence update.
type Activity struct {
	Name string       `json:"name"`
	Type ActivityType `json:"type"`
	URL  string       `json:"url,omitempty"`
}

// PresenceUpdateData is the payload of an outbound presence update, as
// well as the embedded presence sent inline with Identify.
type PresenceUpdateData struct {
	Since      *int64         `json:"since"`
	Activities []Activity     `json:"activities"`
	Status     PresenceStatus `json:"status"`
	AFK        bool           `json:"afk"`
}

// buildPresenceUpdateOp validates the status enum before marshaling;
// Discord accepts malformed status values without an error response,
// so the bot would otherwise silently show as "online" forever.
func buildPresenceUpdateOp(data PresenceUpdateData) ([]byte, error) {
	if !data.Status.valid() {
		return nil, newError(KindInvalidParam, nil)
	}
	return jsonMarshal(gatewayOpFrame{Op: gatewayOpcodePresenceUpdate, D: data})
}

/*****************************
 *  Voice State Update (opcode 4)
 *****************************/

// VoiceStateUpdateData requests the bot join, move within, or leave a
// voice channel. A zero ChannelID means disconnect.
type VoiceStateUpdateData struct {
	GuildID   Snowflake `json:"guild_id"`
	ChannelID Snowflake `json:"channel_id"`
	SelfMute  bool      `json:"self_mute"`
	SelfDeaf  bool      `json:"self_deaf"`
}

func (d VoiceStateUpdateData) MarshalJSON() ([]byte, error) {
	type alias struct {
		GuildID   Snowflake  `json:"guild_id"`
		ChannelID *Snowflake `json:"channel_id"`
		SelfMute  bool       `json:"self_mute"`
		SelfDeaf  bool       `json:"self_deaf"`
	}
	a := alias{GuildID: d.GuildID, SelfMute: d.SelfMute, SelfDeaf: d.SelfDeaf}
	if d.ChannelID != 0 {
		a.ChannelID = &d.ChannelID
	}
	return jsonMarshal(a)
}

func buildVoiceStateUpdateOp(data VoiceStateUpdateData) ([]byte, error) {
	return jsonMarshal(gatewayOpFrame{Op: gatewayOpcodeVoiceStateUpdate, D: data})
}

/*****************************
 *  Request Guild Members (opcode 8)
 *****************************/

// RequestGuildMembersData requests guild member chunks. Exactly one
// of Query or UserIDs must be set; Nonce, if provided, must fit in 32
// bytes since Discord echoes it back verbatim and truncates otherwise.
type RequestGuildMembersData struct {
	GuildID   Snowflake   `json:"guild_id"`
	Query     *string     `json:"query,omitempty"`
	Limit     int         `json:"limit"`
	Presences bool        `json:"presences,omitempty"`
	UserIDs   []Snowflake `json:"user_ids,omitempty"`
	Nonce     string      `json:"nonce,omitempty"`
}

func buildRequestGuildMembersOp(data RequestGuildMembersData) ([]byte, error) {
	hasQuery := data.Query != nil
	hasUserIDs := len(data.UserIDs) > 0
	if hasQuery == hasUserIDs {
		return nil, newError(KindInvalidParam, nil)
	}
	if len(data.Nonce) > 32 {
		return nil, newError(KindInvalidParam, nil)
	}
	return jsonMarshal(gatewayOpFrame{Op: gatewayOpcodeRequestGuildMembers, D: data})
}

/*****************************
 *  Request Soundboard Sounds (opcode 31)
 *****************************/

// RequestSoundboardSoundsData requests soundboard sounds for one or
// more guilds in a single batch.
type RequestSoundboardSoundsData struct {
	GuildIDs []Snowflake `json:"guild_ids"`
}

func buildRequestSoundboardSoundsOp(data RequestSoundboardSoundsData) ([]byte, error) {
	if len(data.GuildIDs) == 0 {
		return nil, newError(KindInvalidParam, nil)
	}
	return jsonMarshal(gatewayOpFrame{Op: gatewayOpcodeRequestSoundboardSounds, D: data})
}

// gatewayOpFrame is the outbound counterpart of gatewayPayload: D is
// typed per-op here instead of kept raw, since outbound payloads are
// always constructed internally rather than decoded.
type gatewayOpFrame struct {
	Op int `json:"op"`
	D  any `json:"d"`
}
