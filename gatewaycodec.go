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

// Gateway opcodes, per Discord's opcode table.
const (
	gatewayOpcodeDispatch              = 0
	gatewayOpcodeHeartbeat             = 1
	gatewayOpcodeIdentify              = 2
	gatewayOpcodePresenceUpdate        = 3
	gatewayOpcodeVoiceStateUpdate      = 4
	gatewayOpcodeResume                = 6
	gatewayOpcodeReconnect             = 7
	gatewayOpcodeRequestGuildMembers   = 8
	gatewayOpcodeInvalidSession        = 9
	gatewayOpcodeHello                 = 10
	gatewayOpcodeHeartbeatACK          = 11
	gatewayOpcodeRequestSoundboardSounds = 31
)

// gatewayPayload is the envelope every Gateway frame is wrapped in.
// D is kept as a raw substring so the dispatcher can apply the JSON
// model selectively, matching the opaque-payload convention used for
// extensible Discord object fields elsewhere in this package.
type gatewayPayload struct {
	Op int     `json:"op"`
	D  RawJSON `json:"d,omitempty"`
	S  int64   `json:"s,omitempty"`
	T  string  `json:"t,omitempty"`
}

// nonResumableCloseCodes are close codes after which the session must
// be discarded and the next attempt must Identify instead of Resume:
// 4007 (invalid seq sent) and 4009 (session timed out) both mean the
// session the client remembers is no longer valid on Discord's side,
// but the shard itself should keep reconnecting.
var nonResumableCloseCodes = map[int]bool{
	4007: true, 4009: true,
}

// fatalCloseCodes are close codes after which the shard must stop
// reconnecting altogether rather than retry with backoff.
var fatalCloseCodes = map[int]bool{
	4004: true, // authentication failed
	4010: true, // invalid shard
	4011: true, // sharding required
	4012: true, // invalid API version
	4013: true, // invalid intent(s)
	4014: true, // disallowed intent(s)
}

// GatewayIntent is a bitmask of Gateway event categories a shard
// subscribes to in its Identify payload.
//
// Reference: https://discord.com/developers/docs/events/gateway#gateway-intents
type GatewayIntent int

const (
	GatewayIntentGuilds                 GatewayIntent = 1 << 0
	GatewayIntentGuildMembers           GatewayIntent = 1 << 1
	GatewayIntentGuildModeration        GatewayIntent = 1 << 2
	GatewayIntentGuildExpressions       GatewayIntent = 1 << 3
	GatewayIntentGuildIntegrations      GatewayIntent = 1 << 4
	GatewayIntentGuildWebhooks          GatewayIntent = 1 << 5
	GatewayIntentGuildInvites           GatewayIntent = 1 << 6
	GatewayIntentGuildVoiceStates       GatewayIntent = 1 << 7
	GatewayIntentGuildPresences         GatewayIntent = 1 << 8
	GatewayIntentGuildMessages          GatewayIntent = 1 << 9
	GatewayIntentGuildMessageReactions  GatewayIntent = 1 << 10
	GatewayIntentGuildMessageTyping     GatewayIntent = 1 << 11
	GatewayIntentDirectMessages         GatewayIntent = 1 << 12
	GatewayIntentDirectMessageReactions GatewayIntent = 1 << 13
	GatewayIntentDirectMessageTyping    GatewayIntent = 1 << 14
	GatewayIntentMessageContent         GatewayIntent = 1 << 15
	GatewayIntentGuildScheduledEvents   GatewayIntent = 1 << 16
	GatewayIntentAutoModerationConfig   GatewayIntent = 1 << 20
	GatewayIntentAutoModerationExec     GatewayIntent = 1 << 21
	GatewayIntentGuildMessagePolls      GatewayIntent = 1 << 24
	GatewayIntentDirectMessagePolls     GatewayIntent = 1 << 25
)

// Has returns true if all given intents are set.
func (g GatewayIntent) Has(intents ...GatewayIntent) bool {
	for _, i := range intents {
		if g&i != i {
			return false
		}
	}
	return true
}

// ShardState is the explicit lifecycle state of a single shard's
// Gateway connection.
type ShardState int

const (
	ShardStateDisconnected ShardState = iota
	ShardStateConnecting
	ShardStateConnected
	ShardStateIdentifying
	ShardStateResuming
	ShardStateReady
	ShardStateReconnecting
)

func (s ShardState) String() string {
	switch s {
	case ShardStateDisconnected:
		return "disconnected"
	case ShardStateConnecting:
		return "connecting"
	case ShardStateConnected:
		return "connected"
	case ShardStateIdentifying:
		return "identifying"
	case ShardStateResuming:
		return "resuming"
	case ShardStateReady:
		return "ready"
	case ShardStateReconnecting:
		return "reconnecting"
	default:
		return "unknown"
	}
}
