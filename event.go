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

// UnavailableGuild is the stub guild shape sent in the READY payload's
// guilds array, before the full GatewayGuild arrives via GUILD_CREATE.
type UnavailableGuild struct {
	ID          Snowflake `json:"id"`
	Unavailable bool      `json:"unavailable"`
}

// readyApplication is the partial application object sent on READY.
type readyApplication struct {
	ID    Snowflake `json:"id"`
	Flags int       `json:"flags"`
}

// ReadyEvent fires once per shard right after a successful Identify (a
// Resume is answered with RESUMED instead). It carries the session handle the shard needs to resume
// later and the guilds the bot is in as unavailable stubs; each
// becomes a GuildCreateEvent once Discord finishes lazy loading it.
type ReadyEvent struct {
	ShardID          int                `json:"-"`
	Version          int                `json:"v"`
	User             User               `json:"user"`
	Guilds           []UnavailableGuild `json:"guilds"`
	SessionID        string             `json:"session_id"`
	ResumeGatewayURL string             `json:"resume_gateway_url"`
	Application      readyApplication   `json:"application"`
}

// MessageCreateEvent fires when a message is sent in a channel the bot can see.
type MessageCreateEvent struct {
	Message
	ShardID int `json:"-"`
}

// MessageUpdateEvent fires when a message is edited.
//
// Discord only sends the fields that changed, so a zero-value field
// here doesn't necessarily mean the message no longer has it - check
// the cache for the previous full message if you need a diff.
type MessageUpdateEvent struct {
	Message
	ShardID int `json:"-"`
}

// MessageDeleteEvent fires when a message is deleted.
type MessageDeleteEvent struct {
	ID        Snowflake `json:"id"`
	ChannelID Snowflake `json:"channel_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	ShardID   int       `json:"-"`
}

// MessageDeleteBulkEvent fires when multiple messages are deleted at once.
type MessageDeleteBulkEvent struct {
	IDs       []Snowflake `json:"ids"`
	ChannelID Snowflake   `json:"channel_id"`
	GuildID   Snowflake   `json:"guild_id,omitempty"`
	ShardID   int         `json:"-"`
}

// GuildCreateEvent fires when the bot joins a guild, and also once per
// guild during startup as Discord lazily sends each guild the bot is
// already in.
type GuildCreateEvent struct {
	GatewayGuild
	ShardID int `json:"-"`
}

// GuildUpdateEvent fires when a guild's settings change.
type GuildUpdateEvent struct {
	Guild
	ShardID int `json:"-"`
}

// GuildDeleteEvent fires when the bot is removed from a guild, or when
// a guild becomes unavailable (outage); Unavailable distinguishes the
// two cases.
type GuildDeleteEvent struct {
	ID          Snowflake `json:"id"`
	Unavailable bool      `json:"unavailable"`
	ShardID     int       `json:"-"`
}

// GuildMemberAddEvent fires when a user joins a guild.
type GuildMemberAddEvent struct {
	Member
	ShardID int `json:"-"`
}

// GuildMemberUpdateEvent fires when a guild member is updated (nickname,
// roles, timeout, etc.).
type GuildMemberUpdateEvent struct {
	GuildID Snowflake   `json:"guild_id"`
	RoleIDs []Snowflake `json:"roles"`
	User    User        `json:"user"`
	Nick    string      `json:"nick,omitempty"`
	ShardID int         `json:"-"`
}

// GuildMemberRemoveEvent fires when a user leaves, is kicked, or is
// banned from a guild.
type GuildMemberRemoveEvent struct {
	GuildID Snowflake `json:"guild_id"`
	User    User      `json:"user"`
	ShardID int       `json:"-"`
}

// GuildRoleCreateEvent fires when a guild role is created.
type GuildRoleCreateEvent struct {
	GuildID Snowflake `json:"guild_id"`
	Role    Role      `json:"role"`
	ShardID int       `json:"-"`
}

// GuildRoleUpdateEvent fires when a guild role is updated.
type GuildRoleUpdateEvent struct {
	GuildID Snowflake `json:"guild_id"`
	Role    Role      `json:"role"`
	ShardID int       `json:"-"`
}

// GuildRoleDeleteEvent fires when a guild role is deleted.
type GuildRoleDeleteEvent struct {
	GuildID Snowflake `json:"guild_id"`
	RoleID  Snowflake `json:"role_id"`
	ShardID int       `json:"-"`
}

// ChannelCreateEvent fires when a channel is created.
type ChannelCreateEvent struct {
	Channel Channel `json:"-"`
	ShardID int     `json:"-"`
}

// ChannelUpdateEvent fires when a channel's settings change.
type ChannelUpdateEvent struct {
	Channel Channel `json:"-"`
	ShardID int     `json:"-"`
}

// ChannelDeleteEvent fires when a channel is deleted.
type ChannelDeleteEvent struct {
	Channel Channel `json:"-"`
	ShardID int     `json:"-"`
}

// VoiceStateUpdateEvent fires when a user's voice state changes (joins,
// leaves, or moves voice channel, mutes, deafens, etc.).
type VoiceStateUpdateEvent struct {
	VoiceState
	ShardID int `json:"-"`
}

// VoiceServerUpdateEvent fires when the voice server for a guild the
// bot is connected to changes.
type VoiceServerUpdateEvent struct {
	VoiceServerUpdate
	ShardID int `json:"-"`
}

// PresenceUpdateEvent fires when a user's presence changes. Only
// received for guilds with GatewayIntentGuildPresences enabled.
type PresenceUpdateEvent struct {
	PresenceUpdate
	ShardID int `json:"-"`
}

// TypingStartEvent fires when a user starts typing in a channel.
type TypingStartEvent struct {
	ChannelID Snowflake `json:"channel_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	UserID    Snowflake `json:"user_id"`
	Timestamp int64     `json:"timestamp"`
	Member    *Member   `json:"member,omitempty"`
	ShardID   int       `json:"-"`
}

// UserUpdateEvent fires when properties of the bot's own user object change.
type UserUpdateEvent struct {
	User
	ShardID int `json:"-"`
}

// InteractionCreateEvent fires when the bot receives an interaction: a
// slash command invocation, a message component click, a modal
// submit, or an autocomplete request.
type InteractionCreateEvent struct {
	Interaction Interaction `json:"-"`
	ShardID     int         `json:"-"`
}
