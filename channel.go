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
	"time"
)

// ChannelType represents Discord channel types.
//
// Reference: https://discord.com/developers/docs/resources/channel#channel-object-channel-types
type ChannelType int

const (
	ChannelTypeGuildText          ChannelType = 0
	ChannelTypeDM                 ChannelType = 1
	ChannelTypeGuildVoice         ChannelType = 2
	ChannelTypeGroupDM            ChannelType = 3
	ChannelTypeGuildCategory      ChannelType = 4
	ChannelTypeGuildAnnouncement  ChannelType = 5
	ChannelTypeAnnouncementThread ChannelType = 10
	ChannelTypePublicThread       ChannelType = 11
	ChannelTypePrivateThread      ChannelType = 12
	ChannelTypeGuildStageVoice    ChannelType = 13
	ChannelTypeGuildDirectory     ChannelType = 14
	ChannelTypeGuildForum         ChannelType = 15
	ChannelTypeGuildMedia         ChannelType = 16
)

// ChannelFlags represents Discord channel flags combined as a bitfield.
type ChannelFlags int

const (
	ChannelFlagPinned                   ChannelFlags = 1 << 1
	ChannelFlagRequireTag               ChannelFlags = 1 << 4
	ChannelFlagHideMediaDownloadOptions ChannelFlags = 1 << 15
)

func (f ChannelFlags) Has(flags ...ChannelFlags) bool { return BitMaskHas(f, flags...) }

// PermissionOverwriteType defines the type of permission overwrite target.
type PermissionOverwriteType int

const (
	PermissionOverwriteTypeRole   PermissionOverwriteType = 0
	PermissionOverwriteTypeMember PermissionOverwriteType = 1
)

// PermissionOverwrite represents a permission overwrite for a role or member.
type PermissionOverwrite struct {
	ID    Snowflake               `json:"id"`
	Type  PermissionOverwriteType `json:"type"`
	Allow Permissions             `json:"allow,omitempty"`
	Deny  Permissions             `json:"deny,omitempty"`
}

// ForumTag represents a tag that can be applied to a thread in a
// forum/media channel.
type ForumTag struct {
	ID        Snowflake `json:"id"`
	Name      string    `json:"name"`
	Moderated bool      `json:"moderated"`
	EmojiID   Snowflake `json:"emoji_id,omitempty"`
	EmojiName string    `json:"emoji_name,omitempty"`
}

// AutoArchiveDuration is the thread auto-archive duration, in minutes.
type AutoArchiveDuration int

const (
	AutoArchiveDuration1h  AutoArchiveDuration = 60
	AutoArchiveDuration24h AutoArchiveDuration = 1440
	AutoArchiveDuration3d  AutoArchiveDuration = 4320
	AutoArchiveDuration1w  AutoArchiveDuration = 10080
)

// ThreadMetaData holds thread-specific channel fields.
type ThreadMetaData struct {
	Archived            bool                `json:"archived"`
	AutoArchiveDuration AutoArchiveDuration `json:"auto_archive_duration"`
	ArchiveTimestamp    time.Time           `json:"archive_timestamp,omitzero"`
	Locked              bool                `json:"locked"`
	Invitable           bool                `json:"invitable"`
}

// ChannelFields carries the fields present on every channel type.
type ChannelFields struct {
	ID   Snowflake   `json:"id"`
	Type ChannelType `json:"type"`
}

func (c *ChannelFields) GetID() Snowflake     { return c.ID }
func (c *ChannelFields) GetType() ChannelType { return c.Type }
func (c *ChannelFields) CreatedAt() time.Time { return c.ID.Timestamp() }
func (c *ChannelFields) Mention() string      { return "<#" + c.ID.String() + ">" }
func (c *ChannelFields) String() string       { return c.Mention() }

// GuildChannelFields adds fields common to non-thread guild channels.
type GuildChannelFields struct {
	ChannelFields
	GuildID              Snowflake             `json:"guild_id"`
	Name                 string                `json:"name,omitempty"`
	Position             int                   `json:"position,omitempty"`
	PermissionOverwrites []PermissionOverwrite `json:"permission_overwrites,omitempty"`
	Flags                ChannelFlags          `json:"flags,omitempty"`
}

func (c *GuildChannelFields) GetGuildID() Snowflake { return c.GuildID }
func (c *GuildChannelFields) GetName() string       { return c.Name }

// ThreadChannelFields adds fields common to thread channels.
type ThreadChannelFields struct {
	ChannelFields
	GuildID              Snowflake             `json:"guild_id"`
	Name                 string                `json:"name,omitempty"`
	PermissionOverwrites []PermissionOverwrite `json:"permission_overwrites,omitempty"`
	Flags                ChannelFlags          `json:"flags,omitempty"`
}

func (c *ThreadChannelFields) GetGuildID() Snowflake { return c.GuildID }

// CategorizedChannelFields holds the parent category id.
type CategorizedChannelFields struct {
	ParentID Snowflake `json:"parent_id"`
}

// MessageChannelFields holds fields related to text features.
type MessageChannelFields struct {
	LastMessageID Snowflake `json:"last_message_id"`
}

// GuildMessageChannelFields adds slowmode on top of MessageChannelFields.
type GuildMessageChannelFields struct {
	MessageChannelFields
	RateLimitPerUser time.Duration `json:"rate_limit_per_user"`
}

// NsfwChannelFields holds the NSFW indicator.
type NsfwChannelFields struct {
	Nsfw bool `json:"nsfw"`
}

// TopicChannelFields holds the channel topic.
type TopicChannelFields struct {
	Topic string `json:"topic"`
}

type Bitrate int

const (
	BitrateMin                 Bitrate = 8000
	BitrateMaxForStageChannels Bitrate = 64000
	BitrateMaxForNormalGuilds  Bitrate = 96000
)

// AudioChannelFields holds voice-related configuration fields.
type AudioChannelFields struct {
	Bitrate   int    `json:"bitrate"`
	UserLimit int    `json:"user_limit"`
	RtcRegion string `json:"rtc_region"`
}

// ForumChannelFields holds forum/media channel specific fields.
type ForumChannelFields struct {
	AvailableTags      []ForumTag           `json:"available_tags"`
	DefaultSortOrder   int                  `json:"default_sort_order"`
	DefaultForumLayout int                  `json:"default_forum_layout"`
}

// CategoryChannel represents a guild category channel.
type CategoryChannel struct {
	GuildChannelFields
}

// TextChannel represents a guild text channel.
type TextChannel struct {
	GuildChannelFields
	CategorizedChannelFields
	GuildMessageChannelFields
	NsfwChannelFields
	TopicChannelFields
}

// VoiceChannel represents a guild voice channel.
type VoiceChannel struct {
	GuildChannelFields
	CategorizedChannelFields
	GuildMessageChannelFields
	NsfwChannelFields
	AudioChannelFields
}

// AnnouncementChannel represents an announcement (news) channel.
type AnnouncementChannel struct {
	GuildChannelFields
	CategorizedChannelFields
	GuildMessageChannelFields
	NsfwChannelFields
	TopicChannelFields
}

// StageVoiceChannel represents a stage voice channel.
type StageVoiceChannel struct {
	GuildChannelFields
	CategorizedChannelFields
	GuildMessageChannelFields
	NsfwChannelFields
	AudioChannelFields
	TopicChannelFields
}

// ForumChannel represents a guild forum channel.
type ForumChannel struct {
	GuildChannelFields
	CategorizedChannelFields
	GuildMessageChannelFields
	NsfwChannelFields
	TopicChannelFields
	ForumChannelFields
}

// MediaChannel represents a media channel; it shares ForumChannel's shape.
type MediaChannel struct {
	ForumChannel
}

// ThreadMember represents a Discord thread member entry.
type ThreadMember struct {
	ThreadID      Snowflake `json:"id"`
	UserID        Snowflake `json:"user_id"`
	JoinTimestamp time.Time `json:"join_timestamp,omitzero"`
	Flags         int       `json:"flags"`
	Member        *Member   `json:"member,omitempty"`
}

// ThreadChannel represents a thread within a text, forum, or media channel.
type ThreadChannel struct {
	ThreadChannelFields
	CategorizedChannelFields
	GuildMessageChannelFields
	OwnerID        Snowflake      `json:"owner_id"`
	ThreadMetadata ThreadMetaData `json:"thread_metadata"`
}

// DMChannelFields contains fields common to DM and group DM channels.
type DMChannelFields struct {
	ChannelFields
	MessageChannelFields
}

// DMChannel represents a direct message channel.
type DMChannel struct {
	DMChannelFields
	Recipients []User `json:"recipients"`
}

// GroupDMChannel represents a group DM channel.
type GroupDMChannel struct {
	DMChannelFields
	Icon string `json:"icon"`
}

// Channel is the interface every concrete channel type satisfies.
// Use a type switch to recover the concrete type a payload decoded
// into.
type Channel interface {
	GetID() Snowflake
	GetType() ChannelType
	CreatedAt() time.Time
	Mention() string
}

var (
	_ Channel = (*CategoryChannel)(nil)
	_ Channel = (*TextChannel)(nil)
	_ Channel = (*VoiceChannel)(nil)
	_ Channel = (*AnnouncementChannel)(nil)
	_ Channel = (*StageVoiceChannel)(nil)
	_ Channel = (*ForumChannel)(nil)
	_ Channel = (*MediaChannel)(nil)
	_ Channel = (*ThreadChannel)(nil)
	_ Channel = (*DMChannel)(nil)
	_ Channel = (*GroupDMChannel)(nil)
)

// GuildChannel is implemented by every channel type that belongs to a
// guild (as opposed to a DM/group DM), adding guild scoping on top of
// the base Channel surface.
type GuildChannel interface {
	Channel
	GetGuildID() Snowflake
}

var (
	_ GuildChannel = (*CategoryChannel)(nil)
	_ GuildChannel = (*TextChannel)(nil)
	_ GuildChannel = (*VoiceChannel)(nil)
	_ GuildChannel = (*AnnouncementChannel)(nil)
	_ GuildChannel = (*StageVoiceChannel)(nil)
	_ GuildChannel = (*ForumChannel)(nil)
	_ GuildChannel = (*MediaChannel)(nil)
	_ GuildChannel = (*ThreadChannel)(nil)
)

// channelTypePeek reads only the "type" discriminator of a channel payload.
type channelTypePeek struct {
	Type ChannelType `json:"type"`
}

// ParseChannel decodes a channel payload into its concrete type,
// selected by the "type" discriminator, then wraps it in a
// ResolvedChannel alongside the permissions bitmask Discord attaches
// to channel payloads inline in guild/ready events.
func ParseChannel(buf []byte) (*ResolvedChannel, error) {
	var peek struct {
		channelTypePeek
		Permissions Permissions `json:"permissions"`
	}
	if err := jsonUnmarshal(buf, &peek); err != nil {
		return nil, newError(KindJSON, err)
	}

	var ch Channel
	switch peek.Type {
	case ChannelTypeGuildText:
		ch = &TextChannel{}
	case ChannelTypeDM:
		ch = &DMChannel{}
	case ChannelTypeGuildVoice:
		ch = &VoiceChannel{}
	case ChannelTypeGroupDM:
		ch = &GroupDMChannel{}
	case ChannelTypeGuildCategory:
		ch = &CategoryChannel{}
	case ChannelTypeGuildAnnouncement:
		ch = &AnnouncementChannel{}
	case ChannelTypeAnnouncementThread, ChannelTypePublicThread, ChannelTypePrivateThread:
		ch = &ThreadChannel{}
	case ChannelTypeGuildStageVoice:
		ch = &StageVoiceChannel{}
	case ChannelTypeGuildForum:
		ch = &ForumChannel{}
	case ChannelTypeGuildMedia:
		ch = &MediaChannel{}
	default:
		return nil, newError(KindParseError, fmt.Errorf("unknown channel type %d", peek.Type))
	}

	if err := jsonUnmarshal(buf, ch); err != nil {
		return nil, newError(KindJSON, err)
	}

	return &ResolvedChannel{Channel: ch, Permissions: peek.Permissions}, nil
}

// ResolvedChannel pairs a decoded Channel with the permission bitmask
// Discord sends inline for the invoking user, where applicable.
type ResolvedChannel struct {
	Channel
	Permissions Permissions `json:"permissions"`
}

// PartialChannel is the reduced channel shape embedded in invite and
// interaction payloads.
type PartialChannel struct {
	ChannelFields
	Name string `json:"name,omitempty"`
}
