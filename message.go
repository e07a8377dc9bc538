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

// MessageType discriminates the kind of a message.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object-message-types
type MessageType int

const (
	MessageTypeDefault                     MessageType = 0
	MessageTypeRecipientAdd                MessageType = 1
	MessageTypeRecipientRemove             MessageType = 2
	MessageTypeCall                        MessageType = 3
	MessageTypeChannelNameChange           MessageType = 4
	MessageTypeChannelIconChange           MessageType = 5
	MessageTypeChannelPinnedMessage        MessageType = 6
	MessageTypeUserJoin                    MessageType = 7
	MessageTypeGuildBoost                  MessageType = 8
	MessageTypeGuildBoostTier1             MessageType = 9
	MessageTypeGuildBoostTier2             MessageType = 10
	MessageTypeGuildBoostTier3              MessageType = 11
	MessageTypeChannelFollowAdd             MessageType = 12
	MessageTypeThreadCreated                MessageType = 18
	MessageTypeReply                        MessageType = 19
	MessageTypeChatInputCommand             MessageType = 20
	MessageTypeThreadStarterMessage         MessageType = 21
	MessageTypeContextMenuCommand           MessageType = 23
	MessageTypeAutoModerationAction         MessageType = 24
	MessageTypePollResult                   MessageType = 46
)

// MessageFlags is a bitfield of per-message behavior toggles.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object-message-flags
type MessageFlags int

const (
	MessageFlagCrossposted                      MessageFlags = 1 << 0
	MessageFlagIsCrosspost                      MessageFlags = 1 << 1
	MessageFlagSuppressEmbeds                   MessageFlags = 1 << 2
	MessageFlagSourceMessageDeleted              MessageFlags = 1 << 3
	MessageFlagUrgent                           MessageFlags = 1 << 4
	MessageFlagHasThread                        MessageFlags = 1 << 5
	MessageFlagEphemeral                        MessageFlags = 1 << 6
	MessageFlagLoading                          MessageFlags = 1 << 7
	MessageFlagFailedToMentionSomeRolesInThread MessageFlags = 1 << 8
	MessageFlagSuppressNotifications            MessageFlags = 1 << 12
	MessageFlagIsVoiceMessage                   MessageFlags = 1 << 13
	MessageFlagIsComponentsV2                   MessageFlags = 1 << 15
)

// Has returns true if all provided flags are set.
func (f MessageFlags) Has(flags ...MessageFlags) bool {
	return BitMaskHas(f, flags...)
}

// MessageReferenceType distinguishes a reply from a forward.
type MessageReferenceType int

const (
	MessageReferenceTypeDefault MessageReferenceType = 0
	MessageReferenceTypeForward MessageReferenceType = 1
)

// MessageReference points at another message, used for replies and
// forwards.
type MessageReference struct {
	Type      MessageReferenceType `json:"type,omitempty"`
	MessageID Snowflake            `json:"message_id,omitempty"`
	ChannelID Snowflake            `json:"channel_id,omitempty"`
	GuildID   Snowflake            `json:"guild_id,omitempty"`
	FailIfNotExists bool          `json:"fail_if_not_exists,omitempty"`
}

// ReactionCountDetails breaks a reaction's count down by burst vs normal.
type ReactionCountDetails struct {
	Burst  int `json:"burst"`
	Normal int `json:"normal"`
}

// Reaction represents one distinct emoji reaction on a message.
//
// Reference: https://discord.com/developers/docs/resources/message#reaction-object
type Reaction struct {
	Count        int                  `json:"count"`
	CountDetails ReactionCountDetails `json:"count_details"`
	Me           bool                 `json:"me"`
	MeBurst      bool                 `json:"me_burst"`
	Emoji        PartialEmoji         `json:"emoji"`
	BurstColors  []string             `json:"burst_colors,omitempty"`
}

// MessageInteractionMetadata carries extensible interaction-origin
// metadata for a message sent in response to an interaction; the
// exact shape differs per interaction type, so it is kept raw and
// decoded on demand rather than modeled field-by-field.
type MessageInteractionMetadata struct {
	RawJSON
}

// MessageCall describes an active or ended call embedded in a DM message.
type MessageCall struct {
	Participants []Snowflake `json:"participants"`
	EndedAt      Optional[time.Time] `json:"ended_timestamp"`
}

// Message represents a Discord message object.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object
type Message struct {
	ID               Snowflake    `json:"id"`
	ChannelID        Snowflake    `json:"channel_id"`
	GuildID          Snowflake    `json:"guild_id,omitempty"`
	Author           User         `json:"author"`
	Member           *Member      `json:"member,omitempty"`
	Content          string       `json:"content"`
	Timestamp        time.Time    `json:"timestamp"`
	EditedTimestamp  Optional[time.Time] `json:"edited_timestamp"`
	TTS              bool         `json:"tts"`
	MentionEveryone  bool         `json:"mention_everyone"`
	Mentions         []User       `json:"mentions"`
	MentionRoles     []Snowflake  `json:"mention_roles"`
	MentionChannels  []ChannelMention `json:"mention_channels,omitempty"`
	Attachments      []Attachment `json:"attachments"`
	Embeds           []Embed      `json:"embeds"`
	Reactions        []Reaction   `json:"reactions,omitempty"`
	Nonce            RawJSON      `json:"nonce,omitempty"`
	Pinned           bool         `json:"pinned"`
	WebhookID        Snowflake    `json:"webhook_id,omitempty"`
	Type             MessageType  `json:"type"`
	Flags            MessageFlags `json:"flags,omitempty"`

	// MessageReference is the reference for crossposts, replies and
	// forwards. ReferencedMessage is the resolved target message, kept
	// behind a pointer since it recursively embeds the same Message
	// shape and Discord omits it when the target couldn't be resolved.
	MessageReference   *MessageReference `json:"message_reference,omitempty"`
	ReferencedMessage  *Message          `json:"referenced_message,omitempty"`

	InteractionMetadata *MessageInteractionMetadata `json:"interaction_metadata,omitempty"`

	Thread *ThreadChannel `json:"thread,omitempty"`

	// RawComponents holds each top-level component as raw JSON; decode
	// selectively with ParseComponent rather than eagerly allocating
	// every possible component type on every message.
	RawComponents []RawJSON `json:"components,omitempty"`

	Call *MessageCall `json:"call,omitempty"`
}

// CreatedAt returns the time the message was created, derived from its snowflake ID.
func (m *Message) CreatedAt() time.Time {
	return m.ID.Timestamp()
}

// Components decodes RawComponents into concrete Component values,
// lazily, since most callers never touch components on most messages.
func (m *Message) Components() ([]Component, error) {
	out := make([]Component, 0, len(m.RawComponents))
	for _, raw := range m.RawComponents {
		c, err := ParseComponent(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ChannelMention identifies a channel mentioned within a message's content.
type ChannelMention struct {
	ID      Snowflake   `json:"id"`
	GuildID Snowflake   `json:"guild_id"`
	Type    ChannelType `json:"type"`
	Name    string      `json:"name"`
}
