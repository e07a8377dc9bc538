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
	"time"
)

// InviteType represents invite types.
//
// Reference: https://discord.com/developers/docs/resources/invite#invite-object-invite-types
type InviteType int

const (
	InviteTypeGuild InviteType = iota
	InviteTypeGroupDM
	InviteTypeFriend
)

// Is returns true if the invite's Type matches the provided one.
func (t InviteType) Is(inviteType InviteType) bool {
	return t == inviteType
}

// InviteTargetType represents invite target types.
//
// Reference: https://discord.com/developers/docs/resources/invite#invite-object-invite-target-types
type InviteTargetType int

const (
	InviteTargetTypeStream              InviteTargetType = 1
	InviteTargetTypeEmbeddedApplication InviteTargetType = 2
)

// Is returns true if the invite target's Type matches the provided one.
func (t InviteTargetType) Is(inviteType InviteTargetType) bool {
	return t == inviteType
}

// GuildInviteFlags represents invite flags.
//
// Reference: https://discord.com/developers/docs/resources/invite#invite-object-invite-target-types
type GuildInviteFlags int

const (
	// GuildInviteFlagsIsGuestInvite indicates that this invite is a guest invite for a voice channel
	GuildInviteFlagsIsGuestInvite GuildInviteFlags = 1 << 0
)

// Has returns true if all provided flags are set.
func (f GuildInviteFlags) Has(flags ...GuildInviteFlags) bool {
	return BitMaskHas(f, flags...)
}

// PartialApplication is the reduced application shape embedded in an
// invite's target_application field.
//
// Reference: https://discord.com/developers/docs/resources/invite#invite-object-example-invite-object
type PartialApplication struct {
	ID          Snowflake `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description"`
	Summary     string    `json:"summary,omitempty"`
}

// Invite represents a invite object.
//
// Reference: https://discord.com/developers/docs/resources/invite#invite-object
type Invite struct {
	// Type is the type of invite.
	Type InviteType `json:"type"`

	// Code is the invite code (unique ID).
	Code string `json:"code"`

	// Guild is the guild this invite is for.
	Guild *PartialGuild `json:"guild"`

	// Channel is the channel this invite is for.
	Channel *PartialChannel `json:"channel"`

	// Inviter is the user who created the invite.
	Inviter *User `json:"inviter"`

	// TargetType is the type of target for this voice channel invite.
	TargetType Optional[InviteTargetType] `json:"target_type"`

	// TargetUser is the user whose stream to display for this voice channel stream invite.
	TargetUser *User `json:"target_user"`

	// TargetApplication is the embedded application to open for this voice channel embedded application invite.
	TargetApplication *PartialApplication `json:"target_application"`

	// ApproximatePresenceCount is the approximate count of online members.
	ApproximatePresenceCount Optional[int] `json:"approximate_presence_count"`

	// ApproximateMemberCount is the approximate count of total members.
	ApproximateMemberCount Optional[int] `json:"approximate_member_count"`

	// ExpiresAt is the expiration date of this invite.
	ExpiresAt Optional[time.Time] `json:"expires_at"`

	// GuildScheduledEvent is the scheduled event data, present only when
	// the invite was fetched with a guild_scheduled_event_id.
	GuildScheduledEvent *GuildScheduledEvent `json:"guild_scheduled_event"`

	// Flags is the guild invite flags for guild invites.
	Flags Optional[GuildInviteFlags] `json:"flags"`
}

// InviteMetadata represents extra information about an invite, will extend the invite object.
//
// Reference: https://discord.com/developers/docs/resources/invite#invite-metadata-object
type InviteMetadata struct {
	// Uses is the number of times this invite has been used.
	Uses int `json:"uses"`

	// MaxUses is the max number of times this invite can be used.
	MaxUses int `json:"max_uses"`

	// MaxAge is the duration (in seconds) after which the invite expires.
	MaxAge int `json:"max_age"`

	// Temporary is whether this invite only grants temporary membership.
	Temporary bool `json:"temporary"`

	// CreatedAt is when this invite was created.
	CreatedAt time.Time `json:"created_at"`
}

type FullInvite struct {
	Invite
	InviteMetadata
}

// FetchInviteOptions contains parameters for fetching an invite.
type FetchInviteOptions struct {
	// WithCounts is whether the invite should contain approximate member counts.
	WithCounts bool

	// GuildScheduledEventID is the guild scheduled event to include with the invite.
	GuildScheduledEventID Snowflake
}
