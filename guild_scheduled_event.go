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

// GuildScheduledEventPrivacyLevel represents Guild Scheduled Event Privacy Levels types.
//
// Reference: https://discord.com/developers/docs/resources/guild-scheduled-event#guild-scheduled-event-object-guild-scheduled-event-privacy-level
type GuildScheduledEventPrivacyLevel int

const (
	// The scheduled event is only accessible to guild members.
	GuildScheduledEventPrivacyLevelGuildOnly GuildScheduledEventPrivacyLevel = 2
)

// Is returns true if the guild scheduled event's level matches the provided one.
func (l GuildScheduledEventPrivacyLevel) Is(privacyLevel GuildScheduledEventPrivacyLevel) bool {
	return l == privacyLevel
}

// GuildScheduledEventEntityType represents the entity type of a guild scheduled event.
//
// Reference: https://discord.com/developers/docs/resources/guild-scheduled-event#guild-scheduled-event-object-guild-scheduled-event-entity-types
type GuildScheduledEventEntityType int

const (
	GuildScheduledEventEntityTypeStageInstance GuildScheduledEventEntityType = 1
	GuildScheduledEventEntityTypeVoice         GuildScheduledEventEntityType = 2
	GuildScheduledEventEntityTypeExternal      GuildScheduledEventEntityType = 3
)

// Is returns true if the fuild scheduled event entity's Type matches the provided one.
func (t GuildScheduledEventEntityType) Is(typ GuildScheduledEventEntityType) bool {
	return t == typ
}

// GuildScheduledEventStatus represents the status of a guild scheduled event.
//
// Reference: https://discord.com/developers/docs/resources/guild-scheduled-event#guild-scheduled-event-object-guild-scheduled-event-status
type GuildScheduledEventStatus int

const (
	GuildScheduledEventStatusScheduled GuildScheduledEventStatus = 1
	GuildScheduledEventStatusActive    GuildScheduledEventStatus = 2
	GuildScheduledEventStatusCompleted GuildScheduledEventStatus = 3
	GuildScheduledEventStatusCanceled  GuildScheduledEventStatus = 4
)

// Is returns true if the guild scheduled event's status matches the provided one.
func (s GuildScheduledEventStatus) Is(status GuildScheduledEventStatus) bool {
	return s == status
}

// GuildScheduledEventEntityMetadata holds fields specific to EXTERNAL
// scheduled events, where there is no voice/stage channel to host them.
type GuildScheduledEventEntityMetadata struct {
	Location string `json:"location,omitempty"`
}

// GuildScheduledEvent is a representation of a scheduled event in a guild.
//
// Reference: https://discord.com/developers/docs/resources/guild-scheduled-event#guild-scheduled-event-object
type GuildScheduledEvent struct {
	// ID is the id of the scheduled event.
	ID Snowflake `json:"id"`

	// GuildID is the guild id which the scheduled event belongs to.
	GuildID Snowflake `json:"guild_id"`

	// ChannelID is the channel id in which the scheduled event will be hosted, or null if scheduled entity type is EXTERNAL
	ChannelID Snowflake `json:"channel_id"`

	// CreatorID is the id of the user that created the scheduled event.
	CreatorID Snowflake `json:"creator_id,omitempty"`

	// Name is the name of the scheduled event (1-100 characters).
	Name string `json:"name"`

	// Description is the description of the scheduled event (1-1000 characters).
	Description Optional[string] `json:"description"`

	// ScheduledStartTime is the time the scheduled event will start.
	ScheduledStartTime time.Time `json:"scheduled_start_time"`

	// ScheduledEndTime is the time the scheduled event will end, required if EntityType is EXTERNAL.
	ScheduledEndTime Optional[time.Time] `json:"scheduled_end_time"`

	// PrivacyLevel is the privacy level of the scheduled event.
	PrivacyLevel GuildScheduledEventPrivacyLevel `json:"privacy_level"`

	// Status is the status of the scheduled event.
	Status GuildScheduledEventStatus `json:"status"`

	// EntityType is the type of the scheduled event.
	EntityType GuildScheduledEventEntityType `json:"entity_type"`

	// EntityID is the id of an entity associated with the event.
	EntityID Snowflake `json:"entity_id,omitempty"`

	// EntityMetadata holds additional metadata for the scheduled event,
	// populated only for EXTERNAL events.
	EntityMetadata *GuildScheduledEventEntityMetadata `json:"entity_metadata"`

	// Creator is the user that created the scheduled event.
	Creator *User `json:"creator,omitempty"`

	// UserCount is the number of users subscribed to the scheduled event.
	UserCount Optional[int] `json:"user_count"`

	// Image is the cover image hash of the scheduled event.
	Image string `json:"image,omitempty"`
}

// CreatedAt returns the time this scheduled event was created at, derived from its snowflake ID.
func (e *GuildScheduledEvent) CreatedAt() time.Time {
	return e.ID.Timestamp()
}
