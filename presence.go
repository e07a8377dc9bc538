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

// ClientStatus breaks a user's presence status down per client platform.
// A platform key is absent when the user is not active on it.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#client-status-object
type ClientStatus struct {
	Desktop string `json:"desktop,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
	Web     string `json:"web,omitempty"`
}

// RichActivity is the inbound shape of a single activity entry on a
// PresenceUpdate event; it carries considerably more detail than the
// outbound Activity used for the bot's own presence.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#activity-object
type RichActivity struct {
	Name          string            `json:"name"`
	Type          ActivityType      `json:"type"`
	URL           string            `json:"url,omitempty"`
	CreatedAt     int64             `json:"created_at"`
	ApplicationID Snowflake         `json:"application_id,omitempty"`
	Details       Optional[string]  `json:"details"`
	State         Optional[string]  `json:"state"`
	Emoji         *PartialEmoji     `json:"emoji"`
	Instance      bool              `json:"instance,omitempty"`
	Flags         int               `json:"flags,omitempty"`
}

// PartialUser is the reduced user shape Discord sends in a
// PresenceUpdate event: only ID is guaranteed present, since the
// payload represents a presence delta rather than a full user fetch.
type PartialUser struct {
	ID Snowflake `json:"id"`
}

// PresenceUpdate is the inbound PRESENCE_UPDATE event payload: a
// user's status changed within a guild the bot shares with them.
// It requires the GuildPresences privileged intent.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#presence-update
type PresenceUpdate struct {
	User         PartialUser    `json:"user"`
	GuildID      Snowflake      `json:"guild_id"`
	Status       PresenceStatus `json:"status"`
	Activities   []RichActivity `json:"activities"`
	ClientStatus ClientStatus   `json:"client_status"`
}
