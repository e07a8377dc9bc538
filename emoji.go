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
	"errors"
	"strings"
	"time"
)

// Emoji represents a custom emoji object used within a Discord guild.
//
// Reference: https://discord.com/developers/docs/resources/emoji#emoji-object
type Emoji struct {
	// ID is the unique Discord snowflake ID of the emoji.
	//
	// Optional: may be zero for unicode emojis.
	ID Snowflake `json:"id,omitempty"`

	// Name is the emoji's name.
	//
	// Optional: may be empty in deleted emojis.
	Name string `json:"name,omitempty"`

	// Roles is a list of role IDs allowed to use this emoji.
	Roles []Snowflake `json:"roles,omitempty"`

	// RequireColons indicates whether the emoji must be wrapped in colons to be used.
	RequireColons bool `json:"require_colons,omitempty"`

	// Managed indicates whether the emoji is managed by an integration.
	Managed bool `json:"managed,omitempty"`

	// Animated indicates whether the emoji is an animated emoji (.gif).
	Animated bool `json:"animated,omitempty"`

	// Available indicates whether the emoji can currently be used.
	Available bool `json:"available,omitempty"`
}

// Mention returns a Discord mention string for the emoji.
//
// Example output: "<:sliming:123456789012345678>"
func (e *Emoji) Mention() string {
	if e.ID == 0 { // no id == unicode emoji
		if e.RequireColons {
			return ":" + e.Name + ":"
		}
		return e.Name
	}
	mention := "<"
	if e.Animated {
		mention += "a"
	}
	mention += ":" + e.Name + ":" + e.ID.String() + ">"
	return mention
}

// String implements the fmt.Stringer interface.
func (e *Emoji) String() string {
	return e.Mention()
}

// ParseEmoji parses a Discord emoji mention string into an Emoji object.
//
// Supports:
//   - Custom emojis: <:name:id> or <a:name:id>
//   - Unicode emojis: just the string
func ParseEmoji(mention string) (Emoji, error) {
	if !strings.HasPrefix(mention, "<") || !strings.HasSuffix(mention, ">") {
		return Emoji{Name: mention}, nil
	}

	content := mention[1 : len(mention)-1]
	parts := strings.Split(content, ":")

	if len(parts) != 3 {
		return Emoji{}, errors.New("invalid emoji mention format")
	}
	if parts[0] != "" && parts[0] != "a" {
		return Emoji{}, errors.New("invalid emoji prefix")
	}

	animated := parts[0] == "a"
	name := parts[1]
	id, err := ParseSnowflake(parts[2])
	if err != nil {
		return Emoji{}, err
	}

	return Emoji{
		ID:            id,
		Name:          name,
		Animated:      animated,
		RequireColons: true,
	}, nil
}

// CreatedAt returns the time this emoji was created at, the zero time
// for unicode emojis.
func (e *Emoji) CreatedAt() time.Time {
	if e.ID == 0 {
		return time.Time{}
	}
	return e.ID.Timestamp()
}

// URL returns the URL to the emoji's image in its natural format.
func (e *Emoji) URL() string {
	format := EmojiFormatPNG
	if e.Animated {
		format = EmojiFormatGIF
	}
	return EmojiURL(e.ID, format, ImageSize256)
}

// URLWith returns the URL to the emoji's image, allowing explicit
// specification of image format and size.
func (e *Emoji) URLWith(format EmojiFormat, size ImageSize) string {
	return EmojiURL(e.ID, format, size)
}

// PartialEmoji is the reduced emoji shape used in a poll's PollMedia
// object for poll answers and poll creation requests.
//
// When creating a poll answer, provide only ID for a custom emoji or
// only Name for a Unicode emoji.
//
// Reference: https://discord.com/developers/docs/resources/poll#poll-media-object-poll-media-object-structure
type PartialEmoji struct {
	// ID is the unique identifier for a custom emoji.
	//
	// Optional: 0 for Unicode emojis or when not provided in a response.
	ID Snowflake `json:"id,omitempty"`

	// Name is the name of the emoji, used for Unicode emojis (e.g. "😊").
	//
	// Optional: empty for custom emojis or when not provided in a response.
	Name string `json:"name,omitempty"`

	// Animated indicates whether the emoji is animated.
	Animated bool `json:"animated"`
}
