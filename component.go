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

// ComponentType is the discriminator tag of a message component.
//
// Reference: https://discord.com/developers/docs/components/reference#component-object-component-types
type ComponentType int

const (
	ComponentTypeActionRow        ComponentType = 1
	ComponentTypeButton           ComponentType = 2
	ComponentTypeStringSelect     ComponentType = 3
	ComponentTypeTextInput        ComponentType = 4
	ComponentTypeUserSelect       ComponentType = 5
	ComponentTypeRoleSelect       ComponentType = 6
	ComponentTypeMentionableSelect ComponentType = 7
	ComponentTypeChannelSelect    ComponentType = 8
	ComponentTypeSection          ComponentType = 9
	ComponentTypeTextDisplay      ComponentType = 10
	ComponentTypeThumbnail        ComponentType = 11
	ComponentTypeMediaGallery     ComponentType = 12
	ComponentTypeFile             ComponentType = 13
	ComponentTypeSeparator        ComponentType = 14
	ComponentTypeContainer        ComponentType = 17
)

// Component is implemented by every concrete message component; the
// shared surface is deliberately small since the outbound/inbound
// shape per type otherwise has little in common.
type Component interface {
	GetType() ComponentType
}

// ComponentBase carries the fields common to every component.
type ComponentBase struct {
	Type ComponentType `json:"type"`
	ID   int           `json:"id,omitempty"`
}

// GetType returns the component's discriminator.
func (c ComponentBase) GetType() ComponentType { return c.Type }

// ButtonStyle is the visual style of a button component.
type ButtonStyle int

const (
	ButtonStylePrimary   ButtonStyle = 1
	ButtonStyleSecondary ButtonStyle = 2
	ButtonStyleSuccess   ButtonStyle = 3
	ButtonStyleDanger    ButtonStyle = 4
	ButtonStyleLink      ButtonStyle = 5
	ButtonStylePremium   ButtonStyle = 6
)

// Button is a clickable component, either custom-id driven or a link.
//
// Reference: https://discord.com/developers/docs/components/reference#button
type Button struct {
	ComponentBase
	Style    ButtonStyle `json:"style"`
	Label    string      `json:"label,omitempty"`
	Emoji    *PartialEmoji `json:"emoji,omitempty"`
	CustomID string      `json:"custom_id,omitempty"`
	SKUID    Snowflake   `json:"sku_id,omitempty"`
	URL      string      `json:"url,omitempty"`
	Disabled bool        `json:"disabled,omitempty"`
}

// SelectOption is one choice within a string select menu.
type SelectOption struct {
	Label       string        `json:"label"`
	Value       string        `json:"value"`
	Description string        `json:"description,omitempty"`
	Emoji       *PartialEmoji `json:"emoji,omitempty"`
	Default     bool          `json:"default,omitempty"`
}

// SelectDefaultValueType distinguishes the entity kind of an
// auto-populated select default value (user/role/channel selects).
type SelectDefaultValueType string

const (
	SelectDefaultValueUser    SelectDefaultValueType = "user"
	SelectDefaultValueRole    SelectDefaultValueType = "role"
	SelectDefaultValueChannel SelectDefaultValueType = "channel"
)

// SelectDefaultValue pre-selects an entity in a user/role/channel/
// mentionable select.
type SelectDefaultValue struct {
	ID   Snowflake              `json:"id"`
	Type SelectDefaultValueType `json:"type"`
}

// SelectMenu covers every select component type: string, user, role,
// mentionable, and channel selects share this shape, differing only
// in which optional fields they populate.
//
// Reference: https://discord.com/developers/docs/components/reference#string-select
type SelectMenu struct {
	ComponentBase
	CustomID      string               `json:"custom_id"`
	Options       []SelectOption       `json:"options,omitempty"`
	ChannelTypes  []ChannelType        `json:"channel_types,omitempty"`
	Placeholder   string               `json:"placeholder,omitempty"`
	DefaultValues []SelectDefaultValue `json:"default_values,omitempty"`
	MinValues     Optional[int]        `json:"min_values"`
	MaxValues     Optional[int]        `json:"max_values"`
	Disabled      bool                 `json:"disabled,omitempty"`
}

// TextInputStyle is the visual style of a text input (modal-only) component.
type TextInputStyle int

const (
	TextInputStyleShort     TextInputStyle = 1
	TextInputStyleParagraph TextInputStyle = 2
)

// TextInput is a modal-only free-text field.
//
// Reference: https://discord.com/developers/docs/components/reference#text-input
type TextInput struct {
	ComponentBase
	CustomID    string         `json:"custom_id"`
	Style       TextInputStyle `json:"style"`
	Label       string         `json:"label"`
	MinLength   Optional[int]  `json:"min_length"`
	MaxLength   Optional[int]  `json:"max_length"`
	Required    bool           `json:"required,omitempty"`
	Value       string         `json:"value,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// ActionRow groups up to five interactive components on one row.
// RawChildren holds each child's raw JSON so callers can dispatch
// decoding with ParseComponent without this package needing to know
// every future component type up front.
type ActionRow struct {
	ComponentBase
	RawChildren []RawJSON `json:"components"`
}

// TextDisplay renders markdown text as a components-v2 block.
type TextDisplay struct {
	ComponentBase
	Content string `json:"content"`
}

// componentTypePeek extracts only the discriminator field to decide
// which concrete type to allocate.
type componentTypePeek struct {
	Type ComponentType `json:"type"`
}

// ParseComponent decodes a single raw component by its type
// discriminator.
func ParseComponent(buf []byte) (Component, error) {
	var peek componentTypePeek
	if err := jsonUnmarshal(buf, &peek); err != nil {
		return nil, newError(KindJSON, err)
	}

	switch peek.Type {
	case ComponentTypeButton:
		c := new(Button)
		if err := jsonUnmarshal(buf, c); err != nil {
			return nil, newError(KindJSON, err)
		}
		return c, nil
	case ComponentTypeStringSelect, ComponentTypeUserSelect, ComponentTypeRoleSelect,
		ComponentTypeMentionableSelect, ComponentTypeChannelSelect:
		c := new(SelectMenu)
		if err := jsonUnmarshal(buf, c); err != nil {
			return nil, newError(KindJSON, err)
		}
		return c, nil
	case ComponentTypeTextInput:
		c := new(TextInput)
		if err := jsonUnmarshal(buf, c); err != nil {
			return nil, newError(KindJSON, err)
		}
		return c, nil
	case ComponentTypeActionRow:
		c := new(ActionRow)
		if err := jsonUnmarshal(buf, c); err != nil {
			return nil, newError(KindJSON, err)
		}
		return c, nil
	case ComponentTypeTextDisplay:
		c := new(TextDisplay)
		if err := jsonUnmarshal(buf, c); err != nil {
			return nil, newError(KindJSON, err)
		}
		return c, nil
	default:
		return nil, newError(KindNotImplemented, nil)
	}
}
