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
	"time"

	"github.com/bytedance/sonic"
)

type InteractionType int

const (
	InteractionTypePing InteractionType = iota + 1
	InteractionTypeApplicationCommand
	InteractionTypeComponent
	InteractionTypeAutocomplete
	InteractionTypeModalSubmit
)

type InteractionContextType int

const (
	InteractionContextTypeGuild InteractionContextType = iota
	InteractionContextTypeBotDM
	InteractionContextTypePrivateChannel
)

// ApplicationIntegrationType distinguishes a guild-scoped application
// install from a user-scoped one.
//
// Reference: https://discord.com/developers/docs/resources/application#application-object-application-integration-types
type ApplicationIntegrationType int

const (
	ApplicationIntegrationTypeGuildInstall ApplicationIntegrationType = iota
	ApplicationIntegrationTypeUserInstall
)

// EntitlementType describes what granted an entitlement.
//
// Reference: https://discord.com/developers/docs/resources/entitlement#entitlement-object-entitlement-types
type EntitlementType int

const (
	EntitlementTypePurchase EntitlementType = iota + 1
	EntitlementTypePremiumSubscription
	EntitlementTypeDeveloperGift
	EntitlementTypeTestModePurchase
	EntitlementTypeFreePurchase
	EntitlementTypeUserGift
	EntitlementTypePremiumPurchase
	EntitlementTypeApplicationSubscription
)

// Entitlement represents that a user or guild has access to a premium
// SKU of the bot's application.
//
// Reference: https://discord.com/developers/docs/resources/entitlement#entitlement-object
type Entitlement struct {
	ID            Snowflake       `json:"id"`
	SkuID         Snowflake       `json:"sku_id"`
	ApplicationID Snowflake       `json:"application_id"`
	UserID        Snowflake       `json:"user_id,omitempty"`
	Type          EntitlementType `json:"type"`
	Deleted       bool            `json:"deleted"`
	StartsAt      *time.Time      `json:"starts_at,omitempty"`
	EndsAt        *time.Time      `json:"ends_at,omitempty"`
	GuildID       Snowflake       `json:"guild_id,omitempty"`
	Consumed      bool            `json:"consumed,omitempty"`
}

type InteractionGuild struct {
	ID       Snowflake      `json:"id"`
	Locale   Locale         `json:"locale"`
	Features []GuildFeature `json:"features"`
}

type Interaction interface {
	GetID() Snowflake
	GetType() InteractionType
	GetApplicationID() Snowflake
	GetToken() string
	GetVersion() int
}

type InteractionFields struct {
	ID            Snowflake       `json:"id"`
	Type          InteractionType `json:"type"`
	ApplicationID Snowflake       `json:"application_id"`
	Token         string          `json:"token"`
	Version       int             `json:"version"`
}

func (i *InteractionFields) GetID() Snowflake {
	return i.ID
}

func (i *InteractionFields) GetType() InteractionType {
	return i.Type
}

func (i *InteractionFields) GetApplicationID() Snowflake {
	return i.ApplicationID
}

func (i *InteractionFields) GetToken() string {
	return i.Token
}

func (i *InteractionFields) GetVersion() int {
	return i.Version
}

type PingInteraction struct {
	InteractionFields
}

// ResolvedOptionData is the user-supplied value of one application
// command option, as received in an interaction; Resolved entities
// referenced by snowflake-typed options (user/role/channel/mentionable)
// live in ApplicationCommandInteractionData.Resolved, keyed by the
// same ID this option carries.
type ResolvedOptionData struct {
	Name    string                        `json:"name"`
	Type    ApplicationCommandOptionType  `json:"type"`
	Value   RawJSON                       `json:"value,omitempty"`
	Options []ResolvedOptionData          `json:"options,omitempty"`
	Focused bool                          `json:"focused,omitempty"`
}

// ResolvedData holds the full objects for any user/role/channel/
// message/attachment referenced by ID in an interaction's options.
type ResolvedData struct {
	Users       map[Snowflake]User            `json:"users,omitempty"`
	Members     map[Snowflake]ResolvedMember  `json:"members,omitempty"`
	Roles       map[Snowflake]Role            `json:"roles,omitempty"`
	Channels    map[Snowflake]ResolvedChannel `json:"channels,omitempty"`
	Messages    map[Snowflake]Message         `json:"messages,omitempty"`
	Attachments map[Snowflake]Attachment      `json:"attachments,omitempty"`
}

// ApplicationCommandInteractionData is the "data" payload of a slash
// command or context-menu invocation.
type ApplicationCommandInteractionData struct {
	ID       Snowflake                    `json:"id"`
	Name     string                       `json:"name"`
	Type     ApplicationCommandType       `json:"type"`
	Resolved ResolvedData                 `json:"resolved"`
	Options  []ResolvedOptionData         `json:"options,omitempty"`
	GuildID  Snowflake                    `json:"guild_id,omitempty"`
	TargetID Snowflake                    `json:"target_id,omitempty"`
}

type ApplicationCommandInteraction struct {
	InteractionFields
	Data                         ApplicationCommandInteractionData        `json:"data"`
	Guild                        *InteractionGuild                        `json:"guild,omitempty"`
	Channel                      ResolvedChannel                          `json:"channel"`
	Locale                       Locale                                   `json:"locale"`
	Member                       *ResolvedMember                          `json:"member,omitempty"`
	User                         *User                                    `json:"user,omitempty"`
	AppPermissions               *Permissions                             `json:"app_permissions,omitempty"`
	Entitlements                 []Entitlement                            `json:"entitlements"`
	AuthorizingIntegrationOwners map[ApplicationIntegrationType]Snowflake `json:"authorizing_integration_owners"`
	Context                      InteractionContextType                   `json:"context"`
	AttachmentSizeLimit          int                                      `json:"attachment_size_limit"`
}

// MessageComponentInteractionData is the "data" payload of a message
// component click (button or select menu).
type MessageComponentInteractionData struct {
	CustomID      string        `json:"custom_id"`
	ComponentType ComponentType `json:"component_type"`
	Values        []string      `json:"values,omitempty"`
	Resolved      ResolvedData  `json:"resolved"`
}

type ComponentInteraction struct {
	InteractionFields
	Data                         MessageComponentInteractionData          `json:"data"`
	Guild                        *InteractionGuild                        `json:"guild,omitempty"`
	Channel                      ResolvedChannel                          `json:"channel"`
	Locale                       Locale                                   `json:"locale"`
	Member                       *ResolvedMember                          `json:"member,omitempty"`
	User                         *User                                    `json:"user,omitempty"`
	Message                      Message                                  `json:"message"`
	AppPermissions               *Permissions                             `json:"app_permissions,omitempty"`
	AuthorizingIntegrationOwners map[ApplicationIntegrationType]Snowflake `json:"authorizing_integration_owners"`
	Context                      InteractionContextType                   `json:"context"`
}

type AutoCompleteInteraction struct {
	InteractionFields
	Data    ApplicationCommandInteractionData `json:"data"`
	Guild   *InteractionGuild                 `json:"guild,omitempty"`
	Channel ResolvedChannel                   `json:"channel"`
	Locale  Locale                            `json:"locale"`
	Member  *ResolvedMember                   `json:"member,omitempty"`
	User    *User                             `json:"user,omitempty"`
}

// ModalSubmitInteractionData is the "data" payload of a modal submit.
// RawComponents holds the raw action-row trees; parse each through
// ParseComponent, the same lazy-decode approach Message.RawComponents
// uses for the same reason: components are a sum type keyed by "type".
type ModalSubmitInteractionData struct {
	CustomID      string    `json:"custom_id"`
	RawComponents []RawJSON `json:"components"`
}

type ModalSubmitInteraction struct {
	InteractionFields
	Data                         ModalSubmitInteractionData                `json:"data"`
	Guild                        *InteractionGuild                        `json:"guild,omitempty"`
	Channel                      ResolvedChannel                           `json:"channel"`
	Locale                       Locale                                    `json:"locale"`
	Member                       *ResolvedMember                           `json:"member,omitempty"`
	User                         *User                                     `json:"user,omitempty"`
	Message                      *Message                                 `json:"message,omitempty"`
	AppPermissions               *Permissions                              `json:"app_permissions,omitempty"`
	AuthorizingIntegrationOwners map[ApplicationIntegrationType]Snowflake  `json:"authorizing_integration_owners"`
	Context                      InteractionContextType                    `json:"context"`
}

// UnmarshalInteraction decodes an INTERACTION_CREATE payload into its
// concrete Interaction type, switching on the "type" discriminator the
// same way ParseChannel and ParseComponent switch on "type".
func UnmarshalInteraction(buf []byte) (Interaction, error) {
	var meta struct {
		Type InteractionType `json:"type"`
	}
	if err := sonic.Unmarshal(buf, &meta); err != nil {
		return nil, err
	}

	switch meta.Type {
	case InteractionTypePing:
		var i PingInteraction
		return &i, sonic.Unmarshal(buf, &i)
	case InteractionTypeApplicationCommand:
		var i ApplicationCommandInteraction
		return &i, sonic.Unmarshal(buf, &i)
	case InteractionTypeComponent:
		var i ComponentInteraction
		return &i, sonic.Unmarshal(buf, &i)
	case InteractionTypeAutocomplete:
		var i AutoCompleteInteraction
		return &i, sonic.Unmarshal(buf, &i)
	case InteractionTypeModalSubmit:
		var i ModalSubmitInteraction
		return &i, sonic.Unmarshal(buf, &i)
	default:
		return nil, errors.New("unknown interaction type")
	}
}
