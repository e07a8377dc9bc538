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

import "testing"

func TestUnmarshalInteraction_Ping(t *testing.T) {
	data := []byte(`{"id":"1","application_id":"2","type":1,"token":"tok","version":1}`)

	i, err := UnmarshalInteraction(data)
	if err != nil {
		t.Fatalf("UnmarshalInteraction() error: %v", err)
	}

	if _, ok := i.(*PingInteraction); !ok {
		t.Fatalf("expected *PingInteraction, got %T", i)
	}
	if i.GetType() != InteractionTypePing {
		t.Errorf("GetType() = %v, want InteractionTypePing", i.GetType())
	}
}

func TestUnmarshalInteraction_ApplicationCommand(t *testing.T) {
	data := []byte(`{
		"id": "100",
		"application_id": "200",
		"type": 2,
		"token": "tok",
		"version": 1,
		"locale": "en-US",
		"app_permissions": "8",
		"context": 0,
		"authorizing_integration_owners": {"0": "300"},
		"data": {
			"id": "400",
			"name": "ping",
			"type": 1,
			"options": [
				{"name": "target", "type": 3, "value": "hello"}
			]
		}
	}`)

	i, err := UnmarshalInteraction(data)
	if err != nil {
		t.Fatalf("UnmarshalInteraction() error: %v", err)
	}

	cmd, ok := i.(*ApplicationCommandInteraction)
	if !ok {
		t.Fatalf("expected *ApplicationCommandInteraction, got %T", i)
	}
	if cmd.Locale != LocaleEnglishUS {
		t.Errorf("Locale = %q, want %q", cmd.Locale, LocaleEnglishUS)
	}
	if cmd.AppPermissions == nil || *cmd.AppPermissions != 8 {
		t.Errorf("AppPermissions = %v, want 8", cmd.AppPermissions)
	}
	owner, ok := cmd.AuthorizingIntegrationOwners[ApplicationIntegrationTypeGuildInstall]
	if !ok || owner != 300 {
		t.Errorf("AuthorizingIntegrationOwners[GuildInstall] = %v, want 300", owner)
	}
	if cmd.Data.Name != "ping" {
		t.Errorf("Data.Name = %q, want %q", cmd.Data.Name, "ping")
	}
	if len(cmd.Data.Options) != 1 || cmd.Data.Options[0].Name != "target" {
		t.Fatalf("Data.Options = %+v, want one option named target", cmd.Data.Options)
	}
}

func TestUnmarshalInteraction_Component(t *testing.T) {
	data := []byte(`{
		"id": "1", "application_id": "2", "type": 3, "token": "tok", "version": 1,
		"data": {"custom_id": "confirm_btn", "component_type": 2},
		"message": {"id": "500", "channel_id": "600", "content": ""}
	}`)

	i, err := UnmarshalInteraction(data)
	if err != nil {
		t.Fatalf("UnmarshalInteraction() error: %v", err)
	}

	comp, ok := i.(*ComponentInteraction)
	if !ok {
		t.Fatalf("expected *ComponentInteraction, got %T", i)
	}
	if comp.Data.CustomID != "confirm_btn" {
		t.Errorf("Data.CustomID = %q, want %q", comp.Data.CustomID, "confirm_btn")
	}
	if comp.Message.ID != 500 {
		t.Errorf("Message.ID = %v, want 500", comp.Message.ID)
	}
}

func TestUnmarshalInteraction_ModalSubmit(t *testing.T) {
	data := []byte(`{
		"id": "1", "application_id": "2", "type": 5, "token": "tok", "version": 1,
		"data": {"custom_id": "feedback_modal", "components": [{"type":1,"components":[]}]}
	}`)

	i, err := UnmarshalInteraction(data)
	if err != nil {
		t.Fatalf("UnmarshalInteraction() error: %v", err)
	}

	modal, ok := i.(*ModalSubmitInteraction)
	if !ok {
		t.Fatalf("expected *ModalSubmitInteraction, got %T", i)
	}
	if modal.Data.CustomID != "feedback_modal" {
		t.Errorf("Data.CustomID = %q, want %q", modal.Data.CustomID, "feedback_modal")
	}
	if len(modal.Data.RawComponents) != 1 {
		t.Errorf("len(Data.RawComponents) = %d, want 1", len(modal.Data.RawComponents))
	}
}

func TestUnmarshalInteraction_UnknownType(t *testing.T) {
	data := []byte(`{"id":"1","application_id":"2","type":99,"token":"tok","version":1}`)

	if _, err := UnmarshalInteraction(data); err == nil {
		t.Fatal("expected error for unknown interaction type, got nil")
	}
}
