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
	"runtime/debug"
	"sync"
)

// HandlerExecutionMode defines how event handlers are executed.
type HandlerExecutionMode int

const (
	// HandlerExecutionSync runs all handlers for an event sequentially.
	HandlerExecutionSync HandlerExecutionMode = iota
	// HandlerExecutionAsync runs the handlers for an event concurrently on
	// a WorkerPool and waits for all of them before the event is done.
	HandlerExecutionAsync
)

// rawEventHandler decodes and routes one dispatch payload to user code.
// Registered per event name; the decode step lives in the closure so
// different events can use different unmarshal strategies (plain
// struct tags for most, the sum-type dispatchers for channels and
// interactions).
type rawEventHandler func(shardID int, data []byte)

// dispatcher routes Gateway dispatch payloads to two places: the
// CacheManager (keeping cached entities in sync, unconditionally) and
// any handlers registered through the On* methods below.
//
// Registering handlers is safe to do concurrently with dispatching;
// both paths take the same mutex.
type dispatcher struct {
	logger   Logger
	cache    CacheManager
	mode     HandlerExecutionMode
	pool     WorkerPool
	mu       sync.RWMutex
	handlers map[string][]rawEventHandler
}

func newDispatcher(logger Logger, cache CacheManager, mode HandlerExecutionMode) *dispatcher {
	if logger == nil {
		logger = noopLogger{}
	}
	d := &dispatcher{
		logger:   logger,
		cache:    cache,
		mode:     mode,
		handlers: make(map[string][]rawEventHandler, 32),
	}
	if mode == HandlerExecutionAsync {
		d.pool = NewDefaultWorkerPool(logger)
	}
	return d
}

// Shutdown releases the dispatcher's worker pool, if one was started
// for HandlerExecutionAsync. Safe to call when no pool exists.
func (d *dispatcher) Shutdown() {
	if d.pool != nil {
		d.pool.Shutdown()
	}
}

func (d *dispatcher) addHandler(eventName string, h rawEventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], h)
}

// dispatch sends raw event JSON data to the cache and to every handler
// registered for eventName. It runs on the caller's goroutine and
// returns once the handlers are done, so a shard's events are handled
// one at a time in the order its read loop receives them.
func (d *dispatcher) dispatch(shardID int, eventName string, data []byte) {
	d.logger.WithField("shard_id", shardID).WithField("event", eventName).Debug("event dispatched")

	func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.WithField("event", eventName).
					WithField("shard_id", shardID).
					WithField("panic", r).
					WithField("stack", string(debug.Stack())).
					Error("recovered from panic while handling event")
			}
		}()

		d.updateCache(eventName, data)

		d.mu.RLock()
		handlers := append([]rawEventHandler(nil), d.handlers[eventName]...)
		d.mu.RUnlock()

		if d.mode == HandlerExecutionAsync && d.pool != nil {
			var wg sync.WaitGroup
			for _, h := range handlers {
				wg.Add(1)
				h := h
				if !d.pool.Submit(func() {
					defer wg.Done()
					h(shardID, data)
				}) {
					d.logger.WithField("event", eventName).Warn("dropped handler: worker pool queue full")
					wg.Done()
				}
			}
			wg.Wait()
			return
		}
		for _, h := range handlers {
			h(shardID, data)
		}
	}()
}

// on registers a handler decoding its payload with plain jsonUnmarshal
// into T, then invoking h with the result and its shardID field (if
// present) set. Used for every event whose wire shape needs no
// sum-type dispatch.
func on[T any](d *dispatcher, eventName string, h func(T)) {
	d.addHandler(eventName, func(shardID int, data []byte) {
		var evt T
		if err := jsonUnmarshal(data, &evt); err != nil {
			d.logger.WithField("event", eventName).Error("failed to decode event: " + err.Error())
			return
		}
		if s, ok := any(&evt).(interface{ setShardID(int) }); ok {
			s.setShardID(shardID)
		}
		h(evt)
	})
}

func (e *ReadyEvent) setShardID(id int)             { e.ShardID = id }
func (e *MessageCreateEvent) setShardID(id int)     { e.ShardID = id }
func (e *MessageUpdateEvent) setShardID(id int)     { e.ShardID = id }
func (e *MessageDeleteEvent) setShardID(id int)     { e.ShardID = id }
func (e *MessageDeleteBulkEvent) setShardID(id int) { e.ShardID = id }
func (e *GuildCreateEvent) setShardID(id int)       { e.ShardID = id }
func (e *GuildUpdateEvent) setShardID(id int)       { e.ShardID = id }
func (e *GuildDeleteEvent) setShardID(id int)       { e.ShardID = id }
func (e *GuildMemberAddEvent) setShardID(id int)    { e.ShardID = id }
func (e *GuildMemberUpdateEvent) setShardID(id int) { e.ShardID = id }
func (e *GuildMemberRemoveEvent) setShardID(id int) { e.ShardID = id }
func (e *GuildRoleCreateEvent) setShardID(id int)   { e.ShardID = id }
func (e *GuildRoleUpdateEvent) setShardID(id int)   { e.ShardID = id }
func (e *GuildRoleDeleteEvent) setShardID(id int)   { e.ShardID = id }
func (e *VoiceStateUpdateEvent) setShardID(id int)  { e.ShardID = id }
func (e *VoiceServerUpdateEvent) setShardID(id int) { e.ShardID = id }
func (e *PresenceUpdateEvent) setShardID(id int)    { e.ShardID = id }
func (e *TypingStartEvent) setShardID(id int)       { e.ShardID = id }
func (e *UserUpdateEvent) setShardID(id int)        { e.ShardID = id }

/*****************************
 *      Register Handlers
 *****************************/

func (d *dispatcher) OnReady(h func(ReadyEvent)) { on(d, "READY", h) }

func (d *dispatcher) OnMessageCreate(h func(MessageCreateEvent)) { on(d, "MESSAGE_CREATE", h) }
func (d *dispatcher) OnMessageUpdate(h func(MessageUpdateEvent)) { on(d, "MESSAGE_UPDATE", h) }
func (d *dispatcher) OnMessageDelete(h func(MessageDeleteEvent)) { on(d, "MESSAGE_DELETE", h) }
func (d *dispatcher) OnMessageDeleteBulk(h func(MessageDeleteBulkEvent)) {
	on(d, "MESSAGE_DELETE_BULK", h)
}

func (d *dispatcher) OnGuildCreate(h func(GuildCreateEvent)) { on(d, "GUILD_CREATE", h) }
func (d *dispatcher) OnGuildUpdate(h func(GuildUpdateEvent)) { on(d, "GUILD_UPDATE", h) }
func (d *dispatcher) OnGuildDelete(h func(GuildDeleteEvent)) { on(d, "GUILD_DELETE", h) }

func (d *dispatcher) OnGuildMemberAdd(h func(GuildMemberAddEvent)) { on(d, "GUILD_MEMBER_ADD", h) }
func (d *dispatcher) OnGuildMemberUpdate(h func(GuildMemberUpdateEvent)) {
	on(d, "GUILD_MEMBER_UPDATE", h)
}
func (d *dispatcher) OnGuildMemberRemove(h func(GuildMemberRemoveEvent)) {
	on(d, "GUILD_MEMBER_REMOVE", h)
}

func (d *dispatcher) OnGuildRoleCreate(h func(GuildRoleCreateEvent)) { on(d, "GUILD_ROLE_CREATE", h) }
func (d *dispatcher) OnGuildRoleUpdate(h func(GuildRoleUpdateEvent)) { on(d, "GUILD_ROLE_UPDATE", h) }
func (d *dispatcher) OnGuildRoleDelete(h func(GuildRoleDeleteEvent)) { on(d, "GUILD_ROLE_DELETE", h) }

// OnChannelCreate registers a handler for CHANNEL_CREATE. Unlike most
// events, channels are a sum type (text, voice, thread, ...), so this
// goes through ParseChannel rather than the generic on() helper.
func (d *dispatcher) OnChannelCreate(h func(ChannelCreateEvent)) {
	d.addHandler("CHANNEL_CREATE", func(shardID int, data []byte) {
		resolved, err := ParseChannel(data)
		if err != nil {
			d.logger.Error("failed to decode CHANNEL_CREATE: " + err.Error())
			return
		}
		h(ChannelCreateEvent{Channel: resolved.Channel, ShardID: shardID})
	})
}

func (d *dispatcher) OnChannelUpdate(h func(ChannelUpdateEvent)) {
	d.addHandler("CHANNEL_UPDATE", func(shardID int, data []byte) {
		resolved, err := ParseChannel(data)
		if err != nil {
			d.logger.Error("failed to decode CHANNEL_UPDATE: " + err.Error())
			return
		}
		h(ChannelUpdateEvent{Channel: resolved.Channel, ShardID: shardID})
	})
}

func (d *dispatcher) OnChannelDelete(h func(ChannelDeleteEvent)) {
	d.addHandler("CHANNEL_DELETE", func(shardID int, data []byte) {
		resolved, err := ParseChannel(data)
		if err != nil {
			d.logger.Error("failed to decode CHANNEL_DELETE: " + err.Error())
			return
		}
		h(ChannelDeleteEvent{Channel: resolved.Channel, ShardID: shardID})
	})
}

func (d *dispatcher) OnVoiceStateUpdate(h func(VoiceStateUpdateEvent)) {
	on(d, "VOICE_STATE_UPDATE", h)
}
func (d *dispatcher) OnVoiceServerUpdate(h func(VoiceServerUpdateEvent)) {
	on(d, "VOICE_SERVER_UPDATE", h)
}

func (d *dispatcher) OnPresenceUpdate(h func(PresenceUpdateEvent)) { on(d, "PRESENCE_UPDATE", h) }
func (d *dispatcher) OnTypingStart(h func(TypingStartEvent))       { on(d, "TYPING_START", h) }
func (d *dispatcher) OnUserUpdate(h func(UserUpdateEvent))         { on(d, "USER_UPDATE", h) }

// OnInteractionCreate registers a handler for INTERACTION_CREATE.
// Interactions are a sum type keyed by their "type" field, decoded via
// UnmarshalInteraction rather than the generic on() helper.
func (d *dispatcher) OnInteractionCreate(h func(InteractionCreateEvent)) {
	d.addHandler("INTERACTION_CREATE", func(shardID int, data []byte) {
		interaction, err := UnmarshalInteraction(data)
		if err != nil {
			d.logger.Error("failed to decode INTERACTION_CREATE: " + err.Error())
			return
		}
		h(InteractionCreateEvent{Interaction: interaction, ShardID: shardID})
	})
}

/*****************************
 *      Cache maintenance
 *****************************/

// updateCache keeps the CacheManager in sync with incoming dispatch
// events, independent of whatever handlers the user has registered.
// This mirrors how the cache stays correct even if the caller never
// calls On* for a given event at all.
func (d *dispatcher) updateCache(eventName string, data []byte) {
	if d.cache == nil {
		return
	}
	switch eventName {
	case "READY":
		var ready ReadyEvent
		if err := jsonUnmarshal(data, &ready); err == nil {
			d.cache.PutUser(ready.User)
		}

	case "GUILD_CREATE":
		var guild GatewayGuild
		if err := jsonUnmarshal(data, &guild); err == nil {
			d.cache.PutGuild(guild.Guild)
			for _, ch := range guild.Channels {
				d.cache.PutChannel(ch)
			}
			for _, m := range guild.Members {
				d.cache.PutMember(m)
			}
			for _, r := range guild.Roles {
				d.cache.PutRole(r)
			}
			for _, vs := range guild.VoiceStates {
				d.cache.PutVoiceState(vs)
			}
		}

	case "GUILD_UPDATE":
		var guild Guild
		if err := jsonUnmarshal(data, &guild); err == nil {
			d.cache.PutGuild(guild)
		}

	case "GUILD_DELETE":
		var evt GuildDeleteEvent
		if err := jsonUnmarshal(data, &evt); err == nil && !evt.Unavailable {
			d.cache.DelGuild(evt.ID)
			d.cache.DelGuildChannels(evt.ID)
			d.cache.DelGuildMembers(evt.ID)
		}

	case "CHANNEL_CREATE", "CHANNEL_UPDATE":
		if resolved, err := ParseChannel(data); err == nil {
			d.cache.PutChannel(resolved.Channel)
		}

	case "CHANNEL_DELETE":
		if resolved, err := ParseChannel(data); err == nil {
			d.cache.DelChannel(resolved.Channel.GetID())
		}

	case "GUILD_MEMBER_ADD", "GUILD_MEMBER_UPDATE":
		var member Member
		if err := jsonUnmarshal(data, &member); err == nil {
			d.cache.PutMember(member)
		}

	case "GUILD_MEMBER_REMOVE":
		var evt GuildMemberRemoveEvent
		if err := jsonUnmarshal(data, &evt); err == nil {
			d.cache.DelMember(evt.GuildID, evt.User.ID)
		}

	case "GUILD_ROLE_CREATE", "GUILD_ROLE_UPDATE":
		var evt GuildRoleCreateEvent
		if err := jsonUnmarshal(data, &evt); err == nil {
			d.cache.PutRole(evt.Role)
		}

	case "GUILD_ROLE_DELETE":
		var evt GuildRoleDeleteEvent
		if err := jsonUnmarshal(data, &evt); err == nil {
			d.cache.DelRole(evt.GuildID, evt.RoleID)
		}

	case "MESSAGE_CREATE", "MESSAGE_UPDATE":
		var message Message
		if err := jsonUnmarshal(data, &message); err == nil {
			d.cache.PutMessage(message)
		}

	case "MESSAGE_DELETE":
		var evt MessageDeleteEvent
		if err := jsonUnmarshal(data, &evt); err == nil {
			d.cache.DelMessage(evt.ID)
		}

	case "MESSAGE_DELETE_BULK":
		var evt MessageDeleteBulkEvent
		if err := jsonUnmarshal(data, &evt); err == nil {
			for _, id := range evt.IDs {
				d.cache.DelMessage(id)
			}
		}

	case "VOICE_STATE_UPDATE":
		var vs VoiceState
		if err := jsonUnmarshal(data, &vs); err == nil {
			if vs.ChannelID == 0 {
				d.cache.DelVoiceState(vs.GuildID, vs.UserID)
			} else {
				d.cache.PutVoiceState(vs)
			}
		}

	case "USER_UPDATE":
		var user User
		if err := jsonUnmarshal(data, &user); err == nil {
			d.cache.PutUser(user)
		}
	}
}
