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
	"sync"
	"testing"
	"time"
)

func TestDispatcher_OnMessageCreate(t *testing.T) {
	d := newDispatcher(nil, nil, HandlerExecutionSync)

	var got MessageCreateEvent
	done := make(chan struct{})
	d.OnMessageCreate(func(e MessageCreateEvent) {
		got = e
		close(done)
	})

	payload := []byte(`{"id":"1","channel_id":"2","content":"hi"}`)
	d.dispatch(3, "MESSAGE_CREATE", payload)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	if got.Content != "hi" {
		t.Errorf("Content = %q, want %q", got.Content, "hi")
	}
	if got.ShardID != 3 {
		t.Errorf("ShardID = %d, want 3", got.ShardID)
	}
}

func TestDispatcher_UpdateCacheRunsWithoutHandlers(t *testing.T) {
	cache := NewInMemoryCacheManager(CacheFlagsAll)
	d := newDispatcher(nil, cache, HandlerExecutionSync)

	payload := []byte(`{"id":"42","username":"bot","discriminator":"0000"}`)
	d.dispatch(0, "USER_UPDATE", payload)

	waitForCache(t, func() bool {
		u, ok := cache.GetUser(42).Get()
		return ok && u.Username == "bot"
	})
}

func TestDispatcher_GuildCreatePopulatesCache(t *testing.T) {
	cache := NewInMemoryCacheManager(CacheFlagsAll)
	d := newDispatcher(nil, cache, HandlerExecutionSync)

	payload := []byte(`{
		"id": "100",
		"name": "test guild",
		"channels": [],
		"members": [],
		"roles": [],
		"voice_states": []
	}`)
	d.dispatch(0, "GUILD_CREATE", payload)

	waitForCache(t, func() bool {
		g, ok := cache.GetGuild(100).Get()
		return ok && g.Name == "test guild"
	})
}

func TestDispatcher_HandlerExecutionAsyncRunsAllHandlers(t *testing.T) {
	d := newDispatcher(nil, nil, HandlerExecutionAsync)
	defer d.Shutdown()

	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		d.OnReady(func(ReadyEvent) {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}

	d.dispatch(0, "READY", []byte(`{"session_id":"abc"}`))

	waitForCache(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count == 5
	})
}

// waitForCache polls cond until it is true or a short timeout elapses;
// dispatch returns after the cache update and the handlers have run,
// so cond normally holds on the first poll.
func waitForCache(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}
