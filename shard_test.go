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

func newTestShard(t *testing.T) (*Shard, *dispatcher) {
	t.Helper()
	d := newDispatcher(noopLogger{}, nil, HandlerExecutionSync)
	s := newShard(0, 1, "tok", 0, noopLogger{}, d, nil, false, IdentifyProperties{})
	return s, d
}

// waitForCondition polls cond until it's true or the timeout elapses.
func waitForCondition(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !cond() {
		t.Fatal("condition not met before timeout")
	}
}

func TestShard_HandleGatewayPayload_DropsDuplicateAndStaleSequences(t *testing.T) {
	s, d := newTestShard(t)

	var mu sync.Mutex
	var seen []int64
	d.addHandler("TEST_EVENT", func(shardID int, data []byte) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.seq.Load())
	})

	// Feed sequence [1,2,2,1,3]: only strictly-increasing observations
	// may reach the dispatcher, i.e. dispatched seqs end up [1,2,3].
	for _, seq := range []int64{1, 2, 2, 1, 3} {
		s.handleGatewayPayload(gatewayPayload{
			Op: gatewayOpcodeDispatch,
			T:  "TEST_EVENT",
			S:  seq,
			D:  RawJSON(`{}`),
		})
	}

	waitForCondition(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 3
	})

	mu.Lock()
	defer mu.Unlock()
	want := []int64{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("dispatched seqs = %v, want %v", seen, want)
	}
	for i, v := range want {
		if seen[i] != v {
			t.Errorf("dispatched seqs = %v, want %v", seen, want)
			break
		}
	}
}

func TestShard_HandleGatewayPayload_NonDispatchOpcodesIgnoreDedup(t *testing.T) {
	s, _ := newTestShard(t)

	// A HEARTBEAT_ACK (op 11) carries no dispatch and no S: sequence
	// tracking must stay where it was and nothing is routed to handlers.
	s.handleGatewayPayload(gatewayPayload{Op: gatewayOpcodeHeartbeatACK})
	if s.seq.Load() != 0 {
		t.Errorf("seq = %d, want 0 (HEARTBEAT_ACK carries no S)", s.seq.Load())
	}
}

func TestShard_ApplyCloseCode_FatalStopsReconnect(t *testing.T) {
	s, _ := newTestShard(t)
	s.sessionID = "abc"
	s.seq.Store(5)

	if fatal := s.applyCloseCode(4004); !fatal {
		t.Error("applyCloseCode(4004) = false, want true (fatal)")
	}
	if s.State() != ShardStateDisconnected {
		t.Errorf("state = %v, want ShardStateDisconnected", s.State())
	}
	if s.sessionID != "abc" || s.seq.Load() != 5 {
		t.Error("fatal close must not touch session state, it just stops the shard")
	}
}

func TestShard_ApplyCloseCode_NonResumableClearsSession(t *testing.T) {
	for _, code := range []int{4007, 4009} {
		s, _ := newTestShard(t)
		s.sessionID = "abc"
		s.resumeURL = "wss://example.com/resume"
		s.seq.Store(5)

		if fatal := s.applyCloseCode(code); fatal {
			t.Errorf("applyCloseCode(%d) = true, want false (reconnect must still be attempted)", code)
		}
		if s.sessionID != "" || s.resumeURL != "" || s.seq.Load() != 0 {
			t.Errorf("close code %d must clear session/resumeURL/seq so the next attempt re-Identifies", code)
		}
	}
}

func TestShard_ApplyCloseCode_ResumableLeavesSessionIntact(t *testing.T) {
	s, _ := newTestShard(t)
	s.sessionID = "abc"
	s.resumeURL = "wss://example.com/resume"
	s.seq.Store(5)

	if fatal := s.applyCloseCode(4000); fatal {
		t.Error("applyCloseCode(4000) = true, want false")
	}
	if s.sessionID != "abc" || s.resumeURL == "" || s.seq.Load() != 5 {
		t.Error("an unrecognized/resumable close code must leave session state untouched")
	}
}
