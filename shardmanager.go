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
	"context"
	"time"
)

/*******************************
 * Shards Identify Rate Limiter
 *******************************/

// ShardsIdentifyRateLimiter controls the frequency of Identify
// payloads sent across all shards managed by a process, honoring
// Discord's session_start_limit.max_concurrency.
//
// Implementations block the caller in Wait until an Identify token is
// available.
type ShardsIdentifyRateLimiter interface {
	Wait(ctx context.Context) error
}

// DefaultShardsRateLimiter is a token bucket rate limiter backed by a
// buffered channel, refilled on a fixed interval.
type DefaultShardsRateLimiter struct {
	tokens chan struct{}
	stop   chan struct{}
}

var _ ShardsIdentifyRateLimiter = (*DefaultShardsRateLimiter)(nil)

// NewDefaultShardsRateLimiter creates a token bucket rate limiter with
// r tokens refilled every interval. r should match max_concurrency
// from Discord's session_start_limit.
func NewDefaultShardsRateLimiter(r int, interval time.Duration) *DefaultShardsRateLimiter {
	if r <= 0 {
		r = 1
	}
	rl := &DefaultShardsRateLimiter{tokens: make(chan struct{}, r), stop: make(chan struct{})}
	for range r {
		rl.tokens <- struct{}{}
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-rl.stop:
				return
			case <-ticker.C:
				select {
				case rl.tokens <- struct{}{}:
				default:
				}
			}
		}
	}()
	return rl
}

// Wait blocks until a token is available or ctx is done.
func (rl *DefaultShardsRateLimiter) Wait(ctx context.Context) error {
	select {
	case <-rl.tokens:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the refill goroutine.
func (rl *DefaultShardsRateLimiter) Close() {
	close(rl.stop)
}

/*************************************
 * ShardManager: manages multiple shards
 *************************************/

// IdentifyProperties configures the "properties" field of an Identify
// payload.
type IdentifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

// ShardManagerConfig configures how shards are distributed.
//
// For sharding (multiple shards in one process):
//
//	config := ShardManagerConfig{TotalShards: 4} // manages shards 0-3
//
// For clustering (specific shards per process):
//
//	// Process 1:
//	config := ShardManagerConfig{TotalShards: 4, ShardIDs: []int{0, 1}}
//	// Process 2:
//	config := ShardManagerConfig{TotalShards: 4, ShardIDs: []int{2, 3}}
type ShardManagerConfig struct {
	TotalShards    int
	ShardIDs       []int
	Identify       IdentifyProperties
	UseCompression bool
}

// ShardManager owns the lifecycle of every Gateway shard a process is
// responsible for.
type ShardManager struct {
	config          ShardManagerConfig
	shards          []*Shard
	token           string
	intents         GatewayIntent
	logger          Logger
	dispatcher      *dispatcher
	identifyLimiter ShardsIdentifyRateLimiter
}

// NewShardManager creates a new ShardManager.
func NewShardManager(
	config ShardManagerConfig,
	token string,
	intents GatewayIntent,
	logger Logger,
	dispatcher *dispatcher,
	identifyLimiter ShardsIdentifyRateLimiter,
) *ShardManager {
	if logger == nil {
		logger = noopLogger{}
	}
	return &ShardManager{
		config:          config,
		token:           token,
		intents:         intents,
		logger:          logger,
		dispatcher:      dispatcher,
		identifyLimiter: identifyLimiter,
	}
}

// Start connects every shard this process is responsible for.
//
// If ShardIDs is non-empty only those shards are started, otherwise
// all shards [0, totalShards) are started.
func (sm *ShardManager) Start(ctx context.Context, totalShards int) error {
	var shardIDs []int
	if len(sm.config.ShardIDs) > 0 {
		shardIDs = sm.config.ShardIDs
	} else {
		shardIDs = make([]int, totalShards)
		for i := range totalShards {
			shardIDs[i] = i
		}
	}

	sm.logger.WithFields(map[string]any{
		"total_shards":   totalShards,
		"managed_shards": shardIDs,
	}).Info("starting shard manager")

	for _, shardID := range shardIDs {
		shard := newShard(
			shardID, totalShards, sm.token, sm.intents,
			sm.logger, sm.dispatcher, sm.identifyLimiter,
			sm.config.UseCompression, sm.config.Identify,
		)
		if err := shard.connect(ctx); err != nil {
			sm.Shutdown()
			return err
		}
		sm.shards = append(sm.shards, shard)
	}

	return nil
}

// Shutdown gracefully closes all managed shards.
func (sm *ShardManager) Shutdown() {
	sm.logger.Info("shard manager shutting down")
	for _, shard := range sm.shards {
		shard.Shutdown()
	}
	sm.shards = nil
}

// Shards returns the list of managed shards.
func (sm *ShardManager) Shards() []*Shard {
	return sm.shards
}

// ShardCount returns the number of shards currently managed.
func (sm *ShardManager) ShardCount() int {
	return len(sm.shards)
}
