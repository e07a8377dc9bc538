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
	"log"
	"runtime"
	"strings"
	"time"
)

/*****************************
 *          Client
 *****************************/

// Client manages your Discord connection at a high level, grouping
// every shard the process is responsible for under one handle.
//
// It provides:
//   - Central configuration for your bot token, intents, and logger.
//   - REST API access via restAPI.
//   - Event dispatching and cache maintenance via dispatcher.
//   - Shard management for scalable Gateway connections.
//
// Create a Client using New() with the desired options, then call Start().
type Client struct {
	ctx                  context.Context
	Logger               Logger                    // logger used throughout the client
	identifyLimiter      ShardsIdentifyRateLimiter // rate limiter controlling Identify payloads per shard
	token                string                    // bot token (without "Bot " prefix)
	intents              GatewayIntent             // configured Gateway intents
	shardManager         *ShardManager             // manages Gateway shard lifecycle
	shardManagerConfig   ShardManagerConfig        // configuration for shard management
	transport            Transport                 // HTTP transport backing the requester, nil uses the default
	*restAPI                                        // REST API client
	CacheManager                                    // CacheManager for caching discord entities
	*dispatcher                                      // event dispatcher
	requesterConfig      RequesterConfig           // configuration for the HTTP requester
	handlerExecutionMode HandlerExecutionMode      // mode for executing event handlers
}

// clientOption defines a function used to configure Client during creation.
type clientOption func(*Client)

/*****************************
 *       Options
 *****************************/

// WithToken sets the bot token for your client.
//
// Usage:
//
//	c := corde.New(ctx, corde.WithToken("your_bot_token"))
//
// Removes the "Bot " prefix automatically if provided.
//
// Warning: Never share your bot token publicly.
func WithToken(token string) clientOption {
	if token == "" {
		log.Fatal("WithToken: token must not be empty")
	}
	if after, ok := strings.CutPrefix(token, "Bot "); ok {
		token = after
	}
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets a custom Logger implementation for your client.
//
// Usage:
//
//	c := corde.New(ctx, corde.WithLogger(myLogger))
//
// Logs fatal and exits if logger is nil.
func WithLogger(logger Logger) clientOption {
	if logger == nil {
		log.Fatal("WithLogger: logger must not be nil")
	}
	return func(c *Client) {
		c.Logger = logger
	}
}

// WithCacheManager sets a custom CacheManager implementation for your client.
//
// Usage:
//
//	c := corde.New(ctx, corde.WithCacheManager(myCacheManager))
//
// Logs fatal and exits if cacheManager is nil.
func WithCacheManager(cacheManager CacheManager) clientOption {
	if cacheManager == nil {
		log.Fatal("WithCacheManager: cacheManager must not be nil")
	}
	return func(c *Client) {
		c.CacheManager = cacheManager
	}
}

// WithTransport sets a custom HTTP transport for the REST requester.
// Use this to route requests through a proxy or inject a test double;
// nil (the default) builds the requester's own tuned *http.Client.
func WithTransport(transport Transport) clientOption {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithRequesterConfig sets retry and invalid-request-ceiling tunables
// for the HTTP requester.
func WithRequesterConfig(config RequesterConfig) clientOption {
	return func(c *Client) {
		c.requesterConfig = config
	}
}

// WithShardCount forces a specific number of shards to be used.
// If not set (0), the recommended shard count from Discord is used.
//
// Deprecated: Use WithShardManagerConfig for more control over sharding.
func WithShardCount(count int) clientOption {
	return func(c *Client) {
		c.shardManagerConfig.TotalShards = count
	}
}

// WithShardManagerConfig sets the shard manager configuration.
//
// For sharding (multiple shards in one process):
//
//	corde.WithShardManagerConfig(corde.ShardManagerConfig{TotalShards: 4})
//
// For clustering (specific shards per process):
//
//	// Process 1:
//	corde.WithShardManagerConfig(corde.ShardManagerConfig{TotalShards: 4, ShardIDs: []int{0, 1}})
//	// Process 2:
//	corde.WithShardManagerConfig(corde.ShardManagerConfig{TotalShards: 4, ShardIDs: []int{2, 3}})
func WithShardManagerConfig(config ShardManagerConfig) clientOption {
	return func(c *Client) {
		c.shardManagerConfig = config
	}
}

// WithShardsIdentifyRateLimiter sets a custom ShardsIdentifyRateLimiter
// implementation for your client.
//
// Logs fatal and exits if the provided rateLimiter is nil.
func WithShardsIdentifyRateLimiter(rateLimiter ShardsIdentifyRateLimiter) clientOption {
	if rateLimiter == nil {
		log.Fatal("WithShardsIdentifyRateLimiter: rateLimiter must not be nil")
	}
	return func(c *Client) {
		c.identifyLimiter = rateLimiter
	}
}

// WithIntents sets Gateway intents for the client shards.
//
// Usage:
//
//	corde.WithIntents(corde.GatewayIntentGuilds, corde.GatewayIntentMessageContent)
//
// Also supports bitwise OR usage:
//
//	corde.WithIntents(corde.GatewayIntentGuilds | corde.GatewayIntentMessageContent)
func WithIntents(intents ...GatewayIntent) clientOption {
	var totalIntents GatewayIntent
	for _, intent := range intents {
		totalIntents |= intent
	}
	return func(c *Client) {
		c.intents = totalIntents
	}
}

// WithHandlerExecutionMode sets the execution mode for event handlers.
//
// Default is HandlerExecutionSync (sequential).
func WithHandlerExecutionMode(mode HandlerExecutionMode) clientOption {
	return func(c *Client) {
		c.handlerExecutionMode = mode
	}
}

// WithCompression enables or disables zlib-stream compression for Gateway connections.
//
// When enabled (default), Gateway messages are compressed, reducing bandwidth by 60-80%.
func WithCompression(enabled bool) clientOption {
	return func(c *Client) {
		c.shardManagerConfig.UseCompression = enabled
	}
}

// WithIdentifyProperties sets custom properties for the Identify payload.
func WithIdentifyProperties(props IdentifyProperties) clientOption {
	return func(c *Client) {
		c.shardManagerConfig.Identify = props
	}
}

/*****************************
 *       Constructor
 *****************************/

// New creates a new Client instance with provided options.
//
// Example:
//
//	c := corde.New(context.Background(),
//	    corde.WithToken("my_bot_token"),
//	    corde.WithIntents(corde.GatewayIntentGuilds, corde.GatewayIntentGuildMessages),
//	    corde.WithLogger(myLogger),
//	)
//
// Defaults:
//   - Logger: TextLogger writing to stderr at info level.
//   - Intents: GatewayIntentGuilds | GatewayIntentGuildMessages | GatewayIntentGuildMembers.
//   - Compression: enabled.
//   - CacheManager: in-memory, all resource kinds cached.
func New(ctx context.Context, options ...clientOption) *Client {
	if ctx == nil {
		ctx = context.Background()
	}

	client := &Client{
		ctx:    ctx,
		Logger: NewDefaultLogger(nil, LogLevelInfo),
		intents: GatewayIntentGuilds |
			GatewayIntentGuildMessages |
			GatewayIntentGuildMembers,
		requesterConfig: DefaultRequesterConfig(),
		shardManagerConfig: ShardManagerConfig{
			UseCompression: true,
		},
	}

	for _, option := range options {
		option(client)
	}

	requester := newRequester(client.transport, client.token, client.Logger, client.requesterConfig)
	client.restAPI = newRestAPI(requester, client.Logger)

	if client.CacheManager == nil {
		client.CacheManager = NewInMemoryCacheManager(CacheFlagsAll)
	}
	client.dispatcher = newDispatcher(client.Logger, client.CacheManager, client.handlerExecutionMode)
	return client
}

/*****************************
 *       Start
 *****************************/

// Start initializes and connects all shards for the client.
//
// It performs the following steps:
//  1. Retrieves Gateway information from Discord.
//  2. Creates and connects shards with appropriate rate limiting.
//  3. Starts listening to Gateway events.
//
// The lifetime of the client is controlled by the context passed to
// New: Start blocks until that context is cancelled, then shuts down
// gracefully and returns.
//
// Returns an error if Gateway information retrieval or shard connection fails.
func (c *Client) Start() error {
	gatewayBotData, err := c.getGatewayBot().Wait(c.ctx)
	if err != nil {
		return err
	}

	if c.identifyLimiter == nil {
		c.identifyLimiter = NewDefaultShardsRateLimiter(gatewayBotData.SessionStartLimit.MaxConcurrency, 5*time.Second)
	}

	if c.shardManagerConfig.Identify.OS == "" {
		c.shardManagerConfig.Identify.OS = runtime.GOOS
	}
	if c.shardManagerConfig.Identify.Browser == "" {
		c.shardManagerConfig.Identify.Browser = "corde"
	}
	if c.shardManagerConfig.Identify.Device == "" {
		c.shardManagerConfig.Identify.Device = "corde"
	}

	totalShards := gatewayBotData.Shards
	if c.shardManagerConfig.TotalShards > 0 {
		totalShards = c.shardManagerConfig.TotalShards
	}

	c.shardManager = NewShardManager(
		c.shardManagerConfig,
		c.token,
		c.intents,
		c.Logger,
		c.dispatcher,
		c.identifyLimiter,
	)

	if err := c.shardManager.Start(c.ctx, totalShards); err != nil {
		return err
	}

	<-c.ctx.Done()
	if err := c.ctx.Err(); err != nil {
		c.Logger.WithField("err", err).Error("client shutdown due to context error")
	}
	c.Shutdown()
	return nil
}

/*****************************
 *       Shutdown
 *****************************/

// Shutdown cleanly shuts down the Client: it shuts down all managed
// shards via ShardManager. Safe to call more than once.
func (c *Client) Shutdown() {
	c.Logger.Info("client shutting down")
	if c.shardManager != nil {
		c.shardManager.Shutdown()
		c.shardManager = nil
	}
	if c.dispatcher != nil {
		c.dispatcher.Shutdown()
	}
}
