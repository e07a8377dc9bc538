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
	"io"
)

/***********************
 *	  callWithData	   *
 ***********************/

// callWithData represents a REST API request returning typed decoded data.
type callWithData[T any] struct {
	requester *requester
	logger    Logger
	method    string
	endpoint  string
	body      []byte
	opts      requestOptions
	parse     func([]byte) (*T, error)
}

// Wait executes the request synchronously and parses the response.
func (c *callWithData[T]) Wait(ctx context.Context) (*T, error) {
	c.logger.Debug("calling endpoint: " + c.method + " " + c.endpoint)

	res, err := c.requester.do(ctx, c.method, c.endpoint, c.body, c.opts)
	if err != nil {
		c.logger.Error("request failed for " + c.method + " " + c.endpoint + ": " + err.Error())
		return nil, err
	}
	defer res.Body.Close()

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, newError(KindNetwork, err)
	}

	if res.StatusCode >= 300 {
		return nil, newHTTPError(res.StatusCode, ParseErrorBody(bodyBytes))
	}

	data, err := c.parse(bodyBytes)
	if err != nil {
		return nil, newError(KindJSON, err)
	}

	c.logger.Debug("completed endpoint: " + c.method + " " + c.endpoint)
	return data, nil
}

// Submit runs the request asynchronously and calls callback with the result.
func (c *callWithData[T]) Submit(ctx context.Context, callback func(*T, error)) {
	go func() { callback(c.Wait(ctx)) }()
}

/***********************
 *	 callWithNoData	   *
 ***********************/

// callWithNoData represents a REST API request with no response body to decode.
type callWithNoData struct {
	requester *requester
	logger    Logger
	method    string
	endpoint  string
	body      []byte
	opts      requestOptions
}

// Wait executes the request synchronously.
func (c *callWithNoData) Wait(ctx context.Context) error {
	c.logger.Debug("calling endpoint: " + c.method + " " + c.endpoint)

	res, err := c.requester.do(ctx, c.method, c.endpoint, c.body, c.opts)
	if err != nil {
		c.logger.Error("request failed for " + c.method + " " + c.endpoint + ": " + err.Error())
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(res.Body)
		return newHTTPError(res.StatusCode, ParseErrorBody(bodyBytes))
	}

	c.logger.Debug("completed endpoint: " + c.method + " " + c.endpoint)
	return nil
}

// Submit runs the request asynchronously and calls callback with the result.
func (c *callWithNoData) Submit(ctx context.Context, callback func(error)) {
	go func() { callback(c.Wait(ctx)) }()
}

/***********************
 *       RestAPI       *
 ***********************/

// restAPI provides typed methods for Discord REST API endpoints. It is
// not exhaustive over Discord's surface; it demonstrates the
// callWithData/callWithNoData pattern across representative resources
// (gateway, channels, messages, guilds, members, roles, webhooks,
// interactions) so new endpoints follow the same shape.
type restAPI struct {
	requester *requester
	logger    Logger
}

func newRestAPI(requester *requester, logger Logger) *restAPI {
	if logger == nil {
		logger = noopLogger{}
	}
	return &restAPI{requester: requester, logger: logger}
}

/***********************
 *   Gateway Endpoint  *
 ***********************/

func (r *restAPI) getGateway() *callWithData[gateway] {
	return &callWithData[gateway]{
		requester: r.requester, logger: r.logger,
		method: "GET", endpoint: "/gateway",
		opts: requestOptions{skipAuth: true},
		parse: func(b []byte) (*gateway, error) {
			obj := gateway{}
			return &obj, obj.fillFromJSON(b)
		},
	}
}

func (r *restAPI) getGatewayBot() *callWithData[gatewayBot] {
	return &callWithData[gatewayBot]{
		requester: r.requester, logger: r.logger,
		method: "GET", endpoint: "/gateway/bot",
		parse: func(b []byte) (*gatewayBot, error) {
			obj := gatewayBot{}
			return &obj, obj.fillFromJSON(b)
		},
	}
}

/***********************
 *   Channel Endpoint  *
 ***********************/

func (r *restAPI) getChannel(id Snowflake) *callWithData[ResolvedChannel] {
	return &callWithData[ResolvedChannel]{
		requester: r.requester, logger: r.logger,
		method: "GET", endpoint: "/channels/" + id.String(),
		parse: func(b []byte) (*ResolvedChannel, error) {
			return ParseChannel(b)
		},
	}
}

func (r *restAPI) deleteChannel(id Snowflake, reason string) *callWithNoData {
	return &callWithNoData{
		requester: r.requester, logger: r.logger,
		method: "DELETE", endpoint: "/channels/" + id.String(),
		opts: withAuditReason(reason),
	}
}

/***********************
 *   Message Endpoint  *
 ***********************/

func (r *restAPI) getChannelMessage(channelID, messageID Snowflake) *callWithData[Message] {
	return &callWithData[Message]{
		requester: r.requester, logger: r.logger,
		method:   "GET",
		endpoint: "/channels/" + channelID.String() + "/messages/" + messageID.String(),
		parse:    decodeInto[Message],
	}
}

func (r *restAPI) createMessage(channelID Snowflake, body []byte) *callWithData[Message] {
	return &callWithData[Message]{
		requester: r.requester, logger: r.logger,
		method: "POST", endpoint: "/channels/" + channelID.String() + "/messages",
		body:  body,
		parse: decodeInto[Message],
	}
}

// createMessageMultipart sends a message whose body carries one or
// more file attachments; the JSON payload rides the payload_json
// field of a hand-built multipart body.
func (r *restAPI) createMessageMultipart(channelID Snowflake, boundary string, multipartBody []byte) *callWithData[Message] {
	return &callWithData[Message]{
		requester: r.requester, logger: r.logger,
		method: "POST", endpoint: "/channels/" + channelID.String() + "/messages",
		body:  multipartBody,
		opts:  requestOptions{contentType: "multipart/form-data; boundary=" + boundary},
		parse: decodeInto[Message],
	}
}

func (r *restAPI) deleteMessage(channelID, messageID Snowflake, reason string) *callWithNoData {
	return &callWithNoData{
		requester: r.requester, logger: r.logger,
		method:   "DELETE",
		endpoint: "/channels/" + channelID.String() + "/messages/" + messageID.String(),
		opts:     withAuditReason(reason),
	}
}

/***********************
 *    Guild Endpoint   *
 ***********************/

func (r *restAPI) getGuild(id Snowflake, withCounts bool) *callWithData[Guild] {
	endpoint := "/guilds/" + id.String()
	if withCounts {
		endpoint += "?with_counts=" + FormatBoolQuery(true)
	}
	return &callWithData[Guild]{
		requester: r.requester, logger: r.logger,
		method: "GET", endpoint: endpoint,
		parse: decodeInto[Guild],
	}
}

func (r *restAPI) getGuildMember(guildID, userID Snowflake) *callWithData[Member] {
	return &callWithData[Member]{
		requester: r.requester, logger: r.logger,
		method:   "GET",
		endpoint: "/guilds/" + guildID.String() + "/members/" + userID.String(),
		parse:    decodeInto[Member],
	}
}

func (r *restAPI) removeGuildMember(guildID, userID Snowflake, reason string) *callWithNoData {
	return &callWithNoData{
		requester: r.requester, logger: r.logger,
		method:   "DELETE",
		endpoint: "/guilds/" + guildID.String() + "/members/" + userID.String(),
		opts:     withAuditReason(reason),
	}
}

func (r *restAPI) addGuildMemberRole(guildID, userID, roleID Snowflake, reason string) *callWithNoData {
	return &callWithNoData{
		requester: r.requester, logger: r.logger,
		method:   "PUT",
		endpoint: "/guilds/" + guildID.String() + "/members/" + userID.String() + "/roles/" + roleID.String(),
		opts:     withAuditReason(reason),
	}
}

/***********************
 *  Interaction Reply  *
 ***********************/

func (r *restAPI) createInteractionResponse(interactionID Snowflake, token string, body []byte) *callWithNoData {
	return &callWithNoData{
		requester: r.requester, logger: r.logger,
		method:   "POST",
		endpoint: "/interactions/" + interactionID.String() + "/" + token + "/callback",
		body:     body,
		opts:     requestOptions{skipAuth: true},
	}
}

/***********************
 *       Invites       *
 ***********************/

func (r *restAPI) getInvite(code string, opts FetchInviteOptions) *callWithData[FullInvite] {
	endpoint := "/invites/" + code + "?with_counts=" + FormatBoolQuery(opts.WithCounts)
	if opts.GuildScheduledEventID > 0 {
		endpoint += "&guild_scheduled_event_id=" + opts.GuildScheduledEventID.String()
	}
	return &callWithData[FullInvite]{
		requester: r.requester, logger: r.logger,
		method: "GET", endpoint: endpoint,
		parse: decodeInto[FullInvite],
	}
}

func (r *restAPI) deleteInvite(code, reason string) *callWithData[FullInvite] {
	return &callWithData[FullInvite]{
		requester: r.requester, logger: r.logger,
		method: "DELETE", endpoint: "/invites/" + code,
		opts:  withAuditReason(reason),
		parse: decodeInto[FullInvite],
	}
}

/***********************
 *      Webhooks       *
 ***********************/

func (r *restAPI) executeWebhook(webhookID Snowflake, token string, body []byte) *callWithData[Message] {
	return &callWithData[Message]{
		requester: r.requester, logger: r.logger,
		method:   "POST",
		endpoint: "/webhooks/" + webhookID.String() + "/" + token + "?wait=" + FormatBoolQuery(true),
		body:     body,
		opts:     requestOptions{skipAuth: true},
		parse:    decodeInto[Message],
	}
}

/***********************
 *      Helpers        *
 ***********************/

// decodeInto is the generic parse callback for entities whose only
// decode step is sonic.Unmarshal into the zero value.
func decodeInto[T any](b []byte) (*T, error) {
	obj := new(T)
	if err := jsonUnmarshal(b, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// withAuditReason returns requestOptions that carry an audit-log
// reason; the reason rides a header, not the body, per Discord's
// audit log convention.
func withAuditReason(reason string) requestOptions {
	return requestOptions{auditReason: reason}
}
