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
	"bytes"
	"compress/zlib"
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

const (
	gatewayVersion = "10"
	gatewayURL     = "wss://gateway.discord.gg/?v=" + gatewayVersion + "&encoding=json"
	gatewayURLZlib = "wss://gateway.discord.gg/?v=" + gatewayVersion + "&encoding=json&compress=zlib-stream"
)

// Shard manages a single WebSocket connection to the Discord Gateway:
// session lifecycle, heartbeating, and reconnect/resume.
type Shard struct {
	shardID     int
	totalShards int
	token       string
	intents     GatewayIntent

	logger          Logger
	dispatcher      *dispatcher
	identifyLimiter ShardsIdentifyRateLimiter

	state atomic.Int32 // ShardState

	connMu sync.Mutex // guards conn and serializes all writes to it
	conn   net.Conn

	seq       atomic.Int64 // last received sequence number
	sessionID string
	resumeURL string

	latency           atomic.Int64
	lastHeartbeatSent atomic.Int64
	lastHeartbeatACK  atomic.Bool
	heartbeatStop     chan struct{}

	useCompression bool
	properties     IdentifyProperties

	generation atomic.Int64 // bumped on every connect; lets stale goroutines detect supersession
}

func newShard(
	shardID, totalShards int, token string, intents GatewayIntent,
	logger Logger, dispatcher *dispatcher, limiter ShardsIdentifyRateLimiter,
	useCompression bool, properties IdentifyProperties,
) *Shard {
	s := &Shard{
		shardID:         shardID,
		totalShards:     totalShards,
		token:           token,
		intents:         intents,
		logger:          logger.WithField("shard_id", shardID),
		dispatcher:      dispatcher,
		identifyLimiter: limiter,
		useCompression:  useCompression,
		properties:      properties,
	}
	s.state.Store(int32(ShardStateDisconnected))
	return s
}

func (s *Shard) setState(state ShardState) {
	s.state.Store(int32(state))
	s.logger.WithField("state", state.String()).Debug("shard state changed")
}

// State returns the shard's current lifecycle state.
func (s *Shard) State() ShardState {
	return ShardState(s.state.Load())
}

// connect establishes a fresh WebSocket connection, or resumes via
// resumeURL if one is set from a previous READY/RESUMED.
func (s *Shard) connect(ctx context.Context) error {
	s.setState(ShardStateConnecting)

	if s.heartbeatStop != nil {
		close(s.heartbeatStop)
	}
	s.heartbeatStop = make(chan struct{})

	s.connMu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.connMu.Unlock()

	connURL := s.resumeURL
	if connURL == "" {
		if s.useCompression {
			connURL = gatewayURLZlib
		} else {
			connURL = gatewayURL
		}
	} else {
		connURL = s.buildResumeURL(connURL)
	}

	dialer := ws.Dialer{}
	conn, _, _, err := dialer.Dial(ctx, connURL)
	if err != nil {
		s.setState(ShardStateDisconnected)
		return newError(KindWebsocket, err)
	}

	s.logger.Info("connected")
	s.connMu.Lock()
	s.conn = conn
	s.connMu.Unlock()

	s.lastHeartbeatACK.Store(true)
	s.latency.Store(0)
	gen := s.generation.Add(1)
	s.setState(ShardStateConnected)

	go s.readLoop(gen)
	return nil
}

// buildResumeURL appends the required query params to a resume URL
// Discord provided in a READY payload.
func (s *Shard) buildResumeURL(resumeURL string) string {
	parsed, err := url.Parse(resumeURL)
	if err != nil {
		return resumeURL
	}
	q := parsed.Query()
	if q.Get("v") == "" {
		q.Set("v", gatewayVersion)
	}
	if q.Get("encoding") == "" {
		q.Set("encoding", "json")
	}
	if s.useCompression && q.Get("compress") == "" {
		q.Set("compress", "zlib-stream")
	}
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

// writeFrame serializes all outbound writes through a single mutex:
// the heartbeat goroutine and the op-sending callers of Client both
// write to the same net.Conn, and concurrent unsynchronized writes to
// one TCP connection corrupt frames.
func (s *Shard) writeFrame(payload []byte) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.conn == nil {
		return newError(KindInvalidState, nil)
	}
	return wsutil.WriteClientMessage(s.conn, ws.OpText, payload)
}

// gatewayReader bridges WebSocket frames into an io.Reader feeding the
// zlib-stream decompressor. Control frames (ping/pong) are answered
// inline; a close frame's status code is captured so the caller can
// decide whether to resume or re-identify.
type gatewayReader struct {
	conn      net.Conn
	buf       bytes.Buffer
	closeCode int
}

func (gr *gatewayReader) Read(p []byte) (n int, err error) {
	if gr.buf.Len() > 0 {
		return gr.buf.Read(p)
	}

	for {
		msg, op, err := wsutil.ReadServerData(gr.conn)
		if err != nil {
			return 0, err
		}

		switch op {
		case ws.OpBinary:
			gr.buf.Write(msg)
			return gr.buf.Read(p)

		case ws.OpClose:
			code, _ := ws.ParseCloseFrameData(msg)
			gr.closeCode = int(code)
			return 0, io.EOF

		case ws.OpPing:
			wsutil.WriteClientMessage(gr.conn, ws.OpPong, msg)
			continue

		case ws.OpPong, ws.OpText:
			continue
		}
	}
}

// readLoop continuously reads Gateway frames for one connection
// generation. gen lets a stale readLoop, from a connection superseded
// by a later connect(), detect it should stop mutating shard state
// instead of racing the newer loop.
func (s *Shard) readLoop(gen int64) {
	s.connMu.Lock()
	conn := s.conn
	s.connMu.Unlock()

	var (
		decoder *json.Decoder
		gr      *gatewayReader
		zr      io.ReadCloser
		err     error
	)

	if s.useCompression {
		gr = &gatewayReader{conn: conn}
		zr, err = zlib.NewReader(gr)
		if err != nil {
			s.logger.WithField("error", err).Error("zlib handshake failed")
			s.handleDisconnect(gen, 0)
			return
		}
		defer zr.Close()
		decoder = json.NewDecoder(zr)
	}

	defer conn.Close()

	for {
		if s.generation.Load() != gen {
			return
		}

		var payload gatewayPayload

		if s.useCompression {
			if derr := decoder.Decode(&payload); derr != nil {
				s.logger.WithField("error", derr).Error("decode/read error")
				s.handleDisconnect(gen, gr.closeCode)
				return
			}
		} else {
			msg, op, rerr := wsutil.ReadServerData(conn)
			if rerr != nil {
				s.logger.WithField("error", rerr).Error("read error")
				s.handleDisconnect(gen, 0)
				return
			}
			if op == ws.OpText {
				if uerr := jsonUnmarshal(msg, &payload); uerr != nil {
					s.logger.WithField("error", uerr).Error("unmarshal error")
					continue
				}
			} else if op == ws.OpClose {
				code, _ := ws.ParseCloseFrameData(msg)
				s.handleDisconnect(gen, int(code))
				return
			} else {
				continue
			}
		}

		s.handleGatewayPayload(payload)
	}
}

// handleDisconnect decides whether a dropped connection should resume,
// re-identify, or stop entirely based on the observed close code.
func (s *Shard) handleDisconnect(gen int64, closeCode int) {
	if s.generation.Load() != gen {
		return
	}

	if s.applyCloseCode(closeCode) {
		return
	}

	s.setState(ShardStateReconnecting)
	s.reconnect()
}

// applyCloseCode classifies closeCode and mutates session state
// accordingly, reporting whether the shard must stop reconnecting
// entirely (a fatal close code).
func (s *Shard) applyCloseCode(closeCode int) (fatal bool) {
	if fatalCloseCodes[closeCode] {
		s.logger.WithField("close_code", closeCode).Error("fatal close code, shard stopped")
		s.setState(ShardStateDisconnected)
		return true
	}

	if nonResumableCloseCodes[closeCode] {
		s.sessionID = ""
		s.resumeURL = ""
		s.seq.Store(0)
	}

	return false
}

func (s *Shard) handleGatewayPayload(payload gatewayPayload) {
	advanced := true
	if payload.S > 0 {
		advanced = false
		for {
			cur := s.seq.Load()
			if payload.S <= cur {
				break
			}
			if s.seq.CompareAndSwap(cur, payload.S) {
				advanced = true
				break
			}
		}
	}

	if payload.Op == gatewayOpcodeDispatch {
		if payload.S > 0 && !advanced {
			s.logger.WithField("seq", payload.S).Debug("dropping duplicate/stale dispatch")
			return
		}
		s.dispatcher.dispatch(s.shardID, payload.T, payload.D)
	}

	switch payload.Op {
	case gatewayOpcodeDispatch:
		switch payload.T {
		case "READY":
			var ready struct {
				SessionID        string `json:"session_id"`
				ResumeGatewayURL string `json:"resume_gateway_url"`
			}
			jsonUnmarshal(payload.D, &ready)
			s.sessionID = ready.SessionID
			s.resumeURL = ready.ResumeGatewayURL
			s.setState(ShardStateReady)
			s.logger.Info("READY received")
		case "RESUMED":
			s.setState(ShardStateReady)
			s.logger.Info("RESUMED received")
		}

	case gatewayOpcodeReconnect:
		s.logger.Info("RECONNECT requested by gateway")
		s.connMu.Lock()
		if s.conn != nil {
			s.conn.Close()
		}
		s.connMu.Unlock()

	case gatewayOpcodeInvalidSession:
		var resumable bool
		jsonUnmarshal(payload.D, &resumable)
		time.Sleep(time.Duration(100+s.shardID%500) * time.Millisecond)

		if resumable {
			s.logger.Info("session invalid (resumable), resuming")
			s.setState(ShardStateResuming)
			s.sendResume()
		} else {
			s.logger.Info("session invalid (non-resumable), re-identifying")
			s.sessionID = ""
			s.resumeURL = ""
			s.seq.Store(0)
			s.setState(ShardStateIdentifying)
			s.sendIdentify()
		}

	case gatewayOpcodeHello:
		var hello struct {
			HeartbeatInterval float64 `json:"heartbeat_interval"`
		}
		jsonUnmarshal(payload.D, &hello)
		interval := time.Duration(hello.HeartbeatInterval) * time.Millisecond
		gen := s.generation.Load()
		s.logger.WithField("heartbeat_interval", interval.String()).Debug("HELLO received")
		go s.startHeartbeat(gen, interval)

		if s.sessionID != "" && s.seq.Load() > 0 {
			s.logger.Info("resuming session")
			s.setState(ShardStateResuming)
			s.sendResume()
		} else {
			s.logger.Debug("identifying new session")
			s.setState(ShardStateIdentifying)
			s.sendIdentify()
		}

	case gatewayOpcodeHeartbeatACK:
		s.lastHeartbeatACK.Store(true)
		sent := s.lastHeartbeatSent.Load()
		if sent > 0 {
			rtt := time.Since(time.Unix(0, sent)).Milliseconds()
			s.latency.Store(rtt)
			s.logger.WithField("rtt_ms", rtt).Debug("heartbeat ACKed")
		}

	case gatewayOpcodeHeartbeat:
		s.sendHeartbeat()
	}
}

func (s *Shard) sendIdentify() error {
	payload, err := buildIdentifyOp(s.token, s.shardID, s.totalShards, s.intents, s.properties, s.useCompression, nil)
	if err != nil {
		return err
	}
	if err := s.identifyLimiter.Wait(context.Background()); err != nil {
		return err
	}
	return s.writeFrame(payload)
}

func (s *Shard) sendResume() error {
	payload, err := buildResumeOp(s.token, s.sessionID, s.seq.Load())
	if err != nil {
		return err
	}
	return s.writeFrame(payload)
}

func (s *Shard) sendHeartbeat() error {
	payload, err := buildHeartbeatOp(s.seq.Load())
	if err != nil {
		return err
	}
	return s.writeFrame(payload)
}

// startHeartbeat runs the heartbeat loop for one connection
// generation. Per Gateway rules the first heartbeat fires after a
// random jitter in [0, interval) to avoid every shard hitting the
// Gateway in lockstep; a missed ACK before the next tick means the
// connection is zombied and must be torn down and reconnected.
func (s *Shard) startHeartbeat(gen int64, interval time.Duration) {
	jitter := time.Duration(rand.Float64() * float64(interval))
	select {
	case <-time.After(jitter):
	case <-s.heartbeatStop:
		return
	}

	if s.generation.Load() != gen {
		return
	}
	if err := s.sendHeartbeat(); err != nil {
		s.logger.WithField("error", err).Error("first heartbeat error")
		return
	}
	s.lastHeartbeatACK.Store(false)
	s.lastHeartbeatSent.Store(time.Now().UnixNano())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.heartbeatStop:
			return
		case <-ticker.C:
			if s.generation.Load() != gen {
				return
			}
			if !s.lastHeartbeatACK.Load() {
				s.logger.Error("heartbeat not ACKed, connection zombied, forcing reconnect")
				s.connMu.Lock()
				if s.conn != nil {
					s.conn.Close()
				}
				s.connMu.Unlock()
				return
			}

			s.lastHeartbeatACK.Store(false)
			s.lastHeartbeatSent.Store(time.Now().UnixNano())

			if err := s.sendHeartbeat(); err != nil {
				s.logger.WithField("error", err).Error("heartbeat send error")
				s.connMu.Lock()
				if s.conn != nil {
					s.conn.Close()
				}
				s.connMu.Unlock()
				return
			}
		}
	}
}

// reconnect closes the current connection, if any, and retries with
// exponential backoff until a new connection succeeds.
func (s *Shard) reconnect() {
	s.connMu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.connMu.Unlock()

	backoff := time.Second
	maxBackoff := 60 * time.Second

	for {
		s.logger.WithField("backoff", backoff.String()).Info("attempting reconnect")
		time.Sleep(backoff)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		err := s.connect(ctx)
		cancel()

		if err == nil {
			s.logger.Debug("reconnected successfully")
			return
		}

		s.logger.WithField("error", err).Error("reconnect attempt failed")
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// Latency returns the current heartbeat round-trip time in milliseconds.
func (s *Shard) Latency() int64 {
	return s.latency.Load()
}

// Shutdown closes the shard's connection and stops its goroutines.
func (s *Shard) Shutdown() error {
	s.generation.Add(1) // orphan any in-flight readLoop/heartbeat goroutines
	if s.heartbeatStop != nil {
		close(s.heartbeatStop)
		s.heartbeatStop = nil
	}
	s.setState(ShardStateDisconnected)

	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.conn != nil {
		s.logger.Info("shard shutting down")
		err := s.conn.Close()
		s.conn = nil
		return err
	}
	return nil
}
