// Package realtime owns the client's single persistent broker connection.
// The manager tracks credential changes by recomputing the auth header on
// every connection attempt and rebuilding the connection on demand; it
// redials failed connections after a fixed delay and never surfaces
// connection errors to callers.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fundscope/fundscope-cli/internal/common"
	"github.com/fundscope/fundscope-cli/internal/logging"
	"github.com/fundscope/fundscope-cli/internal/obs"
)

// ConnState is the manager's connection state.
type ConnState int32

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// TokenSource supplies the current bearer token at connect time.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Config holds the tunables of the realtime channel.
type Config struct {
	// URL is the websocket endpoint, e.g. "ws://host:port/ws".
	URL string
	// ReplyDestination is the per-user queue subscribed to after connect.
	ReplyDestination string
	// HeartbeatInterval is the outgoing ping period.
	HeartbeatInterval time.Duration
	// ReconnectDelay is the fixed wait between redial attempts.
	ReconnectDelay time.Duration
}

type dialFunc func(ctx context.Context, url string, header http.Header) (*websocket.Conn, error)

// Manager runs the connection lifecycle:
// Disconnected -> Connecting -> Connected, back to Connecting on failure,
// Disconnected on Deactivate. Each connection is bound to one credential
// snapshot; a credential change requires ReconnectWithLatestToken.
type Manager struct {
	cfg    Config
	tokens TokenSource
	log    logging.Logger

	// dial is a test seam around websocket.DefaultDialer.
	dial dialFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
	out     chan Frame

	state atomic.Int32

	subMu   sync.RWMutex
	subs    map[int]chan Message
	nextSub int
}

func NewManager(cfg Config, tokens TokenSource, log logging.Logger) *Manager {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 20 * time.Second
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 200 * time.Millisecond
	}
	if cfg.ReplyDestination == "" {
		cfg.ReplyDestination = "/user/queue/reply"
	}
	return &Manager{
		cfg:    cfg,
		tokens: tokens,
		log:    log,
		subs:   make(map[int]chan Message),
		dial: func(ctx context.Context, url string, header http.Header) (*websocket.Conn, error) {
			conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
			if resp != nil && resp.Body != nil {
				_ = resp.Body.Close()
			}
			return conn, err
		},
	}
}

// State returns the current connection state.
func (m *Manager) State() ConnState {
	return ConnState(m.state.Load())
}

func (m *Manager) setState(s ConnState) {
	m.state.Store(int32(s))
	obs.SetRealtimeConnected(s == StateConnected)
}

// Activate starts the connection loop. Idempotent: a second Activate while
// running is a no-op.
func (m *Manager) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.stopped = make(chan struct{})
	m.out = make(chan Frame, 32)
	go m.run(ctx, m.out, m.stopped)
}

// Deactivate stops the loop and closes the connection. Idempotent. Returns
// once the loop has fully stopped, so callers can rely on the old
// connection being gone before mutating credentials.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	cancel := m.cancel
	stopped := m.stopped
	m.cancel = nil
	m.out = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

// ReconnectWithLatestToken tears the connection down and rebuilds it so the
// next connect reads the freshest credential. A full rebuild is required:
// the transport cannot swap auth headers on a live connection.
func (m *Manager) ReconnectWithLatestToken(ctx context.Context) {
	m.log.Debug(ctx, "realtime reconnect requested")
	m.Deactivate()
	m.Activate()
}

// Publish queues a SEND frame. Fire-and-forget: frames are dropped when the
// channel is inactive or the outbound queue is full.
func (m *Manager) Publish(destination string, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		m.log.Warn(context.Background(), "realtime publish marshal failed", "err", err)
		return
	}

	m.mu.Lock()
	out := m.out
	m.mu.Unlock()
	if out == nil {
		return
	}
	select {
	case out <- Frame{Type: FrameSend, Destination: destination, Body: data}:
	default:
	}
}

// Messages registers a subscriber for inbound deliveries. The channel is
// closed when ctx ends; slow subscribers are skipped, not blocked on.
func (m *Manager) Messages(ctx context.Context) <-chan Message {
	ch := make(chan Message, 16)

	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.subMu.Unlock()

	go func() {
		<-ctx.Done()
		m.subMu.Lock()
		delete(m.subs, id)
		close(ch)
		m.subMu.Unlock()
	}()

	return ch
}

func (m *Manager) fanOut(msg Message) {
	m.subMu.RLock()
	defer m.subMu.RUnlock()
	for _, ch := range m.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

// run is the connection loop: connect, serve until failure, wait the fixed
// delay, repeat. It exits only when ctx is cancelled.
func (m *Manager) run(ctx context.Context, out chan Frame, stopped chan struct{}) {
	defer close(stopped)
	defer m.setState(StateDisconnected)

	for {
		if ctx.Err() != nil {
			return
		}
		m.setState(StateConnecting)

		conn, err := m.connect(ctx)
		if err != nil {
			m.log.Warn(ctx, "realtime connect failed", "err", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.cfg.ReconnectDelay):
			}
			continue
		}

		m.setState(StateConnected)
		m.log.Info(ctx, "realtime channel connected", "url", m.cfg.URL)
		m.serve(ctx, conn, out)

		select {
		case <-ctx.Done():
			return
		case <-time.After(m.cfg.ReconnectDelay):
		}
	}
}

// connect dials and performs the broker handshake. The token is read here,
// in the pre-connect hook, never at construction time: credentials may have
// changed since the manager was built.
func (m *Manager) connect(ctx context.Context) (*websocket.Conn, error) {
	obs.RealtimeConnectAttempt()

	header := http.Header{}
	headers := map[string]string{}
	token, err := m.tokens.Token(ctx)
	if err == nil && token != "" {
		header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		headers[common.AuthorizationHeader] = common.BearerPrefix + token
	}

	conn, err := m.dial(ctx, m.cfg.URL, header)
	if err != nil {
		return nil, err
	}

	if err := conn.WriteJSON(Frame{Type: FrameConnect, Headers: headers}); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := conn.WriteJSON(Frame{Type: FrameSubscribe, Destination: m.cfg.ReplyDestination}); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

// serve pumps the connection until it fails or ctx ends. The writer
// goroutine owns outbound frames and heartbeats; the read loop fans
// deliveries out to subscribers.
func (m *Manager) serve(ctx context.Context, conn *websocket.Conn, out chan Frame) {
	defer conn.Close()

	readerDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(m.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				// Unblock the read loop.
				_ = conn.Close()
				return
			case <-readerDone:
				return
			case frame := <-out:
				if err := conn.WriteJSON(frame); err != nil {
					_ = conn.Close()
					return
				}
			case <-ticker.C:
				deadline := time.Now().Add(5 * time.Second)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					_ = conn.Close()
					return
				}
			}
		}
	}()

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			close(readerDone)
			if ctx.Err() == nil {
				m.log.Warn(ctx, "realtime channel dropped", "err", err)
			}
			return
		}
		if frame.Type == FrameMessage {
			m.fanOut(Message{
				Destination: frame.Destination,
				Headers:     frame.Headers,
				Body:        frame.Body,
			})
		}
	}
}
