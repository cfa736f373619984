package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"MathBoard/internal/state"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
	pingInterval = 30 * time.Second
)

// Mirror streams a board's changes to read-only viewers over websocket. A
// viewer first receives a load op with the whole board, then every op the
// board emits. Ops with a lamport value not above the snapshot's were already
// included in it.
type Mirror struct {
	board    *state.Board
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	peers map[*peer]struct{}
}

type peer struct {
	conn *websocket.Conn
	send chan []byte
}

// NewMirror subscribes to board; ops are forwarded from then on.
func NewMirror(board *state.Board, log zerolog.Logger) *Mirror {
	m := &Mirror{
		board: board,
		log:   log.With().Str("component", "mirror").Logger(),
		peers: make(map[*peer]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	board.OnOp(m.broadcast)
	return m
}

// Handler serves the websocket feed at /ws and the current board at
// /board.json.
func (m *Mirror) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.serveWS)
	mux.HandleFunc("/board.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := state.Save(w, m.board.Entities()); err != nil {
			m.log.Error().Err(err).Msg("failed to write board")
		}
	})
	return mux
}

// ListenAndServe serves Handler on addr until ctx is done.
func (m *Mirror) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: m.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	m.log.Info().Str("addr", addr).Msg("mirror listening")

	select {
	case err := <-errc:
		return fmt.Errorf("mirror server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		m.closeAll()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mirror shutdown: %w", err)
		}
		return nil
	}
}

// Peers returns the number of connected viewers.
func (m *Mirror) Peers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.peers)
}

func (m *Mirror) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	p := &peer{conn: conn, send: make(chan []byte, sendBuffer)}

	m.mu.Lock()
	snap, err := json.Marshal(m.board.Snapshot())
	if err != nil {
		m.mu.Unlock()
		m.log.Error().Err(err).Msg("failed to encode snapshot")
		conn.Close()
		return
	}
	p.send <- snap
	m.peers[p] = struct{}{}
	m.mu.Unlock()
	m.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("viewer connected")

	go m.writeLoop(p)
	m.readLoop(p)
}

// readLoop only watches for the viewer going away; viewers never send ops.
func (m *Mirror) readLoop(p *peer) {
	defer m.remove(p)
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			m.log.Info().Str("remote", p.conn.RemoteAddr().String()).Err(err).Msg("viewer disconnected")
			return
		}
	}
}

func (m *Mirror) writeLoop(p *peer) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer p.conn.Close()
	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				m.log.Warn().Err(err).Msg("failed to send op")
				return
			}
		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (m *Mirror) broadcast(op state.Op) {
	data, err := json.Marshal(op)
	if err != nil {
		m.log.Error().Err(err).Str("op", string(op.Type)).Msg("failed to encode op")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.peers {
		select {
		case p.send <- data:
		default:
			m.log.Warn().Str("remote", p.conn.RemoteAddr().String()).Msg("viewer too slow, dropping")
			delete(m.peers, p)
			close(p.send)
		}
	}
}

func (m *Mirror) remove(p *peer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.peers[p]; ok {
		delete(m.peers, p)
		close(p.send)
	}
}

func (m *Mirror) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.peers {
		delete(m.peers, p)
		close(p.send)
	}
}

// Watch connects to a mirror at url (ws://host:port/ws) and calls fn for
// every op until ctx is done or the connection drops.
func Watch(ctx context.Context, url string, fn func(state.Op)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial mirror: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var op state.Op
		if err := conn.ReadJSON(&op); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read op: %w", err)
		}
		fn(op)
	}
}
