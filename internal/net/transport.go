// Package net shares a board over the LAN: the host streams its canvas ops
// over a websocket and advertises itself with mDNS; viewers mirror it.
package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"LocalPaint/internal/state"
)

const (
	BoardPath   = "/board"
	sendBuffer  = 256
	writeWait   = 5 * time.Second
	MsgSnapshot = "snapshot"
	MsgOp       = "op"
)

// Message is one frame on the wire.
type Message struct {
	Type     string          `json:"type"`
	Snapshot *state.Snapshot `json:"snapshot,omitempty"`
	Op       *state.Op       `json:"op,omitempty"`
}

type peer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub is used by the HOST to stream its board to every connected viewer.
type Hub struct {
	peers    map[*peer]bool
	mu       sync.RWMutex
	snapshot func() state.Snapshot
	onUI     func(func())
	upgrader websocket.Upgrader
}

// NewHub builds a hub. snapshot is read through onUI, which must run its
// argument on the goroutine that mutates the canvas and wait for it; that
// keeps a new viewer's snapshot and its first op in order.
func NewHub(snapshot func() state.Snapshot, onUI func(func())) *Hub {
	return &Hub{
		peers:    make(map[*peer]bool),
		snapshot: snapshot,
		onUI:     onUI,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Hub) add(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = true
	log.Printf("[SHARE] Viewer connected from %s", p.conn.RemoteAddr())
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.peers[p] {
		return
	}
	delete(h.peers, p)
	close(p.send)
	log.Printf("[SHARE] Viewer %s left", p.conn.RemoteAddr())
}

// Len reports the number of connected viewers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Broadcast sends op to every viewer. Viewers that cannot keep up are
// dropped rather than blocking the UI.
func (h *Hub) Broadcast(op state.Op) {
	data, err := json.Marshal(Message{Type: MsgOp, Op: &op})
	if err != nil {
		log.Printf("[SHARE] Encoding op: %v", err)
		return
	}

	var slow []*peer
	h.mu.RLock()
	for p := range h.peers {
		select {
		case p.send <- data:
		default:
			slow = append(slow, p)
		}
	}
	h.mu.RUnlock()

	for _, p := range slow {
		log.Printf("[SHARE] Dropping slow viewer %s", p.conn.RemoteAddr())
		h.remove(p)
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] Upgrade failed: %v", err)
		return
	}
	p := &peer{conn: conn, send: make(chan []byte, sendBuffer)}

	var encodeErr error
	h.onUI(func() {
		snap := h.snapshot()
		data, err := json.Marshal(Message{Type: MsgSnapshot, Snapshot: &snap})
		if err != nil {
			encodeErr = err
			return
		}
		p.send <- data
		h.add(p)
	})
	if encodeErr != nil {
		log.Printf("[SHARE] Encoding snapshot: %v", encodeErr)
		conn.Close()
		return
	}

	go h.writeLoop(p)

	// Viewers never send; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(p)
			return
		}
	}
}

func (h *Hub) writeLoop(p *peer) {
	defer p.conn.Close()
	for data := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[SHARE] Error sending to %s: %v", p.conn.RemoteAddr(), err)
			h.remove(p)
			return
		}
	}
	p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.RLock()
	peers := make([]*peer, 0, len(h.peers))
	for p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.RUnlock()
	for _, p := range peers {
		h.remove(p)
	}
}

// Serve runs the share server on port until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle(BoardPath, h)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	go func() {
		<-ctx.Done()
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[SHARE] Board server listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("share server: %w", err)
	}
	return nil
}

// Follow connects to the board at addr (host:port) and reports the snapshot
// and every following op until ctx ends or the host disconnects.
func Follow(ctx context.Context, addr string, onSnapshot func(state.Snapshot), onOp func(state.Op)) error {
	url := "ws://" + addr + BoardPath
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()
	log.Printf("[VIEWER] Connected to %s", url)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("reading from host: %w", err)
		}

		switch msg.Type {
		case MsgSnapshot:
			if msg.Snapshot != nil {
				onSnapshot(*msg.Snapshot)
			}
		case MsgOp:
			if msg.Op != nil {
				onOp(*msg.Op)
			}
		default:
			log.Printf("[VIEWER] Ignoring message type %q", msg.Type)
		}
	}
}
