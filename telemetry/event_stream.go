package telemetry

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const (
	streamWriteWait = 2 * time.Second
	streamSendBuf   = 32
)

// EventStream fans out telemetry events (PlanExecutionRecord,
// ShadowComparison, weave decisions) to connected observers over websocket,
// for external dashboards and replay tooling. Publish never blocks the tick
// it is fed from: a client whose send buffer is still full from a previous
// event is skipped rather than waited on.
type EventStream struct {
	mu      sync.Mutex
	clients map[*streamClient]struct{}
}

type streamClient struct {
	conn *websocket.Conn
	send chan any
}

// NewEventStream returns an EventStream with no connected observers.
func NewEventStream() *EventStream {
	return &EventStream{clients: make(map[*streamClient]struct{})}
}

// ServeWS upgrades the request to a websocket connection and registers it
// as an observer until the connection closes or a write fails.
func (s *EventStream) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("telemetry: websocket upgrade failed:", err)
		return
	}
	c := &streamClient{conn: conn, send: make(chan any, streamSendBuf)}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	go s.writeLoop(c)
}

func (s *EventStream) writeLoop(c *streamClient) {
	defer s.remove(c)
	defer c.conn.Close()
	for event := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
			return
		}
		if err := c.conn.WriteJSON(event); err != nil {
			return
		}
	}
}

func (s *EventStream) remove(c *streamClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}

// Publish fans event out to every connected observer.
func (s *EventStream) Publish(event any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- event:
		default:
		}
	}
}

// Close disconnects every observer and frees their send buffers.
func (s *EventStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		close(c.send)
		delete(s.clients, c)
	}
}
