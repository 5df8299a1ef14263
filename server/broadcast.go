package server

import (
	"bytes"
	"sync"

	"github.com/gorilla/websocket"
)

// infoBroadcaster fans search progress lines out to websocket subscribers.
// It implements io.Writer so it can serve as the searcher's output sink;
// writes are buffered until a newline so subscribers only see whole lines.
type infoBroadcaster struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	buf   bytes.Buffer
}

func newInfoBroadcaster() *infoBroadcaster {
	return &infoBroadcaster{conns: make(map[*websocket.Conn]struct{})}
}

func (b *infoBroadcaster) Subscribe(conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conns[conn] = struct{}{}
}

func (b *infoBroadcaster) Unsubscribe(conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conns, conn)
}

func (b *infoBroadcaster) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf.Write(p)
	for {
		line, err := b.buf.ReadBytes('\n')
		if err != nil {
			// Partial line: keep it buffered for the next write.
			b.buf.Write(line)
			break
		}
		msg := bytes.TrimRight(line, "\n")
		for conn := range b.conns {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				conn.Close()
				delete(b.conns, conn)
			}
		}
	}
	return len(p), nil
}
