package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"smartpos/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin policy is not useful for a terminal on a trusted LAN.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// OrderFeed pushes each completed order to connected dashboard clients.
type OrderFeed struct {
	clients    map[*feedClient]bool
	broadcast  chan []byte
	register   chan *feedClient
	unregister chan *feedClient
	quit       chan struct{}
	log        *zap.Logger
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

func NewOrderFeed(log *zap.Logger) *OrderFeed {
	return &OrderFeed{
		clients:    make(map[*feedClient]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient, 64),
		quit:       make(chan struct{}),
		log:        log,
	}
}

func (f *OrderFeed) Run() {
	for {
		select {
		case c := <-f.register:
			f.clients[c] = true
		case c := <-f.unregister:
			if f.clients[c] {
				delete(f.clients, c)
				close(c.send)
			}
		case msg := <-f.broadcast:
			for c := range f.clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer; drop it rather than block the feed.
					delete(f.clients, c)
					close(c.send)
				}
			}
		case <-f.quit:
			for c := range f.clients {
				delete(f.clients, c)
				close(c.send)
			}
			return
		}
	}
}

func (f *OrderFeed) Stop() {
	close(f.quit)
}

// Publish queues an order for broadcast. Never blocks checkout: if the feed
// is saturated the event is dropped.
func (f *OrderFeed) Publish(order domain.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		f.log.Error("failed to encode order for feed", zap.Error(err))
		return
	}
	select {
	case f.broadcast <- data:
	default:
		f.log.Warn("order feed saturated, dropping event", zap.String("order_id", order.ID))
	}
}

// ServeWS upgrades the connection and attaches it to the feed.
func (f *OrderFeed) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &feedClient{conn: conn, send: make(chan []byte, sendBufferSize)}
	f.register <- c

	go c.writePump()
	go c.readPump(f)
}

func (c *feedClient) readPump(f *OrderFeed) {
	defer func() {
		f.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		// The feed is one-way; inbound frames only keep the connection alive.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
