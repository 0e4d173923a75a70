package realtime

import (
	"sync"
	"time"

	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	sendBufferSize = 256
)

// Client is one live websocket connection. It implements Sink; the write
// pump owns the socket and Deliver only enqueues.
type Client struct {
	id   string
	conn *websocket.Conn
	hub  *Hub
	send chan Event
	done chan struct{}

	closeOnce sync.Once
	logger    logger.Logger
}

func newClient(id string, conn *websocket.Conn, hub *Hub, logger logger.Logger) *Client {
	return &Client{
		id:     id,
		conn:   conn,
		hub:    hub,
		send:   make(chan Event, sendBufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (c *Client) ID() string { return c.id }

// Deliver never blocks: when the send buffer is full the slow consumer
// loses this event rather than stalling the publisher. The send channel is
// never closed, so a publisher racing a disconnect enqueues into a buffer
// nobody drains instead of panicking.
func (c *Client) Deliver(ev Event) error {
	select {
	case <-c.done:
		return errors.Errorf("connection %s is closed", c.id)
	case c.send <- ev:
		return nil
	default:
		return errors.Errorf("send buffer full for connection %s", c.id)
	}
}

// close tears the connection down exactly once; readPump and writePump may
// both reach it on their own error paths.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.hub.registry.Disconnect(c.id)
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Client) readPump() {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read failed", "conn_id", c.id, "err", err)
			}
			return
		}
		c.hub.handleFrame(c, raw)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case ev := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
