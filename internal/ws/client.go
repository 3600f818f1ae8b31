package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"golang.org/x/time/rate"

	"github.com/hiagocrazzy2017/stop-mania-dash/logger"
)

// Client is one player's websocket connection.
type Client struct {
	ID     string
	Name   string
	RoomID string

	conn    *websocket.Conn
	send    chan []byte
	limiter *rate.Limiter
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

func NewClient(id, name, roomID string, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		ID:      id,
		Name:    name,
		RoomID:  roomID,
		conn:    conn,
		send:    make(chan []byte, 256),
		limiter: rate.NewLimiter(5, 10),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (c *Client) cleanup() {
	c.once.Do(func() {
		c.cancel()
		close(c.send)
		c.conn.Close()
	})
}

func (c *Client) ReadPump(h *Handler) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("client %s readPump panic: %v", c.ID, r)
		}
		c.cleanup()
		h.Disconnect(c)
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			_, msg, err := c.conn.ReadMessage()
			if err != nil {
				logger.Info("client %s read: %v", c.ID, err)
				return
			}
			if !c.limiter.Allow() {
				logger.Info("client %s rate limited, dropping message", c.ID)
				continue
			}

			var wsMsg WSMessage
			if err := json.Unmarshal(msg, &wsMsg); err != nil {
				logger.Error("client %s invalid message: %v", c.ID, err)
				continue
			}
			h.HandleMessage(c, wsMsg)
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.cleanup()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return

		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Error("client %s write: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Error("client %s ping: %v", c.ID, err)
				return
			}
		}
	}
}
