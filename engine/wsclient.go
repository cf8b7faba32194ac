package engine

import (
	"errors"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// WSClient connects a websocket to a GameEngine. Clicks arrive as JSON
// InboundMessages; every snapshot the engine broadcasts goes back out.
type WSClient struct {
	conn *websocket.Conn
	ge   GameEngine
	// replies that are not broadcast: errors and State requests
	replyCh chan protocol.OutboundMessage
}

func NewWSClient(conn *websocket.Conn, ge GameEngine) *WSClient {
	return &WSClient{
		conn:    conn,
		ge:      ge,
		replyCh: make(chan protocol.OutboundMessage, 1),
	}
}

// Serve blocks until the connection closes or the engine stops
func (c *WSClient) Serve() {
	updates, unsubscribe := c.ge.Subscribe()
	go c.writePump(updates)

	c.readPump()
	unsubscribe()
}

func (c *WSClient) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg protocol.InboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("game %s: websocket read: %v", c.ge.ID(), err)
			}
			return
		}

		// successful moves reach us through the subscription
		out, err := c.ge.Receive(msg)
		if err != nil || msg.Command == protocol.State {
			c.reply(out)
		}
		if errors.Is(err, ErrEngineStopped) {
			return
		}
	}
}

// reply queues msg for this connection only, dropping it if one is already waiting
func (c *WSClient) reply(msg protocol.OutboundMessage) {
	select {
	case c.replyCh <- msg:
	default:
		log.Printf("game %s: websocket is not keeping up, dropping %s reply", c.ge.ID(), msg.Command)
	}
}

func (c *WSClient) writePump(updates <-chan protocol.OutboundMessage) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-updates:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The engine closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case msg := <-c.replyCh:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
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
