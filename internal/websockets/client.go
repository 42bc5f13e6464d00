package websockets

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

// EventType identifies a lifecycle event pushed to clients
type EventType string

const (
	EventOrderCreated       EventType = "order.created"
	EventOrderStatus        EventType = "order.status"
	EventReservationCreated EventType = "reservation.created"
	EventReservationStatus  EventType = "reservation.status"
	EventMenuChanged        EventType = "menu.changed"
	EventPing               EventType = "ping"
	EventPong               EventType = "pong"
)

// Event is the wire format of the feed
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Client is a connected event feed subscriber. Subscribers only
// listen; the sole inbound message handled is a ping.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	userID string
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: userID,
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			break
		}

		var event Event
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("error unmarshaling event: %v", err)
			continue
		}

		if event.Type == EventPing {
			pong, _ := json.Marshal(Event{Type: EventPong})
			c.send <- pong
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// ServeWs registers a connection with the hub and starts its pumps
func ServeWs(hub *Hub, conn *websocket.Conn, userID string) {
	client := NewClient(hub, conn, userID)

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
