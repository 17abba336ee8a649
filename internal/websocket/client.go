// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package websocket

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBufferSize = 64

	// maxSubscriptions caps the movie ids one client may follow.
	maxSubscriptions = 100
)

// clientIDCounter gives clients a stable order for broadcasts.
var clientIDCounter atomic.Uint64

// Client is a middleman between the websocket connection and the hub.
// A client with no movie subscriptions receives every notification;
// otherwise only notifications for the movies it follows.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn
	send chan Message

	mu     sync.RWMutex
	movies map[int]struct{}
}

// SubscriptionRequest is the payload of subscribe and unsubscribe
// messages, and of the subscribed reply listing the current set.
type SubscriptionRequest struct {
	MovieIDs []int `json:"movieIds"`
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NewClient creates a client for conn.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		conn: conn,
		send: make(chan Message, sendBufferSize),
	}
}

// ID returns the client's identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close")
			}
			return
		}

		if reply := c.handleMessage(data); reply != nil {
			select {
			case c.send <- *reply:
			default:
			}
		}
	}
}

// handleMessage applies one inbound message and returns the reply to
// send, if any. Malformed messages are ignored.
func (c *Client) handleMessage(data []byte) *Message {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		logging.Debug().Err(err).Uint64("client_id", c.id).Msg("ignoring malformed websocket message")
		return nil
	}

	switch msg.Type {
	case MessageTypePing:
		return &Message{Type: MessageTypePong}
	case MessageTypeSubscribe, MessageTypeUnsubscribe:
		var req SubscriptionRequest
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				logging.Debug().Err(err).Uint64("client_id", c.id).Msg("ignoring malformed subscription")
				return nil
			}
		}
		if msg.Type == MessageTypeSubscribe {
			c.subscribe(req.MovieIDs)
		} else {
			c.unsubscribe(req.MovieIDs)
		}
		return &Message{Type: MessageTypeSubscribed, Data: SubscriptionRequest{MovieIDs: c.Subscriptions()}}
	}
	return nil
}

func (c *Client) subscribe(movieIDs []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.movies == nil {
		c.movies = make(map[int]struct{})
	}
	for _, id := range movieIDs {
		if id <= 0 || len(c.movies) >= maxSubscriptions {
			continue
		}
		c.movies[id] = struct{}{}
	}
}

// unsubscribe removes movieIDs; an empty list clears every subscription.
func (c *Client) unsubscribe(movieIDs []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(movieIDs) == 0 {
		c.movies = nil
		return
	}
	for _, id := range movieIDs {
		delete(c.movies, id)
	}
}

// Subscriptions returns the followed movie ids in ascending order.
func (c *Client) Subscriptions() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int, 0, len(c.movies))
	for id := range c.movies {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// follows reports whether notifications for movieID should reach c.
func (c *Client) follows(movieID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.movies) == 0 {
		return true
	}
	_, ok := c.movies[movieID]
	return ok
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				logging.Debug().Err(err).Uint64("client_id", c.id).Msg("failed to write websocket message")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start begins reading and writing for the client
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
