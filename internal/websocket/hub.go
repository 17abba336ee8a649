// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package websocket

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/metrics"
)

// Message types
const (
	MessageTypeRatingUpdated         = "rating_updated"
	MessageTypeRecommendationUpdated = "recommendation_updated"
	MessageTypePing                  = "ping"
	MessageTypePong                  = "pong"
	MessageTypeSubscribe             = "subscribe"
	MessageTypeUnsubscribe           = "unsubscribe"
	MessageTypeSubscribed            = "subscribed"
)

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`

	// movieID routes change notifications to subscribed clients; zero
	// reaches everyone.
	movieID int
}

// ChangeNotification is the payload of rating_updated and
// recommendation_updated messages.
type ChangeNotification struct {
	MovieID   int     `json:"movieId"`
	UserID    string  `json:"userId"`
	Score     float64 `json:"score"`
	Timestamp string  `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts messages to the clients
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// RunWithContext runs the hub until ctx is canceled, then closes every
// client. Lifecycle events are drained before broadcasts so a client
// registered before a broadcast always receives it.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.register(client)
			continue
		case client := <-h.Unregister:
			h.unregister(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown()
			return ctx.Err()
		case client := <-h.Register:
			h.register(client)
		case client := <-h.Unregister:
			h.unregister(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	n := len(h.clients)
	h.mu.Unlock()

	metrics.SetWebSocketConnections(n)
	logging.Debug().Int("total_clients", n).Msg("websocket client connected")
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.SetWebSocketConnections(n)
	logging.Debug().Int("total_clients", n).Msg("websocket client disconnected")
}

// broadcastToClients delivers message in client id order to clients
// following its movie. Clients whose send buffer is full are disconnected.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.sortedClients() {
		if message.movieID != 0 && !client.follows(message.movieID) {
			continue
		}
		select {
		case client.send <- message:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
	metrics.SetWebSocketConnections(len(h.clients))
}

// sortedClients must be called with h.mu held.
func (h *Hub) sortedClients() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	n := len(h.clients)
	for _, client := range h.sortedClients() {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()

	metrics.SetWebSocketConnections(0)
	logging.Info().Str("component", "websocket-hub").Int("clients_closed", n).Msg("websocket hub stopped")
}

// BroadcastJSON queues a message for all clients. It never blocks.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) {
	h.enqueue(Message{Type: messageType, Data: data})
}

func (h *Hub) enqueue(message Message) {
	select {
	case h.broadcast <- message:
	default:
		logging.Warn().Str("message_type", message.Type).Msg("broadcast channel full, dropping message")
	}
}

// BroadcastRatingUpdated announces a stored rating and the user's
// recomputed ML score to clients following movieID.
func (h *Hub) BroadcastRatingUpdated(movieID int, userID string, score float64) {
	h.enqueue(newChangeMessage(MessageTypeRatingUpdated, movieID, userID, score))
}

// BroadcastRecommendationUpdated announces a recomputed ML score.
func (h *Hub) BroadcastRecommendationUpdated(movieID int, userID string, score float64) {
	h.enqueue(newChangeMessage(MessageTypeRecommendationUpdated, movieID, userID, score))
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func newChangeMessage(messageType string, movieID int, userID string, score float64) Message {
	return Message{
		Type: messageType,
		Data: ChangeNotification{
			MovieID:   movieID,
			UserID:    userID,
			Score:     score,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		movieID: movieID,
	}
}
