// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package eventprocessor

import (
	"time"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
)

// PublisherConfig holds NATS publisher settings.
type PublisherConfig struct {
	URL              string
	MaxReconnects    int
	ReconnectWait    time.Duration
	ReconnectBuffer  int
	EnableTrackMsgID bool
}

// DefaultPublisherConfig returns production defaults for url.
func DefaultPublisherConfig(url string) PublisherConfig {
	return PublisherConfig{
		URL:              url,
		MaxReconnects:    -1,
		ReconnectWait:    2 * time.Second,
		ReconnectBuffer:  8 * 1024 * 1024,
		EnableTrackMsgID: true,
	}
}

// SubscriberConfig holds durable JetStream consumer settings.
type SubscriberConfig struct {
	URL              string
	StreamName       string
	DurableName      string
	QueueGroup       string
	SubscribersCount int
	MaxDeliver       int
	MaxAckPending    int
	AckWaitTimeout   time.Duration
	CloseTimeout     time.Duration
	MaxReconnects    int
	ReconnectWait    time.Duration
}

// DefaultSubscriberConfig returns production defaults for url.
func DefaultSubscriberConfig(url string) SubscriberConfig {
	return SubscriberConfig{
		URL:              url,
		StreamName:       "RATINGS",
		DurableName:      "recompute-worker",
		QueueGroup:       "recompute",
		SubscribersCount: 2,
		MaxDeliver:       5,
		MaxAckPending:    256,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     30 * time.Second,
		MaxReconnects:    -1,
		ReconnectWait:    2 * time.Second,
	}
}

// StreamConfig describes the JetStream stream holding rating events.
type StreamConfig struct {
	Name            string
	Subjects        []string
	MaxAge          time.Duration
	MaxBytes        int64
	MaxMsgs         int64
	DuplicateWindow time.Duration
	Replicas        int
}

// DefaultStreamConfig returns production defaults.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		Name:            "RATINGS",
		Subjects:        []string{TopicRatingsAll},
		MaxAge:          7 * 24 * time.Hour,
		MaxBytes:        1024 * 1024 * 1024,
		MaxMsgs:         -1,
		DuplicateWindow: 2 * time.Minute,
		Replicas:        1,
	}
}

// ServerConfig holds embedded NATS server settings.
type ServerConfig struct {
	Host              string
	Port              int
	StoreDir          string
	JetStreamMaxMem   int64
	JetStreamMaxStore int64
}

// DefaultServerConfig returns defaults for an embedded server storing
// JetStream data in storeDir.
func DefaultServerConfig(storeDir string) ServerConfig {
	return ServerConfig{
		Host:              "127.0.0.1",
		Port:              4222,
		StoreDir:          storeDir,
		JetStreamMaxMem:   256 * 1024 * 1024,
		JetStreamMaxStore: 2 * 1024 * 1024 * 1024,
	}
}

// CircuitBreakerConfig configures the publish circuit breaker.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultCircuitBreakerConfig returns production defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Settings bundles the transport configuration derived from the
// application config.
type Settings struct {
	Publisher  PublisherConfig
	Subscriber SubscriberConfig
	Stream     StreamConfig
	Server     ServerConfig
	Router     RouterConfig
}

// SettingsFromConfig maps the application NATS section onto transport
// settings. url is the resolved client URL (embedded or external).
func SettingsFromConfig(c *config.NATSConfig, url string) Settings {
	s := Settings{
		Publisher:  DefaultPublisherConfig(url),
		Subscriber: DefaultSubscriberConfig(url),
		Stream:     DefaultStreamConfig(),
		Server:     DefaultServerConfig(c.StoreDir),
		Router:     DefaultRouterConfig(),
	}

	if c.StreamName != "" {
		s.Stream.Name = c.StreamName
		s.Subscriber.StreamName = c.StreamName
	}
	if c.StreamRetention > 0 {
		s.Stream.MaxAge = c.StreamRetention
	}
	if c.DurableName != "" {
		s.Subscriber.DurableName = c.DurableName
	}
	if c.QueueGroup != "" {
		s.Subscriber.QueueGroup = c.QueueGroup
	}
	if c.SubscribersCount > 0 {
		s.Subscriber.SubscribersCount = c.SubscribersCount
	}
	if c.RouterRetryCount > 0 {
		s.Router.RetryMaxRetries = c.RouterRetryCount
	}
	if c.RouterRetryInitialInterval > 0 {
		s.Router.RetryInitialInterval = c.RouterRetryInitialInterval
	}
	if c.RouterPoisonQueueTopic != "" {
		s.Router.PoisonQueueTopic = c.RouterPoisonQueueTopic
	}
	if c.RouterCloseTimeout > 0 {
		s.Router.CloseTimeout = c.RouterCloseTimeout
	}
	return s
}
