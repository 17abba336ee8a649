// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package main

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/eventprocessor"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/wal"
)

// EventComponents holds the recompute pipeline. The router and retry loop
// are started by the supervisor; everything else is released by Close.
// Once wired, the Watermill publisher is owned by the rating publisher and
// closed with it.
type EventComponents struct {
	publisher eventprocessor.RatingPublisher
	router    *eventprocessor.Router
	retryLoop *wal.RetryLoop

	closers []func()
}

// Close releases resources in reverse order of creation.
func (c *EventComponents) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func (c *EventComponents) onClose(name string, fn func() error) {
	c.closers = append(c.closers, func() {
		if err := fn(); err != nil {
			logging.Error().Err(err).Str("component", name).Msg("Error during shutdown")
		}
	})
}

// transport is the Watermill publisher/subscriber pair carrying rating
// events.
type transport struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	settings   eventprocessor.Settings
}

// initEvents wires the publisher, the consuming router and, when enabled,
// the WAL in front of the publisher.
func initEvents(ctx context.Context, cfg *config.Config, job eventprocessor.Recomputer, hub eventprocessor.Broadcaster) (*EventComponents, error) {
	components := &EventComponents{}
	logger := eventprocessor.NewLoggerAdapter()

	var (
		tr  *transport
		err error
	)
	if cfg.NATS.Enabled {
		tr, err = initNATSTransport(ctx, &cfg.NATS, logger, components)
	} else {
		logging.Warn().Msg("NATS disabled: rating events use an in-process channel and are not persisted")
		tr = initChannelTransport(&cfg.NATS, logger)
	}
	if err != nil {
		components.Close()
		return nil, err
	}

	if err := wireEvents(cfg, tr, job, hub, logger, components); err != nil {
		components.Close()
		return nil, err
	}
	return components, nil
}

// wireEvents builds the router and rating publisher on top of tr. Until the
// rating publisher takes ownership of tr.publisher, components closes it
// directly.
func wireEvents(cfg *config.Config, tr *transport, job eventprocessor.Recomputer, hub eventprocessor.Broadcaster, logger watermill.LoggerAdapter, components *EventComponents) error {
	owned := false
	components.onClose("transport-publisher", func() error {
		if owned {
			return nil
		}
		return tr.publisher.Close()
	})

	router, err := eventprocessor.NewRouter(&tr.settings.Router, tr.publisher, logger)
	if err != nil {
		return fmt.Errorf("create event router: %w", err)
	}
	components.router = router

	handler, err := eventprocessor.NewRecomputeHandler(job, hub, logging.WithComponent("recompute-handler"))
	if err != nil {
		return fmt.Errorf("create recompute handler: %w", err)
	}
	handler.Register(router, tr.subscriber)

	publisher, err := eventprocessor.NewPublisher(tr.publisher,
		eventprocessor.NewCircuitBreaker(eventprocessor.DefaultCircuitBreakerConfig("rating-publisher")))
	if err != nil {
		return fmt.Errorf("create rating publisher: %w", err)
	}
	owned = true
	components.onClose("rating-publisher", publisher.Close)
	components.publisher = publisher

	return initWAL(&cfg.WAL, publisher, components)
}

func initChannelTransport(c *config.NATSConfig, logger watermill.LoggerAdapter) *transport {
	pubSub := eventprocessor.NewGoChannelPubSub(logger)
	return &transport{
		publisher:  pubSub,
		subscriber: pubSub,
		settings:   eventprocessor.SettingsFromConfig(c, ""),
	}
}

// initNATSTransport connects to NATS, starting the embedded server first
// when configured, and makes sure the rating stream exists.
func initNATSTransport(ctx context.Context, c *config.NATSConfig, logger watermill.LoggerAdapter, components *EventComponents) (*transport, error) {
	url := c.URL
	if c.EmbeddedServer {
		serverCfg := eventprocessor.SettingsFromConfig(c, url).Server
		ns, err := eventprocessor.NewEmbeddedServer(&serverCfg)
		if err != nil {
			return nil, fmt.Errorf("start embedded NATS server: %w", err)
		}
		components.closers = append(components.closers, ns.Shutdown)
		url = ns.ClientURL()
		logging.Info().Str("url", url).Str("store_dir", serverCfg.StoreDir).Msg("Embedded NATS server started")
	}

	settings := eventprocessor.SettingsFromConfig(c, url)
	if err := ensureStream(ctx, url, &settings.Stream); err != nil {
		return nil, err
	}

	publisher, err := eventprocessor.NewNATSPublisher(settings.Publisher, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS publisher: %w", err)
	}

	subscriber, err := eventprocessor.NewNATSSubscriber(&settings.Subscriber, logger)
	if err != nil {
		if cerr := publisher.Close(); cerr != nil {
			logging.Error().Err(cerr).Str("component", "nats-publisher").Msg("Error during shutdown")
		}
		return nil, fmt.Errorf("create NATS subscriber: %w", err)
	}
	components.onClose("nats-subscriber", subscriber.Close)

	logging.Info().
		Str("url", url).
		Str("stream", settings.Stream.Name).
		Str("durable", settings.Subscriber.DurableName).
		Int("subscribers", settings.Subscriber.SubscribersCount).
		Msg("NATS event transport ready")

	return &transport{publisher: publisher, subscriber: subscriber, settings: settings}, nil
}

func ensureStream(ctx context.Context, url string, streamCfg *eventprocessor.StreamConfig) error {
	nc, err := natsgo.Connect(url, natsgo.Name("movie-ratings-stream-init"))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("create JetStream context: %w", err)
	}
	initializer, err := eventprocessor.NewStreamInitializer(js, streamCfg)
	if err != nil {
		return err
	}
	if _, err := initializer.EnsureStream(ctx); err != nil {
		return fmt.Errorf("ensure stream %s: %w", streamCfg.Name, err)
	}
	return nil
}

// initWAL puts the BadgerDB outbox in front of inner. Pending entries
// from a previous run are republished by the retry loop on its first pass.
func initWAL(c *config.WALConfig, inner eventprocessor.RatingPublisher, components *EventComponents) error {
	if !c.Enabled {
		logging.Warn().Msg("WAL disabled: rating events may be lost if publishing fails")
		return nil
	}

	walCfg := wal.FromAppConfig(c)
	if err := walCfg.Validate(); err != nil {
		return fmt.Errorf("invalid WAL configuration: %w", err)
	}

	w, err := wal.Open(&walCfg)
	if err != nil {
		return fmt.Errorf("open WAL: %w", err)
	}
	components.onClose("wal", w.Close)

	walPublisher, err := eventprocessor.NewWALPublisher(inner, w)
	if err != nil {
		return fmt.Errorf("create WAL publisher: %w", err)
	}
	components.publisher = walPublisher
	components.retryLoop = wal.NewRetryLoop(w, walPublisher.RetryPublisher())

	logging.Info().
		Str("path", walCfg.Path).
		Bool("sync_writes", walCfg.SyncWrites).
		Dur("retry_interval", walCfg.RetryInterval).
		Msg("WAL enabled for rating events")
	return nil
}
