// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package eventprocessor

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/logging"
)

// NewLoggerAdapter returns a Watermill logger writing through the global
// zerolog logger.
func NewLoggerAdapter() watermill.LoggerAdapter {
	return watermill.NewSlogLogger(slog.New(logging.NewSlogHandler()))
}

// NewGoChannelPubSub returns an in-process pub/sub used when NATS is
// disabled. Messages are not persisted; the WAL covers publishes made
// while the process is running.
func NewGoChannelPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	if logger == nil {
		logger = NewLoggerAdapter()
	}
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            256,
		BlockPublishUntilSubscriberAck: false,
	}, logger)
}
