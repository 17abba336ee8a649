// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

/*
Package websocket pushes change notifications to browser clients.

After a rating is stored and its ML score recomputed, the hub broadcasts

	{"type": "rating_updated", "data": {"movieId": 550, "userId": "u1", "score": 0.74, "timestamp": "..."}}
	{"type": "recommendation_updated", "data": {...same shape...}}

to connected clients. A client may narrow what it receives by following
movie ids:

	{"type": "subscribe", "data": {"movieIds": [550, 13]}}
	{"type": "unsubscribe", "data": {"movieIds": [13]}}

Each is answered with {"type": "subscribed", "data": {"movieIds": [...]}}
listing the current set. A client following nothing receives every
notification, and an unsubscribe with no ids clears the set. A client may
send {"type": "ping"} and receives {"type": "pong"}.

Hub.RunWithContext is the hub's event loop and is run under the supervisor
tree. Broadcasts never block: when the broadcast buffer or a client's send
buffer is full the message is dropped (and the slow client disconnected).
*/
package websocket
