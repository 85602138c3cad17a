package client

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"campsite/models"
)

const defaultReconnectDelay = 3 * time.Second

// event mirrors the server push frame: {"type": "bookings/updated", "payload": {...}}.
type event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type deletedPayload struct {
	ID uint `json:"id"`
}

// Sync keeps a Store up to date over the websocket push channel. A lost
// connection is retried with a fixed delay until the context is cancelled.
type Sync struct {
	url            string
	store          *Store
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
}

// NewSync builds the sync loop for baseURL (the http(s) address of the
// server). The token is passed on the query string, the upgrade request
// of a browser cannot carry headers.
func NewSync(baseURL, token string, store *Store) *Sync {
	wsURL := strings.TrimRight(baseURL, "/")
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)
	wsURL = strings.Replace(wsURL, "http://", "ws://", 1)
	wsURL += "/ws?token=" + url.QueryEscape(token)

	return &Sync{
		url:            wsURL,
		store:          store,
		dialer:         websocket.DefaultDialer,
		reconnectDelay: defaultReconnectDelay,
	}
}

// Run connects and dispatches events until ctx is cancelled. It blocks,
// callers run it in a goroutine.
func (s *Sync) Run(ctx context.Context) {
	for {
		if err := s.connectAndRead(ctx); err != nil {
			log.Printf("push channel disconnected: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *Sync) connectAndRead(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			conn.Close()
			return err
		}
		s.store.Apply(data)
	}
}

// Apply dispatches a raw push frame into the store. Unknown event types
// and malformed frames are ignored, the channel stays up.
func (s *Store) Apply(data []byte) {
	var ev event
	if err := json.Unmarshal(data, &ev); err != nil {
		return
	}

	switch ev.Type {
	case "bookings/created", "bookings/updated":
		var booking models.Booking
		if err := json.Unmarshal(ev.Payload, &booking); err == nil && booking.ID != 0 {
			s.UpsertBooking(booking)
		}
	case "bookings/deleted":
		var payload deletedPayload
		if err := json.Unmarshal(ev.Payload, &payload); err == nil && payload.ID != 0 {
			s.RemoveBooking(payload.ID)
		}
	case "campingPlaces/created", "campingPlaces/updated":
		var place models.CampingPlace
		if err := json.Unmarshal(ev.Payload, &place); err == nil && place.ID != 0 {
			s.UpsertCampingPlace(place)
		}
	case "campingPlaces/deleted":
		var payload deletedPayload
		if err := json.Unmarshal(ev.Payload, &payload); err == nil && payload.ID != 0 {
			s.RemoveCampingPlace(payload.ID)
		}
	case "campingItems/created", "campingItems/updated":
		var item models.CampingItem
		if err := json.Unmarshal(ev.Payload, &item); err == nil && item.ID != 0 {
			s.UpsertCampingItem(item)
		}
	case "campingItems/deleted":
		var payload deletedPayload
		if err := json.Unmarshal(ev.Payload, &payload); err == nil && payload.ID != 0 {
			s.RemoveCampingItem(payload.ID)
		}
	}
}
