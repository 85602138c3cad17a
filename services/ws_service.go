package services

import (
	"encoding/json"
	"net/http"

	"github.com/olahol/melody"

	"campsite/utils"
)

// Entity names used in event types, matching the client store keys.
const (
	EntityBookings      = "bookings"
	EntityCampingPlaces = "campingPlaces"
	EntityCampingItems  = "campingItems"
)

// Event is the wire shape of every push message:
// {"type": "<entity>/<created|updated|deleted>", "payload": ...}.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// DeletedPayload is the payload of deletion events.
type DeletedPayload struct {
	ID uint `json:"id"`
}

// Broadcaster owns the set of open push connections and fans entity
// change events out to all of them. It is built once in the composition
// root and handed to the controllers and jobs; delivery is best effort,
// a dead connection just misses the event.
type Broadcaster struct {
	m *melody.Melody
}

func NewBroadcaster(m *melody.Melody) *Broadcaster {
	b := &Broadcaster{m: m}

	m.HandleConnect(func(s *melody.Session) {
		utils.LogInfo("push client connected (%d open)", m.Len())
	})
	m.HandleDisconnect(func(s *melody.Session) {
		utils.LogInfo("push client disconnected (%d open)", m.Len())
	})

	return b
}

// HandleRequest upgrades the HTTP request to a websocket session. Auth
// happens in the middleware before this is reached.
func (b *Broadcaster) HandleRequest(w http.ResponseWriter, r *http.Request) error {
	return b.m.HandleRequest(w, r)
}

// Close terminates all open sessions, tied to server shutdown.
func (b *Broadcaster) Close() error {
	return b.m.Close()
}

func (b *Broadcaster) Created(entity string, payload interface{}) {
	b.send(Event{Type: entity + "/created", Payload: payload})
}

func (b *Broadcaster) Updated(entity string, payload interface{}) {
	b.send(Event{Type: entity + "/updated", Payload: payload})
}

func (b *Broadcaster) Deleted(entity string, id uint) {
	b.send(Event{Type: entity + "/deleted", Payload: DeletedPayload{ID: id}})
}

// send marshals and broadcasts the event. Failures are logged and
// swallowed, the HTTP response of the triggering request is already done.
func (b *Broadcaster) send(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		utils.LogError("failed to marshal push event %s: %v", event.Type, err)
		return
	}
	if err := b.m.Broadcast(message); err != nil {
		utils.LogError("failed to broadcast %s: %v", event.Type, err)
	}
}
