package client

import (
	"sort"
	"sync"

	"campsite/models"
)

// bookingEditSession follows a single booking while an edit dialog is open.
type bookingEditSession struct {
	id        uint
	onRefresh func(models.Booking)
	onClose   func()
}

type placeEditSession struct {
	id        uint
	onRefresh func(models.CampingPlace)
	onClose   func()
}

type itemEditSession struct {
	id        uint
	onRefresh func(models.CampingItem)
	onClose   func()
}

// Store holds the client-side snapshot of the server state, keyed by ID.
// Push events are applied through the Upsert/Remove methods; an upsert of a
// place or item also patches the denormalized copies embedded in cached
// bookings, so a rename is visible in the booking list without a refetch.
type Store struct {
	mu sync.RWMutex

	bookings map[uint]models.Booking
	places   map[uint]models.CampingPlace
	items    map[uint]models.CampingItem

	bookingSessions map[int64]*bookingEditSession
	placeSessions   map[int64]*placeEditSession
	itemSessions    map[int64]*itemEditSession
	nextSession     int64
}

func NewStore() *Store {
	return &Store{
		bookings:        make(map[uint]models.Booking),
		places:          make(map[uint]models.CampingPlace),
		items:           make(map[uint]models.CampingItem),
		bookingSessions: make(map[int64]*bookingEditSession),
		placeSessions:   make(map[int64]*placeEditSession),
		itemSessions:    make(map[int64]*itemEditSession),
	}
}

// Bookings

// SetBookings replaces the whole booking cache, used after a list fetch.
func (s *Store) SetBookings(bookings []models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[uint]models.Booking, len(bookings))
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
}

func (s *Store) UpsertBooking(booking models.Booking) {
	s.mu.Lock()
	previous, existed := s.bookings[booking.ID]
	s.bookings[booking.ID] = booking
	sessions := s.bookingSessionsFor(booking.ID)
	s.mu.Unlock()

	// Only notify open dialogs when the record actually moved forward,
	// otherwise applying our own echoed event would reset the form.
	if !existed || booking.UpdatedAt.After(previous.UpdatedAt) {
		for _, session := range sessions {
			if session.onRefresh != nil {
				session.onRefresh(booking)
			}
		}
	}
}

func (s *Store) RemoveBooking(id uint) {
	s.mu.Lock()
	delete(s.bookings, id)
	sessions := s.bookingSessionsFor(id)
	for key, session := range s.bookingSessions {
		if session.id == id {
			delete(s.bookingSessions, key)
		}
	}
	s.mu.Unlock()

	for _, session := range sessions {
		if session.onClose != nil {
			session.onClose()
		}
	}
}

func (s *Store) Booking(id uint) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	return b, ok
}

// Bookings returns the cached bookings ordered by ID.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Camping places

func (s *Store) SetCampingPlaces(places []models.CampingPlace) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.places = make(map[uint]models.CampingPlace, len(places))
	for _, p := range places {
		s.places[p.ID] = p
	}
}

// UpsertCampingPlace stores the place and patches the copy embedded in
// every cached booking that references it.
func (s *Store) UpsertCampingPlace(place models.CampingPlace) {
	s.mu.Lock()
	previous, existed := s.places[place.ID]
	s.places[place.ID] = place

	for id, booking := range s.bookings {
		if booking.CampingPlaceID == place.ID {
			booking.CampingPlace = place
			s.bookings[id] = booking
		}
	}
	sessions := s.placeSessionsFor(place.ID)
	s.mu.Unlock()

	if !existed || place.UpdatedAt.After(previous.UpdatedAt) {
		for _, session := range sessions {
			if session.onRefresh != nil {
				session.onRefresh(place)
			}
		}
	}
}

func (s *Store) RemoveCampingPlace(id uint) {
	s.mu.Lock()
	delete(s.places, id)
	sessions := s.placeSessionsFor(id)
	for key, session := range s.placeSessions {
		if session.id == id {
			delete(s.placeSessions, key)
		}
	}
	s.mu.Unlock()

	for _, session := range sessions {
		if session.onClose != nil {
			session.onClose()
		}
	}
}

func (s *Store) CampingPlace(id uint) (models.CampingPlace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.places[id]
	return p, ok
}

func (s *Store) CampingPlaces() []models.CampingPlace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CampingPlace, 0, len(s.places))
	for _, p := range s.places {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Camping items

func (s *Store) SetCampingItems(items []models.CampingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[uint]models.CampingItem, len(items))
	for _, it := range items {
		s.items[it.ID] = it
	}
}

// UpsertCampingItem stores the item and patches the copies embedded in
// the booking items of every cached booking.
func (s *Store) UpsertCampingItem(item models.CampingItem) {
	s.mu.Lock()
	previous, existed := s.items[item.ID]
	s.items[item.ID] = item

	for id, booking := range s.bookings {
		patched := false
		for i := range booking.BookingItems {
			if booking.BookingItems[i].CampingItemID == item.ID {
				booking.BookingItems[i].CampingItem = item
				patched = true
			}
		}
		if patched {
			s.bookings[id] = booking
		}
	}
	sessions := s.itemSessionsFor(item.ID)
	s.mu.Unlock()

	if !existed || item.UpdatedAt.After(previous.UpdatedAt) {
		for _, session := range sessions {
			if session.onRefresh != nil {
				session.onRefresh(item)
			}
		}
	}
}

func (s *Store) RemoveCampingItem(id uint) {
	s.mu.Lock()
	delete(s.items, id)
	sessions := s.itemSessionsFor(id)
	for key, session := range s.itemSessions {
		if session.id == id {
			delete(s.itemSessions, key)
		}
	}
	s.mu.Unlock()

	for _, session := range sessions {
		if session.onClose != nil {
			session.onClose()
		}
	}
}

func (s *Store) CampingItem(id uint) (models.CampingItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	return it, ok
}

func (s *Store) CampingItems() []models.CampingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CampingItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edit sessions

// TrackBookingEdit registers an open edit dialog for a booking. onRefresh
// fires when a newer version arrives over the push channel, onClose when
// the booking is deleted. The returned func stops the tracking.
func (s *Store) TrackBookingEdit(id uint, onRefresh func(models.Booking), onClose func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSession
	s.nextSession++
	s.bookingSessions[key] = &bookingEditSession{id: id, onRefresh: onRefresh, onClose: onClose}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.bookingSessions, key)
	}
}

func (s *Store) TrackCampingPlaceEdit(id uint, onRefresh func(models.CampingPlace), onClose func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSession
	s.nextSession++
	s.placeSessions[key] = &placeEditSession{id: id, onRefresh: onRefresh, onClose: onClose}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.placeSessions, key)
	}
}

func (s *Store) TrackCampingItemEdit(id uint, onRefresh func(models.CampingItem), onClose func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSession
	s.nextSession++
	s.itemSessions[key] = &itemEditSession{id: id, onRefresh: onRefresh, onClose: onClose}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.itemSessions, key)
	}
}

// Callers hold s.mu.

func (s *Store) bookingSessionsFor(id uint) []*bookingEditSession {
	var out []*bookingEditSession
	for _, session := range s.bookingSessions {
		if session.id == id {
			out = append(out, session)
		}
	}
	return out
}

func (s *Store) placeSessionsFor(id uint) []*placeEditSession {
	var out []*placeEditSession
	for _, session := range s.placeSessions {
		if session.id == id {
			out = append(out, session)
		}
	}
	return out
}

func (s *Store) itemSessionsFor(id uint) []*itemEditSession {
	var out []*itemEditSession
	for _, session := range s.itemSessions {
		if session.id == id {
			out = append(out, session)
		}
	}
	return out
}
