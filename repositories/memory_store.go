package repositories

import (
	"sort"
	"sync"

	"hotel/models"
)

// MemoryStore implementa models.Store em memória, sem Postgres. As
// operações são serializadas por um único mutex, então WithTx vale como
// seção crítica; não há rollback, mas os repositórios devolvem cópias e
// só persistem via Save/Update, o que mantém a semântica de tudo-ou-nada
// enquanto as escritas ficam no fim da transação.
type MemoryStore struct {
	mu sync.Mutex

	rooms        map[uint]models.Room
	guests       map[uint]models.Guest
	reservations map[uint]models.Reservation
	users        map[uint]models.User

	nextRoomID        uint
	nextGuestID       uint
	nextReservationID uint
	nextUserID        uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:             make(map[uint]models.Room),
		guests:            make(map[uint]models.Guest),
		reservations:      make(map[uint]models.Reservation),
		users:             make(map[uint]models.User),
		nextRoomID:        1,
		nextGuestID:       1,
		nextReservationID: 1,
		nextUserID:        1,
	}
}

func (s *MemoryStore) Rooms() models.RoomRepository               { return &memRoomRepo{s: s} }
func (s *MemoryStore) Guests() models.GuestRepository             { return &memGuestRepo{s: s} }
func (s *MemoryStore) Reservations() models.ReservationRepository { return &memReservationRepo{s: s} }
func (s *MemoryStore) Users() models.UserRepository               { return &memUserRepo{s: s} }

func (s *MemoryStore) WithTx(fn func(models.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&txMemoryStore{s: s})
}

// txMemoryStore é a visão usada dentro de WithTx: o mutex já está em
// posse da transação, então os repositórios não travam de novo.
type txMemoryStore struct {
	s *MemoryStore
}

func (t *txMemoryStore) Rooms() models.RoomRepository   { return &memRoomRepo{s: t.s, locked: true} }
func (t *txMemoryStore) Guests() models.GuestRepository { return &memGuestRepo{s: t.s, locked: true} }
func (t *txMemoryStore) Reservations() models.ReservationRepository {
	return &memReservationRepo{s: t.s, locked: true}
}
func (t *txMemoryStore) Users() models.UserRepository { return &memUserRepo{s: t.s, locked: true} }

func (t *txMemoryStore) WithTx(fn func(models.Store) error) error {
	return fn(t)
}

func (s *MemoryStore) lock(alreadyLocked bool) func() {
	if alreadyLocked {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type memRoomRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memRoomRepo) FindAll() ([]models.Room, error) {
	defer r.s.lock(r.locked)()
	rooms := make([]models.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })
	return rooms, nil
}

func (r *memRoomRepo) FindByID(id uint) (*models.Room, error) {
	defer r.s.lock(r.locked)()
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *memRoomRepo) FindByNumber(number string) (*models.Room, error) {
	defer r.s.lock(r.locked)()
	for _, room := range r.s.rooms {
		if room.Number == number {
			found := room
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memRoomRepo) Save(room *models.Room) error {
	defer r.s.lock(r.locked)()
	if room.ID == 0 {
		room.ID = r.s.nextRoomID
		r.s.nextRoomID++
	}
	r.s.rooms[room.ID] = *room
	return nil
}

func (r *memRoomRepo) Update(room *models.Room) error {
	defer r.s.lock(r.locked)()
	r.s.rooms[room.ID] = *room
	return nil
}

func (r *memRoomRepo) Delete(id uint) error {
	defer r.s.lock(r.locked)()
	delete(r.s.rooms, id)
	return nil
}

type memGuestRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memGuestRepo) FindAll() ([]models.Guest, error) {
	defer r.s.lock(r.locked)()
	guests := make([]models.Guest, 0, len(r.s.guests))
	for _, guest := range r.s.guests {
		guests = append(guests, guest)
	}
	sort.Slice(guests, func(i, j int) bool { return guests[i].Name < guests[j].Name })
	return guests, nil
}

func (r *memGuestRepo) FindByID(id uint) (*models.Guest, error) {
	defer r.s.lock(r.locked)()
	guest, ok := r.s.guests[id]
	if !ok {
		return nil, nil
	}
	return &guest, nil
}

func (r *memGuestRepo) FindByEmail(email string) (*models.Guest, error) {
	defer r.s.lock(r.locked)()
	for _, guest := range r.s.guests {
		if guest.Email == email {
			found := guest
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memGuestRepo) Save(guest *models.Guest) error {
	defer r.s.lock(r.locked)()
	if guest.ID == 0 {
		guest.ID = r.s.nextGuestID
		r.s.nextGuestID++
	}
	r.s.guests[guest.ID] = *guest
	return nil
}

type memReservationRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memReservationRepo) FindActive() ([]models.Reservation, error) {
	defer r.s.lock(r.locked)()
	var active []models.Reservation
	for _, res := range r.s.reservations {
		if !res.Active {
			continue
		}
		res.Guest = r.s.guests[res.GuestID]
		res.Room = r.s.rooms[res.RoomID]
		active = append(active, res)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

func (r *memReservationRepo) FindActiveByID(id uint) (*models.Reservation, error) {
	defer r.s.lock(r.locked)()
	res, ok := r.s.reservations[id]
	if !ok || !res.Active {
		return nil, nil
	}
	res.Guest = r.s.guests[res.GuestID]
	res.Room = r.s.rooms[res.RoomID]
	return &res, nil
}

func (r *memReservationRepo) Save(reservation *models.Reservation) error {
	defer r.s.lock(r.locked)()
	if reservation.ID == 0 {
		reservation.ID = r.s.nextReservationID
		r.s.nextReservationID++
	}
	r.s.reservations[reservation.ID] = *reservation
	return nil
}

func (r *memReservationRepo) Update(reservation *models.Reservation) error {
	defer r.s.lock(r.locked)()
	r.s.reservations[reservation.ID] = *reservation
	return nil
}

func (r *memReservationRepo) DeleteByRoomID(roomID uint) error {
	defer r.s.lock(r.locked)()
	for id, res := range r.s.reservations {
		if res.RoomID == roomID {
			delete(r.s.reservations, id)
		}
	}
	return nil
}

type memUserRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memUserRepo) FindByEmail(email string) (*models.User, error) {
	defer r.s.lock(r.locked)()
	for _, user := range r.s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Save(user *models.User) error {
	defer r.s.lock(r.locked)()
	if user.ID == 0 {
		user.ID = r.s.nextUserID
		r.s.nextUserID++
	}
	r.s.users[user.ID] = *user
	return nil
}
