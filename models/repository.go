package models

// RoomRepository define as operações de persistência de quartos.
// Buscas por id/número retornam (nil, nil) quando o registro não existe.
type RoomRepository interface {
	FindAll() ([]Room, error)
	FindByID(id uint) (*Room, error)
	FindByNumber(number string) (*Room, error)
	Save(room *Room) error
	Update(room *Room) error
	Delete(id uint) error
}

type GuestRepository interface {
	FindAll() ([]Guest, error)
	FindByID(id uint) (*Guest, error)
	FindByEmail(email string) (*Guest, error)
	Save(guest *Guest) error
}

// ReservationRepository define as operações de persistência de reservas.
// Reservas desativadas permanecem no banco como histórico; só a exclusão
// do quarto remove os registros.
type ReservationRepository interface {
	FindActive() ([]Reservation, error)
	FindActiveByID(id uint) (*Reservation, error)
	Save(reservation *Reservation) error
	Update(reservation *Reservation) error
	DeleteByRoomID(roomID uint) error
}

type UserRepository interface {
	FindByEmail(email string) (*User, error)
	Save(user *User) error
}

// Store agrupa os repositórios e delimita a fronteira transacional.
// WithTx executa fn sobre um Store ligado à mesma transação; se fn
// retornar erro, nenhuma escrita feita dentro dela é mantida.
type Store interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Reservations() ReservationRepository
	Users() UserRepository
	WithTx(fn func(Store) error) error
}
