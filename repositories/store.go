package repositories

import (
	"gorm.io/gorm"

	"hotel/models"
)

// GormStore implementa models.Store sobre o Postgres
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Rooms() models.RoomRepository {
	return &roomRepository{db: s.db}
}

func (s *GormStore) Guests() models.GuestRepository {
	return &guestRepository{db: s.db}
}

func (s *GormStore) Reservations() models.ReservationRepository {
	return &reservationRepository{db: s.db}
}

func (s *GormStore) Users() models.UserRepository {
	return &userRepository{db: s.db}
}

// WithTx executa fn dentro de uma transação do gorm; rollback em erro
func (s *GormStore) WithTx(fn func(models.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}
