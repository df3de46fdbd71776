package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hotel/models"
)

type reservationRepository struct {
	db *gorm.DB
}

func (r *reservationRepository) FindActive() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("Guest").Preload("Room").
		Where("active = ?", true).
		Order("id").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindActiveByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.Preload("Guest").Preload("Room").
		Where("id = ? AND active = ?", id, true).
		First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Save(reservation *models.Reservation) error {
	// Guest e Room já existem; grava apenas a linha da reserva
	return r.db.Omit("Guest", "Room").Create(reservation).Error
}

func (r *reservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Omit("Guest", "Room").Save(reservation).Error
}

func (r *reservationRepository) DeleteByRoomID(roomID uint) error {
	return r.db.Where("room_id = ?", roomID).Delete(&models.Reservation{}).Error
}
