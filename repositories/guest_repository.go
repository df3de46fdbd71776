package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hotel/models"
)

type guestRepository struct {
	db *gorm.DB
}

func (r *guestRepository) FindAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.Order("name").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) FindByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.First(&guest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindByEmail(email string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.Where("email = ?", email).First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) Save(guest *models.Guest) error {
	return r.db.Create(guest).Error
}
