package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hotel/models"
)

type roomRepository struct {
	db *gorm.DB
}

func (r *roomRepository) FindAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Order("number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByNumber(number string) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("number = ?", number).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Save(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) Update(room *models.Room) error {
	// Save com ponteiro para que ReservedBy nil também seja gravado
	return r.db.Save(room).Error
}

func (r *roomRepository) Delete(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}
