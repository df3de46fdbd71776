package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hotel/models"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(user *models.User) error {
	return r.db.Create(user).Error
}
