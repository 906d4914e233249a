// repository/user.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"billing-backend/models"
)

type UserRepository interface {
	FindByUsername(username string) (*models.User, error)
	Save(user *models.User) error
	UpdateLastLogin(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) UpdateLastLogin(user *models.User) error {
	return r.db.Model(user).Update("last_login", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
