package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wifispots-server/model"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (userDAO *UserDAO) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User

	result := userDAO.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, model.ErrIdentityNotFound
		}
		return model.User{}, result.Error
	}

	return user, nil
}
