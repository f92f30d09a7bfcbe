package dbmodel

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email string `gorm:"not null;unique"`

	FirstName string `gorm:"not null"`
	LastName  *string

	AppUserProfile *AppUserProfile `gorm:"foreignKey:UserID"`
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user User
	tx := r.db.WithContext(ctx).Model(&user)

	err := tx.Where("id = ?", id).First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}
