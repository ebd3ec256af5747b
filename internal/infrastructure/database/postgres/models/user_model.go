package models

import domainUser "restaurant-order-service/internal/domain/user"

type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	RefreshToken string
}

func (UserModel) TableName() string {
	return "users"
}

func ToUserModel(u *domainUser.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Password:     u.Password,
		RefreshToken: u.RefreshToken,
	}
}

func ToUserEntity(m *UserModel) *domainUser.User {
	return &domainUser.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Password:     m.Password,
		RefreshToken: m.RefreshToken,
	}
}
