package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Fullname               string `json:"fullname"`
	Username               string `json:"username"`
	Email                  string `json:"email" gorm:"uniqueIndex"`
	Phone                  string `json:"phone"`
	Password               string `json:"password"`
	Role                   string `json:"role"`
	AccountActivated       bool   `json:"accountActivated"`
	AccountActivationToken string `json:"-"`
	PasswordResetToken     string `json:"-"`
	AcceptTerms            bool   `json:"acceptTerms"`
	SubscribeToNews        bool   `json:"subscribeToNews"`
}

type LoginData struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}
