package models

import "gorm.io/gorm"

type Address struct {
	gorm.Model
	UserID    int    `json:"userId"`
	FullName  string `json:"fullName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Street    string `json:"street" binding:"required"`
	Ward      string `json:"ward"`
	District  string `json:"district"`
	City      string `json:"city" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}
