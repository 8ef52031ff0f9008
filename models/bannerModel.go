package models

import "gorm.io/gorm"

type Banner struct {
	gorm.Model
	Title     string `json:"title" binding:"required"`
	Image     string `json:"image" binding:"required"`
	Link      string `json:"link"`
	Position  string `json:"position"`
	IsActive  bool   `json:"isActive"`
	SortOrder int    `json:"sortOrder"`
}
