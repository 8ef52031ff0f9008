package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductSpecs struct {
	gorm.Model
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Brand          string         `json:"brand"`
	Name           string         `json:"name" binding:"required"`
	Slug           string         `json:"slug" gorm:"uniqueIndex;size:191"`
	Description    string         `json:"description"`
	Price          float64        `json:"price" binding:"required"`
	CategoryID     *uint          `json:"categoryId"`
	CountInStock   int            `json:"countInStock"`
	IsActive       bool           `json:"isActive"`
	Colors         datatypes.JSON `json:"colors"`
	Specifications []ProductSpecs `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images         []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
