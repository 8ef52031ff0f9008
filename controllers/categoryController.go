package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
	"github.com/vietshop/vietshop-api/utils"
	"gorm.io/gorm"
)

type createCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
	IsFeature   bool   `json:"isFeature"`
	SortOrder   int    `json:"sortOrder"`
	ParentID    *uint  `json:"parentId"`
}

type updateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"isActive"`
	IsFeature   *bool   `json:"isFeature"`
	SortOrder   *int    `json:"sortOrder"`
	// nil leaves the parent unchanged; 0 moves the category to the root.
	ParentID *uint `json:"parentId"`
}

var (
	errCategoryOwnParent   = errors.New("a category cannot be its own parent")
	errCategoryChildParent = errors.New("cannot move a category under one of its own children")
)

// validateParentChange enforces the direct-cycle guard: the new parent may not
// be the category itself nor one of its direct children. Indirect cycles
// through deeper descendants are intentionally not walked; see DESIGN.md.
func validateParentChange(category *models.Category, newParentID uint) error {
	if newParentID == category.ID {
		return errCategoryOwnParent
	}
	for _, childID := range category.SubcategoryIDs() {
		if childID == newParentID {
			return errCategoryChildParent
		}
	}
	return nil
}

func slugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := initializers.DB.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateCategory(ctx *gin.Context) {
	var input createCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Category name is required", err)
		return
	}

	slug := utils.Slugify(input.Name)
	if slug == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category name produces an empty slug")
		return
	}

	exists, err := slugExists(slug, 0)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to check category name", err)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, "A category with this name already exists")
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	category := models.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Image:       input.Image,
		Icon:        input.Icon,
		IsActive:    isActive,
		IsFeature:   input.IsFeature,
		SortOrder:   input.SortOrder,
	}

	var parent models.Category
	if input.ParentID != nil {
		if err := initializers.DB.First(&parent, *input.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Parent category not found")
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to load parent category", err)
			}
			return
		}
		category.ParentID = input.ParentID
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	if input.ParentID != nil {
		parent.AddSubcategory(category.ID)
		if err := initializers.DB.Save(&parent).Error; err != nil {
			log.Printf("Category %d created, but parent %d index not updated: %v", category.ID, parent.ID, err)
		}
	}

	ctx.JSON(http.StatusCreated, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load category", err)
		}
		return
	}

	var input updateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if input.Name != nil && *input.Name != category.Name {
		slug := utils.Slugify(*input.Name)
		if slug == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, "Category name produces an empty slug")
			return
		}
		exists, err := slugExists(slug, category.ID)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to check category name", err)
			return
		}
		if exists {
			sendErrorResponse(ctx, http.StatusBadRequest, "A category with this name already exists")
			return
		}
		category.Name = *input.Name
		category.Slug = slug
	}

	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Image != nil {
		category.Image = *input.Image
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.IsFeature != nil {
		category.IsFeature = *input.IsFeature
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if input.ParentID != nil && !sameParent(category.ParentID, *input.ParentID) {
		if err := applyParentChange(&category, *input.ParentID); err != nil {
			switch {
			case errors.Is(err, errCategoryOwnParent), errors.Is(err, errCategoryChildParent):
				sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			case errors.Is(err, gorm.ErrRecordNotFound):
				sendErrorResponse(ctx, http.StatusNotFound, "Parent category not found")
			default:
				respondWithError(ctx, http.StatusInternalServerError, "Failed to move category", err)
			}
			return
		}
	}

	if err := initializers.DB.Save(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func sameParent(current *uint, requested uint) bool {
	if current == nil {
		return requested == 0
	}
	return *current == requested
}

// applyParentChange validates the move and maintains both sides of the
// hierarchy: the category's ParentID and the subcategory indexes of the old
// and new parents.
func applyParentChange(category *models.Category, newParentID uint) error {
	if newParentID != 0 {
		if err := validateParentChange(category, newParentID); err != nil {
			return err
		}
		var newParent models.Category
		if err := initializers.DB.First(&newParent, newParentID).Error; err != nil {
			return err
		}
		newParent.AddSubcategory(category.ID)
		if err := initializers.DB.Save(&newParent).Error; err != nil {
			return err
		}
	}

	if category.ParentID != nil {
		var oldParent models.Category
		if err := initializers.DB.First(&oldParent, *category.ParentID).Error; err == nil {
			oldParent.RemoveSubcategory(category.ID)
			if err := initializers.DB.Save(&oldParent).Error; err != nil {
				log.Printf("Category %d moved, but old parent %d index not updated: %v", category.ID, oldParent.ID, err)
			}
		}
	}

	if newParentID == 0 {
		category.ParentID = nil
	} else {
		category.ParentID = &newParentID
	}
	return nil
}

func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load category", err)
		}
		return
	}

	if category.HasSubcategories() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cannot delete a category containing children")
		return
	}

	if category.ParentID != nil {
		var parent models.Category
		if err := initializers.DB.First(&parent, *category.ParentID).Error; err == nil {
			parent.RemoveSubcategory(category.ID)
			if err := initializers.DB.Save(&parent).Error; err != nil {
				log.Printf("Category %d deleted, but parent %d index not updated: %v", category.ID, parent.ID, err)
			}
		}
	}

	// Hard delete, otherwise the soft-deleted row keeps the slug occupied
	// under the unique index and the name can never be reused.
	if err := initializers.DB.Unscoped().Delete(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully."})
}

func GetCategories(ctx *gin.Context) {
	query := initializers.DB.Order("sort_order asc, id asc")

	if ctx.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if ctx.Query("feature") == "true" {
		query = query.Where("is_feature = ?", true)
	}

	var categories []models.Category
	if result := query.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

func GetCategoryTree(ctx *gin.Context) {
	var categories []models.Category
	result := initializers.DB.
		Where("is_active = ?", true).
		Order("sort_order asc, id asc").
		Find(&categories)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"categories": models.BuildCategoryTree(categories, nil),
	})
}

func GetCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

type reorderCategoryItem struct {
	ID        uint `json:"id" binding:"required"`
	SortOrder int  `json:"sortOrder"`
}

// ReorderCategories updates the sort order of a batch of categories as a
// single transaction: either every item is applied or none is.
func ReorderCategories(ctx *gin.Context) {
	var input struct {
		Items []reorderCategoryItem `json:"items" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, item := range input.Items {
		result := tx.Model(&models.Category{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.SortOrder)
		if result.Error != nil {
			tx.Rollback()
			respondWithError(ctx, http.StatusInternalServerError, "Failed to reorder categories", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save category order", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Categories reordered successfully."})
}
