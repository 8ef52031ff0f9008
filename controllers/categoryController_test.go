package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
)

func guardCategory(id uint, childIDs ...uint) *models.Category {
	category := &models.Category{}
	category.ID = id
	for _, childID := range childIDs {
		category.AddSubcategory(childID)
	}
	return category
}

func TestValidateParentChange(t *testing.T) {
	tests := []struct {
		name        string
		category    *models.Category
		newParentID uint
		wantErr     error
	}{
		{"unrelated parent", guardCategory(1, 2, 3), 9, nil},
		{"leaf under another category", guardCategory(5), 1, nil},
		{"own parent", guardCategory(1), 1, errCategoryOwnParent},
		{"direct child as parent", guardCategory(1, 2, 3), 3, errCategoryChildParent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParentChange(tt.category, tt.newParentID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateParentChange() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteCategoryFreesSlug(t *testing.T) {
	setupTestDB(t, &models.Category{})

	recorder, ctx := jsonRequest(t, http.MethodPost, "/category", gin.H{"name": "Laptop Gaming"})
	CreateCategory(ctx)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", recorder.Code, recorder.Body.String())
	}

	var created models.Category
	if err := initializers.DB.Where("slug = ?", "laptop-gaming").First(&created).Error; err != nil {
		t.Fatalf("created category not found: %v", err)
	}

	recorder, ctx = jsonRequest(t, http.MethodDelete, "/category/"+strconv.Itoa(int(created.ID)), nil)
	ctx.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(created.ID))}}
	DeleteCategory(ctx)
	if recorder.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", recorder.Code, recorder.Body.String())
	}

	// The slug must be reusable after deletion.
	recorder, ctx = jsonRequest(t, http.MethodPost, "/category", gin.H{"name": "Laptop Gaming"})
	CreateCategory(ctx)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("recreating a deleted category name failed: %d %s", recorder.Code, recorder.Body.String())
	}
}

func TestSameParent(t *testing.T) {
	two := uint(2)

	tests := []struct {
		name      string
		current   *uint
		requested uint
		want      bool
	}{
		{"root stays root", nil, 0, true},
		{"root to parent", nil, 2, false},
		{"parent unchanged", &two, 2, true},
		{"parent changed", &two, 3, false},
		{"parent to root", &two, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameParent(tt.current, tt.requested); got != tt.want {
				t.Errorf("sameParent() = %v, want %v", got, tt.want)
			}
		})
	}
}
