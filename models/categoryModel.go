package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:191"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"isActive"`
	IsFeature   bool   `json:"isFeature"`
	SortOrder   int    `json:"sortOrder"`
	// ParentID is the source of truth for the hierarchy. Subcategories is a
	// derived index of child ids kept in step with it on every mutation.
	ParentID      *uint          `json:"parentId"`
	Subcategories datatypes.JSON `json:"subcategories"`
}

// SubcategoryIDs decodes the child-id index. A missing or malformed index
// reads as empty.
func (c *Category) SubcategoryIDs() []uint {
	var ids []uint
	if len(c.Subcategories) == 0 {
		return ids
	}
	if err := json.Unmarshal(c.Subcategories, &ids); err != nil {
		return nil
	}
	return ids
}

func (c *Category) HasSubcategories() bool {
	return len(c.SubcategoryIDs()) > 0
}

func (c *Category) AddSubcategory(id uint) {
	ids := c.SubcategoryIDs()
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	ids = append(ids, id)
	c.setSubcategories(ids)
}

func (c *Category) RemoveSubcategory(id uint) {
	ids := c.SubcategoryIDs()
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	c.setSubcategories(kept)
}

func (c *Category) setSubcategories(ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	c.Subcategories = raw
}

// CategoryNode is a category with its descendants resolved, as served by the
// tree endpoint.
type CategoryNode struct {
	Category
	Children []CategoryNode `json:"children"`
}

// BuildCategoryTree turns a flat category list into a nested tree rooted at
// parentID (nil for top level). Records pointing at a parent that is not in
// the list never surface. Cycles are prevented at mutation time, so the
// recursion terminates on stored data.
func BuildCategoryTree(categories []Category, parentID *uint) []CategoryNode {
	nodes := []CategoryNode{}
	for _, category := range categories {
		if !matchesParent(category.ParentID, parentID) {
			continue
		}
		childID := category.ID
		nodes = append(nodes, CategoryNode{
			Category: category,
			Children: BuildCategoryTree(categories, &childID),
		})
	}
	return nodes
}

func matchesParent(got, want *uint) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}
	return *got == *want
}

// FlattenCategoryTree walks a tree depth-first and returns every category id
// in visit order.
func FlattenCategoryTree(nodes []CategoryNode) []uint {
	var ids []uint
	for _, node := range nodes {
		ids = append(ids, node.ID)
		ids = append(ids, FlattenCategoryTree(node.Children)...)
	}
	return ids
}
