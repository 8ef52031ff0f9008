package models

import (
	"testing"
)

func uintPtr(v uint) *uint { return &v }

func testCategory(id uint, name string, parentID *uint) Category {
	c := Category{Name: name, ParentID: parentID}
	c.ID = id
	return c
}

func TestBuildCategoryTree(t *testing.T) {
	// dien-thoai
	//   apple
	//     iphone
	//   samsung
	// laptop
	flat := []Category{
		testCategory(1, "Điện thoại", nil),
		testCategory(2, "Apple", uintPtr(1)),
		testCategory(3, "Samsung", uintPtr(1)),
		testCategory(4, "iPhone", uintPtr(2)),
		testCategory(5, "Laptop", nil),
	}

	tree := BuildCategoryTree(flat, nil)

	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}
	if tree[0].ID != 1 || tree[1].ID != 5 {
		t.Fatalf("unexpected root ids: %d, %d", tree[0].ID, tree[1].ID)
	}
	if len(tree[0].Children) != 2 {
		t.Fatalf("expected 2 children under root 1, got %d", len(tree[0].Children))
	}
	apple := tree[0].Children[0]
	if apple.ID != 2 || len(apple.Children) != 1 || apple.Children[0].ID != 4 {
		t.Errorf("unexpected subtree under Apple: %+v", apple)
	}
	if len(tree[1].Children) != 0 {
		t.Errorf("expected Laptop to be a leaf, got %d children", len(tree[1].Children))
	}
}

func TestBuildCategoryTreeRoundTrip(t *testing.T) {
	flat := []Category{
		testCategory(10, "A", nil),
		testCategory(11, "B", uintPtr(10)),
		testCategory(12, "C", uintPtr(11)),
		testCategory(13, "D", uintPtr(10)),
		testCategory(14, "E", nil),
		testCategory(15, "F", uintPtr(14)),
	}

	ids := FlattenCategoryTree(BuildCategoryTree(flat, nil))

	if len(ids) != len(flat) {
		t.Fatalf("round trip produced %d ids, want %d", len(ids), len(flat))
	}
	seen := make(map[uint]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("id %d appears more than once", id)
		}
		seen[id] = true
	}
	for _, category := range flat {
		if !seen[category.ID] {
			t.Errorf("id %d missing from flattened tree", category.ID)
		}
	}
}

func TestBuildCategoryTreeMissingParent(t *testing.T) {
	flat := []Category{
		testCategory(1, "Root", nil),
		testCategory(2, "Orphan", uintPtr(99)),
	}

	tree := BuildCategoryTree(flat, nil)

	if len(tree) != 1 || tree[0].ID != 1 {
		t.Fatalf("expected only the root to surface, got %+v", tree)
	}
	ids := FlattenCategoryTree(tree)
	for _, id := range ids {
		if id == 2 {
			t.Error("orphan with missing parent surfaced in the tree")
		}
	}
}

func TestBuildCategoryTreeEmpty(t *testing.T) {
	if tree := BuildCategoryTree(nil, nil); len(tree) != 0 {
		t.Errorf("expected empty tree, got %+v", tree)
	}
}

func TestSubcategoryIndex(t *testing.T) {
	var parent Category

	parent.AddSubcategory(3)
	parent.AddSubcategory(7)
	parent.AddSubcategory(3) // duplicate is a no-op

	ids := parent.SubcategoryIDs()
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 7 {
		t.Fatalf("unexpected index after adds: %v", ids)
	}
	if !parent.HasSubcategories() {
		t.Error("HasSubcategories() = false with a non-empty index")
	}

	parent.RemoveSubcategory(3)
	ids = parent.SubcategoryIDs()
	if len(ids) != 1 || ids[0] != 7 {
		t.Fatalf("unexpected index after remove: %v", ids)
	}

	parent.RemoveSubcategory(7)
	if parent.HasSubcategories() {
		t.Error("HasSubcategories() = true after removing every child")
	}
}
