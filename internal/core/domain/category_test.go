package domain_test

import (
	"testing"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestBuildCategoryTree(t *testing.T) {
	categories := []domain.Category{
		{CategoryID: 1, Name: "Sales"},
		{CategoryID: 2, Name: "Retail", ParentID: int64Ptr(1)},
		{CategoryID: 3, Name: "Online", ParentID: int64Ptr(2)},
		{CategoryID: 4, Name: "Orphan", ParentID: int64Ptr(99)},
	}

	tree := domain.BuildCategoryTree(categories)

	require.Len(t, tree.Nodes, 4)
	assert.Equal(t, []int{0, 3}, tree.Roots)
	assert.Equal(t, []int{1}, tree.Nodes[0].Children)
	assert.Equal(t, []int{2}, tree.Nodes[1].Children)
	assert.Equal(t, 2, tree.Nodes[2].Depth)
	assert.Equal(t, -1, tree.Nodes[3].Parent)
}

func TestBuildCategoryTree_BreaksCycles(t *testing.T) {
	categories := []domain.Category{
		{CategoryID: 1, Name: "A", ParentID: int64Ptr(3)},
		{CategoryID: 2, Name: "B", ParentID: int64Ptr(1)},
		{CategoryID: 3, Name: "C", ParentID: int64Ptr(2)},
		{CategoryID: 4, Name: "Self", ParentID: int64Ptr(4)},
	}

	tree := domain.BuildCategoryTree(categories)

	assert.Len(t, tree.Roots, 2)
	reached := 0
	var walk func(i int)
	walk = func(i int) {
		reached++
		for _, c := range tree.Nodes[i].Children {
			walk(c)
		}
	}
	for _, r := range tree.Roots {
		walk(r)
	}
	assert.Equal(t, len(categories), reached)
}

func TestCategory_VisibleTo(t *testing.T) {
	shared := domain.Category{CategoryID: 1}
	owned := domain.Category{CategoryID: 2, OrganizationID: int64Ptr(10)}

	assert.True(t, shared.IsShared())
	assert.True(t, shared.VisibleTo(10))
	assert.True(t, owned.VisibleTo(10))
	assert.False(t, owned.VisibleTo(11))
}
