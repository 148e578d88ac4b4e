package domain

// Category classifies transactions and invoices.
// A category with a nil OrganizationID is shared by every organization.
type Category struct {
	CategoryID     int64    `json:"categoryID"`
	OrganizationID *int64   `json:"organizationID,omitempty"` // nil = shared
	ParentID       *int64   `json:"parentID,omitempty"`       // Self-reference, cycles possible in corrupt data
	Name           string   `json:"name"`
	CategoryType   FlowType `json:"categoryType"`
	ActivityType   string   `json:"activityType"` // Free-form: OPERATING, COGS, ADMINISTRATIVE, ...
	AuditFields
}

// IsShared reports whether the category belongs to no organization.
func (c Category) IsShared() bool {
	return c.OrganizationID == nil
}

// VisibleTo reports whether organizationID may use the category.
func (c Category) VisibleTo(organizationID int64) bool {
	return c.OrganizationID == nil || *c.OrganizationID == organizationID
}

// CategoryNode is one entry of a CategoryTree arena.
// Parent is an index into CategoryTree.Nodes or -1 for roots.
type CategoryNode struct {
	Category Category `json:"category"`
	Parent   int      `json:"parent"`
	Children []int    `json:"children"`
	Depth    int      `json:"depth"`
}

// CategoryTree is a flat arena of nodes plus the indices of its roots.
type CategoryTree struct {
	Nodes []CategoryNode `json:"nodes"`
	Roots []int          `json:"roots"`
}

// BuildCategoryTree arranges categories into a tree without following pointers.
// Parents missing from the input make a node a root, and any parent chain that
// loops back on itself is cut at the node where the loop was detected.
func BuildCategoryTree(categories []Category) CategoryTree {
	n := len(categories)
	index := make(map[int64]int, n)
	for i, c := range categories {
		index[c.CategoryID] = i
	}

	parent := make([]int, n)
	for i, c := range categories {
		parent[i] = -1
		if c.ParentID == nil {
			continue
		}
		if p, ok := index[*c.ParentID]; ok && p != i {
			parent[i] = p
		}
	}

	const (
		unvisited = iota
		onPath
		done
	)
	state := make([]int, n)
	for i := range categories {
		var path []int
		j := i
		for j >= 0 && state[j] == unvisited {
			state[j] = onPath
			path = append(path, j)
			j = parent[j]
		}
		if j >= 0 && state[j] == onPath {
			parent[j] = -1
		}
		for _, p := range path {
			state[p] = done
		}
	}

	tree := CategoryTree{
		Nodes: make([]CategoryNode, n),
		Roots: []int{},
	}
	for i, c := range categories {
		tree.Nodes[i] = CategoryNode{Category: c, Parent: parent[i], Children: []int{}}
	}
	for i := range tree.Nodes {
		if p := parent[i]; p >= 0 {
			tree.Nodes[p].Children = append(tree.Nodes[p].Children, i)
		} else {
			tree.Roots = append(tree.Roots, i)
		}
	}

	queue := append([]int(nil), tree.Roots...)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, child := range tree.Nodes[i].Children {
			tree.Nodes[child].Depth = tree.Nodes[i].Depth + 1
			queue = append(queue, child)
		}
	}
	return tree
}
