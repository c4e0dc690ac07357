package domain

// Activity is one node of the 3-level taxonomy used to classify
// organizations (activities table). Level 1 nodes have no parent; levels 2
// and 3 always reference a parent one level up. The parent graph is a forest.
type Activity struct {
	ID       int64
	Name     string
	ParentID *int64 // nil for roots
	Level    int
}

// ActivityNode is the assembled tree shape returned by the tree endpoint.
// Children are ordered by name ascending.
type ActivityNode struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Level    int             `json:"level"`
	ParentID *int64          `json:"parent_id"`
	Children []*ActivityNode `json:"children"`
}
