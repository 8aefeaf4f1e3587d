package domain

// Category is either an L1Category or an L2Category from the two-level
// Marktplaats taxonomy.
type Category interface {
	CategoryID() int
	String() string
}

// L1Category is a top-level category.
type L1Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// L2Category is a subcategory. Parent is always a resolved L1 category.
type L2Category struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Parent L1Category `json:"parent"`
}

func (c L1Category) CategoryID() int { return c.ID }

func (c L2Category) CategoryID() int { return c.ID }

func (c L1Category) String() string { return c.Name }

func (c L2Category) String() string { return c.Name }

// Equal compares by ID only. Marktplaats occasionally renames categories,
// so two snapshots of the same category must still compare equal.
func (c L1Category) Equal(other L1Category) bool {
	return c.ID == other.ID
}

// Equal compares by ID only.
func (c L2Category) Equal(other L2Category) bool {
	return c.ID == other.ID
}
