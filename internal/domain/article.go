package domain

// Kind splits the taxonomy into income and expense sides.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category groups articles, optionally under a parent category.
type Category struct {
	ID       int64  `json:"id"`
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
	IsActive bool   `json:"is_active"`
}

// Article is one income/expense line of the taxonomy. The article carries
// the kind; operations read it from here rather than accepting it as a
// separate parameter, so the two can never disagree.
type Article struct {
	ID         int64  `json:"id"`
	Kind       Kind   `json:"kind"`
	CategoryID *int64 `json:"category_id,omitempty"`
	Name       string `json:"name"`
	IsActive   bool   `json:"is_active"`
}

// MovementDirection maps the article's kind to the cash-movement direction
// an operation on it produces.
func (a *Article) MovementDirection() Direction {
	if a.Kind == KindIncome {
		return DirectionIn
	}
	return DirectionOut
}
