package model

// GoalTemplate is a seed suggestion a user can adopt into a personal Goal.
// Catalog entries are read-only; adoption copies the fields, it never links
// live state back to the template.
type GoalTemplate struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Pillar      Pillar  `json:"category" db:"pillar"`
	Horizon     Horizon `json:"horizon" db:"horizon"`
	SortOrder   int     `json:"-" db:"sort_order"`
}
