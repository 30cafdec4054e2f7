package types

// Category is a training category such as "Strength" or "Endurance".
// Names are unique.
type Category struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// CategoryPatch describes a partial update to a category.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
