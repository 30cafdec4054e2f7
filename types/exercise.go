package types

// Exercise represents a single trainable movement, linked to the
// category and muscle group it belongs to.
type Exercise struct {
	// ID is the unique identifier of the exercise.
	ID int `json:"id" db:"id"`

	// Name is the human-readable name of the exercise.
	Name string `json:"name" db:"name"`

	// Description explains how the exercise is performed.
	Description string `json:"description" db:"description"`

	// CategoryID references the category this exercise belongs to.
	CategoryID int `json:"category_id" db:"category_id"`

	// MuscleGroupID references the primary muscle group worked.
	MuscleGroupID int `json:"muscle_group_id" db:"muscle_group_id"`
}

// ExercisePatch describes a partial update to an exercise.
type ExercisePatch struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	CategoryID    *int    `json:"category_id"`
	MuscleGroupID *int    `json:"muscle_group_id"`
}
