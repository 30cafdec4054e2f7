package types

// MuscleGroup is a muscle group targeted by exercises, such as
// "Quadriceps" or "Upper Back".
type MuscleGroup struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// MuscleGroupPatch describes a partial update to a muscle group.
type MuscleGroupPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
