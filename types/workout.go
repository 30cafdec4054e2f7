package types

// WorkoutStatus tracks the lifecycle of a workout exercise.
type WorkoutStatus string

const (
	WorkoutToBeStarted WorkoutStatus = "to_be_started"
	WorkoutInProgress  WorkoutStatus = "in_progress"
	WorkoutCompleted   WorkoutStatus = "completed"
	WorkoutCancelled   WorkoutStatus = "cancelled"
)

// Valid reports whether s is one of the known workout statuses.
func (s WorkoutStatus) Valid() bool {
	switch s {
	case WorkoutToBeStarted, WorkoutInProgress, WorkoutCompleted, WorkoutCancelled:
		return true
	}
	return false
}

// WorkoutExercise is one exercise entry inside a workout: the exercise
// performed plus its set/repetition scheme and progress status.
type WorkoutExercise struct {
	// ID is the unique identifier of the workout exercise.
	ID int `json:"id" db:"id"`

	// Description holds free-form notes for this entry.
	Description string `json:"description" db:"description"`

	// ExerciseID references the exercise performed.
	ExerciseID int `json:"exercise_id" db:"exercise_id"`

	// Sets is the number of sets to perform.
	Sets int `json:"sets" db:"sets"`

	// Repetitions is the number of repetitions per set.
	Repetitions int `json:"repetitions" db:"repetitions"`

	// Weight is the working weight in kilograms. Zero means bodyweight.
	Weight float64 `json:"weight" db:"weight"`

	// Status is the current lifecycle state of this entry.
	Status WorkoutStatus `json:"status" db:"status"`
}

// WorkoutExercisePatch describes a partial update to a workout exercise.
type WorkoutExercisePatch struct {
	Description *string        `json:"description"`
	ExerciseID  *int           `json:"exercise_id"`
	Sets        *int           `json:"sets"`
	Repetitions *int           `json:"repetitions"`
	Weight      *float64       `json:"weight"`
	Status      *WorkoutStatus `json:"status"`
}
