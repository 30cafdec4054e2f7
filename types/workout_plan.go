package types

import "time"

// WorkoutPlan is a dated training plan owned by a user.
type WorkoutPlan struct {
	// ID is the unique identifier of the plan.
	ID int `json:"id" db:"id"`

	// UserID references the owning user.
	UserID int `json:"user_id" db:"user_id"`

	// Date is the day the plan is scheduled for.
	Date time.Time `json:"date" db:"date"`

	// Comments holds free-form notes about the plan.
	Comments string `json:"comments" db:"comments"`
}

// WorkoutPlanPatch describes a partial update to a workout plan.
type WorkoutPlanPatch struct {
	Date     *time.Time `json:"date"`
	Comments *string    `json:"comments"`
}
