package model

import "time"

type Workout struct {
	ID         int64     `db:"id" json:"id"`
	SessionID  int64     `db:"session_id" json:"session_id"`
	ExerciseID int64     `db:"exercise_id" json:"exercise_id"`
	Reps       *int64    `db:"reps" json:"reps"`
	Time       *int64    `db:"time" json:"time"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type CreateWorkoutParams struct {
	SessionID  int64
	ExerciseID int64
	Reps       *int64
	Time       *int64
	CreatedAt  time.Time
}
