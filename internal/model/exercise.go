package model

type Exercise struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	URL         string `db:"url" json:"url"`
	Description string `db:"description" json:"description"`
}

type CreateExerciseParams struct {
	Name        string
	URL         string
	Description string
}
