package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftlog/workout-server-go/internal/database"
	"github.com/liftlog/workout-server-go/internal/model"
)

func TestExerciseRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db.DB)
	ctx := context.Background()

	exercise, err := repo.Create(ctx, model.CreateExerciseParams{
		Name:        "A",
		URL:         "u",
		Description: "d",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), exercise.ID)
	assert.Equal(t, "A", exercise.Name)
	assert.Equal(t, "u", exercise.URL)
	assert.Equal(t, "d", exercise.Description)

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CreateExerciseParams{Name: "A", URL: "other"})
		require.Error(t, err)
		assert.True(t, database.IsUniqueViolation(err))
	})
}

func TestExerciseRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateExerciseParams{Name: "pull-up"})
	require.NoError(t, err)

	t.Run("finds existing exercise", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("returns nil for unknown id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestExerciseRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db.DB)
	ctx := context.Background()

	t.Run("empty table returns empty slice", func(t *testing.T) {
		exercises, err := repo.List(ctx, 100, 0)
		require.NoError(t, err)
		assert.NotNil(t, exercises)
		assert.Empty(t, exercises)
	})

	for _, name := range []string{"squat", "bench", "deadlift"} {
		_, err := repo.Create(ctx, model.CreateExerciseParams{Name: name})
		require.NoError(t, err)
	}

	t.Run("returns rows in creation order", func(t *testing.T) {
		exercises, err := repo.List(ctx, 100, 0)
		require.NoError(t, err)
		require.Len(t, exercises, 3)
		assert.Equal(t, "squat", exercises[0].Name)
		assert.Equal(t, "deadlift", exercises[2].Name)
	})

	t.Run("applies offset and limit", func(t *testing.T) {
		exercises, err := repo.List(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, exercises, 1)
		assert.Equal(t, "bench", exercises[0].Name)
	})
}

func TestExerciseRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExerciseRepository(db.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateExerciseParams{Name: "row", URL: "u", Description: "d"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	again, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, again)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
