package assignment_test

import (
	"testing"
	"time"

	"haulage/internal/core/domain/model/assignment"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates active pairing", func(t *testing.T) {
		id := kernel.NewUUID()
		truckID := kernel.NewUUID()
		trailerID := kernel.NewUUID()

		a, err := assignment.NewAssignment(id, truckID, trailerID, now)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.Truck().IsEqual(truckID))
		assert.True(t, a.Trailer().IsEqual(trailerID))
		assert.Equal(t, now, a.AssignedDate())
		assert.Nil(t, a.UnassignedDate())
		assert.True(t, a.IsActive())
		require.NoError(t, a.Validate())
	})

	t.Run("rejects zero truck or trailer", func(t *testing.T) {
		_, err := assignment.NewAssignment(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a assignment.Assignment
		require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})
}

func TestAssignment_Close(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(48 * time.Hour)

	t.Run("closes active pairing", func(t *testing.T) {
		a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)
		require.NoError(t, err)

		require.NoError(t, a.Close(later))

		assert.False(t, a.IsActive())
		require.NotNil(t, a.UnassignedDate())
		assert.Equal(t, later, *a.UnassignedDate())
	})

	t.Run("closing twice fails and keeps the first close date", func(t *testing.T) {
		a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)
		require.NoError(t, err)
		require.NoError(t, a.Close(later))

		err = a.Close(later.Add(time.Hour))

		require.ErrorIs(t, err, assignment.ErrAssignmentAlreadyClosed)
		assert.Equal(t, later, *a.UnassignedDate())
	})
}

func TestRestoreAssignment(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	closed := now.Add(time.Hour)

	t.Run("restores closed entry", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now, &closed)

		require.NoError(t, err)
		assert.False(t, a.IsActive())
	})

	t.Run("restores active entry", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now, nil)

		require.NoError(t, err)
		assert.True(t, a.IsActive())
	})
}
