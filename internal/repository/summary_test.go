package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newSummary(runID string) *entity.Summary {
	return &entity.Summary{
		RunID:     runID,
		Engines:   []string{"classic", "packed", "broken"},
		Passed:    []string{"classic", "packed"},
		CreatedAt: time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
	}
}

func TestSummaryRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	summaryRepo := NewSummaryRepository(st.Storage)

	// Given: a conformance summary
	summary := newSummary("run-1")

	// When: Save is called
	err := summaryRepo.Save(ctx, summary)

	// Then: no error should be returned, and the summary is stored
	require.NoError(t, err)
}

func TestSummaryRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		summaryRepo := NewSummaryRepository(st.Storage)

		// Given: a saved summary
		summary := newSummary("run-1")
		require.NoError(t, summaryRepo.Save(ctx, summary))

		// When: GetByID is called with its run id
		retrieved, err := summaryRepo.GetByID(ctx, summary.RunID)

		// Then: the retrieved summary should match the saved one
		require.NoError(t, err)
		assert.Equal(t, summary.RunID, retrieved.RunID)
		assert.Equal(t, summary.Engines, retrieved.Engines)
		assert.Equal(t, summary.Passed, retrieved.Passed)
		assert.True(t, summary.CreatedAt.Equal(retrieved.CreatedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		summaryRepo := NewSummaryRepository(st.Storage)

		// When: GetByID is called with an unknown run id
		retrieved, err := summaryRepo.GetByID(ctx, "9999999")

		// Then: an ErrSummaryNotFound error should be returned
		require.ErrorIs(t, err, ErrSummaryNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSummaryRepository_Latest(t *testing.T) {
	t.Run("Latest_ReturnsLastSaved", func(t *testing.T) {
		ctx, st := suite.New(t)

		summaryRepo := NewSummaryRepository(st.Storage)

		// Given: two runs saved one after the other
		require.NoError(t, summaryRepo.Save(ctx, newSummary("run-1")))
		require.NoError(t, summaryRepo.Save(ctx, newSummary("run-2")))

		// When: Latest is called
		latest, err := summaryRepo.Latest(ctx)

		// Then: the second run is returned
		require.NoError(t, err)
		assert.Equal(t, "run-2", latest.RunID)
	})

	t.Run("Latest_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		summaryRepo := NewSummaryRepository(st.Storage)

		_, err := summaryRepo.Latest(ctx)

		require.ErrorIs(t, err, ErrSummaryNotFound)
	})
}

func TestSummaryRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		summaryRepo := NewSummaryRepository(st.Storage)

		// Given: a saved summary
		summary := newSummary("run-1")
		require.NoError(t, summaryRepo.Save(ctx, summary))

		// When: DeleteByID is called with its run id
		err := summaryRepo.DeleteByID(ctx, summary.RunID)

		// Then: it is gone
		require.NoError(t, err)

		_, err = summaryRepo.GetByID(ctx, summary.RunID)
		require.ErrorIs(t, err, ErrSummaryNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		summaryRepo := NewSummaryRepository(st.Storage)

		err := summaryRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrSummaryNotFound)
	})
}
