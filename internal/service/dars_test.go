package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibaq/festival-api/internal/domain"
)

func TestDarsServiceAggregateIgnoresCachedTotals(t *testing.T) {
	// The catalog claims 99 candidates; the live roll-up over two actual
	// registrations is what the listing must serve.
	darsRepo := &stubDarsRepo{entries: []domain.DarsEntry{
		{ID: 1, DarsName: "Darul Huda", DarsPlace: "Malappuram", Zone: "North", TotalCandidates: 99},
	}, nextID: 1}
	candidateRepo := &stubCandidateRepo{candidates: sampleCandidates()}
	svc := NewDarsService(darsRepo, candidateRepo)

	rows, err := svc.Aggregate(context.Background(), "", "huda")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].TotalCandidates)
}

func TestDarsServiceUpdateKeepsName(t *testing.T) {
	darsRepo := &stubDarsRepo{entries: []domain.DarsEntry{
		{ID: 1, DarsName: "Darul Huda", DarsPlace: "Malappuram", Zone: "North"},
	}, nextID: 1}
	svc := NewDarsService(darsRepo, &stubCandidateRepo{})

	updated, err := svc.Update(context.Background(), 1, domain.DarsEntry{
		DarsPlace: "Tirur", Zone: "North",
	})

	require.NoError(t, err)
	assert.Equal(t, "Darul Huda", updated.DarsName)
	assert.Equal(t, "Tirur", updated.DarsPlace)
}

func TestStatisticsService(t *testing.T) {
	t.Run("rolls up a populated store", func(t *testing.T) {
		candidateRepo := &stubCandidateRepo{candidates: sampleCandidates()}
		programRepo := &stubProgramRepo{programs: []domain.Program{
			{ID: 1, Name: "Qiraath"}, {ID: 2, Name: "Madh Song"},
		}}
		darsRepo := &stubDarsRepo{entries: []domain.DarsEntry{{ID: 1, DarsName: "Darul Huda"}}}
		svc := NewStatisticsService(candidateRepo, programRepo, darsRepo)

		stats, err := svc.Statistics(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalCandidates)
		assert.Equal(t, 2, stats.TotalPrograms)
		assert.Equal(t, 1, stats.TotalDars)
		assert.Equal(t, 2, stats.CandidatesByCategory[domain.CategoryJunior])
		assert.Equal(t, 2, stats.CandidatesByCategory[domain.CategorySenior])
	})

	t.Run("empty store yields zeros and empty maps", func(t *testing.T) {
		svc := NewStatisticsService(&stubCandidateRepo{}, &stubProgramRepo{}, &stubDarsRepo{})

		stats, err := svc.Statistics(context.Background())

		require.NoError(t, err)
		assert.Zero(t, stats.TotalCandidates)
		assert.NotNil(t, stats.CandidatesByCategory)
		assert.Empty(t, stats.CandidatesByCategory)
		assert.NotNil(t, stats.CandidatesByZone)
		assert.Empty(t, stats.CandidatesByZone)
	})
}
