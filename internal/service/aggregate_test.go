package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibaq/festival-api/internal/domain"
)

func sampleCandidates() []domain.Candidate {
	return []domain.Candidate{
		{
			ID: 1, Code: "J101", Name: "Anas Rahman",
			DarsName: "Darul Huda", DarsPlace: "Malappuram", Zone: "North", Slug: "dh",
			Category: domain.CategoryJunior,
			Stage1:   "Qiraath", Stage2: "Speech Arabic",
			GroupStage1: "Group Song",
		},
		{
			ID: 2, Code: "J102", Name: "Basil Ali",
			DarsName: "Darul Huda", DarsPlace: "Malappuram", Zone: "North", Slug: "dh",
			Category: domain.CategoryJunior,
			Stage1:   "Qiraath",
			OffStage1: "Essay Malayalam",
		},
		{
			ID: 3, Code: "S201", Name: "Cyril Hameed",
			DarsName: "Markaz Thangal", DarsPlace: "Kozhikode", Zone: "South", Slug: "mt",
			Category: domain.CategorySenior,
			Stage1:   "Qiraath",
			Stage2:   "Madh Song",
		},
		{
			ID: 4, Code: "S202", Name: "Dawood Kutty",
			DarsName: "Hidaya Dars", DarsPlace: "Kannur", Zone: "north", Slug: "hd",
			Category: domain.CategorySenior,
			OffStage1: "Madh Song",
			OffStage2: "Madh Song",
		},
	}
}

func TestFilterCandidates(t *testing.T) {
	candidates := sampleCandidates()

	tests := []struct {
		name      string
		query     string
		zone      string
		category  string
		wantCodes []string
	}{
		{
			name:      "no filters returns everything in order",
			wantCodes: []string{"J101", "J102", "S201", "S202"},
		},
		{
			name:      "query matches code case-insensitively",
			query:     "j10",
			wantCodes: []string{"J101", "J102"},
		},
		{
			name:      "query matches name substring",
			query:     "rahman",
			wantCodes: []string{"J101"},
		},
		{
			name:      "query matches dars name",
			query:     "markaz",
			wantCodes: []string{"S201"},
		},
		{
			name:      "zone filter is case-insensitive",
			zone:      "NORTH",
			wantCodes: []string{"J101", "J102", "S202"},
		},
		{
			name:      "category filter is exact",
			category:  domain.CategorySenior,
			wantCodes: []string{"S201", "S202"},
		},
		{
			name:      "query never matches slot values",
			query:     "qiraath",
			wantCodes: []string{},
		},
		{
			name:      "query and zone together",
			query:     "a",
			zone:      "south",
			wantCodes: []string{"S201"},
		},
		{
			name:      "no match yields empty, not nil error",
			query:     "zzz",
			wantCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCandidates(candidates, tt.query, tt.zone, tt.category)

			codes := make([]string, 0, len(got))
			for _, c := range got {
				codes = append(codes, c.Code)
			}

			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestFilterCandidatesDoesNotMutateInput(t *testing.T) {
	candidates := sampleCandidates()

	FilterCandidates(candidates, "j10", "", "")

	assert.Equal(t, sampleCandidates(), candidates)
}

func TestAggregateDars(t *testing.T) {
	candidates := sampleCandidates()

	t.Run("one row per distinct tuple, counts sum to total", func(t *testing.T) {
		rows := AggregateDars(candidates, "", "")

		require.Len(t, rows, 3)

		total := 0
		for _, row := range rows {
			total += row.TotalCandidates
		}
		assert.Equal(t, len(candidates), total)
	})

	t.Run("rows sorted by dars name", func(t *testing.T) {
		rows := AggregateDars(candidates, "", "")

		require.Len(t, rows, 3)
		assert.Equal(t, "Darul Huda", rows[0].DarsName)
		assert.Equal(t, "Hidaya Dars", rows[1].DarsName)
		assert.Equal(t, "Markaz Thangal", rows[2].DarsName)
		assert.Equal(t, 2, rows[0].TotalCandidates)
	})

	t.Run("zone filter is case-insensitive", func(t *testing.T) {
		rows := AggregateDars(candidates, "NORTH", "")

		require.Len(t, rows, 2)
		assert.Equal(t, "Darul Huda", rows[0].DarsName)
		assert.Equal(t, "Hidaya Dars", rows[1].DarsName)
	})

	t.Run("search filters on dars name", func(t *testing.T) {
		rows := AggregateDars(candidates, "", "huda")

		require.Len(t, rows, 1)
		assert.Equal(t, "Darul Huda", rows[0].DarsName)
		assert.Equal(t, 2, rows[0].TotalCandidates)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		assert.Empty(t, AggregateDars(nil, "", ""))
	})
}

func TestAggregatePrograms(t *testing.T) {
	candidates := sampleCandidates()

	t.Run("groups by program and category", func(t *testing.T) {
		groups := AggregatePrograms(candidates, "", "")

		type key struct{ program, category string }
		seen := make(map[key]bool)
		for _, g := range groups {
			k := key{g.Program, g.Category}
			assert.False(t, seen[k], "duplicate group %v", k)
			seen[k] = true
			assert.NotEmpty(t, g.Candidates)
		}

		// Qiraath splits by tier: two juniors, one senior.
		assert.True(t, seen[key{"Qiraath", domain.CategoryJunior}])
		assert.True(t, seen[key{"Qiraath", domain.CategorySenior}])
	})

	t.Run("same program across slot types merges into one group", func(t *testing.T) {
		groups := AggregatePrograms(candidates, domain.CategorySenior, "")

		var madh *domain.ProgramGroup
		for i := range groups {
			if groups[i].Program == "Madh Song" {
				madh = &groups[i]
			}
		}

		// S201 holds it in a stage slot, S202 in two offstage slots; S202 is
		// still counted once.
		require.NotNil(t, madh)
		require.Len(t, madh.Candidates, 2)
		assert.Equal(t, "S201", madh.Candidates[0].Code)
		assert.Equal(t, "S202", madh.Candidates[1].Code)
	})

	t.Run("category filter drops other tier", func(t *testing.T) {
		groups := AggregatePrograms(candidates, domain.CategoryJunior, "")

		require.NotEmpty(t, groups)
		for _, g := range groups {
			assert.Equal(t, domain.CategoryJunior, g.Category)
		}
	})

	t.Run("zone filter restricts counted candidates", func(t *testing.T) {
		groups := AggregatePrograms(candidates, "", "south")

		for _, g := range groups {
			for _, c := range g.Candidates {
				assert.Equal(t, "S201", c.Code)
			}
		}
	})

	t.Run("groups carry derived slugs", func(t *testing.T) {
		groups := AggregatePrograms(candidates, "", "")

		for _, g := range groups {
			assert.Equal(t, ProgramSlug(g.Category, g.Program), g.Slug)
		}
	})
}

func TestProgramSlug(t *testing.T) {
	tests := []struct {
		category string
		program  string
		want     string
	}{
		{domain.CategoryJunior, "Qiraath", "jqi"},
		{domain.CategorySenior, "Madh Song", "sma"},
		{domain.CategorySenior, "Q", "sq"},
		{"", "Qiraath", "qi"},
		{domain.CategoryJunior, "", "j"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgramSlug(tt.category, tt.program))
	}
}

func TestRollupCandidates(t *testing.T) {
	t.Run("counts per category and zone", func(t *testing.T) {
		byCategory, byZone := RollupCandidates(sampleCandidates())

		assert.Equal(t, map[string]int{
			domain.CategoryJunior: 2,
			domain.CategorySenior: 2,
		}, byCategory)
		// Zone counts keep the stored spelling.
		assert.Equal(t, map[string]int{"North": 2, "South": 1, "north": 1}, byZone)
	})

	t.Run("empty store yields empty maps", func(t *testing.T) {
		byCategory, byZone := RollupCandidates(nil)

		assert.Empty(t, byCategory)
		assert.Empty(t, byZone)
		require.NotNil(t, byCategory)
		require.NotNil(t, byZone)
	})
}
