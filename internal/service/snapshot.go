package service

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/sibaq/festival-api/internal/domain"
)

// fulldata.json is the bundled registration snapshot. It seeds the bulk
// import and backs the degraded mode of the public read endpoints when the
// store is unreachable.
//
//go:embed fulldata.json
var fullDataJSON []byte

var (
	snapshotOnce       sync.Once
	snapshotCandidates []domain.Candidate
	snapshotErr        error
)

// Snapshot returns the bundled candidate dataset, ordered by code. The
// parse happens once; the returned slice is shared and must not be mutated.
func Snapshot() ([]domain.Candidate, error) {
	snapshotOnce.Do(func() {
		var candidates []domain.Candidate
		if err := json.Unmarshal(fullDataJSON, &candidates); err != nil {
			snapshotErr = fmt.Errorf("parsing bundled snapshot -> %w", err)
			return
		}

		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Code < candidates[j].Code
		})

		snapshotCandidates = candidates
	})

	return snapshotCandidates, snapshotErr
}
