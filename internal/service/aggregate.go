package service

import (
	"sort"
	"strings"

	"github.com/sibaq/festival-api/internal/domain"
)

// The functions in this file are the search and aggregation engine. They are
// pure: every call works on the candidate collection it is given and never
// touches shared state, so each request sees one consistent snapshot.
//
// Zone comparisons are case-insensitive everywhere. The policy is applied
// uniformly here so no call site can disagree.

// FilterCandidates returns the candidates matching a free-text query and
// optional zone/category restrictions. A non-empty query matches when code,
// name, or dars name contains it case-insensitively. Input order is kept, so
// a collection ordered by code stays ordered by code.
func FilterCandidates(candidates []domain.Candidate, query, zone, category string) []domain.Candidate {
	query = strings.ToLower(query)

	matched := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Code), query) &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.DarsName), query) {
			continue
		}
		if zone != "" && !strings.EqualFold(c.Zone, zone) {
			continue
		}
		if category != "" && c.Category != category {
			continue
		}

		matched = append(matched, c)
	}

	return matched
}

// AggregateDars rolls candidates up into one row per distinct
// (darsname, darsplace, zone, slug) tuple, counting the candidates sharing
// it. Rows come back ordered by dars name ascending. zone restricts rows to
// one zone; search keeps rows whose dars name contains it, both
// case-insensitive. Counts are always live; the cached dars_data totals are
// never consulted here.
func AggregateDars(candidates []domain.Candidate, zone, search string) []domain.DarsSummary {
	search = strings.ToLower(search)

	type key struct {
		name, place, zone, slug string
	}

	counts := make(map[key]int)
	order := make([]key, 0)
	for _, c := range candidates {
		k := key{name: c.DarsName, place: c.DarsPlace, zone: c.Zone, slug: c.Slug}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	rows := make([]domain.DarsSummary, 0, len(order))
	for _, k := range order {
		if zone != "" && !strings.EqualFold(k.zone, zone) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(k.name), search) {
			continue
		}

		rows = append(rows, domain.DarsSummary{
			DarsName:        k.name,
			DarsPlace:       k.place,
			Zone:            k.zone,
			Slug:            k.slug,
			TotalCandidates: counts[k],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DarsName != rows[j].DarsName {
			return rows[i].DarsName < rows[j].DarsName
		}

		return rows[i].Zone < rows[j].Zone
	})

	return rows
}

// AggregatePrograms scans the ten assignment slots of every candidate and
// groups the non-empty values by (program name, category). A group's
// candidate list is every candidate of that category holding the name in any
// slot, each counted once even when several of its slots repeat the name.
// zone restricts the scan to candidates of one zone so counts reflect that
// zone; category drops groups of the other tier. Groups come back in slot
// scan order of first occurrence.
func AggregatePrograms(candidates []domain.Candidate, category, zone string) []domain.ProgramGroup {
	if zone != "" {
		candidates = FilterCandidates(candidates, "", zone, "")
	}

	type key struct {
		program, category string
	}

	members := make(map[key][]domain.ProgramCandidate)
	seen := make(map[key]map[string]bool)
	order := make([]key, 0)

	for _, c := range candidates {
		for _, slot := range c.Slots() {
			if slot == "" {
				continue
			}

			k := key{program: slot, category: c.Category}
			if seen[k] == nil {
				seen[k] = make(map[string]bool)
				order = append(order, k)
			}
			if seen[k][c.Code] {
				continue
			}
			seen[k][c.Code] = true

			members[k] = append(members[k], domain.ProgramCandidate{
				Code:      c.Code,
				Name:      c.Name,
				DarsPlace: c.DarsPlace,
			})
		}
	}

	groups := make([]domain.ProgramGroup, 0, len(order))
	for _, k := range order {
		if category != "" && k.category != category {
			continue
		}

		groups = append(groups, domain.ProgramGroup{
			Program:    k.program,
			Category:   k.category,
			Slug:       ProgramSlug(k.category, k.program),
			Candidates: members[k],
		})
	}

	return groups
}

// ProgramSlug derives the URL slug for an aggregated program: first letter of
// the category plus the first two letters of the program name, lower-cased.
// Nothing makes these unique; distinct programs can share a slug.
func ProgramSlug(category, program string) string {
	cat := []rune(category)
	if len(cat) > 1 {
		cat = cat[:1]
	}

	prog := []rune(program)
	if len(prog) > 2 {
		prog = prog[:2]
	}

	return strings.ToLower(string(cat) + string(prog))
}

// RollupCandidates counts candidates per category and per zone. An empty
// collection yields two empty maps.
func RollupCandidates(candidates []domain.Candidate) (byCategory, byZone map[string]int) {
	byCategory = make(map[string]int)
	byZone = make(map[string]int)
	for _, c := range candidates {
		byCategory[c.Category]++
		byZone[c.Zone]++
	}

	return byCategory, byZone
}
