package domain

import "time"

// Program type values.
const (
	ProgramTypeStage    = "stage"
	ProgramTypeOffStage = "offstage"
	ProgramTypeGroup    = "group"
)

// Program is a catalog entry. Candidate slots reference programs by name,
// not by id, so nothing guarantees a slot value exists in the catalog.
type Program struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProgramCandidate is the snapshot of a participant kept on a ProgramGroup.
type ProgramCandidate struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	DarsPlace string `json:"darsplace"`
}

// ProgramGroup is one aggregated (program name, category) pair produced by
// scanning candidate slots, with every matching candidate attached.
type ProgramGroup struct {
	Program    string             `json:"program"`
	Category   string             `json:"category"`
	Slug       string             `json:"slug"`
	Candidates []ProgramCandidate `json:"candidates"`
}
