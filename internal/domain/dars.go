package domain

import "time"

// DarsEntry is the admin-managed institution catalog row. TotalCandidates is
// a denormalized snapshot maintained by the importer; read paths serve live
// counts (DarsSummary) instead.
type DarsEntry struct {
	ID              uint      `json:"id"`
	DarsName        string    `json:"darsname"`
	DarsPlace       string    `json:"darsplace"`
	Zone            string    `json:"zone"`
	Slug            string    `json:"slug"`
	TotalCandidates int       `json:"totalCandidates"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DarsSummary is one row of the live dars roll-up: a distinct
// (darsname, darsplace, zone, slug) tuple among current candidates and the
// number of candidates sharing it.
type DarsSummary struct {
	DarsName        string `json:"darsname"`
	DarsPlace       string `json:"darsplace"`
	Zone            string `json:"zone"`
	Slug            string `json:"slug"`
	TotalCandidates int    `json:"totalCandidates"`
}
