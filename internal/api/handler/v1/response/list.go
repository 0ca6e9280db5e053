package response

import "github.com/sibaq/festival-api/internal/domain"

// Public list payloads carry a success flag, the collection, and its size.
// Degraded is set when the store was unreachable and the bundled snapshot
// was served instead; clients must surface it as stale data.

type CandidateList struct {
	Success    bool               `json:"success"`
	Candidates []domain.Candidate `json:"candidates"`
	Total      int                `json:"total"`
	Degraded   bool               `json:"degraded,omitempty"`
}

type DarsList struct {
	Success  bool                 `json:"success"`
	Dars     []domain.DarsSummary `json:"dars"`
	Total    int                  `json:"total"`
	Degraded bool                 `json:"degraded,omitempty"`
}

type ProgramGroupList struct {
	Success  bool                  `json:"success"`
	Programs []domain.ProgramGroup `json:"programs"`
	Total    int                   `json:"total"`
	Degraded bool                  `json:"degraded,omitempty"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    domain.User `json:"user"`
}

type ImportResponse struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	CandidatesImported int    `json:"candidatesImported"`
	DarsImported       int    `json:"darsImported"`
	Errors             int    `json:"errors"`
}
