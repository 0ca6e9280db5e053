package domain

// Statistics is the whole-store roll-up served on the admin dashboard.
type Statistics struct {
	TotalCandidates      int            `json:"totalCandidates"`
	TotalPrograms        int            `json:"totalPrograms"`
	TotalDars            int            `json:"totalDars"`
	CandidatesByCategory map[string]int `json:"candidatesByCategory"`
	CandidatesByZone     map[string]int `json:"candidatesByZone"`
}
