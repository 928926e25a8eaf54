package domain

// Candidate is a ranked profile produced transiently for one matching request.
// It is never persisted — built fresh per request and discarded with the response.
type Candidate struct {
	ProfileID       string   `json:"id"`
	Name            string   `json:"name"`
	UniversityID    string   `json:"universityId"`
	MatchScore      float64  `json:"matchScore"`
	SharedInterests []string `json:"sharedInterests"`
	Introduction    string   `json:"introduction,omitempty"`
}

// CandidatePage is one page of ranked candidates. NextOffset is nil at the
// end of the list.
type CandidatePage struct {
	Results    []Candidate `json:"results"`
	NextOffset *int        `json:"nextOffset"`
}
