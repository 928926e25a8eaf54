package domain

// Verification levels control how strictly a university's affiliation
// evidence is checked during onboarding.
const (
	VerificationBasic  = "basic"
	VerificationStrict = "strict"
)

// University is one entry of the university catalog.
type University struct {
	UniversityID      string   `json:"id" dynamodbav:"university_id"`
	Name              string   `json:"name" dynamodbav:"name"`
	City              string   `json:"city" dynamodbav:"city"`
	Region            string   `json:"region" dynamodbav:"region"`
	Country           string   `json:"country" dynamodbav:"country"`
	Tags              []string `json:"tags" dynamodbav:"tags"`
	Programs          []string `json:"programs" dynamodbav:"programs"`
	VerificationLevel string   `json:"verificationLevel" dynamodbav:"verification_level"`
	Website           string   `json:"website,omitempty" dynamodbav:"website"`
}
