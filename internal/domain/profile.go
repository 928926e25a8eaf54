package domain

// Profile is a student profile used as both the requester and the candidate
// pool for matching. Majors, interests and languages are sets — duplicates
// within one profile carry no meaning.
type Profile struct {
	ProfileID          string   `json:"id" dynamodbav:"profile_id"`
	Name               string   `json:"name" dynamodbav:"name"`
	Email              string   `json:"email" dynamodbav:"email"`
	UniversityID       string   `json:"universityId" dynamodbav:"university_id"`
	Majors             []string `json:"majors" dynamodbav:"majors"`
	Interests          []string `json:"interests" dynamodbav:"interests"`
	Languages          []string `json:"languages" dynamodbav:"languages"`
	Bio                string   `json:"bio,omitempty" dynamodbav:"bio"`
	PreferredLocations []string `json:"preferredLocations" dynamodbav:"preferred_locations"`
}

type CreateProfileRequest struct {
	Name               string   `json:"name" validate:"required"`
	UniversityID       string   `json:"universityId" validate:"required"`
	Majors             []string `json:"majors"`
	Interests          []string `json:"interests"`
	Languages          []string `json:"languages"`
	Bio                string   `json:"bio"`
	PreferredLocations []string `json:"preferredLocations"`
}

// UpdateProfileRequest carries partial profile updates. Nil slices and nil
// pointers mean "leave unchanged"; empty slices overwrite with empty sets.
type UpdateProfileRequest struct {
	Name               *string  `json:"name"`
	UniversityID       *string  `json:"universityId"`
	Majors             []string `json:"majors"`
	Interests          []string `json:"interests"`
	Languages          []string `json:"languages"`
	Bio                *string  `json:"bio"`
	PreferredLocations []string `json:"preferredLocations"`
}
