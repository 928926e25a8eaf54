package domain

// IntentOption is a matching-intent filter presented to the user
// (same campus, nearby universities, anywhere).
type IntentOption struct {
	IntentID    string `json:"id" dynamodbav:"intent_id"`
	Label       string `json:"label" dynamodbav:"label"`
	Description string `json:"description" dynamodbav:"description"`
	RadiusKm    *int   `json:"radiusKm" dynamodbav:"radius_km"`
}

// WeightPreset is an admin-managed alternate weighting for the match scorer.
// The engine itself runs on its fixed default weights; presets are catalog
// metadata until an operator activates one.
type WeightPreset struct {
	PresetID string        `json:"id" dynamodbav:"preset_id"`
	Title    string        `json:"title" dynamodbav:"title"`
	Weights  PresetWeights `json:"weights" dynamodbav:"weights"`
	Note     string        `json:"note" dynamodbav:"note"`
	IsActive bool          `json:"isActive" dynamodbav:"is_active"`
}

type PresetWeights struct {
	Interests float64 `json:"interests" dynamodbav:"interests"`
	Majors    float64 `json:"majors" dynamodbav:"majors"`
	Languages float64 `json:"languages" dynamodbav:"languages"`
}

// VerificationFlag describes one affiliation check a user can complete.
type VerificationFlag struct {
	FlagID      string `json:"id" dynamodbav:"flag_id"`
	Label       string `json:"label" dynamodbav:"label"`
	Description string `json:"description" dynamodbav:"description"`
	Required    bool   `json:"required" dynamodbav:"required"`
}

// CatalogConfiguration bundles the configuration catalog served to clients.
type CatalogConfiguration struct {
	Intents           []IntentOption     `json:"intents"`
	WeightPresets     []WeightPreset     `json:"weightPresets"`
	VerificationFlags []VerificationFlag `json:"verificationFlags"`
}
