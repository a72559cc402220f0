package domain

import "encoding/json"

// AgeGroup is a human friendly bucket describing a user's age segment.
// It wraps a single display label and is immutable once constructed.
type AgeGroup struct {
	label string
}

// NewAgeGroup constructs an AgeGroup carrying the given display label.
func NewAgeGroup(label string) AgeGroup {
	return AgeGroup{label: label}
}

// Label returns the display label of the age group, e.g. "30s" or "45-49".
func (g AgeGroup) Label() string { return g.label }

// String implements fmt.Stringer so the group renders as its bare label.
func (g AgeGroup) String() string { return g.label }

// MarshalJSON encodes the age group as its bare label string.
func (g AgeGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.label) //nolint: wrapcheck
}

// UnmarshalJSON decodes an age group from its bare label string.
func (g *AgeGroup) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &g.label) //nolint: wrapcheck
}

// EnrichedUser is a validated user annotated with derived attributes.
// It is the terminal value of the pipeline before formatting.
type EnrichedUser struct {
	// User is the validated user the derived attributes were computed from.
	User User `json:"user"`
	// AgeGroup is the categorical label derived from the user's age.
	AgeGroup AgeGroup `json:"ageGroup"`
	// Username is the login-style identifier derived from the user's name,
	// falling back to the email local part when the name yields nothing.
	Username string `json:"username"`
}
