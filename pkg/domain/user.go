package domain

// User represents a single parsed record prior to enrichment.
// It is produced by the parser stage and consumed by the validator.
type User struct {
	// Name is the user's display name. The validator normalizes it by
	// trimming surrounding whitespace.
	Name string `json:"name"`
	// Age is the user's age in years. The narrow integer type bounds it to
	// 0-255 at parse time; validation re-bounds it to MaxSupportedAge.
	Age uint8 `json:"age"`
	// Email is the user's email address as it appeared on the input line.
	Email string `json:"email"`
}
