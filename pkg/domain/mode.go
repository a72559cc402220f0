package domain

import (
	"strings"

	"userpipe/pkg/serrors"
)

// AgeGroupingMode selects the strategy used for deriving age groups.
// It is fixed at configuration time and immutable for the duration of a batch.
type AgeGroupingMode string

const (
	// AgeGroupingDefault buckets ages into the coarse decade-style groups
	// ("<teen", "teens", "20s", ..., "50+").
	AgeGroupingDefault AgeGroupingMode = "default"
	// AgeGroupingFineGrained buckets ages into 5-year ranges aligned to
	// multiples of five, e.g. "45-49".
	AgeGroupingFineGrained AgeGroupingMode = "fine-grained"
	// AgeGroupingWide buckets ages into three broad segments
	// ("young", "adult", "senior").
	AgeGroupingWide AgeGroupingMode = "wide"
)

// ParseAgeGroupingMode parses a mode from its kebab-case wire value.
// The empty string maps to the default mode and "fine" is accepted as an
// alias for "fine-grained".
func ParseAgeGroupingMode(s string) (AgeGroupingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(AgeGroupingDefault):
		return AgeGroupingDefault, nil
	case string(AgeGroupingFineGrained), "fine":
		return AgeGroupingFineGrained, nil
	case string(AgeGroupingWide):
		return AgeGroupingWide, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown age grouping mode %q", s)
	}
}
