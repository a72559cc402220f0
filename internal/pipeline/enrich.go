package pipeline

import (
	"fmt"
	"strings"

	"userpipe/pkg/domain"
)

// EnrichUser annotates a validated user with its derived attributes: the age
// group under the given bucketing mode and a login-style username. It is a
// total function over any validated user and never fails.
func EnrichUser(user domain.User, mode domain.AgeGroupingMode) domain.EnrichedUser {
	return domain.EnrichedUser{
		AgeGroup: computeAgeGroup(user.Age, mode),
		Username: deriveUsername(user),
		User:     user,
	}
}

// computeAgeGroup buckets an age into a categorical label.
func computeAgeGroup(age uint8, mode domain.AgeGroupingMode) domain.AgeGroup {
	switch mode {
	case domain.AgeGroupingFineGrained:
		// 5-year buckets aligned to multiples of 5, capped at the supported
		// upper bound.
		start := int(age) / 5 * 5
		end := start + 4
		if end > int(MaxSupportedAge) {
			end = int(MaxSupportedAge)
		}

		return domain.NewAgeGroup(fmt.Sprintf("%d-%d", start, end))
	case domain.AgeGroupingWide:
		switch {
		case age <= 17:
			return domain.NewAgeGroup("young")
		case age <= 45:
			return domain.NewAgeGroup("adult")
		default:
			return domain.NewAgeGroup("senior")
		}
	default:
		switch {
		case age <= 12:
			return domain.NewAgeGroup("<teen")
		case age <= 19:
			return domain.NewAgeGroup("teens")
		case age <= 29:
			return domain.NewAgeGroup("20s")
		case age <= 39:
			return domain.NewAgeGroup("30s")
		case age <= 49:
			return domain.NewAgeGroup("40s")
		default:
			return domain.NewAgeGroup("50+")
		}
	}
}

// deriveUsername lowercases the ASCII letters and digits of the user's name
// into an alphanumeric-only identifier. A name yielding no letters at all is
// not usable as a username; in that case it falls back to the lowercased
// local part of the email, and failing that to the literal "user".
func deriveUsername(user domain.User) string {
	var b strings.Builder
	hasLetter := false
	for _, r := range user.Name {
		switch {
		case r >= 'a' && r <= 'z':
			hasLetter = true
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			hasLetter = true
			b.WriteRune(r + 'a' - 'A')
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	if hasLetter {
		return b.String()
	}

	local, _, _ := strings.Cut(user.Email, "@")
	if local == "" {
		return "user"
	}

	return strings.ToLower(local)
}
