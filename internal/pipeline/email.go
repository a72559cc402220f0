package pipeline

import (
	"regexp"
	"strings"
)

// strictEmailRE is the anchored full-string pattern used in strict mode:
// letters, digits and ._%+- in the local part, letters, digits, dots and
// hyphens in the domain, ending in a label of at least two letters.
var strictEmailRE = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether the address is well-formed under the given
// strictness level. It is a pure predicate: no error is ever returned and an
// empty (or whitespace-only) address is always invalid.
//
// Non-strict mode only requires exactly two non-empty parts around a single
// "@" with at least one "." in the domain part.
func IsValidEmail(address string, strict bool) bool {
	candidate := strings.TrimSpace(address)
	if candidate == "" {
		return false
	}

	if strict {
		return strictEmailRE.MatchString(candidate)
	}

	local, domainPart, found := strings.Cut(candidate, "@")
	if !found || strings.Contains(domainPart, "@") {
		return false
	}

	return local != "" && domainPart != "" && strings.Contains(domainPart, ".")
}
