package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"userpipe/pkg/domain"
)

// FormatUser renders an enriched user into the display string
// "{name} ({age}, {age_group}) -> username={username}".
func FormatUser(enriched domain.EnrichedUser) string {
	return fmt.Sprintf("%s (%d, %s) -> username=%s",
		enriched.User.Name, enriched.User.Age, enriched.AgeGroup, enriched.Username)
}

// MaskEmail redacts an email address for use in errors and logs. An address
// with exactly one "@" and non-empty local and domain parts keeps the first
// character of the local part and the full domain; anything else collapses
// to "***".
func MaskEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if strings.Count(trimmed, "@") != 1 {
		return "***"
	}

	local, domainPart, _ := strings.Cut(trimmed, "@")
	if local == "" || domainPart == "" {
		return "***"
	}

	first, _ := utf8.DecodeRuneInString(local)

	return fmt.Sprintf("%c***@%s", first, domainPart)
}
